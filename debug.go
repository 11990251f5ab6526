package hoverlens

import (
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// debugLogInterval is how often, in seconds, stats are written to stderr.
const debugLogInterval = 1.0

// debugStats accumulates notification and frame counts between log lines.
// Only populated when debug mode is on.
type debugStats struct {
	elapsed  float64
	ticks    int
	swaps    int
	lastTex  Image
	lastSeen bool
}

// record counts one tick and reports whether a log line is due.
func (d *debugStats) record(f Frame, dt float64) bool {
	d.ticks++
	if d.lastSeen && f.Texture != d.lastTex {
		d.swaps++
	}
	d.lastTex = f.Texture
	d.lastSeen = true
	d.elapsed += dt
	return d.elapsed >= debugLogInterval
}

func (d *debugStats) reset() {
	d.elapsed = 0
	d.ticks = 0
	d.swaps = 0
}

// debugLog writes one stats line for the frame to w.
func debugLog(w io.Writer, f Frame, stats debugStats, fps, tps float64) {
	_, _ = fmt.Fprintf(w,
		"[hoverlens] offset: (%.1f, %.1f) | tilt: (%.4f, %.4f) | alpha: %.3f | texture: %s | hovered: %t\n",
		f.Offset.X, f.Offset.Y, f.Tilt.X, f.Tilt.Y, f.Alpha, f.Texture, f.Hovered)
	_, _ = fmt.Fprintf(w,
		"[hoverlens] ticks: %d | swaps: %d | fps: %.1f | tps: %.1f\n",
		stats.ticks, stats.swaps, fps, tps)
}

// debugTick updates stats and logs to stderr once per interval.
func (e *Effect) debugTick(dt float64) {
	if !e.cfg.Debug {
		return
	}
	if e.stats.record(e.frame, dt) {
		debugLog(os.Stderr, e.frame, e.stats, ebiten.ActualFPS(), ebiten.ActualTPS())
		e.stats.reset()
	}
}

// drawDebugOverlay prints live state in the top-left corner.
func (e *Effect) drawDebugOverlay(screen *ebiten.Image) {
	if !e.cfg.Debug {
		return
	}
	f := e.frame
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"FPS: %.1f  TPS: %.1f\noffset: %.0f, %.0f\nalpha: %.2f  links: %.1f\ntexture: %s  scale: %.3f",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		f.Offset.X, f.Offset.Y, f.Alpha, f.LinkOpacity, f.Texture, e.scale,
	), 8, 8)
}
