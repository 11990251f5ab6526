package hoverlens

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a capture of the next drawn frame. Captures are numbered
// in request order for the lifetime of the effect, so a script's shots sort
// the way they were taken and rerunning it overwrites the same files.
func (e *Effect) Screenshot(label string) {
	e.captures = append(e.captures, label)
}

// flushCaptures writes every queued capture of screen. Called last in Draw.
func (e *Effect) flushCaptures(screen *ebiten.Image) {
	if len(e.captures) == 0 {
		return
	}
	b := screen.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)

	for _, label := range e.captures {
		e.captureSeq++
		path, err := saveCapture(e.cfg.ScreenshotDir, e.captureSeq, label, e.frame.Texture, img)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[hoverlens] screenshot: %v\n", err)
			continue
		}
		if e.cfg.Debug {
			_, _ = fmt.Fprintf(os.Stderr, "[hoverlens] screenshot: %s\n", path)
		}
	}
	e.captures = e.captures[:0]
}

// saveCapture writes img as "<dir>/<seq>_<label>_<texture>.png" and returns
// the path. img holds premultiplied pixels as Ebitengine reads them; the
// PNG encoder converts to straight alpha.
func saveCapture(dir string, seq int, label string, tex Image, img image.Image) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	path := filepath.Join(dir, captureName(seq, label, tex))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	return path, f.Close()
}

func captureName(seq int, label string, tex Image) string {
	label = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		}
		return '-'
	}, strings.TrimSpace(label))
	if label == "" {
		label = "frame"
	}
	return fmt.Sprintf("%03d_%s_%s.png", seq, label, tex)
}
