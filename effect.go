package hoverlens

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Options supplies the effect's external resources. Zero values fall back to
// the working directory, the Ebitengine cursor and Go Regular.
type Options struct {
	// Assets resolves texture paths from the config.
	Assets fs.FS
	// Pointer overrides the pointer source, e.g. for tests.
	Pointer PointerSource
	// Font is raw TTF/OTF data for the link labels.
	Font []byte
	// Script, when set, drives the pointer instead of the real cursor.
	Script *ScriptRunner
	// Watcher delivers reloaded configs; only tunables are applied.
	Watcher *ConfigWatcher
	// Events, when set, receives every hover notification.
	Events EventSink
	// Override is applied to the initial config and to every reloaded one,
	// so settings from flags survive hot reload.
	Override func(*Config)
}

// Effect is the hover lens as an ebiten.Game: the animator ticks once per
// Update, the lens and menu are drawn in Draw, and Layout keeps the camera
// and menu sized to the window.
type Effect struct {
	cfg Config

	anim     *Animator
	camera   *Camera
	plane    *Plane
	uniforms *LensUniforms
	textures *TextureSet
	menu     *Menu
	font     *LinkFont
	input    *Input
	pulse    *Pulse
	script   *ScriptRunner
	watcher  *ConfigWatcher
	override func(*Config)
	// loaded are the texture paths the TextureSet was built from.
	loaded   [imageCount]string

	ctx     context.Context
	stopped atomic.Bool

	frame  Frame
	scale  float64
	width  int
	height int

	captures   []string
	captureSeq int
	stats      debugStats
}

// NewEffect loads textures and fonts and wires the components. The returned
// effect has not started; pass it to ebiten.RunGame or use Run.
func NewEffect(cfg Config, opts Options) (*Effect, error) {
	if opts.Override != nil {
		opts.Override(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("hoverlens: invalid config: %w", err)
	}

	assets := opts.Assets
	if assets == nil {
		assets = os.DirFS(".")
	}
	texW := int(cfg.Plane.Width)
	texH := int(cfg.Plane.Height)
	srcs, err := LoadTextureImages(assets, cfg.TexturePaths(), texW, texH)
	if err != nil {
		return nil, err
	}

	fontData := opts.Font
	if fontData == nil {
		fontData = goregular.TTF
	}
	font, err := LoadLinkFont(fontData, cfg.Menu.FontSize)
	if err != nil {
		return nil, err
	}

	e := &Effect{
		anim:     NewAnimator(),
		camera:   NewCamera(cfg.Perspective),
		plane:    NewPlane(cfg.Plane.Width, cfg.Plane.Height, cfg.Plane.Segments),
		uniforms: NewLensUniforms(),
		textures: NewTextureSet(srcs),
		menu:     NewMenu(cfg.Labels()),
		font:     font,
		pulse:    NewPulse(float32(cfg.Pulse.Duration), cfg.Pulse.Depth),
		script:   opts.Script,
		watcher:  opts.Watcher,
		override: opts.Override,
		loaded:   cfg.TexturePaths(),
		scale:    1,
	}
	e.input = NewInput(opts.Pointer, e.menu, e.anim)
	e.input.SetEventSink(opts.Events)
	if e.script != nil {
		e.input.SetScripted(true)
	}
	e.ApplyConfig(cfg)
	return e, nil
}

// ApplyConfig updates the tunables that can change while running: smoothing,
// tilt, pulse, colors, menu spacing, labels, screenshot dir and debug mode.
// Textures, plane geometry, window size and font size are fixed at creation.
// Options.Override is applied to cfg first.
func (e *Effect) ApplyConfig(cfg Config) {
	if e.override != nil {
		e.override(&cfg)
	}
	e.cfg = cfg
	e.anim.Smoothing = cfg.Smoothing
	e.anim.TiltScale = cfg.TiltScale
	e.pulse.Duration = float32(cfg.Pulse.Duration)
	e.pulse.Depth = cfg.Pulse.Depth
	e.menu.Left = cfg.Menu.Left
	e.menu.Gap = cfg.Menu.Gap
	e.menu.Padding = cfg.Menu.Padding
	e.menu.Color = Color(cfg.Colors.Link)
	for i, l := range cfg.Menu.Links {
		if i < len(e.menu.Links) {
			e.menu.Links[i].Label = l.Label
		}
	}
	if e.width > 0 && e.height > 0 {
		e.relayout()
	}
}

// Animator returns the effect's animator.
func (e *Effect) Animator() *Animator { return e.anim }

// Input returns the effect's pointer input.
func (e *Effect) Input() *Input { return e.input }

// Camera returns the effect's camera.
func (e *Effect) Camera() *Camera { return e.camera }

// Menu returns the effect's menu.
func (e *Effect) Menu() *Menu { return e.menu }

// Config returns the config in effect, overrides included.
func (e *Effect) Config() Config { return e.cfg }

// TexturesStale reports whether cfg names different textures than the ones
// loaded at creation.
func (e *Effect) TexturesStale(cfg Config) bool {
	return cfg.TexturePaths() != e.loaded
}

// Frame returns the frame computed by the last Update.
func (e *Effect) Frame() Frame { return e.frame }

// Stop ends the run loop at the next Update. Safe to call from any goroutine.
func (e *Effect) Stop() { e.stopped.Store(true) }

// Stopped reports whether Stop was called or the run context ended.
func (e *Effect) Stopped() bool {
	if e.stopped.Load() {
		return true
	}
	if e.ctx != nil && e.ctx.Err() != nil {
		return true
	}
	return false
}

// Update implements ebiten.Game. It applies reloaded configs, advances any
// script, samples input and ticks the animator.
func (e *Effect) Update() error {
	if e.Stopped() {
		return ebiten.Termination
	}
	e.pollWatcher()
	if e.script != nil {
		e.script.step(e)
	}
	e.input.Update()

	w, h := e.camera.Viewport()
	e.frame = e.anim.Tick(w, h)

	dt := 1.0 / float64(ebiten.TPS())
	e.scale = e.pulse.Update(e.frame.Texture, float32(dt))
	e.debugTick(dt)

	if e.script != nil && e.script.Done() && e.cfg.ExitAfterScript && len(e.captures) == 0 {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game. The menu is drawn first so the lens floats
// above the labels it is previewing.
func (e *Effect) Draw(screen *ebiten.Image) {
	screen.Fill(Color(e.cfg.Colors.Background).toRGBA())
	e.menu.Draw(screen, e.font, e.frame.LinkOpacity)

	if tex := e.textures.Get(e.frame.Texture); tex != nil && e.frame.Alpha > 0 {
		b := tex.Bounds()
		verts, indices := e.plane.Vertices(e.frame, e.scale, e.camera, float64(b.Dx()), float64(b.Dy()))
		e.uniforms.Set(e.frame)
		e.uniforms.Draw(screen, tex, verts, indices)
	}

	e.drawDebugOverlay(screen)
	e.flushCaptures(screen)
}

// Layout implements ebiten.Game. The camera and menu are recomputed only when
// the window size changes.
func (e *Effect) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.width || outsideHeight != e.height {
		e.width = outsideWidth
		e.height = outsideHeight
		e.relayout()
	}
	return outsideWidth, outsideHeight
}

func (e *Effect) relayout() {
	e.camera.Resize(float64(e.width), float64(e.height))
	e.menu.Layout(float64(e.width), float64(e.height), e.font.Measure)
	e.input.resync()
}

// pollWatcher applies the newest reloaded config, if any, without blocking.
func (e *Effect) pollWatcher() {
	if e.watcher == nil {
		return
	}
	select {
	case cfg, ok := <-e.watcher.Configs:
		if !ok {
			e.watcher = nil
			return
		}
		if e.TexturesStale(cfg) {
			_, _ = fmt.Fprintf(os.Stderr, "[hoverlens] config: texture changes need a restart\n")
		}
		e.ApplyConfig(cfg)
		_, _ = fmt.Fprintf(os.Stderr, "[hoverlens] config reloaded\n")
	case err, ok := <-e.watcher.Errors:
		if !ok {
			e.watcher = nil
			return
		}
		_, _ = fmt.Fprintf(os.Stderr, "[hoverlens] config: %v\n", err)
	default:
	}
}

// Run opens a window and runs the effect until the window closes, Stop is
// called or ctx is cancelled.
func Run(ctx context.Context, cfg Config, opts Options) error {
	e, err := NewEffect(cfg, opts)
	if err != nil {
		return err
	}
	return e.Run(ctx)
}

// Run starts the effect's window and blocks until it ends.
func (e *Effect) Run(ctx context.Context) error {
	e.ctx = ctx
	ebiten.SetWindowTitle(e.cfg.Title)
	ebiten.SetWindowSize(e.cfg.Width, e.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("hoverlens: run: %w", err)
	}
	return nil
}
