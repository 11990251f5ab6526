package hoverlens

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"
)

func newTestEffect(t *testing.T, cfg Config, opts Options) (*Effect, *fakePointer) {
	t.Helper()
	ptr := &fakePointer{}
	if opts.Pointer == nil {
		opts.Pointer = ptr
	}
	if opts.Assets == nil {
		opts.Assets = fstest.MapFS{}
	}
	e, err := NewEffect(cfg, opts)
	if err != nil {
		t.Fatalf("NewEffect: %v", err)
	}
	e.Layout(1000, 600)
	return e, ptr
}

func TestNewEffectInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Smoothing = 0
	_, err := NewEffect(cfg, Options{Assets: fstest.MapFS{}})
	if err == nil || !strings.Contains(err.Error(), "invalid config") {
		t.Fatalf("err = %v, want invalid config", err)
	}
}

func TestNewEffectMissingTexture(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Menu.Links[2].Texture = "missing.png"
	_, err := NewEffect(cfg, Options{Assets: fstest.MapFS{}})
	if err == nil || !strings.Contains(err.Error(), "missing.png") {
		t.Fatalf("err = %v, want missing.png error", err)
	}
}

func TestNewEffectBadFont(t *testing.T) {
	_, err := NewEffect(DefaultConfig(), Options{Assets: fstest.MapFS{}, Font: []byte("nope")})
	if err == nil {
		t.Fatal("expected font error")
	}
}

func TestEffectLayoutResizesCamera(t *testing.T) {
	e, _ := newTestEffect(t, DefaultConfig(), Options{})
	w, h := e.Camera().Viewport()
	if w != 1000 || h != 600 {
		t.Errorf("viewport = %vx%v, want 1000x600", w, h)
	}
	if !approxEqual(e.Camera().FOV(), FieldOfView(600, DefaultPerspective), epsilon) {
		t.Errorf("FOV = %v", e.Camera().FOV())
	}
	if e.Menu().Bounds().Width == 0 {
		t.Error("menu not laid out")
	}

	e.Layout(1200, 800)
	if _, h := e.Camera().Viewport(); h != 800 {
		t.Errorf("height after resize = %v, want 800", h)
	}
}

func TestEffectHoverAndSelect(t *testing.T) {
	e, ptr := newTestEffect(t, DefaultConfig(), Options{})

	ptr.x, ptr.y = 900, 20
	if err := e.Update(); err != nil {
		t.Fatal(err)
	}
	if f := e.Frame(); f.Hovered || f.Alpha != 0 || f.LinkOpacity != LinkOpacityIdle {
		t.Fatalf("idle frame = %+v", f)
	}

	ptr.x, ptr.y = linkCentre(e.Menu(), 2)
	for i := 0; i < 5; i++ {
		if err := e.Update(); err != nil {
			t.Fatal(err)
		}
	}
	f := e.Frame()
	if !f.Hovered || f.Texture != ImageC || f.LinkOpacity != LinkOpacityHover {
		t.Errorf("hover frame = %+v", f)
	}
	if f.Alpha <= 0 || f.Alpha >= 1 {
		t.Errorf("alpha = %v, want in (0, 1)", f.Alpha)
	}
}

func TestEffectStop(t *testing.T) {
	e, _ := newTestEffect(t, DefaultConfig(), Options{})
	if e.Stopped() {
		t.Fatal("stopped before Stop")
	}
	e.Stop()
	if err := e.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update after Stop = %v, want Termination", err)
	}
}

func TestEffectContextCancel(t *testing.T) {
	e, _ := newTestEffect(t, DefaultConfig(), Options{})
	ctx, cancel := context.WithCancel(context.Background())
	e.ctx = ctx
	if e.Stopped() {
		t.Fatal("stopped with live context")
	}
	cancel()
	if err := e.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update after cancel = %v, want Termination", err)
	}
}

func TestEffectExitAfterScript(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [{"action": "move", "x": 10, "y": 10}]}`))
	if err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	cfg.ExitAfterScript = true
	e, ptr := newTestEffect(t, cfg, Options{Script: runner})
	ptr.x, ptr.y = 500, 500

	if err := e.Update(); err != nil {
		t.Fatalf("first Update = %v", err)
	}
	if got := e.Animator().Target(); got != (Vec2{10, 10}) {
		t.Errorf("target = %v, want scripted (10, 10)", got)
	}
	if err := e.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update after script = %v, want Termination", err)
	}
}

func TestEffectApplyConfig(t *testing.T) {
	e, _ := newTestEffect(t, DefaultConfig(), Options{})
	before := e.Menu().Bounds()

	cfg := DefaultConfig()
	cfg.Smoothing = 0.5
	cfg.TiltScale = 0.002
	cfg.Menu.Gap = 60
	cfg.Menu.Links[0].Label = "Index"
	e.ApplyConfig(cfg)

	if e.Animator().Smoothing != 0.5 || e.Animator().TiltScale != 0.002 {
		t.Errorf("animator tunables = %v/%v", e.Animator().Smoothing, e.Animator().TiltScale)
	}
	if e.Menu().Links[0].Label != "Index" {
		t.Errorf("label = %q, want Index", e.Menu().Links[0].Label)
	}
	if after := e.Menu().Bounds(); after.Height <= before.Height {
		t.Errorf("menu height %v did not grow from %v with a larger gap", after.Height, before.Height)
	}
}

func TestEffectPollWatcher(t *testing.T) {
	cw := &ConfigWatcher{
		Configs: make(chan Config, 1),
		Errors:  make(chan error, 1),
	}
	e, _ := newTestEffect(t, DefaultConfig(), Options{Watcher: cw})

	cfg := DefaultConfig()
	cfg.Smoothing = 0.3
	cw.Configs <- cfg
	if err := e.Update(); err != nil {
		t.Fatal(err)
	}
	if e.Animator().Smoothing != 0.3 {
		t.Errorf("Smoothing = %v, want reloaded 0.3", e.Animator().Smoothing)
	}

	// Reload errors keep the previous config.
	cw.Errors <- errors.New("bad yaml")
	if err := e.Update(); err != nil {
		t.Fatal(err)
	}
	if e.Animator().Smoothing != 0.3 {
		t.Errorf("Smoothing = %v after error, want 0.3", e.Animator().Smoothing)
	}

	close(cw.Configs)
	close(cw.Errors)
	if err := e.Update(); err != nil {
		t.Fatal(err)
	}
	if e.watcher != nil {
		t.Error("closed watcher still polled")
	}
}

func TestEffectScreenshotQueue(t *testing.T) {
	e, _ := newTestEffect(t, DefaultConfig(), Options{})
	e.Screenshot("one")
	e.Screenshot("two")
	if len(e.captures) != 2 {
		t.Errorf("captures = %v, want 2 labels", e.captures)
	}
}

func TestEffectDrawLens(t *testing.T) {
	e, ptr := newTestEffect(t, DefaultConfig(), Options{})

	ptr.x, ptr.y = linkCentre(e.Menu(), 1)
	for i := 0; i < 5; i++ {
		if err := e.Update(); err != nil {
			t.Fatal(err)
		}
	}
	f := e.Frame()
	if f.Alpha <= 0 {
		t.Fatalf("alpha = %v after hovering, want > 0", f.Alpha)
	}
	if f.Tilt == (Vec2{}) {
		t.Fatal("no tilt while the lens is still catching up")
	}

	screen := ebiten.NewImage(1000, 600)
	e.Draw(screen)

	if lensShader == nil {
		t.Error("lens shader not compiled after drawing a visible lens")
	}
	if got := e.uniforms.Alpha(); got != float32(f.Alpha) {
		t.Errorf("Alpha uniform = %v, want %v", got, float32(f.Alpha))
	}
	want := [2]float32{float32(f.Tilt.X), float32(f.Tilt.Y)}
	if got := e.uniforms.Offset(); got != want {
		t.Errorf("Offset uniform = %v, want %v", got, want)
	}
}

func TestEffectDrawSkipsHiddenLens(t *testing.T) {
	e, ptr := newTestEffect(t, DefaultConfig(), Options{})
	lensShader = nil

	ptr.x, ptr.y = 900, 20
	for i := 0; i < 3; i++ {
		if err := e.Update(); err != nil {
			t.Fatal(err)
		}
	}
	if f := e.Frame(); f.Alpha != 0 {
		t.Fatalf("alpha = %v outside the menu, want 0", f.Alpha)
	}

	e.Draw(ebiten.NewImage(1000, 600))

	if lensShader != nil {
		t.Error("lens shader compiled for a hidden lens")
	}
	if e.uniforms.Alpha() != 0 || e.uniforms.Offset() != [2]float32{} {
		t.Errorf("uniforms set for a hidden lens: alpha %v offset %v", e.uniforms.Alpha(), e.uniforms.Offset())
	}
}

func TestEffectOverrideSurvivesReload(t *testing.T) {
	force := func(c *Config) { c.Debug = true }
	e, _ := newTestEffect(t, DefaultConfig(), Options{Override: force})
	if !e.Config().Debug {
		t.Fatal("override not applied at creation")
	}

	reloaded := DefaultConfig()
	reloaded.Smoothing = 0.4
	e.ApplyConfig(reloaded)
	if !e.Config().Debug {
		t.Error("reload dropped the override")
	}
	if e.Config().Smoothing != 0.4 {
		t.Errorf("Smoothing = %v, want reloaded 0.4", e.Config().Smoothing)
	}
}

func TestEffectTexturesStale(t *testing.T) {
	e, _ := newTestEffect(t, DefaultConfig(), Options{})

	edited := DefaultConfig()
	edited.Menu.Links[1].Texture = "b.png"
	if !e.TexturesStale(edited) {
		t.Fatal("changed texture path not reported")
	}
	e.ApplyConfig(edited)

	// Reverting to the loaded paths is not stale, even after the edited
	// config was applied.
	if e.TexturesStale(DefaultConfig()) {
		t.Error("reverted texture paths reported as stale")
	}

	other := DefaultConfig()
	other.Menu.Links[3].Texture = "d.png"
	if !e.TexturesStale(other) {
		t.Error("second edit not reported")
	}
}
