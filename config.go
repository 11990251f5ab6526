package hoverlens

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML-loadable configuration for an Effect.
type Config struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`

	// Smoothing is the per-frame lerp factor for offset and alpha, in (0, 1].
	Smoothing float64 `yaml:"smoothing"`
	// TiltScale converts lag in pixels into shader tilt.
	TiltScale float64 `yaml:"tilt_scale"`
	// Perspective is the camera distance from the lens plane.
	Perspective float64 `yaml:"perspective"`

	Plane  PlaneConfig  `yaml:"plane"`
	Menu   MenuConfig   `yaml:"menu"`
	Pulse  PulseConfig  `yaml:"pulse"`
	Colors ColorsConfig `yaml:"colors"`

	// ScreenshotDir is where scripted and manual screenshots are written.
	ScreenshotDir string `yaml:"screenshot_dir"`
	// ExitAfterScript stops the effect when an attached script finishes.
	ExitAfterScript bool `yaml:"exit_after_script"`
	Debug           bool `yaml:"debug"`
}

// PlaneConfig sizes the lens.
type PlaneConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Segments int     `yaml:"segments"`
}

// MenuConfig lists the four links and their textures.
type MenuConfig struct {
	Links    []LinkConfig `yaml:"links"`
	FontSize float64      `yaml:"font_size"`
	Left     float64      `yaml:"left"`
	Gap      float64      `yaml:"gap"`
	Padding  float64      `yaml:"padding"`
}

// LinkConfig is one menu entry. An empty Texture uses a generated
// placeholder.
type LinkConfig struct {
	Label   string `yaml:"label"`
	Texture string `yaml:"texture"`
}

// PulseConfig tunes the texture swap pulse. Zero duration disables it.
type PulseConfig struct {
	Duration float64 `yaml:"duration"`
	Depth    float64 `yaml:"depth"`
}

// ColorsConfig holds hex colors ("#rrggbb" or "#rrggbbaa").
type ColorsConfig struct {
	Background HexColor `yaml:"background"`
	Link       HexColor `yaml:"link"`
}

// DefaultConfig returns the configuration the effect runs with when no file
// is given.
func DefaultConfig() Config {
	return Config{
		Title:       "hoverlens",
		Width:       1280,
		Height:      720,
		Smoothing:   DefaultSmoothing,
		TiltScale:   DefaultTiltScale,
		Perspective: DefaultPerspective,
		Plane: PlaneConfig{
			Width:    DefaultPlaneWidth,
			Height:   DefaultPlaneHeight,
			Segments: DefaultPlaneSegments,
		},
		Menu: MenuConfig{
			Links: []LinkConfig{
				{Label: "Work"},
				{Label: "About"},
				{Label: "Journal"},
				{Label: "Contact"},
			},
			FontSize: 56,
			Left:     0.12,
			Gap:      18,
			Padding:  12,
		},
		Pulse: PulseConfig{Duration: 0.35, Depth: 0.06},
		Colors: ColorsConfig{
			Background: HexColor{R: 0.067, G: 0.067, B: 0.075, A: 1},
			Link:       HexColor{R: 0.94, G: 0.93, B: 0.9, A: 1},
		},
		ScreenshotDir: "screenshots",
	}
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("hoverlens: read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(b)
	if err != nil {
		return Config{}, fmt.Errorf("hoverlens: config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML over DefaultConfig. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	case c.Smoothing <= 0 || c.Smoothing > 1:
		return fmt.Errorf("smoothing %v must be in (0, 1]", c.Smoothing)
	case c.Perspective <= 0:
		return fmt.Errorf("perspective %v must be positive", c.Perspective)
	case c.Plane.Width <= 0 || c.Plane.Height <= 0:
		return fmt.Errorf("plane size %vx%v must be positive", c.Plane.Width, c.Plane.Height)
	case c.Plane.Segments < 1 || c.Plane.Segments > 254:
		return fmt.Errorf("plane segments %d must be in [1, 254]", c.Plane.Segments)
	case len(c.Menu.Links) != imageCount:
		return fmt.Errorf("menu needs exactly %d links, got %d", imageCount, len(c.Menu.Links))
	case c.Menu.FontSize <= 0:
		return fmt.Errorf("font size %v must be positive", c.Menu.FontSize)
	case c.Pulse.Duration < 0:
		return fmt.Errorf("pulse duration %v must not be negative", c.Pulse.Duration)
	}
	return nil
}

// Labels returns the link labels in menu order.
func (c Config) Labels() []string {
	out := make([]string, len(c.Menu.Links))
	for i, l := range c.Menu.Links {
		out[i] = l.Label
	}
	return out
}

// TexturePaths returns the four texture paths in Image order.
func (c Config) TexturePaths() [imageCount]string {
	var out [imageCount]string
	for i := 0; i < imageCount && i < len(c.Menu.Links); i++ {
		out[i] = c.Menu.Links[i].Texture
	}
	return out
}

// HexColor is a Color that decodes from "#rgb", "#rrggbb" or "#rrggbbaa".
type HexColor Color

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color: expected string, got node kind %d", value.Kind)
	}
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	*c = HexColor(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c HexColor) MarshalYAML() (any, error) {
	rgba := Color{R: c.R, G: c.G, B: c.B, A: 1}.toRGBA()
	a := toByte(c.A)
	if a == 255 {
		return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B), nil
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", rgba.R, rgba.G, rgba.B, a), nil
}

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa". The leading '#'
// is optional.
func ParseHexColor(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	var digits []uint8
	for i := 0; i < len(s); i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			return Color{}, fmt.Errorf("color %q: invalid hex digit %q", s, s[i])
		}
		digits = append(digits, d)
	}
	comp := func(hi, lo uint8) float64 { return float64(hi<<4|lo) / 255 }
	switch len(digits) {
	case 3:
		return Color{
			R: comp(digits[0], digits[0]),
			G: comp(digits[1], digits[1]),
			B: comp(digits[2], digits[2]),
			A: 1,
		}, nil
	case 6:
		return Color{R: comp(digits[0], digits[1]), G: comp(digits[2], digits[3]), B: comp(digits[4], digits[5]), A: 1}, nil
	case 8:
		return Color{R: comp(digits[0], digits[1]), G: comp(digits[2], digits[3]), B: comp(digits[4], digits[5]), A: comp(digits[6], digits[7])}, nil
	}
	return Color{}, fmt.Errorf("color %q: want 3, 6 or 8 hex digits", s)
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
