package hoverlens

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Link is one menu entry. Its index in the menu selects the lens texture.
type Link struct {
	Label  string
	Bounds Rect // screen space, set by Layout
}

// Menu is the hover container holding the four links. Entering its bounds
// fades the lens in; entering a link selects that link's texture.
type Menu struct {
	Links []Link
	// Left is the menu's left edge as a fraction of viewport width.
	Left float64
	// Gap is the vertical space between links in pixels.
	Gap float64
	// Padding grows the container bounds beyond the links.
	Padding float64
	Color   Color

	bounds Rect
}

// NewMenu creates a menu with one link per label.
func NewMenu(labels []string) *Menu {
	m := &Menu{
		Left:    0.12,
		Gap:     18,
		Padding: 12,
		Color:   ColorWhite,
	}
	for _, l := range labels {
		m.Links = append(m.Links, Link{Label: l})
	}
	return m
}

// Layout stacks the links vertically, centred on the viewport's height, and
// recomputes the container bounds. measure reports a label's rendered size.
func (m *Menu) Layout(viewportW, viewportH float64, measure func(string) (float64, float64)) {
	total := 0.0
	sizes := make([]Vec2, len(m.Links))
	for i, l := range m.Links {
		w, h := measure(l.Label)
		sizes[i] = Vec2{w, h}
		total += h
	}
	if len(m.Links) > 1 {
		total += m.Gap * float64(len(m.Links)-1)
	}

	x := viewportW * m.Left
	y := (viewportH - total) / 2
	m.bounds = Rect{}
	for i := range m.Links {
		r := Rect{X: x, Y: y, Width: sizes[i].X, Height: sizes[i].Y}
		m.Links[i].Bounds = r
		m.bounds = m.bounds.Union(r)
		y += sizes[i].Y + m.Gap
	}
	if len(m.Links) > 0 {
		m.bounds = m.bounds.Inset(m.Padding)
	}
}

// Bounds returns the container rectangle from the last Layout.
func (m *Menu) Bounds() Rect { return m.bounds }

// HitTest reports whether (x, y) is inside the container and which link, if
// any, is under it (-1 for none). Links are tested in order; the first hit
// wins.
func (m *Menu) HitTest(x, y float64) (inside bool, link int) {
	if len(m.Links) == 0 || !m.bounds.Contains(x, y) {
		return false, -1
	}
	for i := range m.Links {
		if m.Links[i].Bounds.Contains(x, y) {
			return true, i
		}
	}
	return true, -1
}

// Draw renders every label at the given opacity.
func (m *Menu) Draw(dst *ebiten.Image, font *LinkFont, opacity float64) {
	if font == nil {
		return
	}
	for _, l := range m.Links {
		op := &text.DrawOptions{}
		op.GeoM.Translate(l.Bounds.X, l.Bounds.Y)
		op.ColorScale.ScaleWithColor(m.Color.toRGBA())
		op.ColorScale.ScaleAlpha(float32(opacity))
		op.LineSpacing = font.LineHeight()
		text.Draw(dst, l.Label, font.Face(), op)
	}
}

// LinkFont wraps Ebitengine's text/v2 for the menu labels.
type LinkFont struct {
	face *text.GoTextFace
	lh   float64
}

// LoadLinkFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadLinkFont(ttfData []byte, size float64) (*LinkFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("hoverlens: failed to parse TTF data: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &LinkFont{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

// Measure returns the width and height of the rendered label.
func (f *LinkFont) Measure(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *LinkFont) LineHeight() float64 { return f.lh }

// Face returns the underlying GoTextFace.
func (f *LinkFont) Face() *text.GoTextFace { return f.face }
