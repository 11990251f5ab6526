package hoverlens

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default link color.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: toByte(c.R * c.A),
		G: toByte(c.G * c.A),
		B: toByte(c.B * c.A),
		A: toByte(c.A),
	}
}

// toByte maps [0, 1] to [0, 255], rounding to nearest.
func toByte(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Union returns the smallest rectangle containing both r and other.
// A zero-sized r is treated as empty.
func (r Rect) Union(other Rect) Rect {
	if r.Width == 0 && r.Height == 0 {
		return other
	}
	minX := math.Min(r.X, other.X)
	minY := math.Min(r.Y, other.Y)
	maxX := math.Max(r.X+r.Width, other.X+other.Width)
	maxY := math.Max(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Inset grows (positive) or shrinks (negative) the rectangle on every side.
func (r Rect) Inset(pad float64) Rect {
	return Rect{X: r.X - pad, Y: r.Y - pad, Width: r.Width + 2*pad, Height: r.Height + 2*pad}
}

// Image selects one of the four preloaded lens textures.
type Image uint8

const (
	ImageA Image = iota // first menu link
	ImageB              // second menu link
	ImageC              // third menu link
	ImageD              // fourth menu link

	imageCount = 4
)

// ImageFromIndex maps a link index to its texture. Indices outside [0, 3]
// report false.
func ImageFromIndex(i int) (Image, bool) {
	if i < 0 || i >= imageCount {
		return 0, false
	}
	return Image(i), true
}

// Valid reports whether img names one of the four textures.
func (img Image) Valid() bool {
	return img < imageCount
}

// String returns a short name for logs and the debug overlay.
func (img Image) String() string {
	switch img {
	case ImageA:
		return "A"
	case ImageB:
		return "B"
	case ImageC:
		return "C"
	case ImageD:
		return "D"
	default:
		return "?"
	}
}

// EventType identifies a kind of notification delivered to the Animator.
type EventType uint8

const (
	EventPointerMove EventType = iota // the pointer moved to a new position
	EventHoverEnter                   // the pointer entered the menu container
	EventHoverLeave                   // the pointer left the menu container
	EventLinkEnter                    // the pointer entered a menu link
)

// String returns the event name.
func (e EventType) String() string {
	switch e {
	case EventPointerMove:
		return "pointer-move"
	case EventHoverEnter:
		return "hover-enter"
	case EventHoverLeave:
		return "hover-leave"
	case EventLinkEnter:
		return "link-enter"
	default:
		return "unknown"
	}
}

// HoverEvent is one notification Input forwarded to the animator.
type HoverEvent struct {
	Type EventType
	// X and Y are the pointer position in screen pixels.
	X, Y float64
	// Link is the entered link for EventLinkEnter, otherwise -1.
	Link int
	// Image is the texture selected by EventLinkEnter.
	Image Image
}

// EventSink receives hover events in the order Input produces them, on the
// goroutine that calls Input.Update.
type EventSink interface {
	EmitEvent(event HoverEvent)
}
