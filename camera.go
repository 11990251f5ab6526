package hoverlens

import "math"

const (
	// DefaultPerspective is the camera's distance from the z=0 plane.
	DefaultPerspective = 1000.0
	defaultNear        = 0.1
	defaultFar         = 1000.0
)

// Camera is a perspective camera looking down -Z from (0, 0, Perspective).
// Its field of view is chosen so that one world unit on the z=0 plane covers
// exactly one screen pixel, with the origin at the viewport centre and Y up.
type Camera struct {
	// Perspective is the distance from the camera to the z=0 plane.
	Perspective float64
	// Near and Far are the clip distances.
	Near, Far float64

	width, height float64
	fov           float64 // degrees
	aspect        float64
}

// NewCamera creates a camera at the given perspective distance. Call Resize
// before projecting.
func NewCamera(perspective float64) *Camera {
	if perspective <= 0 {
		perspective = DefaultPerspective
	}
	return &Camera{
		Perspective: perspective,
		Near:        defaultNear,
		Far:         defaultFar,
		aspect:      1,
	}
}

// FieldOfView returns the vertical field of view in degrees that maps a
// viewport of the given height 1:1 onto the plane at distance perspective.
func FieldOfView(height, perspective float64) float64 {
	return 180 * (2 * math.Atan(height/2/perspective)) / math.Pi
}

// Resize recomputes field of view and aspect from the viewport size alone.
// Calling it twice with the same size yields the same camera.
func (c *Camera) Resize(width, height float64) {
	c.width = width
	c.height = height
	c.fov = FieldOfView(height, c.Perspective)
	if height > 0 {
		c.aspect = width / height
	} else {
		c.aspect = 1
	}
}

// FOV returns the vertical field of view in degrees.
func (c *Camera) FOV() float64 { return c.fov }

// Aspect returns width / height of the last Resize.
func (c *Camera) Aspect() float64 { return c.aspect }

// Viewport returns the size passed to the last Resize.
func (c *Camera) Viewport() (width, height float64) { return c.width, c.height }

// Project maps a world point to screen pixels through the perspective
// projection. ok is false when the point is behind the near plane or beyond
// the far plane.
func (c *Camera) Project(x, y, z float64) (sx, sy float64, ok bool) {
	depth := c.Perspective - z
	if c.height == 0 || depth < c.Near || depth > c.Far {
		return 0, 0, false
	}
	f := 1 / math.Tan(c.fov*math.Pi/360)
	ndcX := x * f / (c.aspect * depth)
	ndcY := y * f / depth
	sx = (ndcX + 1) / 2 * c.width
	sy = (1 - ndcY) / 2 * c.height
	return sx, sy, true
}

// WorldToScreen projects a point on the z=0 plane.
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	sx, sy, _ := c.Project(x, y, 0)
	return sx, sy
}

// ScreenToWorld is the inverse of WorldToScreen for the z=0 plane.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	if c.width == 0 || c.height == 0 {
		return 0, 0
	}
	f := 1 / math.Tan(c.fov*math.Pi/360)
	ndcX := sx/c.width*2 - 1
	ndcY := 1 - sy/c.height*2
	return ndcX * c.aspect * c.Perspective / f, ndcY * c.Perspective / f
}
