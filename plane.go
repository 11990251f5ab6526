package hoverlens

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// DefaultPlaneWidth and DefaultPlaneHeight are the lens size in pixels.
	DefaultPlaneWidth  = 250.0
	DefaultPlaneHeight = 350.0
	// DefaultPlaneSegments is the grid subdivision along each axis.
	DefaultPlaneSegments = 20
)

// Plane is a subdivided unit quad scaled to Width x Height. The tilt
// deformation bends it along a half sine so the middle of each edge moves
// furthest while the corners stay put on the opposite axis.
type Plane struct {
	Width, Height float64
	Segments      int

	verts   []ebiten.Vertex
	indices []uint16
}

// NewPlane creates a plane. segments is clamped to [1, 254] so the index
// buffer fits in uint16.
func NewPlane(width, height float64, segments int) *Plane {
	if segments < 1 {
		segments = 1
	}
	if segments > 254 {
		segments = 254
	}
	p := &Plane{Width: width, Height: height, Segments: segments}
	p.indices = planeIndices(segments)
	p.verts = make([]ebiten.Vertex, (segments+1)*(segments+1))
	return p
}

// planeIndices builds two triangles per grid cell, rows top to bottom.
func planeIndices(seg int) []uint16 {
	stride := seg + 1
	idx := make([]uint16, 0, seg*seg*6)
	for j := 0; j < seg; j++ {
		for i := 0; i < seg; i++ {
			a := uint16(j*stride + i)
			b := a + 1
			c := a + uint16(stride)
			d := c + 1
			idx = append(idx, a, c, b, b, c, d)
		}
	}
	return idx
}

// Deform applies the lens bend to a point of the unit plane. (x, y) is the
// centred local position and (u, v) its texture coordinate with v = 1 at the
// top edge.
func Deform(x, y, u, v float64, tilt Vec2) (float64, float64) {
	x += math.Sin(v*math.Pi) * tilt.X
	y += math.Sin(u*math.Pi) * tilt.Y
	return x, y
}

// Vertices deforms the plane by f.Tilt, places it at f.Position scaled by
// scale, projects it through cam and maps texture pixels of a texW x texH
// source. The returned slices are reused by the next call.
func (p *Plane) Vertices(f Frame, scale float64, cam *Camera, texW, texH float64) ([]ebiten.Vertex, []uint16) {
	seg := p.Segments
	stride := seg + 1
	w := p.Width * scale
	h := p.Height * scale
	for j := 0; j <= seg; j++ {
		v := 1 - float64(j)/float64(seg)
		for i := 0; i <= seg; i++ {
			u := float64(i) / float64(seg)
			lx, ly := Deform(u-0.5, v-0.5, u, v, f.Tilt)
			sx, sy := cam.WorldToScreen(f.Position.X+lx*w, f.Position.Y+ly*h)
			p.verts[j*stride+i] = ebiten.Vertex{
				DstX:   float32(sx),
				DstY:   float32(sy),
				SrcX:   float32(u * texW),
				SrcY:   float32((1 - v) * texH),
				ColorR: 1,
				ColorG: 1,
				ColorB: 1,
				ColorA: 1,
			}
		}
	}
	return p.verts, p.indices
}

// Bounds returns the screen-space AABB of the last Vertices call.
func (p *Plane) Bounds() Rect {
	verts := p.verts
	if len(verts) == 0 {
		return Rect{}
	}
	minX := float64(verts[0].DstX)
	minY := float64(verts[0].DstY)
	maxX := minX
	maxY := minY
	for i := 1; i < len(verts); i++ {
		x := float64(verts[i].DstX)
		y := float64(verts[i].DstY)
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
