package hoverlens

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// lensShaderSrc samples the active texture with the red channel displaced by
// the tilt. Offset is in texture-space units with Y up; Alpha fades the
// whole lens. Ebitengine uses premultiplied alpha, so samples are
// un-premultiplied before channels are mixed.
const lensShaderSrc = `//kage:unit pixels
package main

var Alpha float
var Offset vec2

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	shift := vec2(Offset.x, -Offset.y) * imageSrc0Size()
	c := imageSrc0At(src)
	s := imageSrc0At(src + shift)
	if c.a > 0 {
		c.rgb /= c.a
	}
	if s.a > 0 {
		s.rgb /= s.a
	}
	a := clamp(c.a*Alpha, 0, 1)
	return vec4(vec3(s.r, c.g, c.b)*a, a)
}
`

// Lazily compiled; the effect runs on a single goroutine.
var lensShader *ebiten.Shader

func ensureLensShader() *ebiten.Shader {
	if lensShader == nil {
		s, err := ebiten.NewShader([]byte(lensShaderSrc))
		if err != nil {
			panic("hoverlens: failed to compile lens shader: " + err.Error())
		}
		lensShader = s
	}
	return lensShader
}

// LensUniforms holds the shader's dynamic inputs. The map and slice are kept
// across frames to avoid per-frame allocation.
type LensUniforms struct {
	uniforms  map[string]any
	offsetF32 [2]float32
	shaderOp  ebiten.DrawTrianglesShaderOptions
}

// NewLensUniforms creates an empty uniform set (alpha 0, no tilt).
func NewLensUniforms() *LensUniforms {
	u := &LensUniforms{uniforms: make(map[string]any, 2)}
	u.uniforms["Alpha"] = float32(0)
	u.uniforms["Offset"] = u.offsetF32[:]
	u.shaderOp.Uniforms = u.uniforms
	return u
}

// Set copies alpha and tilt from a frame.
func (u *LensUniforms) Set(f Frame) {
	u.uniforms["Alpha"] = float32(f.Alpha)
	u.offsetF32[0] = float32(f.Tilt.X)
	u.offsetF32[1] = float32(f.Tilt.Y)
}

// Alpha returns the fade uniform as submitted to the shader.
func (u *LensUniforms) Alpha() float32 {
	return u.uniforms["Alpha"].(float32)
}

// Offset returns the tilt uniform as submitted to the shader.
func (u *LensUniforms) Offset() [2]float32 {
	return u.offsetF32
}

// Draw renders the plane triangles into dst with tex in image slot 0.
func (u *LensUniforms) Draw(dst, tex *ebiten.Image, verts []ebiten.Vertex, indices []uint16) {
	if tex == nil || len(indices) == 0 {
		return
	}
	u.shaderOp.Images[0] = tex
	dst.DrawTrianglesShader(verts, indices, ensureLensShader(), &u.shaderOp)
	u.shaderOp.Images[0] = nil
}
