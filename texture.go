package hoverlens

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io/fs"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// TextureSet holds the four lens textures, indexed by Image.
type TextureSet struct {
	images [imageCount]*ebiten.Image
}

// NewTextureSet uploads four decoded images as Ebitengine images.
func NewTextureSet(srcs [imageCount]image.Image) *TextureSet {
	ts := &TextureSet{}
	for i, src := range srcs {
		ts.images[i] = ebiten.NewImageFromImage(src)
	}
	return ts
}

// Get returns the texture for img, or nil when img is invalid.
func (ts *TextureSet) Get(img Image) *ebiten.Image {
	if !img.Valid() {
		return nil
	}
	return ts.images[img]
}

// LoadTextureImages decodes the four texture files from fsys and resamples
// each to w x h. An empty path yields a generated placeholder for that slot.
func LoadTextureImages(fsys fs.FS, paths [imageCount]string, w, h int) ([imageCount]image.Image, error) {
	var out [imageCount]image.Image
	for i, path := range paths {
		if path == "" {
			out[i] = Placeholder(Image(i), w, h)
			continue
		}
		b, err := fs.ReadFile(fsys, path)
		if err != nil {
			return out, fmt.Errorf("hoverlens: read texture %s: %w", path, err)
		}
		src, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			return out, fmt.Errorf("hoverlens: decode texture %s: %w", path, err)
		}
		out[i] = Resample(src, w, h)
	}
	return out, nil
}

// Resample scales src to exactly w x h with Catmull-Rom filtering. The
// texture is stretched across the plane, so aspect is not preserved.
func Resample(src image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// placeholderHues gives each slot a distinct base hue in degrees.
var placeholderHues = [imageCount]float64{12, 165, 215, 285}

// Placeholder draws a diagonal two-tone gradient with stripes in the slot's
// hue, so the four textures are distinguishable without any assets.
func Placeholder(img Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	hue := placeholderHues[int(img)%imageCount]
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := (float64(x)/float64(max(w-1, 1)) + float64(y)/float64(max(h-1, 1))) / 2
			l := 0.35 + 0.3*t
			if (x+y)/24%2 == 0 {
				l += 0.06
			}
			dst.SetNRGBA(x, y, hsl(hue+40*t, 0.65, l))
		}
	}
	return dst
}

// hsl converts hue (degrees), saturation and lightness in [0, 1] to an
// opaque color.
func hsl(h, s, l float64) color.NRGBA {
	h = math.Mod(h, 360) / 60
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h, 2)-1))
	var r, g, b float64
	switch int(h) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := l - c/2
	return color.NRGBA{
		R: uint8(clamp01(r+m) * 255),
		G: uint8(clamp01(g+m) * 255),
		B: uint8(clamp01(b+m) * 255),
		A: 255,
	}
}
