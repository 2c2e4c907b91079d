package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/chewxy/math32"
	xdraw "golang.org/x/image/draw"

	"github.com/katalvlaran/eikonal/field"
	"github.com/katalvlaran/eikonal/grid"
)

// ErrBadSize indicates a non-positive output size for Scale.
var ErrBadSize = errors.New("render: output size must be positive")

// Palette maps a distance d to a colour. limit is the floor of the largest
// finite distance in the field (0 when there is none).
type Palette func(d, limit float32) color.RGBA

// Falloff paints the green channel as floor(256 / (1 + k·d)), saturated to
// [0,255]. Seeds are full green, distance fades towards black; +Inf and NaN
// are black.
func Falloff(k float32) Palette {
	return func(d, _ float32) color.RGBA {
		return color.RGBA{G: saturate(math32.Floor(256 / (1 + k*d))), A: 0xff}
	}
}

// Gradient blends linearly from near (d = 0) to far (d = limit).
// Distances beyond limit, +Inf and NaN get far.
func Gradient(near, far color.RGBA) Palette {
	return func(d, limit float32) color.RGBA {
		if !(d < limit) || limit <= 0 {
			return far
		}
		t := d / limit
		lerp := func(a, b uint8) uint8 {
			return saturate(math32.Floor(float32(a)*(1-t) + float32(b)*t + 0.5))
		}

		return color.RGBA{
			R: lerp(near.R, far.R),
			G: lerp(near.G, far.G),
			B: lerp(near.B, far.B),
			A: lerp(near.A, far.A),
		}
	}
}

// saturate clamps v into [0,255]; NaN maps to 0.
func saturate(v float32) uint8 {
	switch {
	case !(v > 0):
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}

// Image paints one pixel per cell of f. Pixel (x, y) shows cell
// (x, H−1−y), so increasing domain y points up.
// Complexity: O(W×H).
func Image(f *field.Field, p Palette) *image.RGBA {
	g := f.Grid
	limit := math32.Floor(field.Summarize(f).MaxFinite)
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			d, _ := f.At(grid.Cell{Col: x, Row: g.Height - 1 - y})
			img.SetRGBA(x, y, p(d, limit))
		}
	}

	return img
}

// Scale resamples src to w×h with Catmull-Rom interpolation.
func Scale(src image.Image, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrBadSize, w, h)
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	return dst, nil
}

// WritePNG encodes img as PNG to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}

	return nil
}

// SavePNG writes img to the file at path, creating or truncating it.
func SavePNG(path string, img image.Image) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %q: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("render: close %q: %w", path, cerr)
		}
	}()

	return WritePNG(out, img)
}
