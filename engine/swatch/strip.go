// Package swatch renders the shade strip: one triangle swatch per
// illumination level, darkest first. Faces pick a swatch by index
// instead of blending colours every frame.
package swatch

import (
	"image"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

const (
	DefaultWidth  = 60
	DefaultHeight = 200

	hue        = 338
	maxLight   = 0.5
	saturation = 1.0
)

// Strip is a row of equally sized swatches
type Strip struct {
	Image        *image.RGBA
	Steps        int
	SwatchWidth  int
	SwatchHeight int
}

// Lightness is the HSL lightness of swatch index, in [0, 0.5)
func Lightness(index, steps int) float64 {
	if steps <= 0 {
		return 0
	}
	return float64(index) / float64(steps) * maxLight
}

// Color is the fill colour of swatch index
func Color(index, steps int) colorful.Color {
	return colorful.Hsl(hue, saturation, Lightness(index, steps)).Clamped()
}

// Render draws a strip of steps swatches, each w×h with the triangle's
// apex at the top centre and its base along the bottom edge.
func Render(steps, w, h int) *Strip {
	if steps < 1 {
		steps = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, steps*w, h))
	r := vector.NewRasterizer(w, h)

	for i := 0; i < steps; i++ {
		r.Reset(w, h)
		r.MoveTo(0, float32(h))
		r.LineTo(float32(w)/2, 0)
		r.LineTo(float32(w), float32(h))
		r.ClosePath()

		dst := image.Rect(i*w, 0, (i+1)*w, h)
		r.Draw(img, dst, image.NewUniform(Color(i, steps)), image.Point{})
	}

	return &Strip{Image: img, Steps: steps, SwatchWidth: w, SwatchHeight: h}
}

// Scaled resamples the strip so each swatch is w×h
func (s *Strip) Scaled(w, h int) *Strip {
	if w == s.SwatchWidth && h == s.SwatchHeight {
		return s
	}
	img := image.NewRGBA(image.Rect(0, 0, s.Steps*w, h))
	xdraw.CatmullRom.Scale(img, img.Bounds(), s.Image, s.Image.Bounds(), xdraw.Over, nil)
	return &Strip{Image: img, Steps: s.Steps, SwatchWidth: w, SwatchHeight: h}
}

// Clamp limits index to the strip
func (s *Strip) Clamp(index int) int {
	if index < 0 {
		return 0
	}
	if index >= s.Steps {
		return s.Steps - 1
	}
	return index
}

// Rect is the bounds of swatch index, clamped into the strip
func (s *Strip) Rect(index int) image.Rectangle {
	x := s.Clamp(index) * s.SwatchWidth
	return image.Rect(x, 0, x+s.SwatchWidth, s.SwatchHeight)
}

// At samples the swatch colour at the centre of its triangle
func (s *Strip) At(index int) color.Color {
	r := s.Rect(index)
	return s.Image.At(r.Min.X+s.SwatchWidth/2, r.Min.Y+s.SwatchHeight*2/3)
}
