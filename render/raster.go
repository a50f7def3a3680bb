// Package render rasterizes a notebook scene without a window.
package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/flipbook/scene"
	"golang.org/x/image/vector"
)

// Rasterizer fills the projected faces of a scene into an RGBA image.
//
// Create it once and reuse it; the image is reallocated only when the size changes.
type Rasterizer struct {
	Width  int
	Height int

	img *image.RGBA
	z   *vector.Rasterizer
}

// NewRasterizer creates a Rasterizer for a w x h target.
func NewRasterizer(w, h int) *Rasterizer {
	r := new(Rasterizer)
	r.Width = w
	r.Height = h
	return r
}

// Image returns the most recently rendered frame, or nil before the first Submit.
func (r *Rasterizer) Image() *image.RGBA {
	return r.img
}

// Submit renders one frame of the scene.
func (r *Rasterizer) Submit(s *scene.Scene) error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("invalid raster size %dx%d", r.Width, r.Height)
	}
	if r.img == nil || r.img.Bounds().Dx() != r.Width || r.img.Bounds().Dy() != r.Height {
		r.img = image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	}
	if r.z == nil {
		r.z = vector.NewRasterizer(r.Width, r.Height)
	}

	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(s.Background.Clamped()), image.Point{}, draw.Src)

	for _, poly := range s.Polygons(r.Width, r.Height) {
		r.fill(poly.Points, poly.Colour)
	}
	return nil
}

func (r *Rasterizer) fill(points [4][2]float64, c colorful.Color) {
	r.z.Reset(r.Width, r.Height)
	r.z.DrawOp = draw.Over
	r.z.MoveTo(float32(points[0][0]), float32(points[0][1]))
	for _, p := range points[1:] {
		r.z.LineTo(float32(p[0]), float32(p[1]))
	}
	r.z.ClosePath()
	r.z.Draw(r.img, r.img.Bounds(), image.NewUniform(c.Clamped()), image.Point{})
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return f.Close()
}
