package render

import (
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/matt-g-everett/flipbook/scene"
)

func testScene() *scene.Scene {
	cfg := scene.PageConfig{XResolution: 3, YResolution: 4, Width: 2, Thickness: 0.02, Spacing: 0.1}
	return scene.Compose(cfg, scene.V3(-2.05, 1.4, 0), rand.New(rand.NewSource(7)))
}

func TestSubmitDrawsPages(t *testing.T) {
	s := testScene()
	r := NewRasterizer(160, 120)
	if err := r.Submit(s); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	img := r.Image()
	if img == nil {
		t.Fatalf("no image after Submit")
	}

	br, bg, bb := s.Background.Clamped().RGB255()
	corner := img.RGBAAt(0, 0)
	if corner.R != br || corner.G != bg || corner.B != bb {
		t.Fatalf("corner %v is not background", corner)
	}

	// (50, 45) falls inside a cell of the left page.
	p := img.RGBAAt(50, 45)
	if p.R == br && p.G == bg && p.B == bb {
		t.Fatalf("left page not drawn")
	}
}

func TestSubmitInvalidSize(t *testing.T) {
	r := NewRasterizer(0, 10)
	if err := r.Submit(testScene()); err == nil {
		t.Fatalf("expected error for empty raster")
	}
}

func TestWritePNG(t *testing.T) {
	r := NewRasterizer(64, 48)
	if err := r.Submit(testScene()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := WritePNG(path, r.Image()); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 48 {
		t.Fatalf("snapshot size %v", img.Bounds())
	}
}
