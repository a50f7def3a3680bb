package scene

import (
	"math"
	"math/rand"

	"github.com/matt-g-everett/flipbook/util"
)

// PaperAspect is the height to width ratio of ISO paper.
var PaperAspect = math.Sqrt2

// PageConfig describes the grid of boxes that make up one page.
type PageConfig struct {
	XResolution int     `yaml:"xResolution"`
	YResolution int     `yaml:"yResolution"`
	Width       float64 `yaml:"width"`
	Thickness   float64 `yaml:"thickness"`
	Spacing     float64 `yaml:"spacing"`
}

// Height derives the page height from its width.
func (c PageConfig) Height() float64 {
	return c.Width * PaperAspect
}

// Page is the set of meshes composing one visual page.
type Page struct {
	TopLeft Vec3
	Meshes  []*Box
}

// NewPage tiles a Width x Height rectangle, anchored at topLeft, with
// XResolution x YResolution boxes of random colours.
func NewPage(cfg PageConfig, topLeft Vec3, rng *rand.Rand) *Page {
	p := new(Page)
	p.TopLeft = topLeft

	if cfg.XResolution <= 0 || cfg.YResolution <= 0 {
		return p
	}

	cellW := cfg.Width / float64(cfg.XResolution)
	cellH := cfg.Height() / float64(cfg.YResolution)
	size := V3(cellW, cellH, cfg.Thickness)

	p.Meshes = make([]*Box, 0, cfg.XResolution*cfg.YResolution)
	for y := 0; y < cfg.YResolution; y++ {
		for x := 0; x < cfg.XResolution; x++ {
			centre := V3(
				topLeft.X+(float64(x)+0.5)*cellW,
				topLeft.Y-(float64(y)+0.5)*cellH,
				topLeft.Z,
			)
			p.Meshes = append(p.Meshes, NewBox(centre, size, util.RandomColour(rng)))
		}
	}

	return p
}

// SetRotationY applies the same rotation to every mesh on the page.
func (p *Page) SetRotationY(angle float64) {
	for _, m := range p.Meshes {
		m.SetRotationY(angle)
	}
}

// FlipAngle maps flip progress onto the page rotation.
func FlipAngle(progress float64) float64 {
	return math.Pi * progress
}
