// Package window shows the notebook in a desktop window.
package window

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/matt-g-everett/flipbook/desk"
)

// Run opens a window that steps the desk every tick and draws it every frame.
// It blocks until the window closes.
func Run(d *desk.Desk) error {
	cfg := d.Config()
	g := &game{desk: d, width: cfg.Window.Width, height: cfg.Window.Height}

	tps := cfg.Window.TPS
	if tps <= 0 {
		tps = 60
	}
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetTPS(tps)
	return ebiten.RunGame(g)
}

type game struct {
	desk   *desk.Desk
	width  int
	height int

	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
	touches  []ebiten.TouchID
}

func (g *game) pressed() bool {
	b := g.desk.Button()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if b.Contains(ebiten.CursorPosition()) {
			return true
		}
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		if b.Contains(ebiten.TouchPosition(id)) {
			return true
		}
	}
	return false
}

func (g *game) Update() error {
	if g.pressed() {
		g.desk.Button().Press()
	}
	g.desk.Step(time.Now())
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.white == nil {
		g.white = ebiten.NewImage(3, 3)
		g.white.Fill(color.White)
	}
	src := g.white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	s := g.desk.Scene()
	screen.Fill(s.Background.Clamped())

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	g.vertices = g.vertices[:0]
	g.indices = g.indices[:0]
	for _, poly := range s.Polygons(w, h) {
		if len(g.vertices)+4 > math.MaxUint16 {
			screen.DrawTriangles(g.vertices, g.indices, src, nil)
			g.vertices = g.vertices[:0]
			g.indices = g.indices[:0]
		}

		c := poly.Colour.Clamped()
		base := uint16(len(g.vertices))
		for _, p := range poly.Points {
			g.vertices = append(g.vertices, ebiten.Vertex{
				DstX:   float32(p[0]),
				DstY:   float32(p[1]),
				SrcX:   1,
				SrcY:   1,
				ColorR: float32(c.R),
				ColorG: float32(c.G),
				ColorB: float32(c.B),
				ColorA: 1,
			})
		}
		g.indices = append(g.indices, base, base+1, base+2, base, base+2, base+3)
	}
	if len(g.indices) > 0 {
		screen.DrawTriangles(g.vertices, g.indices, src, nil)
	}

	b := g.desk.Button()
	r := b.Bounds
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()),
		color.RGBA{0x40, 0x60, 0xa0, 0xff}, false)
	ebitenutil.DebugPrintAt(screen, b.Label, r.Min.X+12, r.Min.Y+8)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
