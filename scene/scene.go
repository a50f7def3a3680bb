package scene

import (
	"math/rand"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Light is an ambient term plus one directional light.
type Light struct {
	Ambient   float64 // 0..1
	Dir       Vec3    // direction towards the scene
	DirAmount float64 // 0..1
}

// Intensity returns the flat shading factor for a surface normal.
func (l Light) Intensity(n Vec3) float64 {
	amb := clamp01(l.Ambient)
	ld := Normalize(l.Dir)
	if ld == (Vec3{}) {
		return amb
	}
	d := Dot(n, ld.Mul(-1))
	if d < 0 {
		d = 0
	}
	return clamp01(amb + d*clamp01(l.DirAmount))
}

// Scene holds the two pages of the notebook and how to look at them.
type Scene struct {
	Camera     Camera
	Light      Light
	Background colorful.Color

	Left  *Page
	Right *Page
}

// Compose builds both pages once. The left page's top-left corner sits at
// topLeft and the right page follows it after cfg.Spacing.
func Compose(cfg PageConfig, topLeft Vec3, rng *rand.Rand) *Scene {
	s := new(Scene)
	s.Left = NewPage(cfg, topLeft, rng)
	s.Right = NewPage(cfg, topLeft.Add(V3(cfg.Width+cfg.Spacing, 0, 0)), rng)

	s.Camera = Camera{
		Position: V3(0, 0, 5),
		FOVY:     0.9,
		Near:     0.1,
	}
	s.Light = Light{
		Ambient:   0.35,
		Dir:       Normalize(V3(-1, -1, -2)),
		DirAmount: 0.65,
	}
	s.Background, _ = colorful.Hex("#202028")

	return s
}

// Meshes returns every mesh in the scene, left page first.
func (s *Scene) Meshes() []*Box {
	out := make([]*Box, 0, len(s.Left.Meshes)+len(s.Right.Meshes))
	out = append(out, s.Left.Meshes...)
	out = append(out, s.Right.Meshes...)
	return out
}

// Polygon is a projected, shaded face ready to fill.
type Polygon struct {
	Points [4][2]float64
	Depth  float64
	Colour colorful.Color
}

// Polygons projects every camera-facing box face onto a w x h target and
// returns them farthest first.
func (s *Scene) Polygons(w, h int) []Polygon {
	meshes := s.Meshes()
	out := make([]Polygon, 0, len(meshes)*3)
	for _, m := range meshes {
		for _, f := range m.Faces() {
			// Faces turned away from the camera are hidden by the rest of the box.
			if Dot(f.Normal, f.Centre.Sub(s.Camera.Position)) >= 0 {
				continue
			}

			var poly Polygon
			visible := true
			for i, p := range f.Points {
				x, y, _, ok := s.Camera.Project(p, w, h)
				if !ok {
					visible = false
					break
				}
				poly.Points[i] = [2]float64{x, y}
			}
			if !visible {
				continue
			}

			poly.Depth = Len(f.Centre.Sub(s.Camera.Position))
			black := colorful.Color{}
			poly.Colour = black.BlendRgb(m.Colour, s.Light.Intensity(f.Normal))
			out = append(out, poly)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Depth > out[j].Depth
	})
	return out
}
