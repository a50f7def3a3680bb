package scene

import "github.com/lucasb-eyer/go-colorful"

// Box is a rectangular prism mesh with its own transform.
type Box struct {
	Position Vec3 // centre
	Size     Vec3
	Rotation Vec3 // Euler angles, radians
	Colour   colorful.Color
}

// NewBox creates a Box centred on position.
func NewBox(position, size Vec3, colour colorful.Color) *Box {
	b := new(Box)
	b.Position = position
	b.Size = size
	b.Colour = colour
	return b
}

// SetRotationY turns the box about its vertical axis.
func (b *Box) SetRotationY(angle float64) {
	b.Rotation.Y = angle
}

// Corners returns the eight corners in world space.
func (b *Box) Corners() [8]Vec3 {
	hx, hy, hz := b.Size.X/2, b.Size.Y/2, b.Size.Z/2
	local := [8]Vec3{
		{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {-hx, hy, -hz},
		{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz},
	}
	var out [8]Vec3
	for i, p := range local {
		out[i] = rotate(p, b.Rotation).Add(b.Position)
	}
	return out
}

// Corner indices of each face.
var boxFaces = [6][4]int{
	{4, 5, 6, 7}, // front  (+z)
	{1, 0, 3, 2}, // back   (-z)
	{5, 1, 2, 6}, // right  (+x)
	{0, 4, 7, 3}, // left   (-x)
	{7, 6, 2, 3}, // top    (+y)
	{0, 1, 5, 4}, // bottom (-y)
}

// Face is one quad of a Box in world space.
type Face struct {
	Points [4]Vec3
	Normal Vec3
	Centre Vec3
}

// Faces returns the six faces in world space with outward normals.
func (b *Box) Faces() [6]Face {
	corners := b.Corners()
	var faces [6]Face
	for i, idx := range boxFaces {
		var f Face
		for j, k := range idx {
			f.Points[j] = corners[k]
			f.Centre = f.Centre.Add(corners[k])
		}
		f.Centre = f.Centre.Mul(0.25)
		f.Normal = Normalize(f.Centre.Sub(b.Position))
		faces[i] = f
	}
	return faces
}
