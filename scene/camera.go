package scene

import "math"

// Camera is a perspective camera looking down -Z.
type Camera struct {
	Position Vec3
	FOVY     float64 // radians
	Near     float64
}

// Project maps a world point to screen coordinates for a w x h target.
// depth is the distance in front of the camera; ok is false behind the near plane.
func (c Camera) Project(p Vec3, w, h int) (x, y, depth float64, ok bool) {
	r := p.Sub(c.Position)
	depth = -r.Z
	near := c.Near
	if near <= 0 {
		near = 0.05
	}
	if depth <= near {
		return 0, 0, depth, false
	}

	fov := c.FOVY
	if fov <= 0 {
		fov = 1.0
	}
	f := (float64(h) / 2) / math.Tan(fov/2)
	x = float64(w)/2 + r.X*f/depth
	y = float64(h)/2 - r.Y*f/depth
	return x, y, depth, true
}
