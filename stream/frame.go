package stream

import (
	"encoding/binary"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/flipbook/scene"
)

type cell struct {
	colour   colorful.Color
	rotation float64
}

// Frame is a snapshot of every mesh's colour and rotation.
type Frame struct {
	cells []cell
}

// NewFrame captures the current state of s, left page first.
func NewFrame(s *scene.Scene) *Frame {
	meshes := s.Meshes()
	f := new(Frame)
	f.cells = make([]cell, len(meshes))
	for i, m := range meshes {
		f.cells[i] = cell{colour: m.Colour, rotation: m.Rotation.Y}
	}
	return f
}

// Len returns the number of meshes in the frame.
func (f *Frame) Len() int {
	return len(f.cells)
}

// MarshalBinary converts a Frame into binary data: a little endian uint16 mesh count,
// then per mesh R, G, B and the rotation as a little endian int16 in milliradians.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 2, (len(f.cells)*5)+2)
	binary.LittleEndian.PutUint16(data, uint16(len(f.cells)))
	for _, c := range f.cells {
		r, g, b := c.colour.Clamped().RGB255()
		mrad := math.Round(c.rotation * 1000)
		if mrad > math.MaxInt16 {
			mrad = math.MaxInt16
		} else if mrad < math.MinInt16 {
			mrad = math.MinInt16
		}
		var rot [2]byte
		binary.LittleEndian.PutUint16(rot[:], uint16(int16(mrad)))
		data = append(data, r, g, b, rot[0], rot[1])
	}

	return data, nil
}
