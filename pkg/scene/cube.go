package scene

import (
	"image/color"

	"github.com/philipparndt/gowire/pkg/geometry"
)

// NewCube creates a cube figure with the given edge length, centered on its
// own pivot and placed at position. Faces are filled with shade variants of
// the base color so adjacent faces stay distinguishable without a lighting
// model.
func NewCube(size float64, position geometry.Vector3, base color.RGBA) *Figure {
	h := size / 2

	mesh := Mesh{
		Vertices: []geometry.Vector3{
			{X: -h, Y: -h, Z: -h},
			{X: h, Y: -h, Z: -h},
			{X: h, Y: h, Z: -h},
			{X: -h, Y: h, Z: -h},
			{X: -h, Y: -h, Z: h},
			{X: h, Y: -h, Z: h},
			{X: h, Y: h, Z: h},
			{X: -h, Y: h, Z: h},
		},
		Edges: [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0}, // back face
			{4, 5}, {5, 6}, {6, 7}, {7, 4}, // front face
			{0, 4}, {1, 5}, {2, 6}, {3, 7}, // connecting edges
		},
		Faces: [][]int{
			{0, 1, 2, 3}, // back
			{5, 4, 7, 6}, // front
			{4, 0, 3, 7}, // left
			{1, 5, 6, 2}, // right
			{3, 2, 6, 7}, // top
			{4, 5, 1, 0}, // bottom
		},
	}

	shades := []float64{1.0, 0.85, 0.7, 0.7, 0.9, 0.55}
	mesh.FaceColors = make([]color.RGBA, len(mesh.Faces))
	for i, s := range shades {
		mesh.FaceColors[i] = shade(base, s)
	}

	cube := NewFigure(mesh, geometry.Vector3{}, position)
	cube.Name = "cube"
	return cube
}

// shade scales the RGB channels of a color, keeping alpha
func shade(c color.RGBA, factor float64) color.RGBA {
	scale := func(v uint8) uint8 {
		s := float64(v) * factor
		if s > 255 {
			s = 255
		}
		return uint8(s)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}
