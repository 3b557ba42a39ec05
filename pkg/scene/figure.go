package scene

import (
	"image/color"

	"github.com/philipparndt/gowire/pkg/geometry"
)

// Mesh describes the reference geometry of a figure: model-space vertices,
// edges as vertex index pairs and optional faces with fill colors.
// A Mesh is fixed at construction time and shared read-only by the figure.
type Mesh struct {
	Vertices   []geometry.Vector3
	Edges      [][2]int
	Faces      [][]int
	FaceColors []color.RGBA
}

// Figure is a placeable instance of a mesh. It keeps the reference
// geometry untouched and derives the current world-space vertices from it
// whenever yaw, pitch or position change. The derived vertices are always
// recomputed from the base mesh, never from their own previous values.
type Figure struct {
	Name string

	mesh     Mesh
	center   geometry.Vector3
	yaw      float64
	pitch    float64
	position geometry.Vector3

	vertices []geometry.Vector3
}

// NewFigure creates a figure from a mesh, rotating about center and
// translated to position
func NewFigure(mesh Mesh, center, position geometry.Vector3) *Figure {
	f := &Figure{
		mesh:     mesh,
		center:   center,
		position: position,
		vertices: make([]geometry.Vector3, len(mesh.Vertices)),
	}
	f.updateTransform()
	return f
}

// updateTransform recomputes the world-space vertices from the base mesh:
// yaw about the Y axis through the pivot, then pitch about the X axis
// through the pivot, then the world translation
func (f *Figure) updateTransform() {
	for i, base := range f.mesh.Vertices {
		v := geometry.RotateY(base, f.center, f.yaw)
		v = geometry.RotateX(v, f.center, f.pitch)
		f.vertices[i] = v.Add(f.position)
	}
}

// Move translates the figure by the given world-space deltas
func (f *Figure) Move(dx, dy, dz float64) {
	f.position = f.position.Add(geometry.NewVector3(dx, dy, dz))
	f.updateTransform()
}

// Rotate adds to the figure's yaw and pitch (radians)
func (f *Figure) Rotate(dYaw, dPitch float64) {
	f.yaw += dYaw
	f.pitch += dPitch
	f.updateTransform()
}

// Vertices returns the current world-space vertices. The slice is owned by
// the figure and is replaced wholesale on the next transform update.
func (f *Figure) Vertices() []geometry.Vector3 {
	return f.vertices
}

// Edges returns the edge index pairs of the underlying mesh
func (f *Figure) Edges() [][2]int {
	return f.mesh.Edges
}

// Faces returns the face index lists of the underlying mesh
func (f *Figure) Faces() [][]int {
	return f.mesh.Faces
}

// FaceColor returns the fill color of face i, or an opaque gray when the
// mesh carries no color for it
func (f *Figure) FaceColor(i int) color.RGBA {
	if i < 0 || i >= len(f.mesh.FaceColors) {
		return color.RGBA{R: 128, G: 128, B: 128, A: 255}
	}
	return f.mesh.FaceColors[i]
}

// Position returns the world-space translation of the figure
func (f *Figure) Position() geometry.Vector3 {
	return f.position
}

// Yaw returns the current yaw angle in radians
func (f *Figure) Yaw() float64 {
	return f.yaw
}

// Pitch returns the current pitch angle in radians
func (f *Figure) Pitch() float64 {
	return f.pitch
}

// Pivot returns the model-space rotation center
func (f *Figure) Pivot() geometry.Vector3 {
	return f.center
}

// Center returns the mean of the current world-space vertices
func (f *Figure) Center() geometry.Vector3 {
	if len(f.vertices) == 0 {
		return f.position
	}
	sum := geometry.Vector3{}
	for _, v := range f.vertices {
		sum = sum.Add(v)
	}
	return sum.Mul(1.0 / float64(len(f.vertices)))
}

// Bounds returns the axis-aligned bounding box of the current vertices
func (f *Figure) Bounds() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, v := range f.vertices {
		bbox.Extend(v)
	}
	return bbox
}
