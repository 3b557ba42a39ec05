package geometry

import "math"

// RotateY rotates p about the Y axis through pivot by angle radians.
// The Y coordinate is unchanged; the (X, Z) pair is rotated relative to
// the pivot and re-translated. The convention matches mathgl's
// right-handed Rotate3DY matrix.
func RotateY(p, pivot Vector3, angle float64) Vector3 {
	sin, cos := math.Sincos(angle)
	dx := p.X - pivot.X
	dz := p.Z - pivot.Z
	return Vector3{
		X: pivot.X + dx*cos + dz*sin,
		Y: p.Y,
		Z: pivot.Z - dx*sin + dz*cos,
	}
}

// RotateX rotates p about the X axis through pivot by angle radians.
// The X coordinate is unchanged; the (Y, Z) pair is rotated relative to
// the pivot and re-translated.
func RotateX(p, pivot Vector3, angle float64) Vector3 {
	sin, cos := math.Sincos(angle)
	dy := p.Y - pivot.Y
	dz := p.Z - pivot.Z
	return Vector3{
		X: p.X,
		Y: pivot.Y + dy*cos - dz*sin,
		Z: pivot.Z + dy*sin + dz*cos,
	}
}
