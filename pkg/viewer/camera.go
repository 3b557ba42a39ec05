package viewer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/philipparndt/gowire/pkg/geometry"
)

// Camera is a perspective viewpoint into the world. It looks along +Z when
// yaw and pitch are zero. FOV is the vertical field of view in radians;
// Near and Far bound the visible depth range.
type Camera struct {
	Position geometry.Vector3
	Yaw      float64
	Pitch    float64
	FOV      float64
	Near     float64
	Far      float64
}

// NewCamera creates a camera at the given position with sensible defaults
// for a scene a few hundred units deep
func NewCamera(position geometry.Vector3) *Camera {
	return &Camera{
		Position: position,
		FOV:      math.Pi / 3, // 60 degrees
		Near:     0.1,
		Far:      1e6,
	}
}

// Projection is a projected vertex in normalized device coordinates, with
// the camera-relative depth kept for sorting and shading.
type Projection struct {
	X     float64
	Y     float64
	Depth float64
}

// ProjectNorm projects a world vertex into normalized device coordinates.
// The second return value is false when the vertex is not visible: behind
// the near plane, beyond the far plane, or numerically degenerate.
//
// The camera does not clip to the [-1, 1] square here; the drawing surface
// clips per pixel instead, so that zoom factors below 1 can still show
// geometry outside the nominal field of view.
func (c *Camera) ProjectNorm(v geometry.Vector3, aspect float64) (Projection, bool) {
	rel := v.Sub(c.Position)

	if c.Yaw != 0 || c.Pitch != 0 {
		// Express the point in the camera's rotated frame: undo the yaw
		// first, then the pitch.
		view := mgl64.Rotate3DX(-c.Pitch).Mul3(mgl64.Rotate3DY(-c.Yaw))
		r := view.Mul3x1(mgl64.Vec3{rel.X, rel.Y, rel.Z})
		rel = geometry.NewVector3(r.X(), r.Y(), r.Z())
	}

	if rel.Z <= c.Near || rel.Z >= c.Far {
		return Projection{}, false
	}

	focal := rel.Z * math.Tan(c.FOV/2)
	p := Projection{
		X:     rel.X / focal / aspect,
		Y:     rel.Y / focal,
		Depth: rel.Z,
	}

	if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
		return Projection{}, false
	}
	return p, true
}

// maxPitch keeps the camera just short of looking straight up or down,
// where yaw and roll become indistinguishable.
const maxPitch = math.Pi/2 - 0.01

// RotateYaw turns the camera around its vertical axis
func (c *Camera) RotateYaw(delta float64) {
	c.Yaw += delta
}

// RotatePitch tilts the camera, clamped to just under +/-90 degrees
func (c *Camera) RotatePitch(delta float64) {
	c.Pitch += delta
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
}

// Forward returns the camera's view direction in world space
func (c *Camera) Forward() geometry.Vector3 {
	dir := mgl64.Rotate3DY(c.Yaw).Mul3(mgl64.Rotate3DX(c.Pitch)).Mul3x1(mgl64.Vec3{0, 0, 1})
	return geometry.NewVector3(dir.X(), dir.Y(), dir.Z())
}

// MoveForward moves the camera along its view direction
func (c *Camera) MoveForward(distance float64) {
	c.Position = c.Position.Add(c.Forward().Mul(distance))
}

// MoveSideways strafes the camera along its horizontal right axis
func (c *Camera) MoveSideways(distance float64) {
	right := mgl64.Rotate3DY(c.Yaw).Mul3x1(mgl64.Vec3{1, 0, 0})
	c.Position = c.Position.Add(geometry.NewVector3(right.X(), right.Y(), right.Z()).Mul(distance))
}
