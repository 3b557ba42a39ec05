package viewer

import (
	"math"
	"testing"

	"github.com/philipparndt/gowire/pkg/geometry"
)

func TestProjectNormOnAxis(t *testing.T) {
	cam := NewCamera(geometry.Vector3{})
	cam.FOV = math.Pi / 2

	for _, z := range []float64{1, 10, 400, 99999} {
		p, ok := cam.ProjectNorm(geometry.NewVector3(0, 0, z), 1)
		if !ok {
			t.Fatalf("on-axis point at z=%v should be visible", z)
		}
		if math.Abs(p.X) > 1e-12 || math.Abs(p.Y) > 1e-12 {
			t.Errorf("on-axis point at z=%v should project to center, got (%v, %v)", z, p.X, p.Y)
		}
		if math.Abs(p.Depth-z) > 1e-12 {
			t.Errorf("expected depth %v, got %v", z, p.Depth)
		}
	}
}

func TestProjectNormKnownPoint(t *testing.T) {
	// With a 90 degree field of view tan(fov/2) is 1, so a point as far off
	// axis as it is deep lands exactly on the edge of the unit square.
	cam := NewCamera(geometry.Vector3{})
	cam.FOV = math.Pi / 2

	p, ok := cam.ProjectNorm(geometry.NewVector3(5, 5, 5), 1)
	if !ok {
		t.Fatal("point should be visible")
	}
	if math.Abs(p.X-1) > 1e-12 || math.Abs(p.Y-1) > 1e-12 {
		t.Errorf("expected (1, 1), got (%v, %v)", p.X, p.Y)
	}
}

func TestProjectNormAspectDividesX(t *testing.T) {
	cam := NewCamera(geometry.Vector3{})
	cam.FOV = math.Pi / 2

	p, _ := cam.ProjectNorm(geometry.NewVector3(4, 0, 4), 2)
	if math.Abs(p.X-0.5) > 1e-12 {
		t.Errorf("aspect 2 should halve normalized X, got %v", p.X)
	}
}

func TestProjectNormDepthRejection(t *testing.T) {
	cam := NewCamera(geometry.Vector3{})
	cam.Near = 0.1
	cam.Far = 1000

	cases := []struct {
		name string
		z    float64
	}{
		{"behind camera", -5},
		{"at camera", 0},
		{"inside near plane", 0.05},
		{"exactly near", 0.1},
		{"exactly far", 1000},
		{"beyond far", 5000},
	}

	for _, tc := range cases {
		if _, ok := cam.ProjectNorm(geometry.NewVector3(0, 0, tc.z), 1); ok {
			t.Errorf("%s (z=%v): expected rejection", tc.name, tc.z)
		}
	}
}

func TestProjectNormVertexAtCameraPosition(t *testing.T) {
	cam := NewCamera(geometry.NewVector3(10, 20, 30))

	// Zero camera-relative depth must reject cleanly, never divide.
	if _, ok := cam.ProjectNorm(geometry.NewVector3(10, 20, 30), 1); ok {
		t.Error("vertex at the camera position should not be visible")
	}
}

func TestProjectNormNonFiniteInput(t *testing.T) {
	cam := NewCamera(geometry.Vector3{})

	if _, ok := cam.ProjectNorm(geometry.NewVector3(math.NaN(), 0, 10), 1); ok {
		t.Error("NaN input should be rejected, not drawn")
	}
	if _, ok := cam.ProjectNorm(geometry.NewVector3(math.Inf(1), 0, 10), 1); ok {
		t.Error("Inf input should be rejected, not drawn")
	}
}

func TestProjectNormWithYaw(t *testing.T) {
	// Yaw of +90 degrees turns the camera to look along +X, so a point on
	// the +X axis moves to the screen center.
	cam := NewCamera(geometry.Vector3{})
	cam.Yaw = math.Pi / 2

	p, ok := cam.ProjectNorm(geometry.NewVector3(50, 0, 0), 1)
	if !ok {
		t.Fatal("point along the view direction should be visible")
	}
	if math.Abs(p.X) > 1e-9 || math.Abs(p.Y) > 1e-9 {
		t.Errorf("expected screen center, got (%v, %v)", p.X, p.Y)
	}
	if math.Abs(p.Depth-50) > 1e-9 {
		t.Errorf("expected depth 50, got %v", p.Depth)
	}

	// The original forward direction is now off axis.
	if _, ok := cam.ProjectNorm(geometry.NewVector3(0, 0, 50), 1); ok {
		p, _ = cam.ProjectNorm(geometry.NewVector3(0, 0, 50), 1)
		if math.Abs(p.X) < 1e-9 && math.Abs(p.Y) < 1e-9 {
			t.Error("point off the rotated view axis should not project to center")
		}
	}
}

func TestProjectNormWithPitch(t *testing.T) {
	// A point along the camera's own forward direction always lands on
	// center, whatever the pitch.
	cam := NewCamera(geometry.Vector3{})
	cam.Pitch = math.Pi / 4

	d := 100.0
	p, ok := cam.ProjectNorm(cam.Forward().Mul(d), 1)
	if !ok {
		t.Fatal("point along the tilted view direction should be visible")
	}
	if math.Abs(p.X) > 1e-9 || math.Abs(p.Y) > 1e-9 {
		t.Errorf("expected screen center, got (%v, %v)", p.X, p.Y)
	}
}

func TestRotatePitchClamped(t *testing.T) {
	cam := NewCamera(geometry.Vector3{})

	cam.RotatePitch(10)
	if cam.Pitch >= math.Pi/2 {
		t.Errorf("pitch should be clamped below 90 degrees, got %v", cam.Pitch)
	}
	cam.RotatePitch(-20)
	if cam.Pitch <= -math.Pi/2 {
		t.Errorf("pitch should be clamped above -90 degrees, got %v", cam.Pitch)
	}
}

func TestMoveForward(t *testing.T) {
	cam := NewCamera(geometry.Vector3{})

	cam.MoveForward(10)
	if !vectorsClose(cam.Position, geometry.NewVector3(0, 0, 10), 1e-12) {
		t.Errorf("forward move with no rotation should advance +Z, got %v", cam.Position)
	}

	cam = NewCamera(geometry.Vector3{})
	cam.Yaw = math.Pi / 2
	cam.MoveForward(10)
	if !vectorsClose(cam.Position, geometry.NewVector3(10, 0, 0), 1e-9) {
		t.Errorf("forward move with yaw 90 should advance +X, got %v", cam.Position)
	}
}

func TestMoveSideways(t *testing.T) {
	cam := NewCamera(geometry.Vector3{})

	cam.MoveSideways(5)
	if !vectorsClose(cam.Position, geometry.NewVector3(5, 0, 0), 1e-12) {
		t.Errorf("sideways move with no rotation should advance +X, got %v", cam.Position)
	}
}

func vectorsClose(a, b geometry.Vector3, tol float64) bool {
	return math.Abs(a.X-b.X) < tol &&
		math.Abs(a.Y-b.Y) < tol &&
		math.Abs(a.Z-b.Z) < tol
}
