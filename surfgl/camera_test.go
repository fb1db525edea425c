package surfgl

import (
	"math"
	"testing"
)

func TestDefaultCameraOrthonormal(t *testing.T) {
	c := DefaultCamera()
	for name, v := range map[string]Vec3{"right": c.Right, "up": c.Up, "forward": c.Forward} {
		if math.Abs(Len(v)-1) > 1e-6 {
			t.Fatalf("%s len=%v", name, Len(v))
		}
	}
	pairs := []struct {
		name string
		a, b Vec3
	}{
		{"right.up", c.Right, c.Up},
		{"right.forward", c.Right, c.Forward},
		{"up.forward", c.Up, c.Forward},
	}
	for _, p := range pairs {
		if d := Dot(p.a, p.b); math.Abs(d) > 1e-6 {
			t.Fatalf("%s=%v", p.name, d)
		}
	}
}

func TestDefaultCameraRightHanded(t *testing.T) {
	c := DefaultCamera()
	// right x up must point opposite to forward for a right-handed view basis
	// built as right = forward x ref, up = right x forward.
	n := Cross(c.Right, c.Up)
	if d := Dot(n, c.Forward); math.Abs(d+1) > 1e-9 {
		t.Fatalf("(right x up).forward=%v", d)
	}
}

func TestDefaultCameraPosition(t *testing.T) {
	c := DefaultCamera()
	if math.Abs(Len(c.Eye)-DefaultRadius) > 1e-9 {
		t.Fatalf("eye distance=%v", Len(c.Eye))
	}
	// theta=60 => z = r*cos(60) = 125.
	if math.Abs(c.Eye.Z-125) > 1e-9 {
		t.Fatalf("eye.z=%v", c.Eye.Z)
	}
	if c.Up.Z <= 0 {
		t.Fatalf("up should lean towards +Z, got %+v", c.Up)
	}
}

func TestCameraFallbackReference(t *testing.T) {
	// Looking straight down the Z axis would make cross(forward, Z) vanish.
	c := NewCamera(0, 0, 10)
	if math.Abs(Len(c.Right)-1) > 1e-9 || math.Abs(Len(c.Up)-1) > 1e-9 {
		t.Fatalf("degenerate basis: right=%+v up=%+v", c.Right, c.Up)
	}
	if math.Abs(Dot(c.Right, c.Forward)) > 1e-9 {
		t.Fatalf("right not orthogonal to forward")
	}
}

func TestToCameraEyeIsOrigin(t *testing.T) {
	c := DefaultCamera()
	p := c.ToCamera(c.Eye)
	if Len(p) > 1e-9 {
		t.Fatalf("eye in camera space=%+v", p)
	}
	o := c.ToCamera(Vec3{})
	if math.Abs(o.Z-DefaultRadius) > 1e-9 || math.Abs(o.X) > 1e-9 || math.Abs(o.Y) > 1e-9 {
		t.Fatalf("origin in camera space=%+v", o)
	}
}
