package surfgl

import "math"

// Fixed viewing setup: polar angle and azimuth in degrees, distance to the origin.
const (
	DefaultTheta  = 60.0
	DefaultPhi    = 30.0
	DefaultRadius = 250.0
)

// Camera is an orthonormal right-handed basis placed at Eye, looking at the origin.
type Camera struct {
	Eye     Vec3
	Right   Vec3
	Up      Vec3
	Forward Vec3
}

// DefaultCamera returns the camera used by the viewer.
func DefaultCamera() Camera {
	return NewCamera(DefaultTheta, DefaultPhi, DefaultRadius)
}

// NewCamera places the eye at spherical coordinates (theta, phi, radius) and aims it
// at the origin. Angles are in degrees; theta is measured from +Z.
func NewCamera(thetaDeg, phiDeg, radius float64) Camera {
	theta := Radians(thetaDeg)
	phi := Radians(phiDeg)
	eye := V3(
		radius*math.Sin(theta)*math.Cos(phi),
		radius*math.Sin(theta)*math.Sin(phi),
		radius*math.Cos(theta),
	)

	forward := Normalize(eye.Mul(-1))
	// World Z is degenerate as a reference when looking straight up or down.
	ref := V3(0, 0, 1)
	if math.Abs(forward.Z) >= 0.999 {
		ref = V3(0, 1, 0)
	}
	right := Normalize(Cross(forward, ref))
	up := Cross(right, forward)

	return Camera{Eye: eye, Right: right, Up: up, Forward: forward}
}

// ToCamera expresses a world point in camera space: rows of the rotation are the
// basis vectors, applied to the eye-relative offset.
func (c Camera) ToCamera(p Vec3) Vec3 {
	d := p.Sub(c.Eye)
	return Vec3{
		X: Dot(c.Right, d),
		Y: Dot(c.Up, d),
		Z: Dot(c.Forward, d),
	}
}
