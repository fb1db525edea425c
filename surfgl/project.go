package surfgl

import "math"

// NearEpsilon is the camera-space depth at or below which a point is not visible.
// It must stay positive: perspective divides by depth.
const NearEpsilon = 1e-3

const (
	DefaultScale = 50.0
	DefaultFocal = 1000.0
)

// Point is a projected point in pixel coordinates. Depth is the distance from the
// eye and is only used to order primitives.
type Point struct {
	X, Y  int
	Depth float64
}

// Projector maps world points to screen points for a fixed camera and viewport.
type Projector struct {
	Camera      Camera
	Width       int
	Height      int
	Scale       float64
	Perspective bool
	Focal       float64
}

// NewProjector returns a perspective projector with the default scale and focal
// distance.
func NewProjector(cam Camera, width, height int) Projector {
	return Projector{
		Camera:      cam,
		Width:       width,
		Height:      height,
		Scale:       DefaultScale,
		Perspective: true,
		Focal:       DefaultFocal,
	}
}

// Project returns the screen position of a world point. ok is false when the
// point lies at or behind the near plane.
func (p Projector) Project(world Vec3) (pt Point, ok bool) {
	c := p.Camera.ToCamera(world)
	if c.Z <= NearEpsilon {
		return Point{}, false
	}

	cx := float64(p.Width / 2)
	cy := float64(p.Height / 2)
	var sx, sy float64
	if p.Perspective {
		factor := p.Focal / c.Z
		sx = c.X*factor*p.Scale + cx
		sy = -c.Y*factor*p.Scale + cy
	} else {
		sx = c.X*p.Scale + cx
		sy = -c.Y*p.Scale + cy
	}

	return Point{
		X:     int(sx),
		Y:     int(sy),
		Depth: math.Sqrt(c.X*c.X + c.Y*c.Y + c.Z*c.Z),
	}, true
}
