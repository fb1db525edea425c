// Package surface is the catalog of parametric surfaces shown by the viewer.
//
// The catalog is closed: every surface is a Kind, and Generate and Domain switch
// over all of them. Angular parameters are given in degrees.
package surface

import (
	"math"
	"strings"

	"surfview/surfgl"
)

// Kind identifies a surface in the catalog.
type Kind uint8

const (
	Seashell Kind = iota
	Mobius
	Torus
	Spiral
	Helical

	kindCount
)

// Helical ramp turns.
const helicalSteps = 5

// Domain is the (u, v) sampling region of a surface.
type Domain struct {
	U surfgl.Range
	V surfgl.Range
}

// All returns the catalog in menu order.
func All() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

func (k Kind) Valid() bool { return k < kindCount }

func (k Kind) String() string {
	switch k {
	case Seashell:
		return "Seashell"
	case Mobius:
		return "Mobius"
	case Torus:
		return "Torus"
	case Spiral:
		return "Spiral"
	case Helical:
		return "Helical"
	default:
		return "?"
	}
}

// Parse looks a surface up by name, ignoring case and surrounding spaces.
func Parse(name string) (Kind, bool) {
	name = strings.TrimSpace(name)
	for _, k := range All() {
		if strings.EqualFold(k.String(), name) {
			return k, true
		}
	}
	return 0, false
}

// Domain returns the valid (u, v) region of the surface.
func (k Kind) Domain() Domain {
	switch k {
	case Seashell:
		return Domain{U: surfgl.Range{Min: 0, Max: 360}, V: surfgl.Range{Min: 0, Max: 1080}}
	case Mobius:
		return Domain{U: surfgl.Range{Min: 0, Max: 360}, V: surfgl.Range{Min: -1, Max: 1}}
	case Torus:
		return Domain{U: surfgl.Range{Min: 0, Max: 360}, V: surfgl.Range{Min: 0, Max: 360}}
	case Spiral:
		return Domain{U: surfgl.Range{Min: 0, Max: 720}, V: surfgl.Range{Min: 0, Max: 720}}
	case Helical:
		return Domain{U: surfgl.Range{Min: 0, Max: 360}, V: surfgl.Range{Min: -5, Max: 5}}
	default:
		return Domain{}
	}
}

// Generate evaluates the surface at (u, v) with shape parameters a and b.
// It accepts any input; some combinations are degenerate (zero radius).
func (k Kind) Generate(u, v, a, b float64) surfgl.Vec3 {
	switch k {
	case Seashell:
		return seashell(u, v, a, b)
	case Mobius:
		return mobius(u, v, a, b)
	case Torus:
		return torus(u, v, a, b)
	case Spiral:
		return spiral(u, v, a, b)
	case Helical:
		return helical(u, v, a, b)
	default:
		return surfgl.Vec3{}
	}
}

// Generator binds the shape parameters for the mesh builder.
func (k Kind) Generator(a, b float64) surfgl.Generator {
	return func(u, v float64) surfgl.Vec3 { return k.Generate(u, v, a, b) }
}

// seashell: a coil growing exponentially along v.
func seashell(u, v, a, b float64) surfgl.Vec3 {
	u, v = surfgl.Radians(u), surfgl.Radians(v)
	f := a * math.Exp(b*v)
	return surfgl.V3(
		f*math.Cos(v)*(1+math.Cos(u)),
		f*math.Sin(v)*(1+math.Cos(u)),
		f*math.Sin(u),
	)
}

// mobius: v is the signed distance across the band (not an angle). The half angle
// u/2 drives both the radial offset and the twist.
func mobius(u, v, a, b float64) surfgl.Vec3 {
	u = surfgl.Radians(u)
	r := a + v*math.Cos(u/2)
	return surfgl.V3(
		r*math.Cos(u),
		r*math.Sin(u),
		b*v*math.Sin(u/2),
	)
}

// torus: a is the major radius, b the tube radius.
func torus(u, v, a, b float64) surfgl.Vec3 {
	u, v = surfgl.Radians(u), surfgl.Radians(v)
	r := a + b*math.Cos(v)
	return surfgl.V3(
		r*math.Cos(u),
		r*math.Sin(u),
		b*math.Sin(v),
	)
}

// spiral: a tube around a circle of radius 5a that climbs 2a per radian of u.
func spiral(u, v, a, b float64) surfgl.Vec3 {
	u, v = surfgl.Radians(u), surfgl.Radians(v)
	r := a*5 + b*math.Cos(v)
	return surfgl.V3(
		r*math.Cos(u),
		r*math.Sin(u),
		b*math.Sin(v)+a*2*u,
	)
}

// helical: u is stretched over helicalSteps turns, v is linear height.
func helical(u, v, a, b float64) surfgl.Vec3 {
	angle := helicalSteps * surfgl.Radians(u)
	radius := a * 5
	height := b * 10
	return surfgl.V3(
		radius*math.Cos(angle),
		radius*math.Sin(angle),
		height*v,
	)
}
