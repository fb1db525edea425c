// Package params holds the mutable viewer parameters: shape, mesh resolution and
// projection mode of the active surface.
//
// A Store has a single owner. All changes go through bounded steps and are
// clamped silently; every change bumps Version so readers can skip rebuilding.
package params

import "surfview/surface"

// Key names an adjustable parameter.
type Key uint8

const (
	ShapeA Key = iota
	ShapeB
	ResU
	ResV
)

func (k Key) String() string {
	switch k {
	case ShapeA:
		return "shapeA"
	case ShapeB:
		return "shapeB"
	case ResU:
		return "resU"
	case ResV:
		return "resV"
	default:
		return "?"
	}
}

// Direction is the sign of a step.
type Direction int8

const (
	Decrement Direction = -1
	Increment Direction = +1
)

const (
	DefaultShapeA = 0.1
	DefaultShapeB = 0.05

	MinShapeA  = 0.01
	StepShapeA = 0.05
	MinShapeB  = 0.001
	StepShapeB = 0.01

	MinRes     = 4
	MaxRes     = 512
	StepRes    = 4
	DefaultRes = 64
)

// Params is a read-only snapshot of the store.
type Params struct {
	Active      bool
	Surface     surface.Kind
	ShapeA      float64
	ShapeB      float64
	ResU        int
	ResV        int
	Domain      surface.Domain
	Perspective bool
}

// Store is the single source of parameter state.
type Store struct {
	p       Params
	version uint64
}

// New returns a store with no surface selected, default shape and resolution.
func New() *Store {
	return &Store{p: Params{
		ShapeA:      DefaultShapeA,
		ShapeB:      DefaultShapeB,
		ResU:        DefaultRes,
		ResV:        DefaultRes,
		Perspective: true,
	}}
}

// Params returns a copy of the current values.
func (s *Store) Params() Params { return s.p }

// Version increases on every change.
func (s *Store) Version() uint64 { return s.version }

// Active reports whether a surface is selected.
func (s *Store) Active() bool { return s.p.Active }

// Surface returns the selected surface; ok is false when none is selected.
func (s *Store) Surface() (surface.Kind, bool) { return s.p.Surface, s.p.Active }

// Select makes k the active surface and resets shape parameters and domain to the
// surface defaults. Resolution and projection mode are kept.
func (s *Store) Select(k surface.Kind) {
	s.p.Active = true
	s.p.Surface = k
	s.p.ShapeA = DefaultShapeA
	s.p.ShapeB = DefaultShapeB
	s.p.Domain = k.Domain()
	s.version++
}

// Clear deselects the surface, as when returning to surface selection.
func (s *Store) Clear() {
	s.p.Active = false
	s.p.Surface = 0
	s.p.Domain = surface.Domain{}
	s.version++
}

// Adjust moves a parameter one step in dir, clamping at its bounds. It reports
// whether the value changed.
func (s *Store) Adjust(k Key, dir Direction) bool {
	if dir != Increment && dir != Decrement {
		return false
	}
	old := s.p
	step := float64(dir)
	switch k {
	case ShapeA:
		s.p.ShapeA = max(MinShapeA, s.p.ShapeA+step*StepShapeA)
	case ShapeB:
		s.p.ShapeB = max(MinShapeB, s.p.ShapeB+step*StepShapeB)
	case ResU:
		s.p.ResU = clampRes(s.p.ResU + int(dir)*StepRes)
	case ResV:
		s.p.ResV = clampRes(s.p.ResV + int(dir)*StepRes)
	default:
		return false
	}
	if s.p == old {
		return false
	}
	s.version++
	return true
}

// SetResolution sets both resolutions, clamped to [MinRes, MaxRes].
func (s *Store) SetResolution(u, v int) {
	u, v = clampRes(u), clampRes(v)
	if u == s.p.ResU && v == s.p.ResV {
		return
	}
	s.p.ResU, s.p.ResV = u, v
	s.version++
}

// SetPerspective selects perspective (true) or orthographic projection.
func (s *Store) SetPerspective(on bool) {
	if s.p.Perspective == on {
		return
	}
	s.p.Perspective = on
	s.version++
}

// TogglePerspective flips the projection mode.
func (s *Store) TogglePerspective() { s.SetPerspective(!s.p.Perspective) }

func clampRes(v int) int {
	return min(MaxRes, max(MinRes, v))
}
