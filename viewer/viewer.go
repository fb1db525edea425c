// Package viewer is the core of the surface viewer as seen by UI code: select a
// surface, step parameters, and fetch the draw list for the current state.
package viewer

import (
	"errors"
	"fmt"

	"surfview/params"
	"surfview/surface"
	"surfview/surfgl"
)

var ErrUnknownSurface = errors.New("viewer: unknown surface")

// Core owns the parameter store, the fixed camera, and the reusable grid and frame.
//
// Frame rebuilds the grid only when the store changed since the last call.
type Core struct {
	store *params.Store
	proj  surfgl.Projector
	style surfgl.Style

	grid  surfgl.Grid
	frame surfgl.Frame

	built        bool
	builtVersion uint64
}

// New returns a core for a width x height viewport with the default camera.
func New(width, height int) *Core {
	return &Core{
		store: params.New(),
		proj:  surfgl.NewProjector(surfgl.DefaultCamera(), width, height),
		style: surfgl.DefaultStyle(),
	}
}

// Store exposes the parameter store for reading and for UI handlers.
func (c *Core) Store() *params.Store { return c.store }

// Style returns the colors used for the frame.
func (c *Core) Style() surfgl.Style { return c.style }

// Projector returns the projector with the current projection mode applied.
func (c *Core) Projector() surfgl.Projector {
	p := c.proj
	p.Perspective = c.store.Params().Perspective
	return p
}

// SetSurface selects k and resets the store to its domain and default shape.
func (c *Core) SetSurface(k surface.Kind) error {
	if !k.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownSurface, k)
	}
	c.store.Select(k)
	return nil
}

// SetSurfaceByName is SetSurface keyed by catalog name.
func (c *Core) SetSurfaceByName(name string) error {
	k, ok := surface.Parse(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSurface, name)
	}
	return c.SetSurface(k)
}

// ClearSurface returns to surface selection.
func (c *Core) ClearSurface() { c.store.Clear() }

// AdjustParam steps one parameter, clamped at its bounds.
func (c *Core) AdjustParam(k params.Key, dir params.Direction) bool {
	return c.store.Adjust(k, dir)
}

// Grid returns the projected samples of the current frame.
func (c *Core) Grid() *surfgl.Grid {
	c.rebuild()
	return &c.grid
}

// Frame returns the draw list for the current store state. With no surface
// selected the frame is empty. The returned frame is reused by later calls.
func (c *Core) Frame() *surfgl.Frame {
	c.rebuild()
	return &c.frame
}

// Invalidate forces the next Frame call to rebuild.
func (c *Core) Invalidate() { c.built = false }

func (c *Core) rebuild() {
	v := c.store.Version()
	if c.built && v == c.builtVersion {
		return
	}
	c.built = true
	c.builtVersion = v

	p := c.store.Params()
	if !p.Active {
		c.grid.Build(nil, p.Domain.U, p.Domain.V, 0, 0, c.proj)
		c.frame.Reset()
		return
	}
	proj := c.Projector()
	c.grid.Build(p.Surface.Generator(p.ShapeA, p.ShapeB), p.Domain.U, p.Domain.V, p.ResU, p.ResV, proj)
	c.frame.Build(&c.grid, proj, c.style)
}
