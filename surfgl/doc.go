// Package surfgl is the geometry pipeline of the surface viewer.
//
// Pipeline (fixed):
//
//	Generator → Grid (sample + project) → Frame (edges, faces, axes) → Target.
//
// A single Camera is computed once from spherical angles. Every screen position is
// produced by Projector.Project; nothing else in the module projects points.
//
// Faces are ordered with the painter's algorithm (farthest first) and drawn as
// translucent quads. There is no depth buffer, so faces at similar depth may
// overlap in an unstable order.
package surfgl
