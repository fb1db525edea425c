package surfgl

// Range is a closed interval of a surface parameter.
type Range struct {
	Min, Max float64
}

// Generator evaluates a surface at (u, v). Shape parameters are bound by the caller.
type Generator func(u, v float64) Vec3

// Linspace returns n evenly spaced samples over r, both endpoints included.
func Linspace(r Range, n int) []float64 {
	return appendLinspace(nil, r, n)
}

func appendLinspace(dst []float64, r Range, n int) []float64 {
	dst = dst[:0]
	switch {
	case n <= 0:
		return dst
	case n == 1:
		return append(dst, r.Min)
	}
	step := (r.Max - r.Min) / float64(n-1)
	for i := 0; i < n-1; i++ {
		dst = append(dst, r.Min+float64(i)*step)
	}
	return append(dst, r.Max)
}

// Grid is a row-major resU x resV array of projected samples. Rows follow u,
// columns follow v. A sample is either a visible Point or not visible.
//
// Reuse a Grid across frames to avoid reallocating.
type Grid struct {
	Rows int
	Cols int

	points  []Point
	visible []bool

	us []float64
	vs []float64
}

// BuildGrid samples gen over uDom x vDom and projects every sample.
func BuildGrid(gen Generator, uDom, vDom Range, resU, resV int, p Projector) *Grid {
	g := &Grid{}
	g.Build(gen, uDom, vDom, resU, resV, p)
	return g
}

// Build resamples the grid in place.
func (g *Grid) Build(gen Generator, uDom, vDom Range, resU, resV int, p Projector) {
	if resU < 0 {
		resU = 0
	}
	if resV < 0 {
		resV = 0
	}
	g.Rows = resU
	g.Cols = resV

	n := resU * resV
	if cap(g.points) < n {
		g.points = make([]Point, n)
		g.visible = make([]bool, n)
	} else {
		g.points = g.points[:n]
		g.visible = g.visible[:n]
	}

	g.us = appendLinspace(g.us, uDom, resU)
	g.vs = appendLinspace(g.vs, vDom, resV)

	for i, u := range g.us {
		row := i * resV
		for j, v := range g.vs {
			pt, ok := p.Project(gen(u, v))
			g.points[row+j] = pt
			g.visible[row+j] = ok
		}
	}
}

// At returns the sample at row i, column j. ok is false when the sample is not
// visible or the indices are out of range.
func (g *Grid) At(i, j int) (Point, bool) {
	if g == nil || i < 0 || j < 0 || i >= g.Rows || j >= g.Cols {
		return Point{}, false
	}
	k := i*g.Cols + j
	if !g.visible[k] {
		return Point{}, false
	}
	return g.points[k], true
}

// Len returns the number of samples, visible or not.
func (g *Grid) Len() int {
	if g == nil {
		return 0
	}
	return g.Rows * g.Cols
}

// VisibleCount returns the number of visible samples.
func (g *Grid) VisibleCount() int {
	if g == nil {
		return 0
	}
	n := 0
	for _, ok := range g.visible {
		if ok {
			n++
		}
	}
	return n
}
