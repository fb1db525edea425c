package surfgl

import (
	"math"
	"testing"
)

func TestSortFacesFarthestFirst(t *testing.T) {
	faces := []Face{{Depth: 5}, {Depth: 10}, {Depth: 1}}
	SortFaces(faces)
	want := []float64{10, 5, 1}
	for i, f := range faces {
		if f.Depth != want[i] {
			t.Fatalf("order[%d]=%v want %v", i, f.Depth, want[i])
		}
	}
}

func TestFrameBuildPlane(t *testing.T) {
	p := NewProjector(DefaultCamera(), 1000, 800)
	g := BuildGrid(planeGen, Range{-1, 1}, Range{-1, 1}, 4, 4, p)

	var f Frame
	f.Build(g, p, DefaultStyle())

	if len(f.Faces) != 9 {
		t.Fatalf("faces=%d", len(f.Faces))
	}
	// 4 rows x 3 right edges + 3 rows x 4 down edges.
	if len(f.Edges) != 24 {
		t.Fatalf("edges=%d", len(f.Edges))
	}
	for i := 1; i < len(f.Faces); i++ {
		if f.Faces[i-1].Depth < f.Faces[i].Depth {
			t.Fatalf("faces not sorted farthest first at %d", i)
		}
	}
	for _, fc := range f.Faces {
		sum := 0.0
		for _, pt := range fc.Pts {
			sum += pt.Depth
		}
		if math.Abs(fc.Depth-sum/4) > 1e-9 {
			t.Fatalf("face depth=%v mean=%v", fc.Depth, sum/4)
		}
		if fc.Fill != DefaultStyle().Fill {
			t.Fatalf("fill=%+v", fc.Fill)
		}
	}
	for _, e := range f.Edges {
		if math.Abs(e.Depth-(e.A.Depth+e.B.Depth)/2) > 1e-9 {
			t.Fatalf("edge depth=%v", e.Depth)
		}
		if e.Color != DefaultStyle().Line {
			t.Fatalf("edge color=%+v", e.Color)
		}
	}
}

func TestFrameFaceCornersInWindingOrder(t *testing.T) {
	p := NewProjector(DefaultCamera(), 1000, 800)
	g := BuildGrid(planeGen, Range{0, 1}, Range{0, 1}, 2, 2, p)
	var f Frame
	f.Build(g, p, DefaultStyle())
	if len(f.Faces) != 1 {
		t.Fatalf("faces=%d", len(f.Faces))
	}
	p00, _ := g.At(0, 0)
	p01, _ := g.At(0, 1)
	p11, _ := g.At(1, 1)
	p10, _ := g.At(1, 0)
	if f.Faces[0].Pts != [4]Point{p00, p01, p11, p10} {
		t.Fatalf("corners=%+v", f.Faces[0].Pts)
	}
}

func TestFrameSkipsHiddenSamples(t *testing.T) {
	p := NewProjector(DefaultCamera(), 1000, 800)
	eye := p.Camera.Eye
	// 3x3 grid with the center on the eye: every 2x2 block touches it.
	gen := func(u, v float64) Vec3 {
		if u == 1 && v == 1 {
			return eye
		}
		return V3(u, v, 0)
	}
	g := BuildGrid(gen, Range{0, 2}, Range{0, 2}, 3, 3, p)
	var f Frame
	f.Build(g, p, DefaultStyle())
	if len(f.Faces) != 0 {
		t.Fatalf("faces=%d", len(f.Faces))
	}
	if len(f.Edges) != 8 {
		t.Fatalf("edges=%d", len(f.Edges))
	}
}

func TestFrameAxes(t *testing.T) {
	p := NewProjector(DefaultCamera(), 1000, 800)
	st := DefaultStyle()
	var f Frame
	f.Build(nil, p, st)
	if len(f.Axes) != 3 {
		t.Fatalf("axes=%d", len(f.Axes))
	}
	origin, _ := p.Project(Vec3{})
	xEnd, _ := p.Project(V3(1, 0, 0))
	if f.Axes[0].A != origin || f.Axes[0].B != xEnd {
		t.Fatalf("x axis=%+v", f.Axes[0])
	}
	for k, s := range f.Axes {
		if s.Color != st.Axis[k] || s.Width != 2 {
			t.Fatalf("axis %d=%+v", k, s)
		}
	}
}

func TestFrameAxesOmittedWhenOriginHidden(t *testing.T) {
	cam := Camera{
		Eye:     V3(0, 0, 10),
		Right:   V3(1, 0, 0),
		Up:      V3(0, 1, 0),
		Forward: V3(0, 0, 1),
	}
	p := NewProjector(cam, 100, 100)
	var f Frame
	f.Build(nil, p, DefaultStyle())
	if len(f.Axes) != 0 {
		t.Fatalf("axes=%d", len(f.Axes))
	}
}

func TestFrameAxisWithHiddenEndpoint(t *testing.T) {
	cam := Camera{
		Eye:     V3(0.5, 0, 0),
		Right:   V3(0, 0, 1),
		Up:      V3(0, 1, 0),
		Forward: V3(-1, 0, 0),
	}
	p := NewProjector(cam, 100, 100)
	st := DefaultStyle()
	var f Frame
	f.Build(nil, p, st)
	if len(f.Axes) != 2 {
		t.Fatalf("axes=%d", len(f.Axes))
	}
	if f.Axes[0].Color != st.Axis[1] || f.Axes[1].Color != st.Axis[2] {
		t.Fatalf("expected Y and Z axes, got %+v", f.Axes)
	}
}

func TestFrameReuse(t *testing.T) {
	p := NewProjector(DefaultCamera(), 1000, 800)
	g := BuildGrid(planeGen, Range{-1, 1}, Range{-1, 1}, 5, 5, p)
	var f Frame
	f.Build(g, p, DefaultStyle())
	g.Build(planeGen, Range{-1, 1}, Range{-1, 1}, 2, 2, p)
	f.Build(g, p, DefaultStyle())
	if len(f.Faces) != 1 || len(f.Edges) != 4 {
		t.Fatalf("faces=%d edges=%d", len(f.Faces), len(f.Edges))
	}
}
