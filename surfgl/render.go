package surfgl

import "sort"

// Face is a quad of four grid-adjacent visible samples in winding order
// (i,j), (i,j+1), (i+1,j+1), (i+1,j).
type Face struct {
	Pts   [4]Point
	Depth float64
	Fill  Color
}

// Edge joins two grid-adjacent visible samples.
type Edge struct {
	A, B  Point
	Depth float64
	Color Color
}

// Segment is a screen-space line with a pixel width, used for the axis indicators.
type Segment struct {
	A, B  Point
	Color Color
	Width int
}

// Style holds the fixed colors of a frame.
type Style struct {
	Background Color
	Line       Color
	Fill       Color
	Axis       [3]Color
	AxisLength float64
	AxisWidth  int
}

// DefaultStyle is the dark theme of the viewer.
func DefaultStyle() Style {
	return Style{
		Background: RGB(15, 15, 25),
		Line:       RGBA(80, 80, 120, 255),
		Fill:       RGBA(30, 144, 255, 90),
		Axis: [3]Color{
			RGB(255, 85, 85),
			RGB(85, 255, 85),
			RGB(85, 170, 255),
		},
		AxisLength: 1,
		AxisWidth:  2,
	}
}

// Frame is the draw list of one rendered grid: faces sorted farthest first, wire
// edges in grid order, then the axis indicators.
type Frame struct {
	Faces []Face
	Edges []Edge
	Axes  []Segment
}

// Reset empties the frame and keeps its storage.
func (f *Frame) Reset() {
	f.Faces = f.Faces[:0]
	f.Edges = f.Edges[:0]
	f.Axes = f.Axes[:0]
}

// Build derives edges, faces and axes from g. The projector is only used for the
// axis indicators.
func (f *Frame) Build(g *Grid, p Projector, st Style) {
	f.Reset()
	if g != nil {
		f.buildEdges(g, st.Line)
		f.buildFaces(g, st.Fill)
		SortFaces(f.Faces)
	}
	f.buildAxes(p, st)
}

func (f *Frame) buildEdges(g *Grid, c Color) {
	for i := 0; i < g.Rows; i++ {
		for j := 0; j < g.Cols; j++ {
			cur, ok := g.At(i, j)
			if !ok {
				continue
			}
			if right, ok := g.At(i, j+1); ok {
				f.Edges = append(f.Edges, newEdge(cur, right, c))
			}
			if down, ok := g.At(i+1, j); ok {
				f.Edges = append(f.Edges, newEdge(cur, down, c))
			}
		}
	}
}

func newEdge(a, b Point, c Color) Edge {
	return Edge{A: a, B: b, Depth: (a.Depth + b.Depth) / 2, Color: c}
}

func (f *Frame) buildFaces(g *Grid, fill Color) {
	for i := 0; i+1 < g.Rows; i++ {
		for j := 0; j+1 < g.Cols; j++ {
			p1, ok1 := g.At(i, j)
			p2, ok2 := g.At(i, j+1)
			p3, ok3 := g.At(i+1, j+1)
			p4, ok4 := g.At(i+1, j)
			if !ok1 || !ok2 || !ok3 || !ok4 {
				continue
			}
			f.Faces = append(f.Faces, Face{
				Pts:   [4]Point{p1, p2, p3, p4},
				Depth: (p1.Depth + p2.Depth + p3.Depth + p4.Depth) / 4,
				Fill:  fill,
			})
		}
	}
}

// SortFaces orders faces by depth, farthest first.
func SortFaces(faces []Face) {
	sort.SliceStable(faces, func(i, j int) bool { return faces[i].Depth > faces[j].Depth })
}

func (f *Frame) buildAxes(p Projector, st Style) {
	origin, ok := p.Project(Vec3{})
	if !ok {
		return
	}
	l := st.AxisLength
	ends := [3]Vec3{V3(l, 0, 0), V3(0, l, 0), V3(0, 0, l)}
	for k, e := range ends {
		end, ok := p.Project(e)
		if !ok {
			continue
		}
		f.Axes = append(f.Axes, Segment{A: origin, B: end, Color: st.Axis[k], Width: st.AxisWidth})
	}
}
