package surfgl

import (
	"math"
	"sort"
)

// Rasterize draws f into t: faces in their stored order, then wire edges, then axes.
// The target is not cleared.
func Rasterize(t Target, f *Frame) {
	if t == nil || f == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}

	var xs []float64
	for i := range f.Faces {
		xs = fillQuad(t, w, h, &f.Faces[i], xs)
	}
	for _, e := range f.Edges {
		drawLine(t, w, h, e.A.X, e.A.Y, e.B.X, e.B.Y, e.Color)
	}
	for _, s := range f.Axes {
		drawThickLine(t, w, h, s.A.X, s.A.Y, s.B.X, s.B.Y, s.Width, s.Color)
	}
}

// fillQuad fills the quad with the even-odd rule, sampling pixel centers. Each pixel
// is touched at most once so translucent fills blend exactly once.
func fillQuad(t Target, w, h int, fc *Face, xs []float64) []float64 {
	minY, maxY := fc.Pts[0].Y, fc.Pts[0].Y
	for _, p := range fc.Pts[1:] {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= h {
		maxY = h - 1
	}

	for y := minY; y <= maxY; y++ {
		yc := float64(y) + 0.5
		xs = xs[:0]
		for k := 0; k < 4; k++ {
			a := fc.Pts[k]
			b := fc.Pts[(k+1)%4]
			y0, y1 := float64(a.Y), float64(b.Y)
			if (y0 <= yc && yc < y1) || (y1 <= yc && yc < y0) {
				x := float64(a.X) + (yc-y0)*float64(b.X-a.X)/(y1-y0)
				xs = append(xs, x)
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Float64s(xs)
		for k := 0; k+1 < len(xs); k += 2 {
			x0 := int(math.Ceil(xs[k] - 0.5))
			x1 := int(math.Ceil(xs[k+1]-0.5)) - 1
			if x0 < 0 {
				x0 = 0
			}
			if x1 >= w {
				x1 = w - 1
			}
			for x := x0; x <= x1; x++ {
				t.SetPixel(x, y, fc.Fill)
			}
		}
	}
	return xs
}

func drawThickLine(t Target, w, h int, x0, y0, x1, y1, width int, c Color) {
	if width < 1 {
		width = 1
	}
	steep := absInt(y1-y0) > absInt(x1-x0)
	for k := 0; k < width; k++ {
		// Spread extra strokes evenly around the center line.
		off := k - (width-1)/2
		if steep {
			drawLine(t, w, h, x0+off, y0, x1+off, y1, c)
		} else {
			drawLine(t, w, h, x0, y0+off, x1, y1+off, c)
		}
	}
}

func drawLine(t Target, w, h int, x0, y0, x1, y1 int, c Color) {
	x0, y0, x1, y1, ok := clipLine(w, h, x0, y0, x1, y1)
	if !ok {
		return
	}
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

const (
	outLeft = 1 << iota
	outRight
	outTop
	outBottom
)

func outCode(w, h int, x, y float64) int {
	code := 0
	switch {
	case x < 0:
		code |= outLeft
	case x > float64(w-1):
		code |= outRight
	}
	switch {
	case y < 0:
		code |= outTop
	case y > float64(h-1):
		code |= outBottom
	}
	return code
}

// clipLine clips a segment to the target rectangle (Cohen-Sutherland) so lines with
// far off-screen endpoints do not walk millions of pixels.
func clipLine(w, h int, ix0, iy0, ix1, iy1 int) (int, int, int, int, bool) {
	x0, y0, x1, y1 := float64(ix0), float64(iy0), float64(ix1), float64(iy1)
	c0 := outCode(w, h, x0, y0)
	c1 := outCode(w, h, x1, y1)
	maxX, maxY := float64(w-1), float64(h-1)
	for {
		if c0|c1 == 0 {
			return int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)), true
		}
		if c0&c1 != 0 {
			return 0, 0, 0, 0, false
		}
		out := c0
		if out == 0 {
			out = c1
		}
		var x, y float64
		switch {
		case out&outBottom != 0:
			x = x0 + (x1-x0)*(maxY-y0)/(y1-y0)
			y = maxY
		case out&outTop != 0:
			x = x0 + (x1-x0)*(0-y0)/(y1-y0)
			y = 0
		case out&outRight != 0:
			y = y0 + (y1-y0)*(maxX-x0)/(x1-x0)
			x = maxX
		default:
			y = y0 + (y1-y0)*(0-x0)/(x1-x0)
			x = 0
		}
		if out == c0 {
			x0, y0 = x, y
			c0 = outCode(w, h, x0, y0)
		} else {
			x1, y1 = x, y
			c1 = outCode(w, h, x1, y1)
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
