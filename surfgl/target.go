package surfgl

// Target is a minimal pixel target for software rendering.
//
// SetPixel composites c over the current pixel using c.A. Implementations should
// clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// RGBATarget renders into an 8-bit RGBA buffer laid out like image.RGBA.Pix.
//
// Callers provide the backing buffer and layout (stride).
type RGBATarget struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

func (t *RGBATarget) Size() (w, h int) { return t.W, t.H }

func (t *RGBATarget) ok() bool {
	return t != nil && t.Buf != nil && t.Stride > 0 && t.W > 0 && t.H > 0
}

func (t *RGBATarget) Clear(c Color) {
	if !t.ok() {
		return
	}
	for y := 0; y < t.H; y++ {
		row := y * t.Stride
		for x := 0; x < t.W; x++ {
			off := row + x*4
			if off < 0 || off+3 >= len(t.Buf) {
				continue
			}
			t.Buf[off+0] = c.R
			t.Buf[off+1] = c.G
			t.Buf[off+2] = c.B
			t.Buf[off+3] = 0xFF
		}
	}
}

func (t *RGBATarget) SetPixel(x, y int, c Color) {
	if !t.ok() || c.A == 0 {
		return
	}
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*4
	if off < 0 || off+3 >= len(t.Buf) {
		return
	}
	px := t.Buf[off : off+4 : off+4]
	if c.A == 0xFF {
		px[0], px[1], px[2], px[3] = c.R, c.G, c.B, 0xFF
		return
	}
	a := uint32(c.A)
	px[0] = blend8(c.R, px[0], a)
	px[1] = blend8(c.G, px[1], a)
	px[2] = blend8(c.B, px[2], a)
	px[3] = 0xFF
}

// At returns the pixel at (x, y), or the zero Color when out of bounds.
func (t *RGBATarget) At(x, y int) Color {
	if !t.ok() || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return Color{}
	}
	off := y*t.Stride + x*4
	if off < 0 || off+3 >= len(t.Buf) {
		return Color{}
	}
	return Color{R: t.Buf[off], G: t.Buf[off+1], B: t.Buf[off+2], A: t.Buf[off+3]}
}

func blend8(src, dst uint8, a uint32) uint8 {
	return uint8((uint32(src)*a + uint32(dst)*(255-a) + 127) / 255)
}
