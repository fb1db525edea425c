package surfgl

// Color is an RGBA color in 8-bit channels. A is coverage for blending; 0xFF is opaque.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

func (c Color) WithAlpha(a uint8) Color { c.A = a; return c }
