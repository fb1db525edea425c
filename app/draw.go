package app

import (
	"fmt"
	"image"
	"image/color"

	"surfview/hal"
	"surfview/surfgl"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	colorButton   = color.RGBA{R: 40, G: 40, B: 60, A: 0xff}
	colorHover    = color.RGBA{R: 60, G: 60, B: 90, A: 0xff}
	colorCursor   = color.RGBA{R: 85, G: 170, B: 255, A: 0xff}
	colorBtnText  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorText     = color.RGBA{R: 180, G: 180, B: 200, A: 0xff}
	colorStatusOK = color.RGBA{R: 120, G: 220, B: 120, A: 0xff}
)

const menuTitle = "Select surface to render"

// fbDisplay exposes an RGBA8888 framebuffer as a tinyfont target.
type fbDisplay struct {
	fb hal.Framebuffer

	font       tinyfont.Fonter
	fontHeight int16
	fontOffset int16
}

func newFBDisplay(fb hal.Framebuffer) *fbDisplay {
	return &fbDisplay{fb: fb}
}

var _ drivers.Displayer = (*fbDisplay)(nil)

func (d *fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGBA8888 {
		return
	}
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	off := iy*d.fb.StrideBytes() + ix*4
	if off < 0 || off+3 >= len(buf) {
		return
	}
	buf[off] = c.R
	buf[off+1] = c.G
	buf[off+2] = c.B
	buf[off+3] = 0xff
}

func (d *fbDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *fbDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGBA8888 {
		return nil
	}
	buf := d.fb.Buffer()
	w, h := d.fb.Width(), d.fb.Height()

	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*4
			if off+3 >= len(buf) {
				break
			}
			buf[off] = c.R
			buf[off+1] = c.G
			buf[off+2] = c.B
			buf[off+3] = 0xff
		}
	}
	return nil
}

func (d *fbDisplay) initFont() bool {
	d.font = &proggy.TinySZ8pt7b
	d.fontHeight = 10
	d.fontOffset = 8
	_, outbox := tinyfont.LineWidth(d.font, "0")
	return outbox > 0
}

func (d *fbDisplay) textWidth(s string) int {
	_, outbox := tinyfont.LineWidth(d.font, s)
	return int(outbox)
}

// text draws s with its top-left corner at (x, y).
func (d *fbDisplay) text(x, y int, c color.RGBA, s string) {
	tinyfont.WriteLine(d, d.font, int16(x), int16(y)+d.fontOffset, s, c)
}

// button fills r and centres label inside it.
func (d *fbDisplay) button(r image.Rectangle, bg color.RGBA, label string) {
	_ = d.FillRectangle(int16(r.Min.X), int16(r.Min.Y), int16(r.Dx()), int16(r.Dy()), bg)
	tx := r.Min.X + (r.Dx()-d.textWidth(label))/2
	ty := r.Min.Y + (r.Dy()-int(d.fontHeight))/2
	d.text(tx, ty, colorBtnText, label)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (a *App) draw() {
	st := a.core.Style()
	a.target.Clear(st.Background)

	hover := image.Pt(-1, -1)
	if a.ptr != nil {
		x, y := a.ptr.Position()
		hover = image.Pt(x, y)
	}

	if a.core.Store().Active() {
		surfgl.Rasterize(a.target, a.core.Frame())
		a.drawPanel(hover)
	} else {
		a.drawMenu(hover)
	}

	if a.statusTicks > 0 {
		a.statusTicks--
		a.disp.text(10, a.lay.h-int(a.disp.fontHeight)-10, colorStatusOK, a.status)
	}

	if err := a.disp.Display(); err != nil {
		a.logf("present: %v", err)
	}
}

func (a *App) drawMenu(hover image.Point) {
	tw := a.disp.textWidth(menuTitle)
	a.disp.text((a.lay.w-tw)/2, menuTitleY, colorText, menuTitle)
	for i, r := range a.lay.menu {
		bg := colorButton
		if hover.In(r) {
			bg = colorHover
		}
		if i == a.menuCursor {
			_ = a.disp.FillRectangle(int16(r.Min.X-3), int16(r.Min.Y), 3, int16(r.Dy()), colorCursor)
		}
		a.disp.button(r, bg, a.lay.kinds[i].String())
	}
}

func (a *App) drawPanel(hover image.Point) {
	pick := func(r image.Rectangle) color.RGBA {
		if hover.In(r) {
			return colorHover
		}
		return colorButton
	}

	a.disp.button(a.lay.back, pick(a.lay.back), "Back")
	a.disp.button(a.lay.save, pick(a.lay.save), "Save")

	p := a.core.Store().Params()
	for _, row := range a.lay.rows {
		a.disp.button(row.caption, colorButton, row.label)
		a.disp.button(row.plus, pick(row.plus), "+")
		a.disp.button(row.minus, pick(row.minus), "-")
		ty := row.value.Y + (panelBtnH-int(a.disp.fontHeight))/2
		a.disp.text(row.value.X, ty, colorText, formatParam(p, row.key))
	}

	mode := "Perspective"
	if !p.Perspective {
		mode = "Orthographic"
	}
	k, _ := a.core.Store().Surface()
	info := fmt.Sprintf("%s  %s  %dx%d", k, mode, p.ResU, p.ResV)
	a.disp.text(a.lay.w-a.disp.textWidth(info)-10, a.lay.h-int(a.disp.fontHeight)-10, colorText, info)
}
