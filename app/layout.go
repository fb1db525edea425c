package app

import (
	"image"

	"surfview/params"
	"surfview/surface"
)

const (
	menuBtnW   = 160
	menuBtnH   = 40
	menuGapY   = 15
	menuTitleY = 40

	panelX    = 10
	panelY    = 80
	panelBtnW = 180
	panelBtnH = 35
	panelGapY = 15
	signBtnW  = 40

	navBtnW = 100
	navBtnH = 35
)

// panelRow is one line of the control panel: a caption and +/- buttons for a key.
type panelRow struct {
	label string
	key   params.Key

	caption image.Rectangle
	plus    image.Rectangle
	minus   image.Rectangle
	value   image.Point
}

// layout holds the fixed button geometry for a screen size.
type layout struct {
	w, h int

	kinds []surface.Kind
	menu  []image.Rectangle

	back image.Rectangle
	save image.Rectangle
	rows []panelRow
}

func newLayout(w, h int) *layout {
	l := &layout{w: w, h: h, kinds: surface.All()}

	total := len(l.kinds)*(menuBtnH+menuGapY) - menuGapY
	y0 := (h - total) / 2
	x := (w - menuBtnW) / 2
	for i := range l.kinds {
		y := y0 + i*(menuBtnH+menuGapY)
		l.menu = append(l.menu, image.Rect(x, y, x+menuBtnW, y+menuBtnH))
	}

	l.back = image.Rect(10, 10, 10+navBtnW, 10+navBtnH)
	l.save = image.Rect(w-navBtnW-10, 10, w-10, 10+navBtnH)

	controls := []struct {
		label string
		key   params.Key
	}{
		{"Scale", params.ShapeA},
		{"V-Resolution", params.ResV},
		{"U-Resolution", params.ResU},
		{"Detail", params.ShapeB},
	}
	for i, c := range controls {
		y := panelY + i*(panelBtnH+panelGapY)
		plusX := panelX + panelBtnW + 10
		minusX := panelX + panelBtnW + 60
		l.rows = append(l.rows, panelRow{
			label:   c.label,
			key:     c.key,
			caption: image.Rect(panelX, y, panelX+panelBtnW, y+panelBtnH),
			plus:    image.Rect(plusX, y, plusX+signBtnW, y+panelBtnH),
			minus:   image.Rect(minusX, y, minusX+signBtnW, y+panelBtnH),
			value:   image.Pt(panelX+panelBtnW+110, y),
		})
	}
	return l
}

func (l *layout) hitMenu(p image.Point) (int, bool) {
	for i, r := range l.menu {
		if p.In(r) {
			return i, true
		}
	}
	return 0, false
}

// hitPanel returns the key and direction of the +/- button under p.
func (l *layout) hitPanel(p image.Point) (params.Key, params.Direction, bool) {
	for _, row := range l.rows {
		if p.In(row.plus) {
			return row.key, params.Increment, true
		}
		if p.In(row.minus) {
			return row.key, params.Decrement, true
		}
	}
	return 0, 0, false
}
