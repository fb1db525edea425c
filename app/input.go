package app

import (
	"image"

	"surfview/hal"
	"surfview/params"
	"surfview/surface"
)

type deltaKind uint8

const (
	deltaSelect deltaKind = iota + 1
	deltaBack
	deltaAdjust
	deltaToggleProjection
	deltaSave
	deltaMenuMove
	deltaMenuChoose
	deltaQuit
)

// delta is one user request collected from input, before it touches any state.
type delta struct {
	kind deltaKind

	surface surface.Kind
	key     params.Key
	dir     params.Direction
	move    int
}

type screen uint8

const (
	screenMenu screen = iota
	screenSurface
)

// Shortcut runes for the control panel, in (increment, decrement) pairs.
var adjustRunes = map[rune]delta{
	'a': {kind: deltaAdjust, key: params.ShapeA, dir: params.Increment},
	'z': {kind: deltaAdjust, key: params.ShapeA, dir: params.Decrement},
	's': {kind: deltaAdjust, key: params.ShapeB, dir: params.Increment},
	'x': {kind: deltaAdjust, key: params.ShapeB, dir: params.Decrement},
	'u': {kind: deltaAdjust, key: params.ResU, dir: params.Increment},
	'j': {kind: deltaAdjust, key: params.ResU, dir: params.Decrement},
	'v': {kind: deltaAdjust, key: params.ResV, dir: params.Increment},
	'b': {kind: deltaAdjust, key: params.ResV, dir: params.Decrement},
	'p': {kind: deltaToggleProjection},
}

// collectDeltas turns raw key and pointer events into deltas for the current screen.
// Only presses count; releases are ignored.
func collectDeltas(sc screen, l *layout, keys []hal.KeyEvent, clicks []hal.PointerEvent) []delta {
	var out []delta
	for _, ev := range keys {
		if !ev.Press {
			continue
		}
		if d, ok := keyDelta(sc, l, ev); ok {
			out = append(out, d)
		}
	}
	for _, ev := range clicks {
		if !ev.Press || ev.Button != hal.PointerLeft {
			continue
		}
		out = append(out, clickDeltas(sc, l, image.Pt(ev.X, ev.Y))...)
	}
	return out
}

func keyDelta(sc screen, l *layout, ev hal.KeyEvent) (delta, bool) {
	if sc == screenMenu {
		switch ev.Code {
		case hal.KeyUp:
			return delta{kind: deltaMenuMove, move: -1}, true
		case hal.KeyDown:
			return delta{kind: deltaMenuMove, move: +1}, true
		case hal.KeyEnter:
			return delta{kind: deltaMenuChoose}, true
		case hal.KeyEscape:
			return delta{kind: deltaQuit}, true
		}
		if n := int(ev.Rune - '1'); ev.Code == hal.KeyUnknown && n >= 0 && n < len(l.kinds) {
			return delta{kind: deltaSelect, surface: l.kinds[n]}, true
		}
		return delta{}, false
	}

	switch ev.Code {
	case hal.KeyEscape, hal.KeyBackspace:
		return delta{kind: deltaBack}, true
	case hal.KeyF2:
		return delta{kind: deltaSave}, true
	case hal.KeyUnknown:
		d, ok := adjustRunes[ev.Rune]
		return d, ok
	}
	return delta{}, false
}

func clickDeltas(sc screen, l *layout, p image.Point) []delta {
	if sc == screenMenu {
		if i, ok := l.hitMenu(p); ok {
			return []delta{{kind: deltaSelect, surface: l.kinds[i]}}
		}
		return nil
	}

	var out []delta
	if p.In(l.back) {
		out = append(out, delta{kind: deltaBack})
	}
	if p.In(l.save) {
		out = append(out, delta{kind: deltaSave})
	}
	if k, dir, ok := l.hitPanel(p); ok {
		out = append(out, delta{kind: deltaAdjust, key: k, dir: dir})
	}
	return out
}
