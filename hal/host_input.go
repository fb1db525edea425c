//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

var hostKeys = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyEnter, KeyEnter},
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyBackspace, KeyBackspace},
	{ebiten.KeyF2, KeyF2},
}

func (k *hostKeyboard) poll() {
	emit := func(ev KeyEvent) {
		select {
		case k.ch <- ev:
		default:
		}
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		emit(KeyEvent{Press: true, Rune: r})
	}

	for _, hk := range hostKeys {
		if inpututil.IsKeyJustPressed(hk.key) {
			emit(KeyEvent{Code: hk.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(hk.key) {
			emit(KeyEvent{Code: hk.code, Press: false})
		}
	}
}

type hostPointer struct {
	ch   chan PointerEvent
	x, y int
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 16)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }
func (p *hostPointer) Position() (x, y int)        { return p.x, p.y }

var hostButtons = []struct {
	btn  ebiten.MouseButton
	code PointerButton
}{
	{ebiten.MouseButtonLeft, PointerLeft},
	{ebiten.MouseButtonRight, PointerRight},
}

func (p *hostPointer) poll() {
	p.x, p.y = ebiten.CursorPosition()
	for _, hb := range hostButtons {
		press := inpututil.IsMouseButtonJustPressed(hb.btn)
		release := inpututil.IsMouseButtonJustReleased(hb.btn)
		if !press && !release {
			continue
		}
		select {
		case p.ch <- PointerEvent{X: p.x, Y: p.y, Button: hb.code, Press: press}:
		default:
		}
	}
}
