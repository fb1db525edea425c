//go:build !cgo

package hal

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) poll() {
	// No keyboard support without the window backend.
}

type hostPointer struct {
	ch chan PointerEvent
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 16)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }
func (p *hostPointer) Position() (x, y int)        { return 0, 0 }

func (p *hostPointer) poll() {}
