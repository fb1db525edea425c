package hal

import (
	"errors"
	"image"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// ErrQuit is returned by a step function to stop the runner cleanly.
var ErrQuit = errors.New("quit")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGBA8888 is 32bpp, byte order R, G, B, A (image.RGBA layout).
	PixelFormatRGBA8888 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error

	// Snapshot copies the last presented frame.
	Snapshot() *image.RGBA
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyF2
)

// KeyEvent is a keyboard event. Text input arrives with Code == KeyUnknown and
// Rune set.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// PointerButton identifies a mouse button.
type PointerButton uint8

const (
	PointerLeft PointerButton = iota + 1
	PointerRight
)

// PointerEvent is a mouse button transition at framebuffer coordinates.
type PointerEvent struct {
	X, Y   int
	Button PointerButton
	Press  bool
}

// Pointer provides mouse events and the current cursor position.
type Pointer interface {
	Events() <-chan PointerEvent
	Position() (x, y int)
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// HAL provides the only contact point between the viewer and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}
