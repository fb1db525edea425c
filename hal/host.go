package hal

import (
	"fmt"
	"io"
	"sync"
)

// Default window size in framebuffer pixels.
const (
	DefaultWidth  = 1000
	DefaultHeight = 800
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	ptr    *hostPointer
}

func newHost(width, height int, logw io.Writer) *hostHAL {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &hostHAL{
		logger: &hostLogger{w: logw},
		fb:     newHostFramebuffer(width, height),
		kbd:    newHostKeyboard(),
		ptr:    newHostPointer(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd, ptr: h.ptr} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
	ptr *hostPointer
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Pointer() Pointer   { return in.ptr }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
