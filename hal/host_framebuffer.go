package hal

import (
	"image"
	"sync"
)

// hostFramebuffer is drawn into by the app and copied to a front buffer on Present.
// The window reads only the front buffer.
type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
	front  []byte
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 4
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
		front:  make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGBA8888 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front, f.buf)
	return nil
}

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	for i := 0; i+3 < len(f.buf); i += 4 {
		f.buf[i+0] = r
		f.buf[i+1] = g
		f.buf[i+2] = b
		f.buf[i+3] = 0xFF
	}
}

func (f *hostFramebuffer) Snapshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	f.snapshot(img.Pix)
	return img
}

func (f *hostFramebuffer) snapshot(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.front)
}
