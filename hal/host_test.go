package hal

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"
)

func TestFramebufferPresentSnapshot(t *testing.T) {
	fb := newHostFramebuffer(3, 2)
	if fb.StrideBytes() != 12 || len(fb.Buffer()) != 24 || fb.Format() != PixelFormatRGBA8888 {
		t.Fatalf("layout stride=%d len=%d", fb.StrideBytes(), len(fb.Buffer()))
	}

	fb.ClearRGB(10, 20, 30)
	if img := fb.Snapshot(); img.Pix[0] != 0 {
		t.Fatalf("snapshot must only see presented frames")
	}
	if err := fb.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	img := fb.Snapshot()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds=%v", img.Bounds())
	}
	if got := img.RGBAAt(2, 1); got.R != 10 || got.G != 20 || got.B != 30 || got.A != 0xFF {
		t.Fatalf("pixel=%+v", got)
	}

	// Drawing after Present does not leak into the snapshot.
	fb.ClearRGB(0, 0, 0)
	if fb.Snapshot().RGBAAt(0, 0).R != 10 {
		t.Fatalf("front buffer changed without Present")
	}
}

func TestHostLogger(t *testing.T) {
	var buf bytes.Buffer
	h := newHost(4, 4, &buf)
	h.Logger().WriteLineString("app: hello")
	h.Logger().WriteLineBytes([]byte("export: saved"))
	if got := buf.String(); got != "app: hello\nexport: saved\n" {
		t.Fatalf("log=%q", got)
	}
}

func TestNewHostDefaults(t *testing.T) {
	h := newHost(0, -1, &bytes.Buffer{})
	fb := h.Display().Framebuffer()
	if fb.Width() != DefaultWidth || fb.Height() != DefaultHeight {
		t.Fatalf("size=%dx%d", fb.Width(), fb.Height())
	}
	if h.Input().Keyboard() == nil || h.Input().Pointer() == nil {
		t.Fatalf("missing input devices")
	}
}

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	h := newHost(4, 4, &bytes.Buffer{})
	steps := 0
	newApp := func(HAL) (func() error, error) {
		return func() error { steps++; return nil }, nil
	}
	err := runHeadless(context.Background(), h, newApp, HeadlessConfig{Hz: 1000, Ticks: 5})
	if err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	if steps != 5 {
		t.Fatalf("steps=%d", steps)
	}
}

func TestRunHeadlessQuit(t *testing.T) {
	h := newHost(4, 4, &bytes.Buffer{})
	steps := 0
	newApp := func(HAL) (func() error, error) {
		return func() error {
			steps++
			if steps == 3 {
				return ErrQuit
			}
			return nil
		}, nil
	}
	if err := runHeadless(context.Background(), h, newApp, HeadlessConfig{Hz: 1000}); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	if steps != 3 {
		t.Fatalf("steps=%d", steps)
	}
}

func TestRunHeadlessErrors(t *testing.T) {
	h := newHost(4, 4, &bytes.Buffer{})
	boom := errors.New("boom")

	err := runHeadless(context.Background(), h, func(HAL) (func() error, error) {
		return nil, boom
	}, HeadlessConfig{})
	if !errors.Is(err, boom) {
		t.Fatalf("constructor err=%v", err)
	}

	err = runHeadless(context.Background(), h, func(HAL) (func() error, error) {
		return func() error { return boom }, nil
	}, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, boom) {
		t.Fatalf("step err=%v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err = runHeadless(ctx, h, func(HAL) (func() error, error) {
		return func() error { return nil }, nil
	}, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("ctx err=%v", err)
	}
}
