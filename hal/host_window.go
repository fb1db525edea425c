//go:build cgo

package hal

import (
	"errors"
	"os"

	"surfview/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

// RunWindow starts a desktop window that displays the framebuffer and forwards
// keyboard and mouse input. The step function runs once per tick at DefaultHz.
// It blocks until the window closes or a step returns ErrQuit.
func RunWindow(newApp func(HAL) (func() error, error), cfg WindowConfig) error {
	h := newHost(cfg.Width, cfg.Height, os.Stdout)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	title := cfg.Title
	if title == "" {
		title = "Parametric Surfaces"
	}

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle(title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width, h.fb.height)
	ebiten.SetTPS(DefaultHz)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	g.h.ptr.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil || len(g.scratch) != len(fb.front) {
		g.scratch = make([]byte, len(fb.front))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshot(g.scratch)
	g.fbImg.WritePixels(g.scratch)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
