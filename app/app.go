// Package app is the interactive shell around the viewer core: a surface menu, the
// control panel, Back/Save buttons and keyboard shortcuts.
//
// Each Step runs three stages: collect input deltas, apply them to the parameter
// store, then draw the frame derived from the store.
package app

import (
	"errors"
	"fmt"
	"time"

	"surfview/export"
	"surfview/hal"
	"surfview/internal/buildinfo"
	"surfview/params"
	"surfview/surface"
	"surfview/surfgl"
	"surfview/viewer"
)

// statusFrames is how long a status message stays on screen (3s at 30 Hz).
const statusFrames = 90

type Config struct {
	// Surface preselects a surface by name; empty starts at the menu.
	Surface      string
	Orthographic bool
	// ResU and ResV override the default mesh resolution when non-zero.
	ResU, ResV int

	ShotDir    string
	ShotFormat export.Format
	ShotScale  int
	// ShotAtFrame saves a screenshot after that frame is drawn (0 = never).
	ShotAtFrame uint64
	// QuitAfterShot stops the runner once the ShotAtFrame screenshot is written.
	QuitAfterShot bool

	// Now is the screenshot clock; defaults to time.Now.
	Now func() time.Time
}

type App struct {
	cfg Config
	log hal.Logger

	fb     hal.Framebuffer
	kbd    hal.Keyboard
	ptr    hal.Pointer
	target *surfgl.RGBATarget
	disp   *fbDisplay
	lay    *layout

	core *viewer.Core
	shot *export.Writer

	menuCursor int
	frameNo    uint64

	status      string
	statusTicks int

	keys   []hal.KeyEvent
	clicks []hal.PointerEvent
}

// New builds the app on top of h.
func New(h hal.HAL, cfg Config) (*App, error) {
	if h == nil || h.Display() == nil {
		return nil, errors.New("app: no display")
	}
	fb := h.Display().Framebuffer()
	if fb == nil || fb.Format() != hal.PixelFormatRGBA8888 {
		return nil, errors.New("app: unsupported framebuffer")
	}
	w, hgt := fb.Width(), fb.Height()
	if w <= 0 || hgt <= 0 {
		return nil, fmt.Errorf("app: invalid framebuffer size %dx%d", w, hgt)
	}

	a := &App{
		cfg:  cfg,
		log:  h.Logger(),
		fb:   fb,
		lay:  newLayout(w, hgt),
		core: viewer.New(w, hgt),
		shot: &export.Writer{
			Dir:    cfg.ShotDir,
			Format: cfg.ShotFormat,
			Scale:  cfg.ShotScale,
			Now:    cfg.Now,
		},
		target: &surfgl.RGBATarget{
			Buf:    fb.Buffer(),
			Stride: fb.StrideBytes(),
			W:      w,
			H:      hgt,
		},
		disp: newFBDisplay(fb),
	}
	if in := h.Input(); in != nil {
		a.kbd = in.Keyboard()
		a.ptr = in.Pointer()
	}
	if !a.disp.initFont() {
		return nil, errors.New("app: font init failed")
	}

	if a.log != nil {
		a.log.WriteLineString(buildinfo.Banner())
	}

	store := a.core.Store()
	store.SetPerspective(!cfg.Orthographic)
	if cfg.ResU > 0 || cfg.ResV > 0 {
		p := store.Params()
		u, v := p.ResU, p.ResV
		if cfg.ResU > 0 {
			u = cfg.ResU
		}
		if cfg.ResV > 0 {
			v = cfg.ResV
		}
		store.SetResolution(u, v)
	}
	if cfg.Surface != "" {
		if err := a.core.SetSurfaceByName(cfg.Surface); err != nil {
			return nil, err
		}
		a.logf("surface %s selected", cfg.Surface)
	}
	return a, nil
}

// Runner adapts New to the hal runners.
func Runner(cfg Config) func(hal.HAL) (func() error, error) {
	return func(h hal.HAL) (func() error, error) {
		a, err := New(h, cfg)
		if err != nil {
			return nil, err
		}
		return a.Step, nil
	}
}

// Core exposes the viewer core.
func (a *App) Core() *viewer.Core { return a.core }

// Status returns the message currently shown on screen, if any.
func (a *App) Status() string {
	if a.statusTicks <= 0 {
		return ""
	}
	return a.status
}

// Step processes one frame. It returns hal.ErrQuit when the user asks to leave.
func (a *App) Step() error {
	defer a.logPanic()

	a.frameNo++
	ds := collectDeltas(a.screen(), a.lay, a.drainKeys(), a.drainClicks())
	fx := a.apply(ds)
	a.draw()

	if a.cfg.ShotAtFrame != 0 && a.frameNo == a.cfg.ShotAtFrame {
		fx.save = true
		fx.quit = fx.quit || a.cfg.QuitAfterShot
	}
	if fx.save {
		a.saveScreenshot()
	}
	if fx.quit {
		return hal.ErrQuit
	}
	return nil
}

func (a *App) screen() screen {
	if a.core.Store().Active() {
		return screenSurface
	}
	return screenMenu
}

func (a *App) drainKeys() []hal.KeyEvent {
	a.keys = a.keys[:0]
	if a.kbd == nil {
		return a.keys
	}
	ch := a.kbd.Events()
	for {
		select {
		case ev := <-ch:
			a.keys = append(a.keys, ev)
		default:
			return a.keys
		}
	}
}

func (a *App) drainClicks() []hal.PointerEvent {
	a.clicks = a.clicks[:0]
	if a.ptr == nil {
		return a.clicks
	}
	ch := a.ptr.Events()
	for {
		select {
		case ev := <-ch:
			a.clicks = append(a.clicks, ev)
		default:
			return a.clicks
		}
	}
}

type effects struct {
	save bool
	quit bool
}

func (a *App) apply(ds []delta) effects {
	var fx effects
	for _, d := range ds {
		switch d.kind {
		case deltaSelect:
			a.selectSurface(d.surface)
		case deltaMenuMove:
			n := len(a.lay.kinds)
			a.menuCursor = ((a.menuCursor+d.move)%n + n) % n
		case deltaMenuChoose:
			a.selectSurface(a.lay.kinds[a.menuCursor])
		case deltaBack:
			a.core.ClearSurface()
		case deltaAdjust:
			a.core.AdjustParam(d.key, d.dir)
		case deltaToggleProjection:
			a.core.Store().TogglePerspective()
		case deltaSave:
			fx.save = true
		case deltaQuit:
			fx.quit = true
		}
	}
	return fx
}

func (a *App) selectSurface(k surface.Kind) {
	if err := a.core.SetSurface(k); err != nil {
		a.logf("%v", err)
		return
	}
	a.logf("surface %s selected", k)
}

func (a *App) saveScreenshot() {
	path, err := a.shot.Save(a.fb.Snapshot())
	if err != nil {
		a.logf("screenshot failed: %v", err)
		a.setStatus("Save failed: " + err.Error())
		return
	}
	a.logf("saved screenshot: %s", path)
	a.setStatus("Saved " + path)
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusTicks = statusFrames
}

func (a *App) logf(format string, args ...any) {
	if a.log == nil {
		return
	}
	a.log.WriteLineString("app: " + fmt.Sprintf(format, args...))
}

func formatParam(p params.Params, k params.Key) string {
	switch k {
	case params.ShapeA:
		return fmt.Sprintf("%.2f", p.ShapeA)
	case params.ShapeB:
		return fmt.Sprintf("%.2f", p.ShapeB)
	case params.ResU:
		return fmt.Sprintf("%d", p.ResU)
	case params.ResV:
		return fmt.Sprintf("%d", p.ResV)
	default:
		return ""
	}
}
