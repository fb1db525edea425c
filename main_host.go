package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"surfview/app"
	"surfview/export"
	"surfview/hal"
	"surfview/internal/buildinfo"
)

func main() {
	var cfg hal.HeadlessConfig
	var appCfg app.Config
	var shotFormat string
	var shotOnExit, version bool
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", hal.DefaultHz, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&cfg.Width, "width", hal.DefaultWidth, "Framebuffer width in pixels.")
	flag.IntVar(&cfg.Height, "height", hal.DefaultHeight, "Framebuffer height in pixels.")
	flag.StringVar(&appCfg.Surface, "surface", "", "Open this surface instead of the menu (Seashell, Mobius, Torus, Spiral, Helical).")
	flag.BoolVar(&appCfg.Orthographic, "ortho", false, "Start with orthographic projection.")
	flag.IntVar(&appCfg.ResU, "res-u", 0, "Initial U resolution (0 = default).")
	flag.IntVar(&appCfg.ResV, "res-v", 0, "Initial V resolution (0 = default).")
	flag.StringVar(&appCfg.ShotDir, "shot-dir", ".", "Directory for screenshots.")
	flag.StringVar(&shotFormat, "shot-format", "png", "Screenshot format: png, bmp or tiff.")
	flag.IntVar(&appCfg.ShotScale, "shot-scale", 1, "Integer upscale factor for screenshots.")
	flag.BoolVar(&shotOnExit, "shot-on-exit", false, "Headless: save a screenshot after the last tick.")
	flag.BoolVar(&version, "version", false, "Print version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.Banner())
		return
	}

	f, err := export.ParseFormat(shotFormat)
	if err != nil {
		fatal(err)
	}
	appCfg.ShotFormat = f

	if cfg.Enabled {
		if shotOnExit {
			if cfg.Ticks == 0 {
				fatal(errors.New("-shot-on-exit needs -ticks"))
			}
			appCfg.ShotAtFrame = cfg.Ticks
			appCfg.QuitAfterShot = true
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, app.Runner(appCfg), cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fatal(err)
		}
		return
	}

	if err := hal.RunWindow(app.Runner(appCfg), hal.WindowConfig{Width: cfg.Width, Height: cfg.Height}); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
