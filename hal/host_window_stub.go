//go:build !cgo

package hal

import "errors"

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

func RunWindow(_ func(h HAL) (func() error, error), _ WindowConfig) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
