// Package export writes snapshots of the rendered frame to timestamped image files.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

var (
	ErrUnknownFormat = errors.New("export: unknown image format")
	ErrEmptyImage    = errors.New("export: empty image")
)

// Format is an output image encoding.
type Format uint8

const (
	PNG Format = iota
	BMP
	TIFF
)

func (f Format) Ext() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return ""
	}
}

// ParseFormat accepts a format name or file extension, with or without a dot.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "", "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

const filenameLayout = "20060102_150405"

// Filename returns screenshot_YYYYMMDD_HHMMSS.<ext> for t.
func Filename(t time.Time, f Format) string {
	return "screenshot_" + t.Format(filenameLayout) + "." + f.Ext()
}

// Writer saves snapshots into Dir. Scale > 1 enlarges the image with
// nearest-neighbour sampling so pixels stay sharp.
type Writer struct {
	Dir    string
	Format Format
	Scale  int

	// Now defaults to time.Now.
	Now func() time.Time
}

// Save encodes img to a new timestamped file and returns its path. The write is
// synchronous.
func (w *Writer) Save(img image.Image) (string, error) {
	if img == nil || img.Bounds().Empty() {
		return "", ErrEmptyImage
	}
	if w.Format.Ext() == "" {
		return "", fmt.Errorf("%w: %d", ErrUnknownFormat, w.Format)
	}

	now := time.Now
	if w.Now != nil {
		now = w.Now
	}
	path := filepath.Join(w.Dir, Filename(now(), w.Format))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export: create %s: %w", path, err)
	}
	if err := w.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("export: close %s: %w", path, err)
	}
	return path, nil
}

// Encode writes img to out in the writer's format after scaling.
func (w *Writer) Encode(out io.Writer, img image.Image) error {
	img = upscale(img, w.Scale)
	var err error
	switch w.Format {
	case PNG:
		err = png.Encode(out, img)
	case BMP:
		err = bmp.Encode(out, img)
	case TIFF:
		err = tiff.Encode(out, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, w.Format)
	}
	if err != nil {
		return fmt.Errorf("export: encode %s: %w", w.Format.Ext(), err)
	}
	return nil
}

func upscale(src image.Image, scale int) image.Image {
	if scale <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
