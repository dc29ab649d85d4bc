// Package export writes rendered frames to image files. PNG goes through
// the standard encoder; WebP uses the pure-Go nativewebp encoder so the
// snapshot tool has no cgo dependency.
package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

// Options controls snapshot output.
type Options struct {
	// Scale resamples the image by this factor before encoding.
	// Values <= 0 or == 1 leave the image untouched.
	Scale float64
}

// Save writes img to path, choosing the encoder from the file extension.
// Supported extensions are .png and .webp.
func Save(path string, img image.Image, opts Options) error {
	if opts.Scale > 0 && opts.Scale != 1 {
		img = resample(img, opts.Scale)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(f, img)
	case ".webp":
		err = nativewebp.Encode(f, img, nil)
	default:
		err = fmt.Errorf("unsupported snapshot format %q", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// resample scales the image with Catmull-Rom filtering, which keeps the
// thin ray lines readable at both directions of scaling.
func resample(img image.Image, scale float64) image.Image {
	b := img.Bounds()
	w := int(float64(b.Dx()) * scale)
	h := int(float64(b.Dy()) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
