// Command snapshot renders a ray diagram headlessly and writes it to a
// PNG or WebP file. Useful for documentation and for eyeballing layout
// changes without launching the UI.
package main

import (
	"flag"
	"fmt"
	"os"

	"optics-bench/internal/config"
	"optics-bench/internal/export"
	"optics-bench/internal/optics"
	"optics-bench/internal/render"
	"optics-bench/internal/scene"
)

func main() {
	focal := flag.Float64("f", 40, "Focal length in mm")
	dist := flag.Float64("d", 100, "Lens-to-display distance in mm")
	width := flag.Int("w", 1600, "Output width in pixels")
	height := flag.Int("h", 1000, "Output height in pixels")
	scale := flag.Float64("scale", 1, "Resample factor applied before encoding")
	out := flag.String("o", "snapshot.png", "Output path (.png or .webp)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration: %v\n", err)
		os.Exit(1)
	}

	params := scene.Params{FocalLength: *focal, ObjectDistance: *dist}
	frame := scene.BuildFrame(cfg, params, *width, *height)
	img := render.New(cfg).DrawFrame(frame)

	if err := export.Save(*out, img, export.Options{Scale: *scale}); err != nil {
		fmt.Fprintf(os.Stderr, "export: %v\n", err)
		os.Exit(1)
	}

	sol := frame.Solution
	fmt.Printf("f=%.0fmm d_o=%.0fmm -> %s", sol.FocalLength, sol.ObjectDistance, sol.Regime())
	if sol.Type != optics.AtInfinity && !frame.ImageInView {
		fmt.Printf(" (image at %.1fmm, off screen)", sol.ImageDistance)
	}
	fmt.Printf("\nwrote %s\n", *out)
}
