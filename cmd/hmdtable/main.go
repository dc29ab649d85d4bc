// Command hmdtable prints derived viewer optics as a table: for the
// registered presets, for a custom preset loaded from a JSON file, or for
// a focal-length sweep over the default viewer geometry.
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"optics-bench/internal/config"
	"optics-bench/internal/device"
	"optics-bench/internal/optics"
)

func main() {
	specFile := flag.String("spec", "", "Path to a custom viewer spec JSON file")
	fmin := flag.Float64("fmin", 0, "Sweep start focal length in mm (0 disables the sweep)")
	fmax := flag.Float64("fmax", 60, "Sweep end focal length in mm")
	fstep := flag.Float64("fstep", 5, "Sweep step in mm")
	flag.Parse()

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Viewer\tMag\tImage (m)\tFOV V\tFOV H\tNasal\tTemporal")

	switch {
	case *fmin > 0:
		if *fstep <= 0 {
			fmt.Fprintln(os.Stderr, "fstep must be positive")
			os.Exit(1)
		}
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "configuration: %v\n", err)
			os.Exit(1)
		}
		p := optics.HMDParams{
			LensToDisplay: cfg.HMD.LensToDisplay,
			EyeRelief:     cfg.HMD.EyeRelief,
			IPD:           cfg.HMD.IPD,
			DisplayWidth:  cfg.HMD.DisplayWidth,
			DisplayHeight: cfg.HMD.DisplayHeight,
		}
		for f := *fmin; f <= *fmax+1e-9; f += *fstep {
			p.FocalLength = f / 1000
			printRow(w, fmt.Sprintf("f=%.0fmm", f), optics.CalcHMDOptics(p))
		}

	case *specFile != "":
		custom, err := device.LoadFromFile(*specFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "loading spec: %v\n", err)
			os.Exit(1)
		}
		printRow(w, custom.Name(), optics.CalcHMDOptics(custom.Params()))

	default:
		for _, name := range device.ListSpecs() {
			spec := device.GetSpec(name)
			printRow(w, spec.Name(), optics.CalcHMDOptics(spec.Params()))
		}
	}

	w.Flush()
}

func printRow(w *tabwriter.Writer, name string, o optics.HMDOptics) {
	fmt.Fprintf(w, "%s\t%.1fx\t%.2f\t%.1f°\t%.1f°\t%.1f°\t%.1f°\n",
		name, o.Magnification, o.ImageDistance,
		o.FOVVertical, o.FOVHorizontal, o.FOVHNasal, o.FOVHTemporal)
}
