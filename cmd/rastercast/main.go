package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/pspoerri/rastercast/internal/encode"
	"github.com/pspoerri/rastercast/internal/imageio"
	"github.com/pspoerri/rastercast/internal/raster"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	var (
		input       string
		output      string
		target      string
		offset      float64
		scaling     float64
		format      string
		quality     int
		cpuProfile  bool
		verbose     bool
		showVersion bool
	)

	flag.StringVar(&input, "i", "", "Input image (png, jpeg, tiff, bmp, webp)")
	flag.StringVar(&output, "o", "", "Output image")
	flag.StringVar(&target, "t", "rgba8", "Target pixel format: rgba8, gray8, gray16, gray32f")
	flag.Float64Var(&offset, "offset", 0.0, "Calibration offset of the output raster")
	flag.Float64Var(&scaling, "scaling", 1.0, "Calibration scaling of the output raster")
	flag.StringVar(&format, "format", "", "Output encoding: png, jpeg, webp, tiff, terrarium (default: from output extension)")
	flag.IntVar(&quality, "quality", 85, "JPEG/WebP quality 1-100")
	flag.BoolVar(&cpuProfile, "cpuprofile", false, "Write a CPU profile to the working directory")
	flag.BoolVar(&verbose, "verbose", false, "Verbose output")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rastercast -i input -o output [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Convert a raster image between pixel storage formats, optionally\n")
		fmt.Fprintf(os.Stderr, "requantizing it under a new offset/scaling calibration.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("rastercast %s (commit %s)\n", version, commit)
		os.Exit(0)
	}

	if input == "" || output == "" {
		flag.Usage()
		os.Exit(1)
	}

	if cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	dtype, err := raster.ParseDType(target)
	if err != nil {
		log.Fatalf("Invalid target format: %v", err)
	}

	if format == "" {
		format = formatFromExtension(output)
		if format == "" {
			log.Fatalf("Cannot infer output encoding from %q, pass -format", output)
		}
	}

	src, err := imageio.DecodeFile(input)
	if err != nil {
		log.Fatalf("Reading input: %v", err)
	}

	start := time.Now()
	out, err := raster.CastImage(src, dtype, offset, scaling)
	if err != nil {
		log.Fatalf("Converting: %v", err)
	}
	if verbose {
		log.Infof("cast %s -> %s (offset=%g scaling=%g) in %s",
			src.DType(), out.DType(), offset, scaling, time.Since(start))
	}

	if err := encode.WriteFile(output, out, format, quality); err != nil {
		log.Fatalf("Writing output: %v", err)
	}
	if verbose {
		log.Infof("wrote %s", output)
	}
}

// formatFromExtension maps an output filename to an encoder format name.
func formatFromExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".webp":
		return "webp"
	case ".tif", ".tiff":
		return "tiff"
	default:
		return ""
	}
}
