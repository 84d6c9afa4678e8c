package main

import (
	"fmt"
	"os"

	"github.com/pspoerri/rastercast/internal/imageio"
	"github.com/pspoerri/rastercast/internal/raster"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: rasterinfo <image-file>\n")
		os.Exit(1)
	}

	img, err := imageio.DecodeFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("File: %s\n", os.Args[1])
	fmt.Printf("Pixel format: %s\n", img.DType())
	fmt.Printf("Calibration: offset=%g, scaling=%g\n", img.Offset(), img.Scaling())

	switch b := img.(type) {
	case raster.Null:
		fmt.Println("No image data")
	case *raster.RGBA8:
		printStats(b)
	case *raster.Gray8:
		printStats(b)
	case *raster.Gray16:
		printStats(b)
	case *raster.Gray32F:
		printStats(b)
	}
}

func printStats[T raster.Pixel](b *raster.Buffer[T]) {
	fmt.Printf("Size: %d x %d\n", b.Width(), b.Height())

	pix := b.Pix()
	if len(pix) == 0 {
		return
	}
	minRaw, maxRaw := float64(pix[0]), float64(pix[0])
	for _, v := range pix[1:] {
		f := float64(v)
		if f < minRaw {
			minRaw = f
		}
		if f > maxRaw {
			maxRaw = f
		}
	}
	fmt.Printf("Raw range: [%g, %g]\n", minRaw, maxRaw)
	fmt.Printf("Physical range: [%g, %g]\n",
		minRaw*b.Scaling()+b.Offset(), maxRaw*b.Scaling()+b.Offset())
}
