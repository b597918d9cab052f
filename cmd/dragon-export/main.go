// Command dragon-export renders a single dragon curve frame to a PNG file
// without opening a window.
//
// Usage:
//
//	dragon-export -folds 12 -angle 90 -width 1920 -height 1080 -o dragon.png
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/phanxgames/dragon"
)

var (
	foldsFlag  = flag.Int("folds", dragon.DefaultFolds, "Number of folds")
	angleFlag  = flag.Float64("angle", 90, "Fold angle in degrees")
	widthFlag  = flag.Int("width", 800, "Image width in pixels")
	heightFlag = flag.Int("height", 600, "Image height in pixels")
	outFlag    = flag.String("o", "dragon.png", "Output file, - for stdout")
)

func main() {
	log.SetPrefix("[dragon-export] ")
	log.SetFlags(0)
	flag.Parse()

	if *foldsFlag < 0 {
		log.Fatalf("folds %d must not be negative", *foldsFlag)
	}
	if *widthFlag <= 0 || *heightFlag <= 0 {
		log.Fatalf("image size %dx%d must be positive", *widthFlag, *heightFlag)
	}

	if err := export(*outFlag, *foldsFlag, *angleFlag*math.Pi/180, *widthFlag, *heightFlag); err != nil {
		log.Fatal(err)
	}
}

func export(path string, folds int, angle float64, width, height int) error {
	if path == "-" {
		return dragon.RenderPNG(os.Stdout, folds, angle, width, height)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := dragon.RenderPNG(f, folds, angle, width, height); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("wrote %s (%s)", path, summary(folds, angle))
	return nil
}

// summary describes the exported curve in curve units.
func summary(folds int, angle float64) string {
	b := dragon.Bounds(dragon.Generate(folds, angle))
	return fmt.Sprintf("%d folds, %d vertices, extent %.4gx%.4g at (%.4g, %.4g)",
		folds, dragon.VertexCount(folds), b.Width, b.Height, b.X, b.Y)
}
