// Command triangle draws the reference triangle (1,1), (399,1), (200,400)
// filled red with a white outline into a 400×400 image.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"strings"

	"tinyrender/internal/batch"
	"tinyrender/internal/mathutil"
	"tinyrender/internal/raster"
)

func main() {
	output := flag.String("output", "triangle.png", "Output image (.png or .webp)")
	flag.Parse()

	const size = 400
	fb := raster.NewFrameBuffer(size, size, color.NRGBA{A: 255})

	a, b, c := mathutil.V2(1, 1), mathutil.V2(399, 1), mathutil.V2(200, 400)
	box := raster.BoundingBox(a, b, c)
	fmt.Printf("Bounding box: lb=(%d,%d) rt=(%d,%d)\n", box.LB.X, box.LB.Y, box.RT.X, box.RT.Y)

	pixels := 0
	red := fb.Plot(color.NRGBA{255, 0, 0, 255})
	raster.FillTriangle(a, b, c, func(x, y int) {
		pixels++
		red(x, y)
	})
	raster.DrawTriangle(a, b, c, fb.Plot(color.NRGBA{255, 255, 255, 255}))
	fmt.Printf("Filled %d pixels\n", pixels)

	format := "png"
	if strings.HasSuffix(strings.ToLower(*output), ".webp") {
		format = "webp"
	}
	if err := batch.Save(*output, fb.Image(), format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *output)
}
