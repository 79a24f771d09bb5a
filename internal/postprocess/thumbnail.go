package postprocess

import (
	"image"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Thumbnail scales img down to fit within maxSize×maxSize with Lanczos3
// resampling, preserving the aspect ratio. Smaller images are returned as is.
func Thumbnail(img *image.NRGBA, maxSize int) *image.NRGBA {
	if maxSize <= 0 {
		return img
	}
	out := resize.Thumbnail(uint(maxSize), uint(maxSize), img, resize.Lanczos3)
	if n, ok := out.(*image.NRGBA); ok {
		return n
	}
	b := out.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(n, n.Bounds(), out, b.Min, draw.Src)
	return n
}
