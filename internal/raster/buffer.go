package raster

import (
	"image"
	"image/color"
	"math"

	"tinyrender/internal/mathutil"
)

// Far is the initial depth of every DepthBuffer cell.
const Far = math.MaxFloat64

// FrameBuffer holds the rendering target as a flat slice for cache locality.
// (0, 0) is the bottom-left pixel; Image flips rows so the result is
// upright.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8 // RGBA interleaved, len = W*H*4
}

// NewFrameBuffer allocates a buffer cleared to bg.
func NewFrameBuffer(w, h int, bg color.NRGBA) *FrameBuffer {
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, w*h*4),
	}
	fb.Clear(bg)
	return fb
}

func (fb *FrameBuffer) Clear(bg color.NRGBA) {
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = bg.R
		fb.Color[i+1] = bg.G
		fb.Color[i+2] = bg.B
		fb.Color[i+3] = bg.A
	}
}

// Set writes one pixel. Out-of-range coordinates are ignored.
func (fb *FrameBuffer) Set(x, y int, c color.NRGBA) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	i := (y*fb.Width + x) * 4
	fb.Color[i] = c.R
	fb.Color[i+1] = c.G
	fb.Color[i+2] = c.B
	fb.Color[i+3] = c.A
}

// At returns the pixel at (x, y) in buffer coordinates.
func (fb *FrameBuffer) At(x, y int) color.NRGBA {
	i := (y*fb.Width + x) * 4
	return color.NRGBA{fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3]}
}

// Plot returns a PixelFunc painting c.
func (fb *FrameBuffer) Plot(c color.NRGBA) PixelFunc {
	return func(x, y int) { fb.Set(x, y, c) }
}

// Image converts the buffer to an upright NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	row := fb.Width * 4
	for y := 0; y < fb.Height; y++ {
		src := (fb.Height - 1 - y) * row
		copy(img.Pix[y*img.Stride:y*img.Stride+row], fb.Color[src:src+row])
	}
	return img
}

// DepthBuffer is a per-pixel depth grid owned by the caller for one render
// pass. It is not safe for concurrent use.
type DepthBuffer struct {
	Width  int
	Height int
	Depth  []float64 // len = W*H, column x at index y*W + x
}

// NewDepthBuffer allocates a buffer seeded with Far.
func NewDepthBuffer(w, h int) *DepthBuffer {
	zb := &DepthBuffer{
		Width:  w,
		Height: h,
		Depth:  make([]float64, w*h),
	}
	zb.Reset()
	return zb
}

// Reset seeds every cell with Far before a new frame.
func (zb *DepthBuffer) Reset() {
	for i := range zb.Depth {
		zb.Depth[i] = Far
	}
}

func (zb *DepthBuffer) At(x, y int) float64 {
	return zb.Depth[y*zb.Width+x]
}

func (zb *DepthBuffer) Set(x, y int, z float64) {
	zb.Depth[y*zb.Width+x] = z
}

// InBounds reports whether (x, y) addresses a cell.
func (zb *DepthBuffer) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < zb.Width && y < zb.Height
}

// Bounds is the inclusive pixel rectangle covered by the buffer.
func (zb *DepthBuffer) Bounds() mathutil.Rect[int] {
	return mathutil.Rect[int]{
		LB: mathutil.Vec2[int]{},
		RT: mathutil.Vec2[int]{X: zb.Width - 1, Y: zb.Height - 1},
	}
}

// Image renders the finite depths as grayscale, near = white.
func (zb *DepthBuffer) Image() *image.Gray {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, z := range zb.Depth {
		if z == Far {
			continue
		}
		lo = math.Min(lo, z)
		hi = math.Max(hi, z)
	}
	img := image.NewGray(image.Rect(0, 0, zb.Width, zb.Height))
	span := hi - lo
	for y := 0; y < zb.Height; y++ {
		for x := 0; x < zb.Width; x++ {
			z := zb.At(x, y)
			if z == Far {
				continue
			}
			g := 255.0
			if span > 0 {
				g = 255 * (1 - (z-lo)/span)
			}
			img.Pix[(zb.Height-1-y)*img.Stride+x] = clamp255(g)
		}
	}
	return img
}
