package raster

import (
	"image"
	"image/color"
)

// Sampler returns the color at normalized texture coordinates (u, v).
type Sampler interface {
	Sample(u, v float64) color.NRGBA
}

// ImageSampler performs bilinear filtering with UV wrapping over an NRGBA
// texture. FlipV maps v = 0 to the bottom row, which is the OBJ convention.
type ImageSampler struct {
	Tex   *image.NRGBA
	FlipV bool
}

// Sample accesses Tex.Pix directly for performance.
func (s ImageSampler) Sample(u, v float64) color.NRGBA {
	tex := s.Tex
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()
	if w == 0 || h == 0 {
		return color.NRGBA{}
	}

	u = wrap(u)
	v = wrap(v)
	if s.FlipV {
		v = 1 - v
	}

	fx := u * float64(w-1)
	fy := v * float64(h-1)
	x0 := int(fx)
	y0 := int(fy)
	x1 := (x0 + 1) % w
	y1 := (y0 + 1) % h
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	stride := tex.Stride
	pix := tex.Pix

	// Four texels
	i00 := y0*stride + x0*4
	i10 := y0*stride + x1*4
	i01 := y1*stride + x0*4
	i11 := y1*stride + x1*4

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	var out [4]uint8
	for k := 0; k < 4; k++ {
		f := float64(pix[i00+k])*w00 + float64(pix[i10+k])*w10 + float64(pix[i01+k])*w01 + float64(pix[i11+k])*w11
		out[k] = uint8(f + 0.5)
	}
	return color.NRGBA{out[0], out[1], out[2], out[3]}
}

// Solid is a Sampler returning one color everywhere.
type Solid color.NRGBA

func (s Solid) Sample(_, _ float64) color.NRGBA {
	return color.NRGBA(s)
}

func wrap(t float64) float64 {
	t = t - float64(int(t))
	if t < 0 {
		t += 1.0
	}
	return t
}
