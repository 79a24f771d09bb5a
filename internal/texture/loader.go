package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
)

// Extensions lists the file types LoadTexture understands, in lookup
// priority order.
var Extensions = []string{".tga", ".png", ".jpg", ".jpeg"}

// Supported reports whether path has a texture extension.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// LoadTexture reads a TGA, PNG or JPEG file and returns an NRGBA image.
// Rows keep their file order: (0, 0) is the top-left texel.
func LoadTexture(path string) (*image.NRGBA, error) {
	decode := decoderFor(path)
	if decode == nil {
		return nil, fmt.Errorf("texture: unknown extension: %s", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}
	defer f.Close()

	img, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}

	return toNRGBA(img), nil
}

// decoderFor picks the decoder by extension. TGA has no magic number, so
// image.Decode sniffing would let it claim PNG and JPEG files.
func decoderFor(path string) func(io.Reader) (image.Image, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tga":
		return tga.Decode
	case ".png":
		return png.Decode
	case ".jpg", ".jpeg":
		return jpeg.Decode
	}
	return nil
}

// toNRGBA converts any image to NRGBA with bounds starting at (0, 0).
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		// Opaque sources: draw.Src already yields alpha 255.
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	default:
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				dst.SetNRGBA(x, y, c)
			}
		}
	}
	return dst
}
