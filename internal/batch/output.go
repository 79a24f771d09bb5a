package batch

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"github.com/fogleman/fauxgl"
)

// Save writes img to path as PNG or lossless WebP, creating parent
// directories.
func Save(path string, img image.Image, format string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("batch: %w", err)
	}

	switch format {
	case "png":
		if err := fauxgl.SavePNG(path, img); err != nil {
			return fmt.Errorf("batch: write %s: %w", path, err)
		}
		return nil
	case "webp":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("batch: %w", err)
		}
		if err := nativewebp.Encode(f, img, nil); err != nil {
			f.Close()
			return fmt.Errorf("batch: WebP encode %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("batch: write %s: %w", path, err)
		}
		return nil
	}
	return fmt.Errorf("batch: unknown format %q", format)
}
