package texture

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Index maps lowercase texture stems to filesystem paths.
// TGA files take priority over PNG and JPEG for the same stem.
type Index struct {
	entries map[string]string // stem.lower() → full path
}

// BuildIndex scans dir and its subdirectories for texture files.
func BuildIndex(dir string) *Index {
	idx := &Index{entries: make(map[string]string)}

	filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || !Supported(path) {
			return nil
		}
		idx.add(path)
		return nil
	})

	return idx
}

func (idx *Index) add(path string) {
	stem := stemOf(path)
	existing, exists := idx.entries[stem]
	if !exists || rank(path) < rank(existing) {
		idx.entries[stem] = path
	}
}

// ResolvePath returns the filesystem path for a texture name, or ("", false).
// Directory prefixes and extensions in name are ignored.
func (idx *Index) ResolvePath(name string) (string, bool) {
	path, ok := idx.entries[stemOf(strings.ReplaceAll(name, "\\", "/"))]
	return path, ok
}

// ForModel finds the diffuse map of a model file: "<stem>_diffuse" first,
// then a texture sharing the model's stem.
func (idx *Index) ForModel(modelPath string) (string, bool) {
	stem := stemOf(modelPath)
	if path, ok := idx.entries[stem+"_diffuse"]; ok {
		return path, true
	}
	path, ok := idx.entries[stem]
	return path, ok
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	return len(idx.entries)
}

func stemOf(path string) string {
	base := filepath.Base(path)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}

func rank(path string) int {
	return slices.Index(Extensions, strings.ToLower(filepath.Ext(path)))
}
