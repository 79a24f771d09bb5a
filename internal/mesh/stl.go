package mesh

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"tinyrender/internal/mathutil"

	"github.com/chewxy/math32"
	"github.com/hschendel/stl"
	"golang.org/x/text/encoding/charmap"
)

// LoadSTL reads an ASCII or binary STL file. Every facet becomes one face
// with its own three vertices; STL carries no shared vertices or UVs.
func LoadSTL(path string) (*Mesh, error) {
	solid, err := stl.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mesh: read %s: %w", path, err)
	}
	m, err := fromSolid(solid)
	if err != nil {
		return nil, fmt.Errorf("mesh: %s: %w", path, err)
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return m, nil
}

// ReadSTL parses STL data from r. The input is buffered because format
// detection needs to seek.
func ReadSTL(r io.Reader) (*Mesh, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("mesh: stl: %w", err)
	}
	solid, err := stl.ReadAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("mesh: stl: %w", err)
	}
	return fromSolid(solid)
}

func fromSolid(solid *stl.Solid) (*Mesh, error) {
	m := &Mesh{
		Name:  solidName(solid),
		Verts: make([]mathutil.Vec3[float64], 0, len(solid.Triangles)*3),
		Faces: make([][3]int, 0, len(solid.Triangles)),
	}
	for i, tri := range solid.Triangles {
		base := len(m.Verts)
		for _, v := range tri.Vertices {
			if !finite(v) {
				return nil, fmt.Errorf("facet %d: non-finite vertex %v", i, v)
			}
			m.Verts = append(m.Verts, mathutil.Vec3[float64]{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])})
		}
		m.Faces = append(m.Faces, [3]int{base, base + 1, base + 2})
	}
	return m, nil
}

// solidName prefers the ASCII solid name. Binary headers are free-form
// Windows-1252 text padded with NULs or spaces.
func solidName(solid *stl.Solid) string {
	if solid.IsAscii || len(solid.BinaryHeader) == 0 {
		return strings.TrimSpace(solid.Name)
	}
	h := solid.BinaryHeader
	if i := bytes.IndexByte(h, 0); i >= 0 {
		h = h[:i]
	}
	name, err := charmap.Windows1252.NewDecoder().Bytes(h)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(name))
}

func finite(v stl.Vec3) bool {
	for _, f := range v {
		if math32.IsNaN(f) || math32.IsInf(f, 0) {
			return false
		}
	}
	return true
}
