// Package mesh holds triangulated model geometry and loads it from OBJ and
// STL files.
package mesh

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"tinyrender/internal/mathutil"
)

// ErrIndexRange is returned when a face references a vertex or texture
// coordinate that does not exist.
var ErrIndexRange = errors.New("mesh: index out of range")

// NoUV marks a face without texture coordinates in Mesh.FaceUVs.
var NoUV = [3]int{-1, -1, -1}

// Provider is the read-only view the renderer consumes.
type Provider interface {
	NumVerts() int
	NumFaces() int
	// Face returns the three world-space vertices of face i.
	Face(i int) ([3]mathutil.Vec3[float64], error)
	// FaceTexture returns the texture coordinates of face i; ok is false
	// when the face has none.
	FaceTexture(i int) (uv [3]mathutil.Vec2[float64], ok bool, err error)
}

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Name    string
	Verts   []mathutil.Vec3[float64]
	Faces   [][3]int                 // vertex index triples
	UVs     []mathutil.Vec2[float64] // texture coordinates
	FaceUVs [][3]int                 // per-face UV indices; empty or len(Faces)
}

func (m *Mesh) NumVerts() int { return len(m.Verts) }
func (m *Mesh) NumFaces() int { return len(m.Faces) }

// Face returns the vertices of face i.
func (m *Mesh) Face(i int) ([3]mathutil.Vec3[float64], error) {
	var out [3]mathutil.Vec3[float64]
	if i < 0 || i >= len(m.Faces) {
		return out, fmt.Errorf("%w: face %d of %d", ErrIndexRange, i, len(m.Faces))
	}
	for k, vi := range m.Faces[i] {
		if vi < 0 || vi >= len(m.Verts) {
			return out, fmt.Errorf("%w: face %d vertex %d of %d", ErrIndexRange, i, vi, len(m.Verts))
		}
		out[k] = m.Verts[vi]
	}
	return out, nil
}

// FaceTexture returns the texture coordinates of face i.
func (m *Mesh) FaceTexture(i int) ([3]mathutil.Vec2[float64], bool, error) {
	var out [3]mathutil.Vec2[float64]
	if i < 0 || i >= len(m.Faces) {
		return out, false, fmt.Errorf("%w: face %d of %d", ErrIndexRange, i, len(m.Faces))
	}
	if i >= len(m.FaceUVs) || m.FaceUVs[i] == NoUV {
		return out, false, nil
	}
	for k, ti := range m.FaceUVs[i] {
		if ti < 0 || ti >= len(m.UVs) {
			return out, false, fmt.Errorf("%w: face %d uv %d of %d", ErrIndexRange, i, ti, len(m.UVs))
		}
		out[k] = m.UVs[ti]
	}
	return out, true, nil
}

// Validate checks every index once so a bad file fails at load time
// instead of mid-render.
func (m *Mesh) Validate() error {
	if len(m.FaceUVs) != 0 && len(m.FaceUVs) != len(m.Faces) {
		return fmt.Errorf("mesh: %d faces but %d uv faces", len(m.Faces), len(m.FaceUVs))
	}
	for i := range m.Faces {
		if _, err := m.Face(i); err != nil {
			return err
		}
		if _, _, err := m.FaceTexture(i); err != nil {
			return err
		}
	}
	return nil
}

// HasUVs reports whether any face carries texture coordinates.
func (m *Mesh) HasUVs() bool {
	for _, f := range m.FaceUVs {
		if f != NoUV {
			return true
		}
	}
	return false
}

// Load reads an OBJ or STL file, chosen by extension.
func Load(path string) (*Mesh, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return LoadOBJ(path)
	case ".stl":
		return LoadSTL(path)
	default:
		return nil, fmt.Errorf("mesh: unsupported format %q: %s", ext, path)
	}
}
