package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"tinyrender/internal/mathutil"
)

// LoadOBJ reads a Wavefront OBJ file.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mesh: read %s: %w", path, err)
	}
	defer f.Close()

	m, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("mesh: %s: %w", path, err)
	}
	m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return m, nil
}

// ParseOBJ reads geometry statements (v, vt, f) and ignores the rest.
// Polygons with more than three vertices are split into a triangle fan.
// Negative indices count back from the most recent vertex.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	m := &Mesh{}
	textured := false

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			p, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNo, err)
			}
			m.Verts = append(m.Verts, mathutil.Vec3[float64]{X: p[0], Y: p[1], Z: p[2]})
		case "vt":
			p, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: texture coord: %w", lineNo, err)
			}
			m.UVs = append(m.UVs, mathutil.Vec2[float64]{X: p[0], Y: p[1]})
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices, got %d", lineNo, len(fields)-1)
			}
			vis := make([]int, 0, len(fields)-1)
			tis := make([]int, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				vi, ti, err := parseFaceVertex(tok, len(m.Verts), len(m.UVs))
				if err != nil {
					return nil, fmt.Errorf("line %d: face: %w", lineNo, err)
				}
				vis = append(vis, vi)
				tis = append(tis, ti)
			}
			hasUV := true
			for _, ti := range tis {
				if ti < 0 {
					hasUV = false
				}
			}
			textured = textured || hasUV

			// Fan: (0, k, k+1)
			for k := 1; k+1 < len(vis); k++ {
				m.Faces = append(m.Faces, [3]int{vis[0], vis[k], vis[k+1]})
				if hasUV {
					m.FaceUVs = append(m.FaceUVs, [3]int{tis[0], tis[k], tis[k+1]})
				} else {
					m.FaceUVs = append(m.FaceUVs, NoUV)
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if !textured {
		m.FaceUVs = nil
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// parseFaceVertex parses "v", "v/vt", "v/vt/vn" or "v//vn" into zero-based
// vertex and texture indices. ti is -1 when absent.
func parseFaceVertex(tok string, nv, nt int) (vi, ti int, err error) {
	parts := strings.Split(tok, "/")
	vi, err = resolveIndex(parts[0], nv)
	if err != nil {
		return 0, 0, fmt.Errorf("vertex %q: %w", tok, err)
	}
	ti = -1
	if len(parts) > 1 && parts[1] != "" {
		ti, err = resolveIndex(parts[1], nt)
		if err != nil {
			return 0, 0, fmt.Errorf("texture %q: %w", tok, err)
		}
	}
	return vi, ti, nil
}

func resolveIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case i > 0:
		return i - 1, nil
	case i < 0:
		return n + i, nil
	}
	return 0, fmt.Errorf("%w: index 0", ErrIndexRange)
}

func parseFloats(fields []string, n int) ([]float64, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("want %d values, got %d", n, len(fields))
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
