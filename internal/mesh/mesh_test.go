package mesh

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tinyrender/internal/mathutil"

	"github.com/hschendel/stl"
)

const cubeFace = `# two triangles and a quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1
f 1//1 3//1 4//1
f -4/-4 -3/-3 -2/-2 -1/-1
`

func TestParseOBJ(t *testing.T) {
	m, err := ParseOBJ(strings.NewReader(cubeFace))
	if err != nil {
		t.Fatal(err)
	}
	if m.NumVerts() != 4 {
		t.Errorf("NumVerts = %d, want 4", m.NumVerts())
	}
	// 1 + 1 + quad split in two
	if m.NumFaces() != 4 {
		t.Fatalf("NumFaces = %d, want 4", m.NumFaces())
	}

	wantFaces := [][3]int{{0, 1, 2}, {0, 2, 3}, {0, 1, 2}, {0, 2, 3}}
	for i, want := range wantFaces {
		if m.Faces[i] != want {
			t.Errorf("face %d = %v, want %v", i, m.Faces[i], want)
		}
	}

	f, err := m.Face(0)
	if err != nil {
		t.Fatal(err)
	}
	if f[1] != mathutil.V3(1.0, 0, 0) {
		t.Errorf("face 0 vertex 1 = %v", f[1])
	}

	uv, ok, err := m.FaceTexture(0)
	if err != nil || !ok {
		t.Fatalf("FaceTexture(0) = ok %v err %v", ok, err)
	}
	if uv[2] != mathutil.V2(1.0, 1) {
		t.Errorf("face 0 uv 2 = %v", uv[2])
	}
	if _, ok, _ := m.FaceTexture(1); ok {
		t.Error("face without vt reported texture coordinates")
	}
	if uv, ok, _ := m.FaceTexture(3); !ok || uv[2] != mathutil.V2(0.0, 1) {
		t.Errorf("relative-index quad uv = %v ok=%v", uv, ok)
	}
	if !m.HasUVs() {
		t.Error("HasUVs = false")
	}
}

func TestParseOBJErrors(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		index bool
	}{
		{"bad float", "v 0 x 0\n", false},
		{"short vertex", "v 0 0\n", false},
		{"short face", "v 0 0 0\nf 1 1\n", false},
		{"vertex out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 9\n", true},
		{"zero index", "v 0 0 0\nf 0 1 1\n", true},
		{"uv out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nvt 0 0\nf 1/1 2/2 3/1\n", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseOBJ(strings.NewReader(tc.src))
			if err == nil {
				t.Fatal("expected error")
			}
			if tc.index && !errors.Is(err, ErrIndexRange) {
				t.Errorf("err = %v, want ErrIndexRange", err)
			}
		})
	}
}

func TestMeshIndexChecks(t *testing.T) {
	m := &Mesh{
		Verts: []mathutil.Vec3[float64]{{}, {X: 1}},
		Faces: [][3]int{{0, 1, 2}},
	}
	if _, err := m.Face(0); !errors.Is(err, ErrIndexRange) {
		t.Errorf("Face with bad index: err = %v", err)
	}
	if _, err := m.Face(5); !errors.Is(err, ErrIndexRange) {
		t.Errorf("Face(5): err = %v", err)
	}
	if err := m.Validate(); !errors.Is(err, ErrIndexRange) {
		t.Errorf("Validate: err = %v", err)
	}
}

func TestLoadOBJFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.obj")
	if err := os.WriteFile(path, []byte(cubeFace), 0644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "quad" {
		t.Errorf("Name = %q, want quad", m.Name)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "x.ply")); err == nil {
		t.Error("unsupported extension accepted")
	}
}

const asciiSTL = `solid wedge
facet normal 0 0 1
 outer loop
  vertex 0 0 0
  vertex 1 0 0
  vertex 0 1 0
 endloop
endfacet
facet normal 0 0 -1
 outer loop
  vertex 0 0 -1
  vertex 0 1 -1
  vertex 1 0 -1
 endloop
endfacet
endsolid wedge
`

func TestReadSTLASCII(t *testing.T) {
	m, err := ReadSTL(strings.NewReader(asciiSTL))
	if err != nil {
		t.Fatal(err)
	}
	if m.NumFaces() != 2 || m.NumVerts() != 6 {
		t.Fatalf("faces=%d verts=%d, want 2 and 6", m.NumFaces(), m.NumVerts())
	}
	f, err := m.Face(1)
	if err != nil {
		t.Fatal(err)
	}
	if f[1] != mathutil.V3(0.0, 1, -1) {
		t.Errorf("face 1 vertex 1 = %v", f[1])
	}
	if m.Name != "wedge" {
		t.Errorf("Name = %q, want wedge", m.Name)
	}
}

func binarySTL(header string, tris [][3][3]float32) []byte {
	var buf bytes.Buffer
	var h [80]byte
	copy(h[:], header)
	buf.Write(h[:])
	binary.Write(&buf, binary.LittleEndian, uint32(len(tris)))
	for _, tri := range tris {
		binary.Write(&buf, binary.LittleEndian, [3]float32{0, 0, 1})
		binary.Write(&buf, binary.LittleEndian, tri)
		binary.Write(&buf, binary.LittleEndian, uint16(0))
	}
	return buf.Bytes()
}

func TestReadSTLBinary(t *testing.T) {
	data := binarySTL("binary part", [][3][3]float32{
		{{0, 0, 0}, {2, 0, 0}, {0, 2, 0}},
		{{1, 1, 1}, {3, 1, 1}, {1, 3, 1.5}},
	})
	m, err := ReadSTL(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if m.NumFaces() != 2 {
		t.Fatalf("NumFaces = %d, want 2", m.NumFaces())
	}
	f, err := m.Face(1)
	if err != nil {
		t.Fatal(err)
	}
	if f[2] != mathutil.V3(1.0, 3, 1.5) {
		t.Errorf("face 1 vertex 2 = %v", f[2])
	}
}

func TestReadSTLStream(t *testing.T) {
	data := binarySTL("stream", [][3][3]float32{{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}})
	// MultiReader hides Seek, as a pipe or HTTP body would.
	m, err := ReadSTL(io.MultiReader(bytes.NewReader(data[:40]), bytes.NewReader(data[40:])))
	if err != nil {
		t.Fatal(err)
	}
	if m.NumFaces() != 1 || m.Name != "stream" {
		t.Errorf("faces=%d name=%q", m.NumFaces(), m.Name)
	}

	m, err = ReadSTL(io.MultiReader(strings.NewReader(asciiSTL)))
	if err != nil {
		t.Fatal(err)
	}
	if m.NumFaces() != 2 {
		t.Errorf("ascii faces = %d, want 2", m.NumFaces())
	}
}

func TestSolidNameWindows1252(t *testing.T) {
	header := make([]byte, 80)
	copy(header, "caf\xe9 model")
	got := solidName(&stl.Solid{BinaryHeader: header})
	if got != "café model" {
		t.Errorf("solidName = %q, want %q", got, "café model")
	}
	if got := solidName(&stl.Solid{Name: " part ", IsAscii: true}); got != "part" {
		t.Errorf("ascii name = %q", got)
	}
}

func TestSTLRejectsNonFinite(t *testing.T) {
	solid := &stl.Solid{Triangles: []stl.Triangle{{
		Vertices: [3]stl.Vec3{{0, 0, 0}, {float32(math.NaN()), 0, 0}, {0, 1, 0}},
	}}}
	if _, err := fromSolid(solid); err == nil {
		t.Error("NaN vertex accepted")
	}
}
