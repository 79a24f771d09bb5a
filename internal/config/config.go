package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/fogleman/fauxgl"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	BaseDir    string `json:"base_dir"`
	OutputDir  string `json:"output_dir"`
	TextureDir string `json:"texture_dir"`
	Texture    string `json:"texture"`

	// Render settings
	Mode        string     `json:"mode"`
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	Color       string     `json:"color"`
	Background  string     `json:"background"`
	Light       [3]float64 `json:"light"`
	Rotate      [3]float64 `json:"rotate"` // model orientation, degrees about X, Y, Z
	Normalize   string     `json:"normalize"`
	Seed        *uint64    `json:"seed"` // nil until Resolve; 0 is a valid seed
	Camera      Camera     `json:"camera"`
	Supersample int        `json:"supersample"`

	// Output
	Format      string  `json:"format"`
	Thumb       int     `json:"thumb"`
	Fit         float64 `json:"fit"` // fill ratio for crop-and-center, 0 disables
	DepthImage  bool    `json:"depth_image"`
	Workers     int     `json:"workers"`
	Manifest    string  `json:"manifest"`
	FlipTexture *bool   `json:"flip_texture"`
}

// Camera configures the perspective or orthographic camera. When Enabled is
// false meshes are drawn with the orthogonal screen transform.
type Camera struct {
	Enabled   bool       `json:"enabled"`
	Eye       [3]float64 `json:"eye"`
	Center    [3]float64 `json:"center"`
	Up        [3]float64 `json:"up"`
	FovY      float64    `json:"fovy"`
	Near      float64    `json:"near"`
	Far       float64    `json:"far"`
	Ortho     bool       `json:"ortho"`
	OrthoSize float64    `json:"ortho_size"`
}

// Normalization policies.
const (
	NormalizeAuto   = "auto"   // only when a vertex lies outside [-1,1]³
	NormalizeAlways = "always"
	NormalizeNever  = "never"
)

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values; BaseDir defaults to the
// file's directory.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.BaseDir == "" {
		cfg.BaseDir = filepath.Dir(path)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Mode        string
	Width       int
	Height      int
	Texture     string
	OutputDir   string
	Format      string
	Camera      bool
	Eye         string  // "x,y,z"
	Seed        *uint64 // nil when the flag was not given
	Workers     int
	Supersample int
	Thumb       int
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) error {
	// CLI flags override config file
	if flags.Mode != "" {
		c.Mode = flags.Mode
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Texture != "" {
		c.Texture = flags.Texture
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Camera {
		c.Camera.Enabled = true
	}
	if flags.Eye != "" {
		eye, err := ParseVec3(flags.Eye)
		if err != nil {
			return fmt.Errorf("config: -eye: %w", err)
		}
		c.Camera.Eye = eye
		c.Camera.Enabled = true
	}
	if flags.Seed != nil {
		seed := *flags.Seed
		c.Seed = &seed
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Thumb > 0 {
		c.Thumb = flags.Thumb
	}

	if c.BaseDir == "" {
		c.BaseDir, _ = os.Getwd()
	}

	// Resolve relative paths against base dir. Flag paths are taken as given.
	if c.OutputDir == "" {
		c.OutputDir = filepath.Join(c.BaseDir, "renders")
	} else if !filepath.IsAbs(c.OutputDir) && flags.OutputDir == "" {
		c.OutputDir = filepath.Join(c.BaseDir, c.OutputDir)
	}
	if c.TextureDir != "" && !filepath.IsAbs(c.TextureDir) {
		c.TextureDir = filepath.Join(c.BaseDir, c.TextureDir)
	}
	if c.Texture != "" && !filepath.IsAbs(c.Texture) && flags.Texture == "" {
		c.Texture = filepath.Join(c.BaseDir, c.Texture)
	}
	if c.Manifest != "" && !filepath.IsAbs(c.Manifest) {
		c.Manifest = filepath.Join(c.BaseDir, c.Manifest)
	}

	// Defaults for render settings
	if c.Mode == "" {
		c.Mode = "depth"
	}
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = c.Width
	}
	if c.Color == "" {
		c.Color = "#ffffff"
	}
	if c.Background == "" {
		c.Background = "transparent"
	}
	if c.Light == ([3]float64{}) {
		c.Light = [3]float64{0, 0, 1}
	}
	if c.Normalize == "" {
		c.Normalize = NormalizeAuto
	}
	if c.Seed == nil {
		seed := uint64(1)
		c.Seed = &seed
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Format == "" {
		c.Format = "png"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.FlipTexture == nil {
		flip := true
		c.FlipTexture = &flip
	}

	cam := &c.Camera
	if cam.Eye == ([3]float64{}) {
		cam.Eye = [3]float64{1, 1, 3}
	}
	if cam.Up == ([3]float64{}) {
		cam.Up = [3]float64{0, 1, 0}
	}
	if cam.FovY <= 0 {
		cam.FovY = 45
	}
	if cam.Near <= 0 {
		cam.Near = 0.1
	}
	if cam.Far <= 0 {
		cam.Far = 100
	}
	if cam.OrthoSize <= 0 {
		cam.OrthoSize = 1.2
	}

	return c.Validate()
}

// Validate checks values Resolve cannot default.
func (c *Config) Validate() error {
	switch c.Format {
	case "png", "webp":
	default:
		return fmt.Errorf("config: unknown format %q (want png or webp)", c.Format)
	}
	switch c.Normalize {
	case NormalizeAuto, NormalizeAlways, NormalizeNever:
	default:
		return fmt.Errorf("config: unknown normalize policy %q", c.Normalize)
	}
	if c.Supersample > 8 {
		return fmt.Errorf("config: supersample %d exceeds 8", c.Supersample)
	}
	if c.Fit < 0 || c.Fit > 1 {
		return fmt.Errorf("config: fit %v outside [0, 1]", c.Fit)
	}
	if _, err := ParseColor(c.Color); err != nil {
		return fmt.Errorf("config: color: %w", err)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return fmt.Errorf("config: background: %w", err)
	}
	return nil
}

// RandSeed returns the seed for random mode, 1 when unset.
func (c *Config) RandSeed() uint64 {
	if c.Seed == nil {
		return 1
	}
	return *c.Seed
}

// FlipV reports whether texture V runs bottom-up, the OBJ convention.
func (c *Config) FlipV() bool {
	return c.FlipTexture == nil || *c.FlipTexture
}

// ParseColor accepts "#rgb", "#rrggbb" (with or without '#') or
// "transparent".
func ParseColor(s string) (color.NRGBA, error) {
	if strings.EqualFold(s, "transparent") {
		return color.NRGBA{}, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 3 && len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	c := fauxgl.HexColor(hex)
	return color.NRGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: 255,
	}, nil
}

// ParseVec3 parses "x,y,z".
func ParseVec3(s string) ([3]float64, error) {
	var v [3]float64
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return v, fmt.Errorf("want x,y,z, got %q", s)
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return v, fmt.Errorf("component %d of %q: %w", i, s, err)
		}
		v[i] = f
	}
	return v, nil
}
