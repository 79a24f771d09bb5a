package batch

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"tinyrender/internal/camera"
	"tinyrender/internal/config"
	"tinyrender/internal/mathutil"
	"tinyrender/internal/mesh"
	"tinyrender/internal/postprocess"
	"tinyrender/internal/randutil"
	"tinyrender/internal/raster"
	"tinyrender/internal/texture"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir string
	Format    string // "png" or "webp"

	Mode       raster.Mode
	Width      int
	Height     int
	Color      color.NRGBA
	Background color.NRGBA
	Light      mathutil.Vec3[float64]
	Rotate     *mathutil.Mat3   // applied to vertices before normalization; nil = none
	Normalize  string           // config.NormalizeAuto, ...
	Camera     *camera.Settings // nil renders with the orthogonal transform
	Seed       uint64

	Texture     string           // texture path or indexed name; otherwise looked up per model
	TexIndex    *texture.Index   // may be nil
	Textures    texture.Resolver // nil builds a cache over TexIndex per job
	FlipV       bool
	Supersample int
	Thumb       int
	Fit         float64
	DepthImage  bool
	Workers     int
	Quiet       bool // no progress lines
}

// Result holds the outcome of processing one mesh file.
type Result struct {
	Name    string
	Input   string
	Output  string
	Thumb   string
	Depth   string
	Stats   raster.Stats
	Elapsed time.Duration
	Success bool
	Error   string
}

// Run renders every file using a worker pool. Results are in input order.
func Run(cfg Config, files []string) []Result {
	total := len(files)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 && !cfg.Quiet {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f meshes/sec\n", p, total, rate)
				}
			}
		}
	}()

	workers := max(1, cfg.Workers)
	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = Process(cfg, files[idx], idx)
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(done)

	return results
}

// Process renders one mesh file and writes its images. idx seeds the random
// source so results do not depend on scheduling.
func Process(cfg Config, path string, idx int) Result {
	start := time.Now()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	res := Result{Name: name, Input: path}
	fail := func(err error) Result {
		res.Error = err.Error()
		res.Elapsed = time.Since(start)
		return res
	}

	m, err := mesh.Load(path)
	if err != nil {
		return fail(err)
	}
	if len(m.Faces) == 0 {
		return fail(fmt.Errorf("batch: %s: no faces", path))
	}
	prepare(cfg, m)

	ss := max(1, cfg.Supersample)
	w, h := cfg.Width*ss, cfg.Height*ss

	opts := raster.Options{
		Mode:  cfg.Mode,
		Color: cfg.Color,
		Light: cfg.Light,
		Rand:  randutil.New(cfg.Seed + uint64(idx)),
	}
	if cfg.Camera != nil {
		s := *cfg.Camera
		s.Width, s.Height = w, h
		cam, err := camera.New(s)
		if err != nil {
			return fail(fmt.Errorf("batch: %s: camera: %w", path, err))
		}
		opts.Camera = cam
	}
	if cfg.Mode == raster.ModeTextured {
		sampler, err := cfg.sampler(path)
		if err != nil {
			return fail(err)
		}
		opts.Texture = sampler
	}
	if cfg.Mode == raster.ModeDepth || cfg.Mode == raster.ModeTextured {
		opts.Depth = raster.NewDepthBuffer(w, h)
	}

	// Each job owns its buffers; nothing is shared between workers.
	fb := raster.NewFrameBuffer(w, h, cfg.Background)
	res.Stats, err = raster.Render(m, fb, opts)
	if err != nil {
		return fail(fmt.Errorf("batch: %s: %w", path, err))
	}

	img := fb.Image()
	if ss > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}
	if cfg.Fit > 0 {
		img = postprocess.CropAndCenter(img, cfg.Width, cfg.Height, cfg.Fit)
	}

	res.Output = filepath.Join(cfg.OutputDir, name+"."+cfg.Format)
	if err := Save(res.Output, img, cfg.Format); err != nil {
		return fail(err)
	}
	if cfg.Thumb > 0 {
		res.Thumb = filepath.Join(cfg.OutputDir, "thumbs", name+"."+cfg.Format)
		if err := Save(res.Thumb, postprocess.Thumbnail(img, cfg.Thumb), cfg.Format); err != nil {
			return fail(err)
		}
	}
	if cfg.DepthImage && opts.Depth != nil {
		res.Depth = filepath.Join(cfg.OutputDir, name+"_depth."+cfg.Format)
		if err := Save(res.Depth, opts.Depth.Image(), cfg.Format); err != nil {
			return fail(err)
		}
	}

	res.Success = true
	res.Elapsed = time.Since(start)
	return res
}

// prepare orients the mesh and fits it into [-1,1]³ according to cfg.
func prepare(cfg Config, m *mesh.Mesh) {
	if cfg.Rotate != nil {
		mathutil.RotatePoints(*cfg.Rotate, m.Verts)
	}
	switch cfg.Normalize {
	case config.NormalizeAlways:
		camera.Normalize(m.Verts)
	case config.NormalizeNever:
	default:
		if !inUnitCube(m.Verts) {
			camera.Normalize(m.Verts)
		}
	}
}

func inUnitCube(pts []mathutil.Vec3[float64]) bool {
	for _, p := range pts {
		if math.Abs(p.X) > 1 || math.Abs(p.Y) > 1 || math.Abs(p.Z) > 1 {
			return false
		}
	}
	return true
}

func (cfg Config) sampler(modelPath string) (raster.Sampler, error) {
	name := cfg.Texture
	if name == "" && cfg.TexIndex != nil {
		name, _ = cfg.TexIndex.ForModel(modelPath)
	}
	if name == "" {
		return nil, fmt.Errorf("batch: %s: no texture found", modelPath)
	}
	textures := cfg.Textures
	if textures == nil {
		textures = texture.NewCache(cfg.TexIndex)
	}
	tex := textures.Resolve(name)
	if tex == nil {
		return nil, fmt.Errorf("batch: %s: texture %s missing or unreadable", modelPath, name)
	}
	return raster.ImageSampler{Tex: tex, FlipV: cfg.FlipV}, nil
}
