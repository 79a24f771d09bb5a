package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tinyrender/internal/batch"
	"tinyrender/internal/camera"
	"tinyrender/internal/config"
	"tinyrender/internal/mathutil"
	"tinyrender/internal/raster"
	"tinyrender/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	mode := flag.String("mode", "", "wireframe, random, flat, depth or textured (default: depth)")
	width := flag.Int("width", 0, "Output width in pixels (default: 800)")
	height := flag.Int("height", 0, "Output height in pixels (default: width)")
	tex := flag.String("texture", "", "Diffuse texture for textured mode (default: <model>_diffuse.*)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	format := flag.String("format", "", "Output format: png or webp (default: png)")
	useCamera := flag.Bool("camera", false, "Render through the perspective camera")
	eye := flag.String("eye", "", "Camera position x,y,z (implies -camera)")
	seed := flag.Uint64("seed", 0, "Seed for random mode (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	supersample := flag.Int("supersample", 0, "Render at N× size and downsample (default: 1)")
	thumb := flag.Int("thumb", 0, "Also write thumbnails no larger than N pixels")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: render [flags] model.obj|model.stl|dir ...\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	// -seed 0 is a real seed, so only pass it on when given.
	var seedFlag *uint64
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedFlag = seed
		}
	})

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	err := cfg.Resolve(config.Flags{
		Mode:        *mode,
		Width:       *width,
		Height:      *height,
		Texture:     *tex,
		OutputDir:   *outputDir,
		Format:      *format,
		Camera:      *useCamera,
		Eye:         *eye,
		Seed:        seedFlag,
		Workers:     *workers,
		Supersample: *supersample,
		Thumb:       *thumb,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	files, err := collectModels(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	batchCfg, err := newBatchConfig(cfg, files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	fmt.Printf("Software rasterizer → %s (%s)\n", strings.ToUpper(cfg.Format), cfg.Mode)
	fmt.Printf("Meshes: %d, Size: %dx%d, Workers: %d\n", len(files), cfg.Width, cfg.Height, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	var results []batch.Result
	if len(files) == 1 {
		batchCfg.Quiet = true
		results = []batch.Result{batch.Process(batchCfg, files[0], 0)}
	} else {
		results = batch.Run(batchCfg, files)
	}

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
			st := r.Stats
			fmt.Printf("  %s: %d faces, %d drawn, %d culled, %d degenerate → %s\n",
				r.Name, st.Faces, st.Drawn, st.Culled, st.Degenerate, r.Output)
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(files))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := min(20, len(errors))
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	// Write manifest
	if len(files) > 1 || cfg.Manifest != "" {
		manifestPath := cfg.Manifest
		if manifestPath == "" {
			manifestPath = filepath.Join(cfg.OutputDir, "manifest.json")
		}
		if err := batch.WriteManifest(manifestPath, results); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
		} else {
			fmt.Printf("Manifest: %s\n", manifestPath)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// collectModels expands directory arguments to the OBJ and STL files they
// contain.
func collectModels(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d os.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			switch strings.ToLower(filepath.Ext(path)) {
			case ".obj", ".stl":
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

func newBatchConfig(cfg config.Config, files []string) (batch.Config, error) {
	mode, err := raster.ParseMode(cfg.Mode)
	if err != nil {
		return batch.Config{}, err
	}
	fg, _ := config.ParseColor(cfg.Color)
	bg, _ := config.ParseColor(cfg.Background)

	bc := batch.Config{
		OutputDir:   cfg.OutputDir,
		Format:      cfg.Format,
		Mode:        mode,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Color:       fg,
		Background:  bg,
		Light:       vec3(cfg.Light).Normalize(),
		Normalize:   cfg.Normalize,
		Seed:        cfg.RandSeed(),
		Texture:     cfg.Texture,
		FlipV:       cfg.FlipV(),
		Supersample: cfg.Supersample,
		Thumb:       cfg.Thumb,
		Fit:         cfg.Fit,
		DepthImage:  cfg.DepthImage,
		Workers:     cfg.Workers,
	}
	if cfg.Rotate != ([3]float64{}) {
		rot := mathutil.Orientation(cfg.Rotate[0], cfg.Rotate[1], cfg.Rotate[2])
		bc.Rotate = &rot
	}
	if c := cfg.Camera; c.Enabled {
		bc.Camera = &camera.Settings{
			Eye:       vec3(c.Eye),
			Center:    vec3(c.Center),
			Up:        vec3(c.Up),
			FovY:      c.FovY,
			Near:      c.Near,
			Far:       c.Far,
			Ortho:     c.Ortho,
			OrthoSize: c.OrthoSize,
		}
	}

	if mode == raster.ModeTextured {
		dir := cfg.TextureDir
		if dir == "" {
			dir = filepath.Dir(files[0])
		}
		bc.TexIndex = texture.BuildIndex(dir)
		bc.Textures = texture.NewCache(bc.TexIndex)
		fmt.Printf("Textures: %d indexed in %s\n", bc.TexIndex.Len(), dir)
	}
	return bc, nil
}

func vec3(v [3]float64) mathutil.Vec3[float64] {
	return mathutil.V3(v[0], v[1], v[2])
}
