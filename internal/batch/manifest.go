package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestEntry represents one rendered mesh in the output manifest.
type ManifestEntry struct {
	Name   string `json:"name"`
	Model  string `json:"model_file"`
	Image  string `json:"image"`
	Thumb  string `json:"thumb,omitempty"`
	Depth  string `json:"depth,omitempty"`
	Faces  int    `json:"faces"`
	Drawn  int    `json:"drawn"`
	Culled int    `json:"culled"`
}

// WriteManifest writes the successful results to path as JSON. Image paths
// are relative to the manifest's directory.
func WriteManifest(path string, results []Result) error {
	dir := filepath.Dir(path)
	rel := func(p string) string {
		if p == "" {
			return ""
		}
		if r, err := filepath.Rel(dir, p); err == nil {
			return filepath.ToSlash(r)
		}
		return filepath.ToSlash(p)
	}

	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Name:   r.Name,
			Model:  r.Input,
			Image:  rel(r.Output),
			Thumb:  rel(r.Thumb),
			Depth:  rel(r.Depth),
			Faces:  r.Stats.Faces,
			Drawn:  r.Stats.Drawn,
			Culled: r.Stats.Culled,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: write manifest: %w", err)
	}
	return nil
}
