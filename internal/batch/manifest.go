package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one scene in the output manifest.
type ManifestEntry struct {
	Scene   string   `json:"scene"`
	Files   []string `json:"files"`
	Dropped int      `json:"dropped_pixels"`
	Millis  int64    `json:"render_ms"`
	Error   string   `json:"error,omitempty"`
}

// WriteManifest writes the results as JSON to path. File names are made
// relative to the manifest's directory.
func WriteManifest(path string, results []Result) error {
	dir := filepath.Dir(path)
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		files := make([]string, len(r.Files))
		for j, f := range r.Files {
			if rel, err := filepath.Rel(dir, f); err == nil {
				f = rel
			}
			files[j] = filepath.ToSlash(f)
		}
		entries[i] = ManifestEntry{
			Scene:   r.Scene,
			Files:   files,
			Dropped: r.Dropped,
			Millis:  r.Duration.Milliseconds(),
			Error:   r.Error,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
