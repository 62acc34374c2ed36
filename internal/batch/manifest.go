package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one model in the output manifest.
type ManifestEntry struct {
	Model string `json:"model"`
	Image string `json:"image,omitempty"`
	Error string `json:"error,omitempty"`
}

// WriteManifest writes manifest.json for a finished batch run.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			Model: filepath.Base(r.Input),
			Error: r.Error,
		}
		if r.Output != "" {
			entries[i].Image = filepath.Base(r.Output)
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
