package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Manifest describes one rendered sequence.
type Manifest struct {
	RunID     string          `json:"run_id"`
	CreatedAt time.Time       `json:"created_at"`
	BoardSize int             `json:"board_size"`
	Placement []int           `json:"placement"`
	Format    string          `json:"format"`
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	Frames    []ManifestFrame `json:"frames"`
}

// ManifestFrame represents one frame in the output manifest.
type ManifestFrame struct {
	Frame  int        `json:"frame"`
	Image  string     `json:"image,omitempty"`
	Camera [3]float64 `json:"camera"`
	Error  string     `json:"error,omitempty"`
}

// WriteManifest writes m as indented JSON to path.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: write manifest %s: %w", path, err)
	}
	return nil
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (Manifest, error) {
	var m Manifest
	data, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("batch: read manifest %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("batch: parse manifest %s: %w", path, err)
	}
	return m, nil
}
