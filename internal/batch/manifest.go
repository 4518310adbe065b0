package batch

import (
	"encoding/json"
	"os"

	"quat-scene-renderer/internal/mathutil"
	"quat-scene-renderer/internal/sweep"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Index    int           `json:"index"`
	Image    string        `json:"image"`
	TimeMS   int64         `json:"time_ms"`
	Progress float64       `json:"progress"`
	AngleDeg float64       `json:"angle_deg"`
	Quat     mathutil.Quat `json:"quaternion"`
	Matrix   mathutil.Mat3 `json:"matrix"`
	Error    string        `json:"error,omitempty"`
}

// WriteManifest writes the frame manifest as indented JSON to path.
func WriteManifest(path string, frames []sweep.Frame, results []Result) error {
	entries := make([]ManifestEntry, len(frames))
	for i, fr := range frames {
		e := ManifestEntry{
			Index:    fr.Index,
			TimeMS:   fr.Time.Milliseconds(),
			Progress: fr.Progress,
			AngleDeg: mathutil.Rad2Deg(fr.Angle),
			Quat:     fr.Quat,
		}
		if i < len(results) {
			r := results[i]
			e.Image = r.Image
			e.Matrix = r.State.Matrix
			e.Error = r.Error
		}
		entries[i] = e
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) ([]ManifestEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
