// Package bucketio persists categorization output: one ordered JSON bucket
// file per category plus a run manifest. Every run fully overwrites the
// previous output; there is no incremental merge.
package bucketio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"fsquiz/internal/category"
	"fsquiz/internal/question"
)

// ManifestName is the per-run metadata file written next to the buckets.
const ManifestName = "manifest.json"

// Manifest records one categorize run.
type Manifest struct {
	RunID       string         `json:"run_id"`
	Source      string         `json:"source"`
	GeneratedAt time.Time      `json:"generated_at"`
	Counts      map[string]int `json:"counts"`
}

// FileName returns the bucket file name for a category.
func FileName(cat category.Category) string {
	return fmt.Sprintf("questions_%s.json", string(cat))
}

// BucketPath returns the full path of a category's bucket file.
func BucketPath(dir string, cat category.Category) string {
	return filepath.Join(dir, FileName(cat))
}

// WriteBuckets writes every category bucket and the manifest into dir.
func WriteBuckets(dir, source string, buckets category.Buckets) (Manifest, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Manifest{}, fmt.Errorf("create output dir: %w", err)
	}
	manifest := Manifest{
		RunID:       uuid.NewString(),
		Source:      source,
		GeneratedAt: time.Now().UTC(),
		Counts:      make(map[string]int, len(category.Categories)),
	}
	for _, cat := range category.Categories {
		questions := buckets[cat]
		if questions == nil {
			questions = []question.Question{}
		}
		if err := writeJSON(BucketPath(dir, cat), questions); err != nil {
			return Manifest{}, err
		}
		manifest.Counts[string(cat)] = len(questions)
	}
	if err := writeJSON(filepath.Join(dir, ManifestName), manifest); err != nil {
		return Manifest{}, err
	}
	return manifest, nil
}

func writeJSON(path string, value interface{}) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
