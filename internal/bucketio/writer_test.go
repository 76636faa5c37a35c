package bucketio

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"fsquiz/internal/category"
	"fsquiz/internal/question"
)

// TestWriteBucketsWritesEveryCategory verifies empty categories still get a
// bucket file.
func TestWriteBucketsWritesEveryCategory(t *testing.T) {
	dir := t.TempDir()
	buckets := category.Buckets{
		category.Mechanical: {
			{ID: "q1", Text: "first"},
			{ID: "q2", Text: "second"},
		},
	}
	manifest, err := WriteBuckets(dir, "questions.json", buckets)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if manifest.RunID == "" || manifest.Source != "questions.json" {
		t.Fatalf("unexpected manifest %+v", manifest)
	}
	for _, cat := range category.Categories {
		data, err := os.ReadFile(BucketPath(dir, cat))
		if err != nil {
			t.Fatalf("missing bucket for %q: %v", cat, err)
		}
		var questions []question.Question
		if err := json.Unmarshal(data, &questions); err != nil {
			t.Fatalf("decode bucket %q: %v", cat, err)
		}
		if len(questions) != manifest.Counts[string(cat)] {
			t.Fatalf("count mismatch for %q: %d vs %d", cat, len(questions), manifest.Counts[string(cat)])
		}
	}
}

// TestWriteBucketsPreservesOrder verifies bucket files keep dataset order.
func TestWriteBucketsPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	buckets := category.Buckets{
		category.Electrical: {
			{ID: "q1", Text: "first"},
			{ID: "q2", Text: "second"},
			{ID: "q3", Text: "third"},
		},
	}
	if _, err := WriteBuckets(dir, "src", buckets); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	data, err := os.ReadFile(BucketPath(dir, category.Electrical))
	if err != nil {
		t.Fatalf("read bucket: %v", err)
	}
	var questions []question.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		t.Fatalf("decode bucket: %v", err)
	}
	for i, id := range []string{"q1", "q2", "q3"} {
		if questions[i].ID != id {
			t.Fatalf("expected %q at %d, got %q", id, i, questions[i].ID)
		}
	}
}

// TestWriteBucketsOverwrites verifies a rerun fully replaces prior output.
func TestWriteBucketsOverwrites(t *testing.T) {
	dir := t.TempDir()
	first := category.Buckets{
		category.Finance: {{ID: "old", Text: "old"}},
	}
	if _, err := WriteBuckets(dir, "src", first); err != nil {
		t.Fatalf("first write: %v", err)
	}
	second := category.Buckets{}
	manifest, err := WriteBuckets(dir, "src", second)
	if err != nil {
		t.Fatalf("second write: %v", err)
	}
	if manifest.Counts[string(category.Finance)] != 0 {
		t.Fatalf("expected finance count reset, got %d", manifest.Counts[string(category.Finance)])
	}
	data, err := os.ReadFile(BucketPath(dir, category.Finance))
	if err != nil {
		t.Fatalf("read bucket: %v", err)
	}
	var questions []question.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		t.Fatalf("decode bucket: %v", err)
	}
	if len(questions) != 0 {
		t.Fatalf("expected empty bucket after rerun, got %d", len(questions))
	}
}

// TestManifestRoundTrip verifies the manifest file decodes.
func TestManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	written, err := WriteBuckets(dir, "src", category.Buckets{})
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		t.Fatalf("decode manifest: %v", err)
	}
	if manifest.RunID != written.RunID {
		t.Fatalf("manifest run id mismatch: %q vs %q", manifest.RunID, written.RunID)
	}
}
