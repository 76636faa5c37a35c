package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

// TestPlayPlainEndToEnd verifies a scripted plain-mode session through the
// command surface.
func TestPlayPlainEndToEnd(t *testing.T) {
	dir := t.TempDir()
	dataset := writeDataset(t, dir)

	var stdout, stderr bytes.Buffer
	// Deterministic seed; count exceeds the pool so every question plays.
	args := []string{"play", "-dataset", dataset, "-count", "10", "-seed", "1", "-ui", "plain"}
	stdin := strings.NewReader("q\n")
	code := Run(args, stdin, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected ok exit, got %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "FS Quiz") {
		t.Fatalf("expected session banner, got %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "No questions answered (4 selected).") {
		t.Fatalf("expected summary, got %q", stdout.String())
	}
}

// TestPlayCategoryRestriction verifies only the requested category is played.
func TestPlayCategoryRestriction(t *testing.T) {
	dir := t.TempDir()
	dataset := writeDataset(t, dir)

	var stdout, stderr bytes.Buffer
	args := []string{"play", "-dataset", dataset, "-category", "electrical",
		"-count", "10", "-seed", "1", "-ui", "plain"}
	stdin := strings.NewReader("600\n")
	code := Run(args, stdin, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected ok exit, got %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Final score: 1/1 correct (1 questions selected)") {
		t.Fatalf("unexpected summary %q", stdout.String())
	}
}

// TestPlayNoEligible verifies the dedicated message when filters empty the
// pool.
func TestPlayNoEligible(t *testing.T) {
	dir := t.TempDir()
	dataset := writeDataset(t, dir)

	var stdout, stderr bytes.Buffer
	args := []string{"play", "-dataset", dataset, "-category", "team-manager", "-ui", "plain"}
	code := Run(args, strings.NewReader(""), &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected error exit, got %d", code)
	}
	if !strings.Contains(stderr.String(), "No eligible questions") {
		t.Fatalf("expected no-eligible message, got %q", stderr.String())
	}
}

// TestPlayInvalidCategory verifies unknown category names exit usage.
func TestPlayInvalidCategory(t *testing.T) {
	dir := t.TempDir()
	dataset := writeDataset(t, dir)
	var stdout, stderr bytes.Buffer
	args := []string{"play", "-dataset", dataset, "-category", "chemistry", "-ui", "plain"}
	code := Run(args, strings.NewReader(""), &stdout, &stderr)
	if code != ExitUsage {
		t.Fatalf("expected usage exit, got %d", code)
	}
	if !strings.Contains(stderr.String(), "Invalid category") {
		t.Fatalf("expected category error, got %q", stderr.String())
	}
}

// TestPlayMissingDataset verifies load failures surface.
func TestPlayMissingDataset(t *testing.T) {
	var stdout, stderr bytes.Buffer
	args := []string{"play", "-dataset", filepath.Join(t.TempDir(), "nope.json"), "-ui", "plain"}
	code := Run(args, strings.NewReader(""), &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected error exit, got %d", code)
	}
}
