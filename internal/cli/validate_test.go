package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestValidateRequiresTarget verifies bare invocation exits usage.
func TestValidateRequiresTarget(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate"}, strings.NewReader(""), &stdout, &stderr)
	if code != ExitUsage {
		t.Fatalf("expected usage exit, got %d", code)
	}
	if !strings.Contains(stderr.String(), "Nothing to validate") {
		t.Fatalf("expected usage message, got %q", stderr.String())
	}
}

// TestValidateDataset verifies dataset validation reports counts.
func TestValidateDataset(t *testing.T) {
	dir := t.TempDir()
	dataset := writeDataset(t, dir)
	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate", "-dataset", dataset}, strings.NewReader(""), &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected ok exit, got %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Dataset OK (4 questions, 1 skipped)") {
		t.Fatalf("unexpected report %q", stdout.String())
	}
}

// TestValidateRules verifies good and bad rules files.
func TestValidateRules(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "rules.yml")
	if err := os.WriteFile(good, []byte(`version: 1
rules:
  - prefix: EV
    category: electrical
`), 0o644); err != nil {
		t.Fatalf("write rules: %v", err)
	}
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"validate", "-rules", good}, strings.NewReader(""), &stdout, &stderr); code != ExitOK {
		t.Fatalf("expected ok exit, got %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Rules OK") {
		t.Fatalf("unexpected report %q", stdout.String())
	}

	bad := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(bad, []byte("version: 7\n"), 0o644); err != nil {
		t.Fatalf("write rules: %v", err)
	}
	stdout.Reset()
	stderr.Reset()
	if code := Run([]string{"validate", "-rules", bad}, strings.NewReader(""), &stdout, &stderr); code != ExitError {
		t.Fatalf("expected error exit, got %d", code)
	}
	if !strings.Contains(stderr.String(), "Rules validation failed") {
		t.Fatalf("expected failure message, got %q", stderr.String())
	}
}
