// Package viewer is the injected image-display capability. The quiz core
// requests "show these images" through the Viewer interface and never
// launches processes itself, so sessions run in tests with no display.
package viewer

import (
	"errors"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Viewer displays question images on demand.
type Viewer interface {
	Show(paths []string) error
}

// ExecViewer opens images with the platform's default application.
type ExecViewer struct {
	// BaseDir resolves relative image paths; empty means the working dir.
	BaseDir string
}

// Show launches one viewer process per image and does not wait for them.
func (v ExecViewer) Show(paths []string) error {
	var errs []error
	for _, path := range paths {
		if !filepath.IsAbs(path) && v.BaseDir != "" {
			path = filepath.Join(v.BaseDir, path)
		}
		if err := openCommand(path).Start(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func openCommand(path string) *exec.Cmd {
	switch runtime.GOOS {
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path)
	case "darwin":
		return exec.Command("open", path)
	default:
		return exec.Command("xdg-open", path)
	}
}

// Recorder captures show requests for tests.
type Recorder struct {
	Requests [][]string
}

// Show records the requested paths.
func (r *Recorder) Show(paths []string) error {
	r.Requests = append(r.Requests, paths)
	return nil
}

// Nop discards show requests.
type Nop struct{}

// Show does nothing.
func (Nop) Show([]string) error { return nil }
