package cucumber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"fsquiz/internal/cli"
)

type featureState struct {
	workDir     string
	datasetPath string
	outDir      string
	stdout      bytes.Buffer
	stderr      bytes.Buffer
	exitCode    int
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a dataset with the questions:$`, state.aDatasetWithQuestions)
	ctx.Step(`^I run the categorize command$`, state.iRunCategorize)
	ctx.Step(`^I play with input:$`, state.iPlayWithInput)
	ctx.Step(`^the exit code is (\d+)$`, state.theExitCodeIs)
	ctx.Step(`^the output contains "([^"]+)"$`, state.theOutputContains)
	ctx.Step(`^the "([^"]+)" bucket contains exactly "([^"]*)"$`, state.theBucketContainsExactly)
	ctx.Step(`^no bucket contains "([^"]+)"$`, state.noBucketContains)
}

func (s *featureState) reset() {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.workDir = ""
	s.datasetPath = ""
	s.outDir = ""
}

func (s *featureState) cleanup() {
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
	}
}

func (s *featureState) aDatasetWithQuestions(body *godog.DocString) error {
	dir, err := os.MkdirTemp("", "fsquiz-feature-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	s.workDir = dir
	s.datasetPath = filepath.Join(dir, "questions.json")
	s.outDir = filepath.Join(dir, "out")
	if err := os.WriteFile(s.datasetPath, []byte(body.Content), 0o644); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	return nil
}

func (s *featureState) iRunCategorize() error {
	if s.datasetPath == "" {
		return fmt.Errorf("no dataset prepared")
	}
	args := []string{"categorize", "-dataset", s.datasetPath, "-out", s.outDir}
	s.exitCode = cli.Run(args, strings.NewReader(""), &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) iPlayWithInput(body *godog.DocString) error {
	if s.datasetPath == "" {
		return fmt.Errorf("no dataset prepared")
	}
	args := []string{"play", "-dataset", s.datasetPath, "-count", "100", "-seed", "1", "-ui", "plain"}
	stdin := strings.NewReader(body.Content + "\n")
	s.exitCode = cli.Run(args, stdin, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) theExitCodeIs(expected int) error {
	if s.exitCode != expected {
		return fmt.Errorf("exit code %d, expected %d (stderr: %s)", s.exitCode, expected, s.stderr.String())
	}
	return nil
}

func (s *featureState) theOutputContains(fragment string) error {
	if !strings.Contains(s.stdout.String(), fragment) {
		return fmt.Errorf("output %q does not contain %q", s.stdout.String(), fragment)
	}
	return nil
}

func (s *featureState) theBucketContainsExactly(bucket, expected string) error {
	ids, err := s.bucketIDs(bucket)
	if err != nil {
		return err
	}
	var want []string
	if expected != "" {
		want = strings.Split(expected, ",")
	}
	if len(ids) != len(want) {
		return fmt.Errorf("bucket %q has ids %v, expected %v", bucket, ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			return fmt.Errorf("bucket %q has ids %v, expected %v", bucket, ids, want)
		}
	}
	return nil
}

func (s *featureState) noBucketContains(id string) error {
	for _, bucket := range []string{"mechanical", "electrical", "finance", "team-manager"} {
		ids, err := s.bucketIDs(bucket)
		if err != nil {
			return err
		}
		for _, have := range ids {
			if have == id {
				return fmt.Errorf("bucket %q unexpectedly contains %q", bucket, id)
			}
		}
	}
	return nil
}

func (s *featureState) bucketIDs(bucket string) ([]string, error) {
	path := filepath.Join(s.outDir, fmt.Sprintf("questions_%s.json", bucket))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bucket %q: %w", bucket, err)
	}
	var questions []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("decode bucket %q: %w", bucket, err)
	}
	ids := make([]string, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	return ids, nil
}
