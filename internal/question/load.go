package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDataset reads, parses, and normalizes a dataset file. The returned
// issues describe malformed records that were skipped; they are non-fatal.
func LoadDataset(path string) (Dataset, []Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, nil, fmt.Errorf("read dataset: %w", err)
	}
	ds, err := parseDataset(data, path)
	if err != nil {
		return Dataset{}, nil, err
	}
	return NormalizeDataset(ds)
}

func parseDataset(data []byte, path string) (Dataset, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		return parseJSONDataset(data)
	}
	return parseYAMLDataset(data)
}

func parseJSONDataset(data []byte) (Dataset, error) {
	// Bucket files produced by categorize are bare question arrays.
	if isJSONArray(data) {
		var questions []Question
		if err := strictJSONDecode(data, &questions); err != nil {
			return Dataset{}, err
		}
		return Dataset{Version: 1, Questions: questions}, nil
	}
	var ds Dataset
	if err := strictJSONDecode(data, &ds); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

func strictJSONDecode(data []byte, target interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return fmt.Errorf("parse json: multiple documents are not supported")
		}
		return fmt.Errorf("parse json: %w", err)
	}
	return nil
}

func isJSONArray(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}

func parseYAMLDataset(data []byte) (Dataset, error) {
	var ds Dataset
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&ds); err != nil {
		return Dataset{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Dataset{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Dataset{}, fmt.Errorf("parse yaml: %w", err)
	}
	return ds, nil
}
