// Package rules loads the categorization configuration: the ordered
// rule-code table, the per-category keyword lists, and the filter policy.
package rules

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// File is the YAML schema for a rules configuration file.
type File struct {
	Version         int          `yaml:"version"`
	FilterPolicy    string       `yaml:"filter_policy"`
	DefaultCategory string       `yaml:"default_category"`
	Rules           []RuleEntry  `yaml:"rules"`
	Keywords        []KeywordSet `yaml:"keywords"`
}

// RuleEntry maps a rule-code prefix to a category name.
type RuleEntry struct {
	Prefix   string `yaml:"prefix"`
	Category string `yaml:"category"`
}

// KeywordSet lists fallback keywords for one category.
type KeywordSet struct {
	Category string   `yaml:"category"`
	Words    []string `yaml:"words"`
	Phrases  []string `yaml:"phrases"`
}

// Parse decodes a rules file, rejecting unknown fields and extra documents.
func Parse(data []byte) (File, error) {
	var file File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return File{}, fmt.Errorf("parse rules: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return File{}, fmt.Errorf("parse rules: multiple YAML documents are not supported")
		}
		return File{}, fmt.Errorf("parse rules: %w", err)
	}
	return file, nil
}
