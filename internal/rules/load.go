package rules

import (
	"fmt"
	"os"

	"fsquiz/internal/category"
)

// Load reads and compiles a rules configuration file. An empty path selects
// the built-in defaults.
func Load(path string) (category.Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return category.Config{}, fmt.Errorf("read rules: %w", err)
	}
	file, err := Parse(data)
	if err != nil {
		return category.Config{}, err
	}
	return file.Build()
}
