package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// splitList parses a comma-separated flag value into trimmed entries.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

// parseYears parses a comma-separated list of years.
func parseYears(value string) ([]int, error) {
	var years []int
	for _, part := range splitList(value) {
		year, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid year %q", part)
		}
		years = append(years, year)
	}
	return years, nil
}
