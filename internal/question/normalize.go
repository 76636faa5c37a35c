package question

import "strings"

// NormalizeText lowercases a string and collapses interior whitespace for
// answer matching.
func NormalizeText(value string) string {
	return strings.ToLower(strings.Join(strings.Fields(value), " "))
}
