package category

import (
	"fmt"
	"strings"
)

// Category is one of the closed set of topic buckets.
type Category string

const (
	// Unclassified marks questions that matched no rule and no keyword;
	// they are excluded from every bucket.
	Unclassified Category = ""

	Mechanical  Category = "mechanical"
	Electrical  Category = "electrical"
	Finance     Category = "finance"
	TeamManager Category = "team-manager"
)

// Categories lists the closed category set in display order.
var Categories = []Category{Mechanical, Electrical, Finance, TeamManager}

// Parse resolves a user-supplied category name.
func Parse(value string) (Category, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.ReplaceAll(normalized, "_", "-")
	normalized = strings.ReplaceAll(normalized, " ", "-")
	for _, cat := range Categories {
		if normalized == string(cat) {
			return cat, nil
		}
	}
	return Unclassified, fmt.Errorf("unknown category %q", value)
}

// Title returns a human-readable name for display.
func (c Category) Title() string {
	switch c {
	case Mechanical:
		return "Mechanical"
	case Electrical:
		return "Electrical"
	case Finance:
		return "Finance"
	case TeamManager:
		return "Team Manager"
	default:
		return "Unclassified"
	}
}
