package category

import (
	"strings"

	"fsquiz/internal/question"
)

// FilterPolicy decides how empty question metadata behaves under filters.
type FilterPolicy string

const (
	// FilterWildcard treats missing country/year metadata as matching any
	// filter value.
	FilterWildcard FilterPolicy = "wildcard"
	// FilterStrict excludes questions without metadata whenever the
	// corresponding filter is set.
	FilterStrict FilterPolicy = "strict"
)

// Filter restricts questions by country and year. Empty filter sets pass
// every question.
type Filter struct {
	Countries []string
	Years     []int
	Policy    FilterPolicy
}

// Matches reports whether the question satisfies both filter dimensions.
func (f Filter) Matches(q question.Question) bool {
	return f.matchesCountries(q.Countries) && f.matchesYears(q.Years)
}

func (f Filter) matchesCountries(countries []string) bool {
	if len(f.Countries) == 0 {
		return true
	}
	if len(countries) == 0 {
		return f.Policy != FilterStrict
	}
	for _, want := range f.Countries {
		for _, have := range countries {
			if strings.EqualFold(want, have) {
				return true
			}
		}
	}
	return false
}

func (f Filter) matchesYears(years []int) bool {
	if len(f.Years) == 0 {
		return true
	}
	if len(years) == 0 {
		return f.Policy != FilterStrict
	}
	for _, want := range f.Years {
		for _, have := range years {
			if want == have {
				return true
			}
		}
	}
	return false
}
