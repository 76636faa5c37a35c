package question

import (
	"regexp"
	"strconv"
	"strings"
)

// Form is one accepted answer form: exact text, a single number, or an
// inclusive numeric range.
type Form struct {
	Raw        string
	Normalized string
	Number     *float64
	Range      *Range
}

// Range is an inclusive numeric interval with Low <= High.
type Range struct {
	Low  float64
	High float64
}

// rangeSlack widens range boundaries to absorb float rounding.
const rangeSlack = 1e-6

var rangePattern = regexp.MustCompile(`(?i)^\s*([-+]?[0-9]*\.?[0-9]+)\s*(?:-|–|to)\s*([-+]?[0-9]*\.?[0-9]+)\s*$`)

// ParseForm interprets an accepted answer string as a number, a range, or
// plain text.
func ParseForm(raw string) Form {
	form := Form{Raw: raw, Normalized: NormalizeText(raw)}
	if number, ok := ParseNumber(raw); ok {
		form.Number = &number
		return form
	}
	if interval, ok := ParseRange(raw); ok {
		form.Range = &interval
	}
	return form
}

// IsNumeric reports whether the form is a number or a range.
func (f Form) IsNumeric() bool {
	return f.Number != nil || f.Range != nil
}

// ParseNumber parses a decimal number, accepting comma decimal separators.
func ParseNumber(raw string) (float64, bool) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if cleaned == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// ParseRange parses ranges like "8.9-9.3", "8.9 – 9.3", or "8.9 to 9.3".
// Reversed bounds are swapped so Low <= High always holds.
func ParseRange(raw string) (Range, bool) {
	cleaned := strings.ReplaceAll(raw, ",", ".")
	match := rangePattern.FindStringSubmatch(cleaned)
	if match == nil {
		return Range{}, false
	}
	low, errLow := strconv.ParseFloat(match[1], 64)
	high, errHigh := strconv.ParseFloat(match[2], 64)
	if errLow != nil || errHigh != nil {
		return Range{}, false
	}
	if low > high {
		low, high = high, low
	}
	return Range{Low: low, High: high}, true
}

// Contains reports whether value falls inside the inclusive range.
func (r Range) Contains(value float64) bool {
	return value >= r.Low-rangeSlack && value <= r.High+rangeSlack
}
