package quiz

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"fsquiz/internal/question"
)

// numberEpsilon bounds float comparison for exact numeric answers.
const numberEpsilon = 1e-3

// ErrNotNumeric reports free-form input that parsed as neither a number nor
// a range for a question whose accepted forms are all numeric. Callers
// reprompt instead of grading the answer incorrect.
var ErrNotNumeric = errors.New("answer is not numeric")

// GradeChoice grades a multiple-choice selection: correct iff the selected
// label set equals the correct label set exactly. No partial credit.
func GradeChoice(selected, correct []string) bool {
	if len(selected) == 0 {
		return false
	}
	selectedSet := labelSet(selected)
	correctSet := labelSet(correct)
	if len(selectedSet) != len(correctSet) {
		return false
	}
	for label := range correctSet {
		if _, ok := selectedSet[label]; !ok {
			return false
		}
	}
	return true
}

// GradeFree grades free-form input against the accepted forms. Any single
// matching form accepts the answer: normalized text equality, numeric
// equality within epsilon, a number inside an accepted range, or a
// user-entered range containing an accepted number.
func GradeFree(input string, forms []question.Form) (bool, error) {
	normalized := question.NormalizeText(input)
	number, hasNumber := question.ParseNumber(input)
	interval, hasInterval := question.ParseRange(input)

	for _, form := range forms {
		if form.Normalized != "" && normalized == form.Normalized {
			return true, nil
		}
		if form.Number != nil {
			if hasNumber && math.Abs(number-*form.Number) < numberEpsilon {
				return true, nil
			}
			if hasInterval && interval.Contains(*form.Number) {
				return true, nil
			}
		}
		if form.Range != nil && hasNumber && form.Range.Contains(number) {
			return true, nil
		}
	}

	if !hasNumber && !hasInterval && allNumeric(forms) {
		return false, ErrNotNumeric
	}
	return false, nil
}

// ParseChoices splits comma-separated option labels and validates each one
// against the question's options.
func ParseChoices(input string, q question.Question) ([]string, error) {
	valid := labelSet(q.OptionLabels())
	cleaned := strings.ReplaceAll(strings.ToLower(input), " ", "")
	var labels []string
	for _, part := range strings.Split(cleaned, ",") {
		if part == "" {
			continue
		}
		if _, ok := valid[part]; !ok {
			return nil, fmt.Errorf("no option labeled %q", part)
		}
		labels = append(labels, part)
	}
	if len(labels) == 0 {
		return nil, errors.New("no option selected")
	}
	return labels, nil
}

func allNumeric(forms []question.Form) bool {
	if len(forms) == 0 {
		return false
	}
	for _, form := range forms {
		if !form.IsNumeric() {
			return false
		}
	}
	return true
}

func labelSet(labels []string) map[string]struct{} {
	set := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		label = strings.ToLower(strings.TrimSpace(label))
		if label == "" {
			continue
		}
		set[label] = struct{}{}
	}
	return set
}
