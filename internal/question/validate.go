package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a dataset record.
type Issue struct {
	Field   string
	Message string
}

// String renders the issue as a single diagnostic line.
func (issue Issue) String() string {
	return fmt.Sprintf("%s: %s", issue.Field, issue.Message)
}

// ValidationError reports one or more fatal validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, issue.String())
	}
	return fmt.Sprintf("dataset validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeDataset validates dataset-level fields and normalizes every
// question. Malformed records are dropped rather than failing the load; the
// returned issues describe each dropped record so callers can report them.
func NormalizeDataset(ds Dataset) (Dataset, []Issue, error) {
	fatal := &issueCollector{}
	if ds.Version == 0 {
		fatal.add("version", "is required")
	} else if ds.Version != 1 {
		fatal.add("version", fmt.Sprintf("unsupported version %d", ds.Version))
	}
	if err := fatal.result(); err != nil {
		return Dataset{}, nil, err
	}

	var skipped []Issue
	kept := make([]Question, 0, len(ds.Questions))
	seenIDs := map[string]struct{}{}
	for i, q := range ds.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		normalized, issue := normalizeQuestion(q)
		if issue != nil {
			issue.Field = prefix + "." + issue.Field
			skipped = append(skipped, *issue)
			continue
		}
		if normalized.ID != "" {
			if _, exists := seenIDs[normalized.ID]; exists {
				skipped = append(skipped, Issue{
					Field:   prefix + ".id",
					Message: fmt.Sprintf("duplicate id %q", normalized.ID),
				})
				continue
			}
			seenIDs[normalized.ID] = struct{}{}
		}
		kept = append(kept, normalized)
	}
	ds.Questions = kept
	return ds, skipped, nil
}

// normalizeQuestion trims and canonicalizes one record. A non-nil issue
// means the record is incomplete and must be skipped.
func normalizeQuestion(q Question) (Question, *Issue) {
	q.ID = strings.TrimSpace(q.ID)
	q.RuleID = strings.TrimSpace(q.RuleID)
	q.Text = strings.TrimSpace(q.Text)
	if q.Text == "" {
		return Question{}, &Issue{Field: "text", Message: "is required"}
	}

	q.Options = normalizeOptions(q.Options)
	q.AcceptedAnswers = trimStrings(q.AcceptedAnswers)
	q.CorrectLabels = lowerStrings(trimStrings(q.CorrectLabels))
	q.Countries = trimStrings(q.Countries)
	q.Images = trimStrings(q.Images)

	if q.FreeResponse() {
		if len(q.AcceptedAnswers) == 0 {
			return Question{}, &Issue{Field: "accepted_answers", Message: "free-response question has no accepted answers"}
		}
		if len(q.CorrectLabels) > 0 {
			return Question{}, &Issue{Field: "correct_labels", Message: "set on a question without options"}
		}
		return q, nil
	}

	labels := map[string]struct{}{}
	for i, option := range q.Options {
		if _, exists := labels[option.Label]; exists {
			return Question{}, &Issue{
				Field:   fmt.Sprintf("options[%d].label", i),
				Message: fmt.Sprintf("duplicate label %q", option.Label),
			}
		}
		labels[option.Label] = struct{}{}
	}
	if len(q.CorrectLabels) == 0 {
		return Question{}, &Issue{Field: "correct_labels", Message: "no correct option marked"}
	}
	for i, label := range q.CorrectLabels {
		if _, ok := labels[label]; !ok {
			return Question{}, &Issue{
				Field:   fmt.Sprintf("correct_labels[%d]", i),
				Message: fmt.Sprintf("unknown option label %q", label),
			}
		}
	}
	return q, nil
}

// normalizeOptions drops options with empty text and assigns positional
// letter labels (a, b, c, ...) to options that carry none.
func normalizeOptions(options []Option) []Option {
	normalized := make([]Option, 0, len(options))
	for _, option := range options {
		option.Text = strings.TrimSpace(option.Text)
		if option.Text == "" {
			continue
		}
		option.Label = strings.ToLower(strings.TrimSpace(option.Label))
		if option.Label == "" {
			option.Label = positionLabel(len(normalized))
		}
		normalized = append(normalized, option)
	}
	return normalized
}

// positionLabel returns the letter label for a zero-based option index.
func positionLabel(index int) string {
	return string(rune('a' + index%26))
}

func trimStrings(values []string) []string {
	trimmed := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		trimmed = append(trimmed, value)
	}
	return trimmed
}

func lowerStrings(values []string) []string {
	lowered := make([]string, 0, len(values))
	for _, value := range values {
		lowered = append(lowered, strings.ToLower(value))
	}
	return lowered
}
