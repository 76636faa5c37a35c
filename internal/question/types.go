package question

// Dataset defines the question dataset schema loaded from JSON or YAML.
type Dataset struct {
	Version   int        `json:"version" yaml:"version"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Option is one labeled multiple-choice answer.
type Option struct {
	Label string `json:"label" yaml:"label"`
	Text  string `json:"text" yaml:"text"`
}

// Question is the atomic dataset unit. An empty Options slice marks a
// free-response question graded against AcceptedAnswers; otherwise the
// question is multiple-choice graded against CorrectLabels.
type Question struct {
	ID              string   `json:"id" yaml:"id"`
	RuleID          string   `json:"rule_id" yaml:"rule_id"`
	Text            string   `json:"text" yaml:"text"`
	Options         []Option `json:"options" yaml:"options"`
	AcceptedAnswers []string `json:"accepted_answers" yaml:"accepted_answers"`
	CorrectLabels   []string `json:"correct_labels" yaml:"correct_labels"`
	Images          []string `json:"images" yaml:"images"`
	TimeSeconds     float64  `json:"median_time_seconds" yaml:"median_time_seconds"`
	Countries       []string `json:"countries" yaml:"countries"`
	Years           []int    `json:"years" yaml:"years"`
}

// FreeResponse reports whether the question takes free-form input.
func (q Question) FreeResponse() bool {
	return len(q.Options) == 0
}

// HasTime reports whether the question carries its own positive timing value.
func (q Question) HasTime() bool {
	return q.TimeSeconds > 0
}

// OptionLabels returns the option labels in option order.
func (q Question) OptionLabels() []string {
	labels := make([]string, 0, len(q.Options))
	for _, option := range q.Options {
		labels = append(labels, option.Label)
	}
	return labels
}

// Forms parses the accepted answers into grading forms.
func (q Question) Forms() []Form {
	forms := make([]Form, 0, len(q.AcceptedAnswers))
	for _, accepted := range q.AcceptedAnswers {
		forms = append(forms, ParseForm(accepted))
	}
	return forms
}
