package category

import (
	"regexp"
	"strings"

	"fsquiz/internal/question"
)

// ruleCodePattern recognizes FS rule codes such as "EV 4.1.2" or "T11.3".
var ruleCodePattern = regexp.MustCompile(`\b((?:A|IN|T|CV|EV|S|D)\s?[0-9]+(?:\.[0-9]+)*)`)

// codeSpacing strips regular and non-breaking spaces inside rule codes.
var codeSpacing = strings.NewReplacer(" ", "", "\u202f", "", "\u00a0", "")

// RuleCodes returns the rule codes for a question: the explicit rule id when
// the record carries one, otherwise every code found in the question text.
func RuleCodes(q question.Question) []string {
	if q.RuleID != "" {
		return []string{canonicalCode(q.RuleID)}
	}
	matches := ruleCodePattern.FindAllString(q.Text, -1)
	codes := make([]string, 0, len(matches))
	for _, match := range matches {
		codes = append(codes, canonicalCode(match))
	}
	return codes
}

// canonicalCode strips spacing variants so prefix matching sees "EV4.1.2".
func canonicalCode(code string) string {
	return strings.ToUpper(codeSpacing.Replace(strings.TrimSpace(code)))
}
