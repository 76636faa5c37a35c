package category

import (
	"strings"

	"fsquiz/internal/question"
)

// Classifier assigns questions to categories using an ordered rule table
// with a keyword fallback. Classification is deterministic and side-effect
// free: the same question always yields the same category.
type Classifier struct {
	rules           []RuleEntry
	matchers        []keywordMatcher
	defaultCategory Category
}

// NewClassifier compiles a classifier from configuration.
func NewClassifier(cfg Config) (*Classifier, error) {
	classifier := &Classifier{
		rules:           cfg.Rules,
		defaultCategory: cfg.DefaultCategory,
	}
	for _, set := range cfg.Keywords {
		matcher, err := compileKeywordSet(set)
		if err != nil {
			return nil, err
		}
		classifier.matchers = append(classifier.matchers, matcher)
	}
	return classifier, nil
}

// Classify returns the category for a question, or Unclassified when no
// rule and no keyword matches and no default category is configured.
func (c *Classifier) Classify(q question.Question) Category {
	for _, code := range RuleCodes(q) {
		for _, entry := range c.rules {
			if strings.HasPrefix(code, entry.Prefix) {
				return entry.Category
			}
		}
	}
	lowered := strings.ToLower(q.Text)
	for _, matcher := range c.matchers {
		if matcher.matches(lowered) {
			return matcher.category
		}
	}
	return c.defaultCategory
}
