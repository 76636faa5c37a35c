package category

import (
	"fmt"
	"regexp"
	"strings"
)

// keywordMatcher matches one category's keyword list against question text.
// Single words match on word boundaries; phrases match as plain substrings.
type keywordMatcher struct {
	category Category
	words    []*regexp.Regexp
	phrases  []string
}

// compileKeywordSet builds a matcher from a keyword set.
func compileKeywordSet(set KeywordSet) (keywordMatcher, error) {
	matcher := keywordMatcher{category: set.Category}
	for _, word := range set.Words {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(word) + `\b`)
		if err != nil {
			return keywordMatcher{}, fmt.Errorf("compile keyword %q: %w", word, err)
		}
		matcher.words = append(matcher.words, pattern)
	}
	for _, phrase := range set.Phrases {
		phrase = strings.ToLower(strings.TrimSpace(phrase))
		if phrase == "" {
			continue
		}
		matcher.phrases = append(matcher.phrases, phrase)
	}
	return matcher, nil
}

// matches reports whether any keyword hits the lowercased text.
func (m keywordMatcher) matches(lowered string) bool {
	for _, phrase := range m.phrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	for _, word := range m.words {
		if word.MatchString(lowered) {
			return true
		}
	}
	return false
}
