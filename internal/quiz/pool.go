package quiz

import (
	"errors"

	"fsquiz/internal/category"
	"fsquiz/internal/question"
)

// ErrNoEligible reports that filtering left no questions to play.
var ErrNoEligible = errors.New("no eligible questions")

// SelectPool narrows the dataset to the questions matching the filter and,
// when cat is not Unclassified, the requested category.
func SelectPool(questions []question.Question, classifier *category.Classifier, cat category.Category, filter category.Filter) ([]question.Question, error) {
	var pool []question.Question
	for _, q := range questions {
		if !filter.Matches(q) {
			continue
		}
		if cat != category.Unclassified && classifier.Classify(q) != cat {
			continue
		}
		pool = append(pool, q)
	}
	if len(pool) == 0 {
		return nil, ErrNoEligible
	}
	return pool, nil
}
