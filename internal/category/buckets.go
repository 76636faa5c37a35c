package category

import "fsquiz/internal/question"

// Buckets maps each category to its ordered question subsequence.
type Buckets map[Category][]question.Question

// Partition splits questions into buckets, preserving dataset order.
// Unclassified questions and questions rejected by the filter are excluded.
// Every run recomputes buckets from scratch; there is no merge.
func Partition(questions []question.Question, classifier *Classifier, filter Filter) Buckets {
	buckets := make(Buckets, len(Categories))
	for _, cat := range Categories {
		buckets[cat] = nil
	}
	for _, q := range questions {
		if !filter.Matches(q) {
			continue
		}
		cat := classifier.Classify(q)
		if cat == Unclassified {
			continue
		}
		buckets[cat] = append(buckets[cat], q)
	}
	return buckets
}
