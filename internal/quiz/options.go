package quiz

import (
	"time"

	"fsquiz/internal/category"
	"fsquiz/internal/question"
)

// DefaultCount is the number of questions selected when none is requested.
const DefaultCount = 20

// Options carries the recognized session configuration.
type Options struct {
	Category  category.Category // Unclassified plays every category
	Countries []string
	Years     []int
	Count     int
	Timed     bool
	Seed      int64 // zero draws a time-based seed
}

// BuildSession selects the pool, samples it, and assembles a session.
func BuildSession(questions []question.Question, classifier *category.Classifier, policy category.FilterPolicy, opts Options) (*Session, error) {
	filter := category.Filter{
		Countries: opts.Countries,
		Years:     opts.Years,
		Policy:    policy,
	}
	pool, err := SelectPool(questions, classifier, opts.Category, filter)
	if err != nil {
		return nil, err
	}
	count := opts.Count
	if count <= 0 {
		count = DefaultCount
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	selected := SampleSession(pool, count, seed)
	return NewSession(selected, PoolMedian(pool), opts.Timed), nil
}
