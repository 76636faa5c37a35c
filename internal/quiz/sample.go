package quiz

import (
	"math/rand"

	"fsquiz/internal/question"
)

// SampleSession draws min(count, len(pool)) questions without replacement.
// The copied pool is always shuffled, so the order never leaks dataset
// order, and a fixed seed reproduces the exact selection.
func SampleSession(pool []question.Question, count int, seed int64) []question.Question {
	shuffled := make([]question.Question, len(pool))
	copy(shuffled, pool)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if count >= len(shuffled) {
		return shuffled
	}
	return shuffled[:count]
}
