package quiz

import (
	"sort"
	"time"

	"fsquiz/internal/question"
)

const (
	// defaultMedianSeconds stands in when no question in the pool carries a
	// positive time value.
	defaultMedianSeconds = 60

	minFallbackLimit = 30 * time.Second
	maxFallbackLimit = 900 * time.Second
)

// PoolMedian computes the median of the positive time values in the pool.
func PoolMedian(pool []question.Question) float64 {
	var times []float64
	for _, q := range pool {
		if q.HasTime() {
			times = append(times, q.TimeSeconds)
		}
	}
	if len(times) == 0 {
		return defaultMedianSeconds
	}
	sort.Float64s(times)
	mid := len(times) / 2
	if len(times)%2 == 1 {
		return times[mid]
	}
	return (times[mid-1] + times[mid]) / 2
}

// TimeLimit returns the advisory countdown for a question. Questions without
// their own time fall back to the pool median, clamped to a sane window.
// The countdown is informational only and never rejects input.
func TimeLimit(q question.Question, poolMedian float64) time.Duration {
	if q.HasTime() {
		return secondsToDuration(q.TimeSeconds)
	}
	fallback := secondsToDuration(poolMedian)
	if fallback < minFallbackLimit {
		return minFallbackLimit
	}
	if fallback > maxFallbackLimit {
		return maxFallbackLimit
	}
	return fallback
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
