package play

import (
	"strings"
	"testing"

	"fsquiz/internal/question"
	"fsquiz/internal/quiz"
)

// TestWrapBreaksLongLines verifies word wrapping at the width limit.
func TestWrapBreaksLongLines(t *testing.T) {
	text := "alpha beta gamma delta epsilon"
	wrapped := Wrap(text, 11)
	for _, line := range strings.Split(wrapped, "\n") {
		if len(line) > 11 {
			t.Fatalf("line %q exceeds width", line)
		}
	}
	if strings.ReplaceAll(wrapped, "\n", " ") != text {
		t.Fatalf("wrapping lost words: %q", wrapped)
	}
}

// TestWrapKeepsExplicitNewlines verifies paragraph breaks survive.
func TestWrapKeepsExplicitNewlines(t *testing.T) {
	wrapped := Wrap("first\nsecond", 80)
	if wrapped != "first\nsecond" {
		t.Fatalf("unexpected wrap %q", wrapped)
	}
}

// TestWrapLongWordStaysWhole verifies oversized words are not split.
func TestWrapLongWordStaysWhole(t *testing.T) {
	wrapped := Wrap("tiny supercalifragilistic tiny", 10)
	if !strings.Contains(wrapped, "supercalifragilistic") {
		t.Fatalf("long word was broken: %q", wrapped)
	}
}

// TestWrapZeroWidthPassthrough verifies non-positive widths disable wrapping.
func TestWrapZeroWidthPassthrough(t *testing.T) {
	text := "anything at all"
	if got := Wrap(text, 0); got != text {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

// TestFormatOutcomePlain verifies the verdict line without styling.
func TestFormatOutcomePlain(t *testing.T) {
	correct := formatOutcome(quiz.OutcomeCorrect, "9.1", true)
	if correct != "✅ Correct answer: 9.1" {
		t.Fatalf("unexpected verdict %q", correct)
	}
	wrong := formatOutcome(quiz.OutcomeIncorrect, "Paris", true)
	if wrong != "❌ Correct answer: Paris" {
		t.Fatalf("unexpected verdict %q", wrong)
	}
}

// TestFreeAnswerHint verifies the reference answer fallback.
func TestFreeAnswerHint(t *testing.T) {
	q := question.Question{AcceptedAnswers: []string{"9.1", "nine"}}
	if got := freeAnswerHint(q); got != "9.1" {
		t.Fatalf("expected first accepted answer, got %q", got)
	}
	if got := freeAnswerHint(question.Question{}); got != "(not provided)" {
		t.Fatalf("expected placeholder, got %q", got)
	}
}
