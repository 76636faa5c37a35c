package play

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fsquiz/internal/question"
	"fsquiz/internal/quiz"
)

// Wrap breaks text into lines of at most width characters, keeping explicit
// newlines intact.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	paragraphs := strings.Split(text, "\n")
	for i, paragraph := range paragraphs {
		paragraphs[i] = wrapLine(paragraph, width)
	}
	return strings.Join(paragraphs, "\n")
}

// wrapLine wraps a single paragraph at word boundaries. Words longer than
// the width stay on their own line unbroken.
func wrapLine(line string, width int) string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return line
	}
	var builder strings.Builder
	lineLen := 0
	for i, word := range words {
		if i == 0 {
			builder.WriteString(word)
			lineLen = len([]rune(word))
			continue
		}
		wordLen := len([]rune(word))
		if lineLen+1+wordLen > width {
			builder.WriteString("\n")
			builder.WriteString(word)
			lineLen = wordLen
			continue
		}
		builder.WriteString(" ")
		builder.WriteString(word)
		lineLen += 1 + wordLen
	}
	return builder.String()
}

// formatOutcome renders the grading verdict with the expected answer.
func formatOutcome(outcome quiz.Outcome, expected string, noColor bool) string {
	if outcome == quiz.OutcomeCorrect {
		return stylize("✅ Correct answer: "+expected, noColor, lipgloss.Color("42"))
	}
	return stylize("❌ Correct answer: "+expected, noColor, lipgloss.Color("196"))
}

// freeAnswerHint picks the reference answer shown after grading.
func freeAnswerHint(q question.Question) string {
	if len(q.AcceptedAnswers) == 0 {
		return "(not provided)"
	}
	return q.AcceptedAnswers[0]
}
