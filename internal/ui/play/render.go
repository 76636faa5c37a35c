package play

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fsquiz/internal/question"
	"fsquiz/internal/quiz"
)

// View renders the active question, countdown, and input line.
func (m Model) View() string {
	q, ok := m.session.Current()
	if !ok {
		return renderClosing(m.session.Summary(), m.opts.NoColor)
	}

	sections := []string{renderHeader(m), Wrap(q.Text, m.width)}
	if len(q.Images) > 0 {
		sections = append(sections, renderImages(q.Images, m.opts.NoColor))
	}
	if q.FreeResponse() {
		sections = append(sections, stylize("(Free response; enter your answer)", m.opts.NoColor, lipgloss.Color("246")))
	} else {
		sections = append(sections, renderOptions(q.Options, m.width))
	}
	if m.session.Timed {
		sections = append(sections, renderCountdown(m))
	}
	if m.feedback != "" {
		sections = append(sections, m.feedback)
	}
	if m.warning != "" {
		sections = append(sections, stylize(m.warning, m.opts.NoColor, lipgloss.Color("220")))
	}
	sections = append(sections, m.input.View())
	sections = append(sections, stylize("enter=submit  q=quit  s=skip  i=images", m.opts.NoColor, lipgloss.Color("240")))
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

// renderHeader shows the position and the running score.
func renderHeader(m Model) string {
	summary := m.session.Summary()
	line := fmt.Sprintf("Question %d of %d | Score %d/%d",
		m.session.Index()+1, summary.Total, summary.Correct, summary.Answered)
	return stylize(line, m.opts.NoColor, lipgloss.Color("33"))
}

// renderOptions lists the labeled choices.
func renderOptions(options []question.Option, width int) string {
	lines := make([]string, 0, len(options))
	for _, option := range options {
		lines = append(lines, fmt.Sprintf("  %s) %s", option.Label, Wrap(option.Text, width-4)))
	}
	return strings.Join(lines, "\n")
}

// renderImages lists image refs with the reopen hint.
func renderImages(images []string, noColor bool) string {
	lines := make([]string, 0, len(images)+1)
	lines = append(lines, "Images (press 'i' to open):")
	for _, image := range images {
		lines = append(lines, "  - "+image)
	}
	return stylize(strings.Join(lines, "\n"), noColor, lipgloss.Color("246"))
}

// renderCountdown shows remaining time, or the expired notice. Input stays
// open either way.
func renderCountdown(m Model) string {
	if m.timedOut {
		return stylize("⏰ Time is up. Answers are still accepted.", m.opts.NoColor, lipgloss.Color("196"))
	}
	remaining := m.limit
	if !m.deadline.IsZero() {
		remaining = m.deadline.Sub(m.now)
	}
	if remaining < 0 {
		remaining = 0
	}
	line := fmt.Sprintf("⏳ %ds remaining", int(remaining.Seconds()))
	return stylize(line, m.opts.NoColor, lipgloss.Color("39"))
}

// renderClosing shows the final line before the program exits.
func renderClosing(summary quiz.Summary, noColor bool) string {
	line := fmt.Sprintf("Session over: %d/%d correct (%d selected)\n",
		summary.Correct, summary.Answered, summary.Total)
	return stylize(line, noColor, lipgloss.Color("42"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
