// Package play renders an interactive quiz session with Bubble Tea.
package play

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"fsquiz/internal/quiz"
	"fsquiz/internal/viewer"
)

// Options configures the live session UI.
type Options struct {
	NoColor      bool
	TickInterval time.Duration
}

// Model drives one quiz session. The countdown is advisory: expiry flips a
// display flag and never rejects or auto-submits an answer.
type Model struct {
	session *quiz.Session
	viewer  viewer.Viewer
	input   textinput.Model
	opts    Options

	now      time.Time
	deadline time.Time
	limit    time.Duration
	timedOut bool
	feedback string
	warning  string
	width    int
}

// NewModel constructs the session UI model.
func NewModel(session *quiz.Session, view viewer.Viewer, opts Options) Model {
	if opts.TickInterval <= 0 {
		opts.TickInterval = 250 * time.Millisecond
	}
	input := textinput.New()
	input.Placeholder = "answer (q=quit, s=skip, i=images)"
	input.Focus()
	m := Model{
		session: session,
		viewer:  view,
		input:   input,
		opts:    opts,
		now:     time.Now(),
		width:   88,
	}
	m.armCountdown()
	return m
}

// tickMsg carries a clock tick for countdown updates.
type tickMsg time.Time

// tick emits a periodic tick message.
func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init starts the caret blink and the countdown ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick(m.opts.TickInterval))
}

// Update handles window sizing, clock ticks, and key input.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(typed.Width-2, 20)
		return m, nil
	case tickMsg:
		m.now = time.Time(typed)
		if m.session.Timed && !m.deadline.IsZero() && m.now.After(m.deadline) {
			m.timedOut = true
		}
		return m, tick(m.opts.TickInterval)
	case tea.KeyMsg:
		switch typed.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.session.Quit()
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit interprets the entered line: control command, choice labels, or
// free-form answer.
func (m Model) submit() (tea.Model, tea.Cmd) {
	q, ok := m.session.Current()
	if !ok {
		return m, tea.Quit
	}
	input := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	m.warning = ""

	switch strings.ToLower(input) {
	case "q":
		m.session.Quit()
		return m, tea.Quit
	case "s":
		m.session.Skip()
		m.feedback = "Skipped."
		return m.advance()
	case "i":
		if len(q.Images) == 0 {
			m.warning = "No images for this question."
			return m, nil
		}
		if err := m.viewer.Show(q.Images); err != nil {
			m.warning = "Could not open images: " + err.Error()
		}
		return m, nil
	case "":
		m.warning = "Enter an answer, or 's' to skip."
		return m, nil
	}

	if q.FreeResponse() {
		outcome, err := m.session.SubmitFree(input)
		if errors.Is(err, quiz.ErrNotNumeric) {
			m.warning = "Please enter a number."
			return m, nil
		}
		m.feedback = formatOutcome(outcome, freeAnswerHint(q), m.opts.NoColor)
		return m.advance()
	}

	labels, err := quiz.ParseChoices(input, q)
	if err != nil {
		m.warning = "Invalid input, try again."
		return m, nil
	}
	outcome := m.session.SubmitChoice(labels)
	m.feedback = formatOutcome(outcome, strings.Join(q.CorrectLabels, ","), m.opts.NoColor)
	return m.advance()
}

// advance re-arms the countdown for the next question or ends the program.
func (m Model) advance() (tea.Model, tea.Cmd) {
	if m.session.Done() {
		return m, tea.Quit
	}
	m.armCountdown()
	return m, nil
}

// armCountdown resets the advisory deadline for the active question.
func (m *Model) armCountdown() {
	m.timedOut = false
	m.deadline = time.Time{}
	m.limit = m.session.Limit()
	if m.session.Timed && m.limit > 0 {
		m.deadline = m.now.Add(m.limit)
	}
}
