package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"fsquiz/internal/question"
	"fsquiz/internal/quiz"
	"fsquiz/internal/ui/play"
	"fsquiz/internal/viewer"
)

// runPlainSession drives the prompt/answer loop without the live UI. It is
// strictly sequential: one question at a time, graded on submit. The
// advisory limit is printed once per question; late answers still grade.
func runPlainSession(reader *bufio.Reader, out io.Writer, session *quiz.Session, view viewer.Viewer) error {
	for {
		q, ok := session.Current()
		if !ok {
			return nil
		}
		presentQuestion(out, session, q, view)

		for {
			fmt.Fprint(out, answerPrompt(q))
			line, err := readLine(reader)
			if err == io.EOF && line == "" {
				session.Quit()
				fmt.Fprintln(out)
				return nil
			}
			if err != nil && err != io.EOF {
				return err
			}

			input := strings.TrimSpace(line)
			switch strings.ToLower(input) {
			case "q":
				session.Quit()
				return nil
			case "s":
				session.Skip()
				fmt.Fprintln(out, "Skipped.")
				fmt.Fprintln(out)
			case "i":
				showImages(out, q, view)
				continue
			case "":
				fmt.Fprintln(out, "Please enter an answer or 's' to skip.")
				continue
			default:
				if done := gradeInput(out, session, q, input); !done {
					continue
				}
			}
			break
		}
	}
}

// presentQuestion prints the prompt text, options, images, and time limit.
func presentQuestion(out io.Writer, session *quiz.Session, q question.Question, view viewer.Viewer) {
	fmt.Fprintf(out, "Q%02d of %d:\n%s\n", session.Index()+1, len(session.Questions), play.Wrap(q.Text, 88))
	if len(q.Images) > 0 {
		fmt.Fprintln(out, "Images:")
		for _, image := range q.Images {
			fmt.Fprintf(out, "  - %s\n", image)
		}
		showImages(out, q, view)
	}
	if q.FreeResponse() {
		fmt.Fprintln(out, "(Free response; enter your answer)")
	} else {
		for _, option := range q.Options {
			fmt.Fprintf(out, "  %s) %s\n", option.Label, play.Wrap(option.Text, 84))
		}
	}
	if session.Timed {
		fmt.Fprintf(out, "(Time allowed: %s, advisory only)\n", session.Limit())
	}
}

// gradeInput grades one answer line. It returns false when the loop should
// reprompt without advancing.
func gradeInput(out io.Writer, session *quiz.Session, q question.Question, input string) bool {
	if q.FreeResponse() {
		outcome, err := session.SubmitFree(input)
		if errors.Is(err, quiz.ErrNotNumeric) {
			fmt.Fprintln(out, "Please enter a number.")
			return false
		}
		printOutcome(out, outcome, freeAnswerHint(q))
		return true
	}
	labels, err := quiz.ParseChoices(input, q)
	if err != nil {
		fmt.Fprintln(out, "Invalid input, try again.")
		return false
	}
	outcome := session.SubmitChoice(labels)
	printOutcome(out, outcome, strings.Join(q.CorrectLabels, ","))
	return true
}

// answerPrompt renders the per-question input prompt.
func answerPrompt(q question.Question) string {
	prompt := "Your answer (q=quit, s=skip"
	if len(q.Images) > 0 {
		prompt += ", i=images"
	}
	return prompt + "): "
}

// printOutcome prints the verdict and the expected answer.
func printOutcome(out io.Writer, outcome quiz.Outcome, expected string) {
	if outcome == quiz.OutcomeCorrect {
		fmt.Fprintf(out, "✅ Correct answer: %s\n", expected)
	} else {
		fmt.Fprintf(out, "❌ Correct answer: %s\n", expected)
	}
	fmt.Fprintln(out)
}

// freeAnswerHint picks the reference answer shown after grading.
func freeAnswerHint(q question.Question) string {
	if len(q.AcceptedAnswers) == 0 {
		return "(not provided)"
	}
	return q.AcceptedAnswers[0]
}

// showImages requests image display through the injected viewer.
func showImages(out io.Writer, q question.Question, view viewer.Viewer) {
	if len(q.Images) == 0 {
		fmt.Fprintln(out, "No images for this question.")
		return
	}
	if err := view.Show(q.Images); err != nil {
		fmt.Fprintf(out, "(could not open images: %v)\n", err)
	}
}
