package cli

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"fsquiz/internal/category"
	"fsquiz/internal/question"
	"fsquiz/internal/quiz"
	"fsquiz/internal/rules"
	"fsquiz/internal/ui/play"
	"fsquiz/internal/viewer"
)

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		datasetPath := flags.String("dataset", "fsquiz_questions.json", "Path to the question dataset or a bucket file")
		rulesPath := flags.String("rules", "", "Path to a rules config (default: built-in FS rules)")
		categoryFlag := flags.String("category", "", "Restrict to one category (default: all)")
		countFlag := flags.Int("count", 0, "Number of questions to ask (default: 20)")
		timedFlag := flags.Bool("timed", false, "Show an advisory countdown per question")
		seedFlag := flags.Int64("seed", 0, "Sampling seed (default: time-based)")
		countriesFlag := flags.String("countries", "", "Comma-separated country filter")
		yearsFlag := flags.String("years", "", "Comma-separated year filter")
		uiFlag := flags.String("ui", "auto", "UI mode: auto|live|plain")
		noColor := flags.Bool("no-color", false, "Disable color output")
		if err := flags.Parse(args); err != nil {
			return ExitUsage
		}

		visited := map[string]bool{}
		flags.Visit(func(f *flag.Flag) { visited[f.Name] = true })

		years, err := parseYears(*yearsFlag)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid --years: %v\n", err)
			return ExitUsage
		}

		opts := quiz.Options{
			Countries: splitList(*countriesFlag),
			Years:     years,
			Count:     *countFlag,
			Timed:     *timedFlag,
			Seed:      *seedFlag,
		}

		// Missing flags are prompted for interactively, but only on a TTY so
		// scripted runs stay non-interactive.
		reader := bufio.NewReader(stdin)
		interactive := isTerminal(stdout)
		categoryName := *categoryFlag
		if categoryName == "" && !visited["category"] && interactive {
			label := fmt.Sprintf("Pick category (%s or empty for all)", categoryNames())
			categoryName, err = promptString(reader, stdout, label, "")
			if err != nil {
				fmt.Fprintf(stderr, "Failed to read category: %v\n", err)
				return ExitError
			}
		}
		if categoryName != "" && !strings.EqualFold(categoryName, "all") {
			opts.Category, err = category.Parse(categoryName)
			if err != nil {
				fmt.Fprintf(stderr, "Invalid category: %v\n", err)
				return ExitUsage
			}
		}
		if !visited["count"] && interactive {
			opts.Count, err = promptInt(reader, stdout, "How many questions?", quiz.DefaultCount)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to read count: %v\n", err)
				return ExitError
			}
		}
		if !visited["timed"] && interactive {
			opts.Timed, err = promptYesNo(reader, stdout, "Enable timer?", false)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to read timer choice: %v\n", err)
				return ExitError
			}
		}

		cfg, err := rules.Load(*rulesPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load rules: %v\n", err)
			return ExitError
		}
		classifier, err := category.NewClassifier(cfg)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to build classifier: %v\n", err)
			return ExitError
		}
		ds, skipped, err := question.LoadDataset(*datasetPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load dataset: %v\n", err)
			return ExitError
		}
		reportSkipped(stderr, skipped)

		session, err := quiz.BuildSession(ds.Questions, classifier, cfg.FilterPolicy, opts)
		if err != nil {
			if errors.Is(err, quiz.ErrNoEligible) {
				fmt.Fprintln(stderr, "No eligible questions match the requested category and filters.")
				return ExitError
			}
			fmt.Fprintf(stderr, "Failed to build session: %v\n", err)
			return ExitError
		}

		decision, err := resolveUIMode(*uiFlag, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		view := viewer.ExecViewer{BaseDir: filepath.Dir(*datasetPath)}
		if decision.useLive {
			model := play.NewModel(session, view, play.Options{NoColor: *noColor})
			program := tea.NewProgram(model, tea.WithInput(stdin), tea.WithOutput(stdout))
			if _, err := program.Run(); err != nil {
				fmt.Fprintf(stderr, "Session failed: %v\n", err)
				return ExitError
			}
		} else {
			fmt.Fprintf(stdout, "FS Quiz: %d questions (source: %s)\n", len(session.Questions), *datasetPath)
			fmt.Fprintln(stdout, "Answer with letter(s), e.g. 'a' or 'a,c'. Type 'q' to quit, 's' to skip.")
			fmt.Fprintln(stdout)
			if err := runPlainSession(reader, stdout, session, view); err != nil {
				fmt.Fprintf(stderr, "Session failed: %v\n", err)
				return ExitError
			}
		}

		printSummary(stdout, session.Summary())
		return ExitOK
	}
}

// categoryNames joins the category names for prompt text.
func categoryNames() string {
	names := make([]string, 0, len(category.Categories))
	for _, cat := range category.Categories {
		names = append(names, string(cat))
	}
	return strings.Join(names, "/")
}

// printSummary reports the terminal score.
func printSummary(out io.Writer, summary quiz.Summary) {
	if summary.Answered == 0 {
		fmt.Fprintf(out, "No questions answered (%d selected).\n", summary.Total)
		return
	}
	fmt.Fprintf(out, "Final score: %d/%d correct (%d questions selected)\n",
		summary.Correct, summary.Answered, summary.Total)
}
