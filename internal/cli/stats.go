package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"fsquiz/internal/category"
	"fsquiz/internal/question"
	"fsquiz/internal/rules"
	"fsquiz/internal/stats"
)

// runStats builds the handler for the stats command.
func runStats(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		datasetPath := flags.String("dataset", "fsquiz_questions.json", "Path to the question dataset")
		rulesPath := flags.String("rules", "", "Path to a rules config (default: built-in FS rules)")
		dbPath := flags.String("db", "", "DuckDB database path (default: in-memory)")
		if err := flags.Parse(args); err != nil {
			return ExitUsage
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

		db, err := stats.Open(*dbPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open database: %v\n", err)
			return ExitError
		}
		defer db.Close()

		ctx := context.Background()
		if err := stats.EnsureSchema(db); err != nil {
			fmt.Fprintf(stderr, "Failed to apply schema: %v\n", err)
			return ExitError
		}
		if err := stats.Ingest(ctx, db, ds.Questions, classifier); err != nil {
			fmt.Fprintf(stderr, "Failed to ingest dataset: %v\n", err)
			return ExitError
		}
		rows, err := stats.Summarize(ctx, db)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to summarize dataset: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "%-14s %9s %12s\n", "Category", "Questions", "MedianTime")
		for _, row := range rows {
			median := "n/a"
			if row.MedianTime.Valid {
				median = fmt.Sprintf("%.0fs", row.MedianTime.Float64)
			}
			fmt.Fprintf(stdout, "%-14s %9d %12s\n", row.Category, row.Count, median)
		}
		return ExitOK
	}
}
