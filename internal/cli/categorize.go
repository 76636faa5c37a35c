package cli

import (
	"flag"
	"fmt"
	"io"

	"fsquiz/internal/bucketio"
	"fsquiz/internal/category"
	"fsquiz/internal/question"
	"fsquiz/internal/rules"
)

// runCategorize builds the handler for the categorize command.
func runCategorize(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		datasetPath := flags.String("dataset", "fsquiz_questions.json", "Path to the question dataset")
		rulesPath := flags.String("rules", "", "Path to a rules config (default: built-in FS rules)")
		outDir := flags.String("out", "categorized_questions", "Output directory for bucket files")
		countriesFlag := flags.String("countries", "", "Comma-separated country filter")
		yearsFlag := flags.String("years", "", "Comma-separated year filter")
		if err := flags.Parse(args); err != nil {
			return ExitUsage
		}

		years, err := parseYears(*yearsFlag)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid --years: %v\n", err)
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

		filter := category.Filter{
			Countries: splitList(*countriesFlag),
			Years:     years,
			Policy:    cfg.FilterPolicy,
		}
		buckets := category.Partition(ds.Questions, classifier, filter)

		manifest, err := bucketio.WriteBuckets(*outDir, *datasetPath, buckets)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to write buckets: %v\n", err)
			return ExitError
		}

		for _, cat := range category.Categories {
			fmt.Fprintf(stdout, "%-12s: %4d -> %s\n",
				cat.Title(), manifest.Counts[string(cat)], bucketio.BucketPath(*outDir, cat))
		}
		fmt.Fprintf(stdout, "Run %s done.\n", manifest.RunID)
		return ExitOK
	}
}

// reportSkipped prints one diagnostic line per dropped record.
func reportSkipped(stderr io.Writer, skipped []question.Issue) {
	for _, issue := range skipped {
		fmt.Fprintf(stderr, "Skipping %s\n", issue)
	}
}
