package cli

import (
	"flag"
	"fmt"
	"io"

	"fsquiz/internal/question"
	"fsquiz/internal/rules"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		datasetPath := flags.String("dataset", "", "Path to a question dataset to validate")
		rulesPath := flags.String("rules", "", "Path to a rules config to validate")
		if err := flags.Parse(args); err != nil {
			return ExitUsage
		}
		if *datasetPath == "" && *rulesPath == "" {
			fmt.Fprintln(stderr, "Nothing to validate: pass --dataset and/or --rules.")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		if *rulesPath != "" {
			if _, err := rules.Load(*rulesPath); err != nil {
				fmt.Fprintf(stderr, "Rules validation failed:\n%v\n", err)
				return ExitError
			}
			fmt.Fprintln(stdout, "Rules OK")
		}

		if *datasetPath != "" {
			ds, skipped, err := question.LoadDataset(*datasetPath)
			if err != nil {
				fmt.Fprintf(stderr, "Dataset validation failed:\n%v\n", err)
				return ExitError
			}
			reportSkipped(stderr, skipped)
			fmt.Fprintf(stdout, "Dataset OK (%d questions, %d skipped)\n",
				len(ds.Questions), len(skipped))
		}
		return ExitOK
	}
}
