package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dhamidi/parsee/cmdline"
)

type tokenizeResult struct {
	Input   string   `json:"input"`
	Command string   `json:"command,omitempty"`
	Args    []string `json:"args,omitempty"`
	Text    string   `json:"text,omitempty"`
	Error   string   `json:"error,omitempty"`
}

func newTokenizeCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:           "tokenize [line...]",
		Short:         "Split command lines into a command and its arguments",
		Long:          "Tokenize each argument as one input line. Without arguments, lines are read from stdin.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				var err error
				inputs, err = readLines(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			results := make([]tokenizeResult, 0, len(inputs))
			failed := 0
			for _, input := range inputs {
				result := tokenize(input)
				if result.Error != "" {
					failed++
				}
				results = append(results, result)
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(results); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			} else {
				printResults(out, results)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d lines failed to parse", failed, len(inputs))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output JSON")

	return cmd
}

func tokenize(input string) tokenizeResult {
	result := tokenizeResult{Input: input}

	line, err := cmdline.Parse(input)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	if line.IsCommand() {
		result.Command = line.Command
		result.Args = line.Values()
	} else {
		result.Text = line.Text
	}
	return result
}

func printResults(w io.Writer, results []tokenizeResult) {
	for _, r := range results {
		switch {
		case r.Error != "":
			fmt.Fprintf(w, "error: %s\n", r.Error)
		case r.Command != "":
			fmt.Fprintf(w, "/%s\n", r.Command)
			for i, arg := range r.Args {
				fmt.Fprintf(w, "  [%d] %q\n", i, arg)
			}
		case r.Text != "":
			fmt.Fprintf(w, "text %q\n", r.Text)
		default:
			fmt.Fprintln(w, "empty")
		}
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

