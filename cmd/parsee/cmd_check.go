package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/parsee/cmdline"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "check <file>",
		Short:         "Report syntax errors in a command script",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			content, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			lines, errs := cmdline.ParseScript(string(content))
			for _, e := range errs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s:%s\n", filename, e)
			}
			if len(errs) > 0 {
				return fmt.Errorf("%s: %d syntax errors", filename, len(errs))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d lines ok\n", filename, len(lines))
			return nil
		},
	}
}
