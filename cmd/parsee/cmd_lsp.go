package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/parsee/lsp"
)

var defaultCommands = []string{
	"binary", "clear", "connect", "disconnect", "forget",
	"help", "interval", "send", "spam", "splash",
}

func newLSPCmd() *cobra.Command {
	var commands []string

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := lsp.NewServer(version, commands)
			return server.RunStdio()
		},
	}

	cmd.Flags().StringSliceVar(&commands, "commands", defaultCommands, "command names offered as completions")

	return cmd
}
