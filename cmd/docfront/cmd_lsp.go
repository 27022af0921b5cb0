package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/docfront/lsp"
)

const version = "0.1.0"

func newLSPCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(*configPath)
			if err != nil {
				return err
			}
			server := lsp.NewServer(s.parser, s.resolver, version)
			return server.RunStdio()
		},
	}
}
