package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/docfront/format"
)

func newFmtCmd(configPath *string) *cobra.Command {
	var check bool
	var host string

	cmd := &cobra.Command{
		Use:   "fmt [file|-]",
		Short: "Parse a doc comment and print it back",
		Long: `Parse a doc comment and print it back to stdout.

An unmodified comment prints exactly as it was read. Use --check to
verify that instead of printing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(*configPath)
			if err != nil {
				return err
			}
			source, err := readInput(args)
			if err != nil {
				return err
			}
			hostDecl, err := hostNode(host)
			if err != nil {
				return err
			}

			prefix, comment := splitLeadingSpace(source)
			block, err := s.parser.ParseString(comment, hostDecl)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			output := prefix + format.PrintBlock(block)

			if check {
				if output != source {
					return fmt.Errorf("reprinted comment differs from input")
				}
				return nil
			}
			_, err = os.Stdout.WriteString(output)
			return err
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "only check that the comment reprints unchanged")
	cmd.Flags().StringVar(&host, "host", "", "declaration owning the comment, as kind or kind:name")

	return cmd
}
