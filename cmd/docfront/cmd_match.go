package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/docfront/names"
)

var errNoMatch = errors.New("no pattern matched")

func newMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <name> <pattern>...",
		Short: "Check a name against name patterns",
		Long: `Check a name against patterns the way rules select nodes.

Patterns delimited by the same non-letter character (#^Foo.*$#) are
regular expressions, patterns containing * are globs, anything else is
compared case-insensitively. Use Class::CONST to match a class constant.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver := names.NewResolver()
			node := nameNode(args[0])

			patterns := args[1:]
			for _, pattern := range patterns {
				fmt.Fprintf(cmd.OutOrStdout(), "%t\t%s\n", resolver.IsName(node, pattern), pattern)
			}
			if !resolver.IsNames(node, patterns) {
				return errNoMatch
			}
			return nil
		},
	}
}
