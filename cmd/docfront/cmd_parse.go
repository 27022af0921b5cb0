package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/docfront/format"
)

func newParseCmd(configPath *string) *cobra.Command {
	var outputFormat string
	var host string
	var width int

	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Parse a doc comment and dump the result",
		Long: `Parse a doc comment and dump the parsed block.

If no file is provided, reads the comment from stdin.
Use --host to name the declaration the comment belongs to, e.g.
--host class:User, so host-matched grammars apply.`,
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

			_, comment := splitLeadingSpace(source)
			block, err := s.parser.ParseString(comment, hostDecl)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			if !cmd.Flags().Changed("width") {
				width = s.config.Width
			}
			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewBlockJSONEncoder(os.Stdout)
			case "text":
				encoder = format.NewTextEncoder(os.Stdout, width)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			if err := encoder.Encode(block); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, text)")
	cmd.Flags().StringVar(&host, "host", "", "declaration owning the comment, as kind or kind:name")
	cmd.Flags().IntVar(&width, "width", 0, "wrap width for text output (default from config)")

	return cmd
}
