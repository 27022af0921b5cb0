package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	var verbose int
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "docfront",
		Short:        "Parse, reprint and query doc comments",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "grammar configuration file (.yaml, .toml or .json)")

	rootCmd.AddCommand(newParseCmd(&configPath))
	rootCmd.AddCommand(newFmtCmd(&configPath))
	rootCmd.AddCommand(newMatchCmd())
	rootCmd.AddCommand(newLSPCmd(&configPath))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
