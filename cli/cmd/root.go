package cmd

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "svfmt",
		Short:        "svfmt",
		SilenceUsage: true,
		Long:         `A SystemVerilog lexer, formatter and lint/language-server core.`,
	}

	configPath  string
	columnLimit int
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", ".svfmt.yaml", "path to style config file")
	rootCmd.PersistentFlags().IntVar(&columnLimit, "column-limit", 0, "override the configured column limit (0 keeps the config value)")
	return rootCmd.Execute()
}

func init() {
}
