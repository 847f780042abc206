package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "langstat",
	Short: "Count blank, comment, and code lines by language",
	Long: `langstat walks a set of paths, identifies each file's language,
and reports blank/comment/code line counts aggregated per language.`,
	Version: "0.1.0",
}

// Execute runs the root command, exiting non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(listCmd)
}
