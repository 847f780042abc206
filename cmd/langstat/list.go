package main

import (
	"fmt"

	"github.com/spf13/cobra"

	langstat "github.com/halcyon-labs/langstat"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every supported language",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, t := range langstat.List() {
			fmt.Println(t.String())
		}
		return nil
	},
}
