package main

import (
	"github.com/spf13/cobra"

	"coursework/internal/ordering"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Show the product and order demo",
	RunE: func(cmd *cobra.Command, args []string) error {
		ordering.WriteReport(cmd.OutOrStdout(), ordering.DemoOrder())
		return nil
	},
}
