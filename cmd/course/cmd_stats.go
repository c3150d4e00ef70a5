package main

import (
	"github.com/spf13/cobra"

	"coursework/internal/liststats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Sum, average, largest and smallest positive of a list ended by 0",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	return ignoreClosed(liststats.Run(newPrompter(cmd)))
}
