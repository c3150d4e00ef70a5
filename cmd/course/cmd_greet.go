package main

import (
	"github.com/spf13/cobra"

	"coursework/internal/greet"
)

var greetCmd = &cobra.Command{
	Use:   "greet",
	Short: "Welcome, name and favorite-number-squared drill",
	RunE:  runGreet,
}

func runGreet(cmd *cobra.Command, args []string) error {
	return ignoreClosed(greet.Run(newPrompter(cmd)))
}
