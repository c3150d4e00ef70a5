package main

import (
	"github.com/spf13/cobra"

	"coursework/internal/grades"
)

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Convert a percentage into a letter grade",
	RunE:  runGrade,
}

func runGrade(cmd *cobra.Command, args []string) error {
	return ignoreClosed(grades.Run(newPrompter(cmd)))
}
