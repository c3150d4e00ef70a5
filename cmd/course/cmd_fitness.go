package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"coursework/internal/fitness"
)

var fitnessFile string

var fitnessCmd = &cobra.Command{
	Use:   "fitness",
	Short: "Report running, cycling and swimming activities",
	Long: `Report running, cycling and swimming activities.

Without --file the built-in demo log is shown together with its
calculation examples. A log file is YAML:

  activities:
    - kind: running
      date: 2025-11-03
      minutes: 30
      distance_km: 4.8`,
	RunE: runFitness,
}

func init() {
	fitnessCmd.Flags().StringVar(&fitnessFile, "file", "", "YAML activity log to report")
}

func runFitness(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	today := now()

	if fitnessFile == "" {
		activities := fitness.Demo(today)
		fitness.WriteReport(out, activities)
		fitness.WriteCalculations(out, activities)
		return nil
	}

	activities, diags, err := fitness.LoadFile(fitnessFile, today)
	if err != nil {
		return err
	}
	for _, d := range diags {
		fmt.Fprintln(cmd.ErrOrStderr(), d)
	}
	logger.Debug("Fitness log loaded",
		zap.String("path", fitnessFile),
		zap.Int("activities", len(activities)),
		zap.Int("diagnostics", len(diags)))
	fitness.WriteReport(out, activities)
	return nil
}
