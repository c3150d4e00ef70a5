package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"coursework/internal/goals"
)

var goalsFile string

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Eternal Quest: track simple, eternal and checklist goals",
	RunE:  runGoals,
}

func init() {
	goalsCmd.Flags().StringVar(&goalsFile, "file", "", "Default save file (default: goals.save_path from config)")
}

func runGoals(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext(cmd)
	defer cancel()

	src, err := newSource()
	if err != nil {
		return err
	}
	file := goalsFile
	if file == "" {
		file = cfg.Goals.SavePath
	}
	path, err := dataPath(file)
	if err != nil {
		return err
	}

	logger.Debug("Starting goals", zap.String("path", path), zap.Int("threshold", cfg.Goals.LevelThreshold))
	m := goals.NewManager(cfg.Goals.LevelThreshold, src)
	return ignoreClosed(goals.NewApp(newPrompter(cmd), m, path).Run(ctx))
}
