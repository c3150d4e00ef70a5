package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"coursework/internal/mindfulness"
)

var mindfulnessFast bool

var mindfulnessCmd = &cobra.Command{
	Use:   "mindfulness",
	Short: "Breathing, reflection and listing activities",
	RunE:  runMindfulness,
}

func init() {
	mindfulnessCmd.Flags().BoolVar(&mindfulnessFast, "fast", false, "Skip every pause (same as mindfulness.fast in config)")
}

func runMindfulness(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext(cmd)
	defer cancel()

	src, err := newSource()
	if err != nil {
		return err
	}
	path, err := dataPath(cfg.Mindfulness.LogPath)
	if err != nil {
		return err
	}
	log, err := mindfulness.LoadLog(path)
	if err != nil {
		return err
	}

	var clock mindfulness.Clock = mindfulness.RealClock{}
	fast := mindfulnessFast || cfg.Mindfulness.Fast
	if fast {
		clock = mindfulness.NewVirtualClock(now())
	}

	settings := mindfulness.DefaultSettings()
	settings.DefaultDuration = cfg.Mindfulness.DefaultDuration
	settings.PrepareSeconds = cfg.Mindfulness.PrepareSeconds
	settings.BreatheIn = cfg.Mindfulness.BreatheIn
	settings.BreatheOut = cfg.Mindfulness.BreatheOut
	settings.SpinnerInterval = cfg.GetSpinnerInterval()

	logger.Debug("Starting mindfulness", zap.String("log", path), zap.Bool("fast", fast))
	session := mindfulness.NewSession(newPrompter(cmd), clock, settings)
	return ignoreClosed(mindfulness.NewApp(session, src, log, path).Run(ctx))
}
