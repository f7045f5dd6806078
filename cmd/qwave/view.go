package main

import (
	"github.com/spf13/cobra"

	"qwave/internal/viewer"
)

var flagAudio bool

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive viewer",
	Long: `Open a window showing |Re ψ| scaled by the amplitude scale.

Controls:
  Space   - Pause/resume
  R       - Reset the wave packet
  D       - Toggle |re| / re²+im² display
  +/-     - Steps per frame`,
	RunE: runView,
}

func init() {
	viewCmd.Flags().BoolVar(&flagAudio, "audio", false, "Sonify the detector cell behind the barrier")
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	solver, err := newSolver(cfg)
	if err != nil {
		return err
	}
	g := viewer.NewGame(solver, cfg.View, logger)
	return withProfile(func() error {
		return viewer.Run(g)
	})
}
