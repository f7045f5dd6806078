package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"qwave/internal/headless"
	"qwave/internal/wave"
)

var (
	flagSteps   int
	flagEvery   int
	flagPNG     string
	flagHalf    string
	flagDensity bool
	flagLimit   float64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Step the simulation without a window",
	Long: `Advance the field headlessly, logging diagnostics at a fixed interval
and stopping early if the field diverges. Optionally writes the final
intensity as a grayscale PNG and as raw half floats (little-endian,
x*N+y order, N*N*2 bytes) for loading as an R16F texture.`,
	RunE: runHeadless,
}

func init() {
	runCmd.Flags().IntVar(&flagSteps, "steps", 1000, "Number of steps to run")
	runCmd.Flags().IntVar(&flagEvery, "every", 100, "Log diagnostics every N steps (0 = only at the end)")
	runCmd.Flags().StringVar(&flagPNG, "png", "", "Write the final intensity to this PNG file")
	runCmd.Flags().StringVar(&flagHalf, "f16", "", "Write the final intensity as raw binary16 values to this file")
	runCmd.Flags().BoolVar(&flagDensity, "density", false, "Write re²+im² instead of |re| to the PNG")
	runCmd.Flags().Float64Var(&flagLimit, "limit", wave.DefaultAmplitudeLimit, "Amplitude treated as divergence")
}

func runHeadless(cmd *cobra.Command, args []string) error {
	if flagSteps < 0 {
		return fmt.Errorf("--steps must be non-negative, got %d", flagSteps)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	solver, err := newSolver(cfg)
	if err != nil {
		return err
	}
	err = withProfile(func() error {
		return headless.Simulate(solver, flagSteps, flagEvery, flagLimit, logger)
	})
	if err != nil {
		return err
	}
	if flagPNG != "" {
		if err := headless.WritePNG(solver, flagPNG, flagDensity); err != nil {
			return fmt.Errorf("writing %s: %w", flagPNG, err)
		}
		logger.Info("wrote image", "path", flagPNG)
	}
	if flagHalf != "" {
		if err := headless.WriteHalf(solver, flagHalf); err != nil {
			return fmt.Errorf("writing %s: %w", flagHalf, err)
		}
		logger.Info("wrote half-float intensity", "path", flagHalf, "grid", solver.Size())
	}
	return nil
}
