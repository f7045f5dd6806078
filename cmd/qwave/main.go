// qwave simulates a 2D wave packet passing a slit barrier.
//
// Usage:
//
//	qwave view              - Open the interactive viewer
//	qwave run               - Step headlessly and report diagnostics
//	qwave config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Configuration file (default search: ~/.qwave, ./configs)
//	--grid <n>           - Grid dimension
//	--dt <value>         - Time step
//	--workers <n>        - Row-parallel workers per phase
//	--barrier <value>    - Barrier potential height
//	--debug              - Debug logging and overlay
//	--cpuprofile <path>  - Write a CPU profile while running
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"qwave/internal/config"
	"qwave/internal/wave"
)

var (
	flagConfig     string
	flagGrid       int
	flagDT         float64
	flagWorkers    int
	flagBarrier    float64
	flagDebug      bool
	flagCPUProfile string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "qwave",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "qwave",
	Short: "Split-step wave packet simulator",
	Long: `qwave evolves a Gaussian wave packet on an N×N grid toward a
barrier with a single open band, using a leapfrog finite-difference update
of the real and imaginary field components.

Examples:
  qwave view
  qwave view --grid 200 --workers 4
  qwave run --steps 5000 --png out.png
  qwave config --dt 0.002`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().IntVar(&flagGrid, "grid", 0, "Grid dimension N (overrides config)")
	rootCmd.PersistentFlags().Float64Var(&flagDT, "dt", 0, "Time step (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 0, "Row-parallel workers per phase (overrides config)")
	rootCmd.PersistentFlags().Float64Var(&flagBarrier, "barrier", 0, "Barrier potential height (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging and overlay")
	rootCmd.PersistentFlags().StringVar(&flagCPUProfile, "cpuprofile", "", "Write a CPU profile to this path")

	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	var o config.Overrides
	flags := cmd.Flags()
	if flags.Changed("grid") {
		o.GridSize = &flagGrid
	}
	if flags.Changed("dt") {
		o.TimeStep = &flagDT
	}
	if flags.Changed("workers") {
		o.Workers = &flagWorkers
	}
	if flags.Changed("barrier") {
		o.BarrierHeight = &flagBarrier
	}
	if flags.Changed("audio") {
		o.Audio = &flagAudio
	}
	o.Apply(&cfg)
	return cfg, nil
}

// newSolver builds a solver from cfg and logs its stability margin.
func newSolver(cfg config.Config) (*wave.Solver, error) {
	solver, err := wave.New(cfg.Solver())
	if err != nil {
		return nil, fmt.Errorf("creating solver: %w", err)
	}
	sc := solver.Config()
	logger.Info("solver ready", "grid", sc.GridSize, "dt", sc.TimeStep, "workers", sc.Workers, "barrier", sc.BarrierHeight)
	if stable := solver.StableTimeStep(); sc.TimeStep >= stable {
		logger.Warn("time step exceeds stability bound; the field will diverge", "dt", sc.TimeStep, "stable_dt", stable)
	}
	return solver, nil
}

// withProfile runs fn while recording a CPU profile when requested.
func withProfile(fn func() error) error {
	if flagCPUProfile == "" {
		return fn()
	}
	profile, err := startCPUProfile(flagCPUProfile)
	if err != nil {
		return fmt.Errorf("starting CPU profile: %w", err)
	}
	defer profile.Stop()
	return fn()
}
