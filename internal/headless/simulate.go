// Package headless advances a solver without a window and exports snapshots
// of the field to files.
package headless

import (
	"time"

	"github.com/charmbracelet/log"

	"qwave/internal/wave"
)

// Simulate runs steps in chunks of every, logging diagnostics and checking
// health after each chunk. It stops at the first unhealthy chunk and returns
// the wave.ErrDiverged error.
func Simulate(solver *wave.Solver, steps, every int, limit float64, logger *log.Logger) error {
	if every <= 0 || every > steps {
		every = steps
	}
	start := time.Now()
	for done := 0; done < steps; {
		chunk := min(every, steps-done)
		solver.StepN(chunk)
		done += chunk
		logger.Info("step",
			"n", solver.Steps(),
			"total_intensity", solver.TotalIntensity(),
			"norm", solver.Norm(),
			"max_amp", solver.MaxAmplitude())
		if err := solver.Healthy(limit); err != nil {
			logger.Error("simulation diverged", "error", err, "stable_dt", solver.StableTimeStep())
			return err
		}
	}
	if steps > 0 {
		elapsed := time.Since(start)
		logger.Info("done", "steps", steps, "elapsed", elapsed, "per_step", elapsed/time.Duration(steps))
	}
	return nil
}
