// Package config provides YAML-based configuration loading for the solver
// and the viewer.
package config

import (
	"errors"
	"fmt"
	"math"

	"qwave/internal/wave"
)

// ErrView reports an unusable view section.
var ErrView = errors.New("invalid view configuration")

// Config is the top-level configuration file.
type Config struct {
	Simulation Simulation `yaml:"simulation"`
	View       View       `yaml:"view"`
}

// Simulation mirrors wave.Config.
type Simulation struct {
	GridSize       int     `yaml:"grid_size"`
	TimeStep       float64 `yaml:"time_step"`
	WaveSpeed      float64 `yaml:"wave_speed"`
	AmplitudeScale float64 `yaml:"amplitude_scale"`
	BarrierHeight  float64 `yaml:"barrier_height"`
	Workers        int     `yaml:"workers"`
}

// View defines window and playback parameters for the viewer.
type View struct {
	Scale         int     `yaml:"scale"`
	StepsPerFrame int     `yaml:"steps_per_frame"`
	TPS           int     `yaml:"tps"`
	ShowBarrier   bool    `yaml:"show_barrier"`
	Audio         bool    `yaml:"audio"`
	DivergeLimit  float64 `yaml:"diverge_limit"`
}

// Validate checks the fields the viewer cannot recover from.
func (v View) Validate() error {
	switch {
	case v.Scale < 1:
		return fmt.Errorf("%w: scale must be at least 1, got %d", ErrView, v.Scale)
	case v.TPS < 1:
		return fmt.Errorf("%w: tps must be at least 1, got %d", ErrView, v.TPS)
	case !(v.DivergeLimit > 0) || math.IsInf(v.DivergeLimit, 0):
		return fmt.Errorf("%w: diverge_limit must be positive and finite, got %g", ErrView, v.DivergeLimit)
	}
	return nil
}

// Overrides holds command-line values that replace file settings. Nil
// fields leave the file value alone.
type Overrides struct {
	GridSize      *int
	TimeStep      *float64
	Workers       *int
	BarrierHeight *float64
	Audio         *bool
}

// Apply copies every set override into c.
func (o Overrides) Apply(c *Config) {
	if o.GridSize != nil {
		c.Simulation.GridSize = *o.GridSize
	}
	if o.TimeStep != nil {
		c.Simulation.TimeStep = *o.TimeStep
	}
	if o.Workers != nil {
		c.Simulation.Workers = *o.Workers
	}
	if o.BarrierHeight != nil {
		c.Simulation.BarrierHeight = *o.BarrierHeight
	}
	if o.Audio != nil {
		c.View.Audio = *o.Audio
	}
}

// Solver converts the simulation section into a solver configuration.
func (c Config) Solver() wave.Config {
	return wave.Config{
		GridSize:       c.Simulation.GridSize,
		TimeStep:       c.Simulation.TimeStep,
		WaveSpeed:      c.Simulation.WaveSpeed,
		AmplitudeScale: c.Simulation.AmplitudeScale,
		BarrierHeight:  c.Simulation.BarrierHeight,
		Workers:        c.Simulation.Workers,
	}
}
