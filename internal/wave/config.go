package wave

import (
	"errors"
	"fmt"
	"math"
)

// Simulation defaults and fixed constants of the discretization.
const (
	defaultGridSize       = 100
	defaultTimeStep       = 0.005
	defaultWaveSpeed      = 2.0
	defaultAmplitudeScale = 2.0
	defaultBarrierHeight  = 5.0

	minGridSize = 3

	// cellSpacing is the physical width of one grid step used when seeding
	// the Gaussian packet.
	cellSpacing = 0.1
)

var (
	// ErrConfig is wrapped by every configuration error returned from New.
	ErrConfig = errors.New("invalid solver configuration")

	ErrGridTooSmall  = fmt.Errorf("%w: grid size must be at least %d", ErrConfig, minGridSize)
	ErrTimeStep      = fmt.Errorf("%w: time step must be positive and finite", ErrConfig)
	ErrBarrierHeight = fmt.Errorf("%w: barrier height must be non-negative and finite", ErrConfig)
	ErrWorkers       = fmt.Errorf("%w: worker count must be at least 1", ErrConfig)
)

// Config holds the parameters fixed for the lifetime of a Solver.
type Config struct {
	GridSize int
	TimeStep float64

	// WaveSpeed is carried for callers but not read by the update.
	WaveSpeed float64
	// AmplitudeScale is the display displacement factor applied by
	// renderers; the solver never reads it.
	AmplitudeScale float64

	BarrierHeight float64
	Workers       int
}

// DefaultConfig returns the stock double-slit configuration.
func DefaultConfig() Config {
	return Config{
		GridSize:       defaultGridSize,
		TimeStep:       defaultTimeStep,
		WaveSpeed:      defaultWaveSpeed,
		AmplitudeScale: defaultAmplitudeScale,
		BarrierHeight:  defaultBarrierHeight,
		Workers:        1,
	}
}

// Validate reports the first configuration problem found.
func (c Config) Validate() error {
	if c.GridSize < minGridSize {
		return fmt.Errorf("%w (got %d)", ErrGridTooSmall, c.GridSize)
	}
	if !(c.TimeStep > 0) || math.IsInf(c.TimeStep, 0) {
		return fmt.Errorf("%w (got %v)", ErrTimeStep, c.TimeStep)
	}
	if !(c.BarrierHeight >= 0) || math.IsInf(c.BarrierHeight, 0) {
		return fmt.Errorf("%w (got %v)", ErrBarrierHeight, c.BarrierHeight)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w (got %d)", ErrWorkers, c.Workers)
	}
	return nil
}
