// Package wave implements a split-step finite-difference solver for a 2D
// Schrödinger-like scalar field over a fixed N×N grid with a static
// potential barrier.
//
// The field is stored as two parallel real-valued components. Each Step
// updates the imaginary part from the real part, then the real part from
// the freshly updated imaginary part. Boundary cells are never written.
//
// The scheme is conditionally stable: a time step that is too large for the
// grid spacing makes amplitudes grow without bound. Step does not check for
// this; see Healthy and StableTimeStep.
//
// A Solver is not safe for concurrent use.
package wave

import "math"

// Solver owns the field, the potential, and the simulation parameters.
type Solver struct {
	cfg   Config
	field *waveField
	masks []workerMask
	steps int
}

// New validates cfg and builds a solver seeded with the Gaussian packet and
// the barrier potential.
func New(cfg Config) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Solver{
		cfg:   cfg,
		field: newWaveField(cfg.GridSize),
		masks: assignRowMasks(cfg.Workers, interiorRows(cfg.GridSize)),
	}
	s.field.seedGaussian()
	buildDoubleSlit(s.field, cfg.BarrierHeight)
	return s, nil
}

// Config returns the configuration the solver was built with.
func (s *Solver) Config() Config { return s.cfg }

// Size returns the grid dimension N.
func (s *Solver) Size() int { return s.field.n }

// Steps returns the number of steps taken since construction or Reset.
func (s *Solver) Steps() int { return s.steps }

// Real returns the real component at (x, y).
func (s *Solver) Real(x, y int) float64 { return s.field.real[s.field.index(x, y)] }

// Imag returns the imaginary component at (x, y).
func (s *Solver) Imag(x, y int) float64 { return s.field.imag[s.field.index(x, y)] }

// Potential returns the potential at (x, y).
func (s *Solver) Potential(x, y int) float64 { return s.field.potential[s.field.index(x, y)] }

// Step advances the field by one time step.
func (s *Solver) Step() {
	f := s.field
	dt := s.cfg.TimeStep
	runPhase(f, s.masks, f.real, f.imag, 1, dt)
	runPhase(f, s.masks, f.imag, f.real, -1, dt)
	s.steps++
}

// StepN runs n consecutive steps. Non-positive n is a no-op.
func (s *Solver) StepN(n int) {
	for i := 0; i < n; i++ {
		s.Step()
	}
}

// Seed overwrites both components of every cell, boundary included, with
// the values returned by fn. The potential is left unchanged.
func (s *Solver) Seed(fn func(x, y int) (re, im float64)) {
	s.field.seed(fn)
	s.steps = 0
}

// Reset restores the initial Gaussian packet.
func (s *Solver) Reset() {
	s.field.seedGaussian()
	s.steps = 0
}

// SampleIntensity returns |Real(x, y)| indexed [x][y].
func (s *Solver) SampleIntensity() [][]float64 {
	flat := make([]float64, len(s.field.real))
	s.SampleIntensityInto(flat)
	return gridView(flat, s.field.n)
}

// SampleIntensityInto writes |Real| into dst using x*N+y ordering. dst must
// hold at least N*N values.
func (s *Solver) SampleIntensityInto(dst []float64) {
	for i, v := range s.field.real {
		dst[i] = math.Abs(v)
	}
}

// SampleDensity returns Real²+Imag² indexed [x][y]. Unlike SampleIntensity
// it accounts for the imaginary component.
func (s *Solver) SampleDensity() [][]float64 {
	flat := make([]float64, len(s.field.real))
	s.SampleDensityInto(flat)
	return gridView(flat, s.field.n)
}

// SampleDensityInto is the flat variant of SampleDensity.
func (s *Solver) SampleDensityInto(dst []float64) {
	re, im := s.field.real, s.field.imag
	for i := range re {
		dst[i] = re[i]*re[i] + im[i]*im[i]
	}
}
