package wave

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrDiverged is returned by Healthy when the field has left the bounded
// regime.
var ErrDiverged = errors.New("wave field diverged")

// DefaultAmplitudeLimit is a sanity threshold for Healthy. The seeded packet
// peaks at 1.
const DefaultAmplitudeLimit = 1e3

// MaxAmplitude returns the largest absolute value across both components.
// NaN propagates.
func (s *Solver) MaxAmplitude() float64 {
	re := floats.Norm(s.field.real, math.Inf(1))
	im := floats.Norm(s.field.imag, math.Inf(1))
	if math.IsNaN(re) || math.IsNaN(im) {
		return math.NaN()
	}
	return math.Max(re, im)
}

// TotalIntensity returns Σ|Real|.
func (s *Solver) TotalIntensity() float64 {
	return floats.Norm(s.field.real, 1)
}

// Norm returns Σ(Real²+Imag²).
func (s *Solver) Norm() float64 {
	return floats.Dot(s.field.real, s.field.real) + floats.Dot(s.field.imag, s.field.imag)
}

// Healthy reports ErrDiverged if any component is NaN, infinite, or larger
// in magnitude than limit. A limit that is not a positive number falls back
// to DefaultAmplitudeLimit.
func (s *Solver) Healthy(limit float64) error {
	if !(limit > 0) {
		limit = DefaultAmplitudeLimit
	}
	if floats.HasNaN(s.field.real) || floats.HasNaN(s.field.imag) {
		return fmt.Errorf("%w: NaN after %d steps", ErrDiverged, s.steps)
	}
	amp := s.MaxAmplitude()
	if math.IsInf(amp, 0) || amp > limit {
		return fmt.Errorf("%w: max amplitude %g exceeds %g after %d steps", ErrDiverged, amp, limit, s.steps)
	}
	return nil
}

// StableTimeStep returns a conservative bound, 2/(4+Vmax) for unit spacing,
// below which the update stays bounded. It is advisory; Step never checks it.
func (s *Solver) StableTimeStep() float64 {
	return 2 / (4 + floats.Max(s.field.potential))
}
