package wave

import (
	"errors"
	"math"
	"testing"
)

func TestDiagnostics(t *testing.T) {
	s := newTestSolver(t, 4, 0.01)
	s.Seed(func(x, y int) (float64, float64) {
		switch {
		case x == 1 && y == 1:
			return -3, 4
		case x == 2 && y == 2:
			return 2, -6
		}
		return 0, 0
	})
	if got := s.MaxAmplitude(); got != 6 {
		t.Errorf("MaxAmplitude() = %v, want 6", got)
	}
	if got := s.TotalIntensity(); got != 5 {
		t.Errorf("TotalIntensity() = %v, want 5", got)
	}
	if got := s.Norm(); got != 9+16+4+36 {
		t.Errorf("Norm() = %v, want 65", got)
	}
}

func TestHealthy(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		limit   float64
		wantErr bool
	}{
		{name: "within limit", value: 2, limit: 10},
		{name: "at limit", value: 10, limit: 10},
		{name: "over limit", value: 11, limit: 10, wantErr: true},
		{name: "negative over limit", value: -11, limit: 10, wantErr: true},
		{name: "NaN", value: math.NaN(), limit: 10, wantErr: true},
		{name: "infinity", value: math.Inf(-1), limit: 10, wantErr: true},
		{name: "infinity with NaN limit", value: math.Inf(1), limit: math.NaN(), wantErr: true},
		{name: "infinity with infinite limit", value: math.Inf(1), limit: math.Inf(1), wantErr: true},
		{name: "zero limit uses default", value: 5, limit: 0},
		{name: "negative limit uses default", value: 2 * DefaultAmplitudeLimit, limit: -1, wantErr: true},
		{name: "NaN limit uses default", value: 5, limit: math.NaN()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSolver(t, 5, 0.01)
			s.Seed(func(x, y int) (float64, float64) {
				if x == 2 && y == 2 {
					return 0, tc.value
				}
				return 0, 0
			})
			err := s.Healthy(tc.limit)
			if tc.wantErr != (err != nil) {
				t.Fatalf("Healthy(%v) = %v, wantErr %v", tc.limit, err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrDiverged) {
				t.Errorf("Healthy error %v does not wrap ErrDiverged", err)
			}
		})
	}
}

func TestStableTimeStep(t *testing.T) {
	s := newTestSolver(t, 100, 0.005)
	if got, want := s.StableTimeStep(), 2.0/9.0; math.Abs(got-want) > 1e-15 {
		t.Errorf("StableTimeStep() = %v, want %v", got, want)
	}
	if s.Config().TimeStep >= s.StableTimeStep() {
		t.Errorf("default time step %v is not below the stability bound", s.Config().TimeStep)
	}

	free := newTestSolver(t, 10, 0.005)
	zeroPotential(free)
	if got := free.StableTimeStep(); got != 0.5 {
		t.Errorf("free StableTimeStep() = %v, want 0.5", got)
	}
}
