package frame

import (
	"encoding/binary"
	"math"
	"testing"

	"qwave/internal/wave"
)

// detectorSolver returns a 9x9 solver whose only non-zero cell is (6, 4).
func detectorSolver(t *testing.T, v float64) *wave.Solver {
	t.Helper()
	cfg := wave.DefaultConfig()
	cfg.GridSize = 9
	s, err := wave.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	s.Seed(func(x, y int) (float64, float64) {
		if x == 6 && y == 4 {
			return v, 0
		}
		return 0, 0
	})
	return s
}

func readFrames(t *testing.T, s *DetectorStream, frames int) []int16 {
	t.Helper()
	buf := make([]byte, frames*4)
	n, err := s.Read(buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(buf) {
		t.Fatalf("Read = %d bytes, want %d", n, len(buf))
	}
	out := make([]int16, 0, frames)
	for i := 0; i < n; i += 4 {
		l := int16(binary.LittleEndian.Uint16(buf[i:]))
		r := int16(binary.LittleEndian.Uint16(buf[i+2:]))
		if l != r {
			t.Fatalf("frame %d: left %d != right %d", i/4, l, r)
		}
		out = append(out, l)
	}
	return out
}

func TestDetectorStreamRead(t *testing.T) {
	tests := []struct {
		name      string
		bufLen    int
		wantBytes int
	}{
		{name: "empty", bufLen: 0, wantBytes: 0},
		{name: "partial frame", bufLen: 3, wantBytes: 0},
		{name: "two frames", bufLen: 8, wantBytes: 8},
		{name: "trailing bytes dropped", bufLen: 10, wantBytes: 8},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewDetectorStream(6, 4)
			s.Observe(detectorSolver(t, 0.5))
			n, err := s.Read(make([]byte, tc.bufLen))
			if err != nil {
				t.Fatal(err)
			}
			if n != tc.wantBytes {
				t.Errorf("Read = %d bytes, want %d", n, tc.wantBytes)
			}
		})
	}
}

func TestDetectorStreamObservesDetectorCell(t *testing.T) {
	s := NewDetectorStream(6, 4)
	s.Observe(detectorSolver(t, 0.5))
	want := float32(0.5) * (1 - detectorDCAlpha)
	if got := s.Target(); math.Abs(float64(got-want)) > 1e-6 {
		t.Errorf("Target() = %v, want %v", got, want)
	}

	elsewhere := NewDetectorStream(2, 2)
	elsewhere.Observe(detectorSolver(t, 0.5))
	if got := elsewhere.Target(); got != 0 {
		t.Errorf("Target() away from the excited cell = %v, want 0", got)
	}
}

func TestDetectorStreamRampsToTarget(t *testing.T) {
	s := NewDetectorStream(6, 4)
	s.Observe(detectorSolver(t, 0.5))
	final := int16(s.Target() * 32767)

	first := readFrames(t, s, 8)
	for i := 1; i < len(first); i++ {
		if first[i] < first[i-1] {
			t.Fatalf("ramp not monotonic at frame %d: %v", i, first)
		}
	}
	if first[0] <= 0 || first[0] >= final {
		t.Errorf("first frame = %d, want between 0 and %d", first[0], final)
	}
	if last := first[len(first)-1]; last != final {
		t.Errorf("last frame = %d, want %d", last, final)
	}

	// Without a new observation the level holds.
	for i, v := range readFrames(t, s, 4) {
		if v != final {
			t.Errorf("held frame %d = %d, want %d", i, v, final)
		}
	}
}

func TestDetectorStreamClamps(t *testing.T) {
	tests := []struct {
		name string
		in   float64
	}{
		{name: "high", in: 50},
		{name: "low", in: -50},
		{name: "NaN", in: math.NaN()},
		{name: "infinity", in: math.Inf(1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewDetectorStream(6, 4)
			s.Observe(detectorSolver(t, tc.in))
			got := s.Target()
			if math.IsNaN(float64(got)) || got > 1 || got < -1 {
				t.Errorf("Target() = %v after observing %v", got, tc.in)
			}
		})
	}
}
