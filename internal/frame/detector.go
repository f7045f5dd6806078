package frame

import (
	"math"
	"sync"

	"qwave/internal/wave"
)

// detectorDCAlpha is the weight of each new observation in the running DC
// estimate that Observe subtracts.
const detectorDCAlpha = 0.001

// DetectorStream is an io.ReadCloser producing 16-bit stereo PCM from one
// detector cell of a solver. Observe runs on the simulation goroutine while
// the audio player calls Read.
type DetectorStream struct {
	x, y int

	mu     sync.Mutex
	target float32 // latest observation, DC removed
	level  float32 // last value written by Read
	dc     float32
}

// NewDetectorStream returns a silent stream listening at cell (x, y).
func NewDetectorStream(x, y int) *DetectorStream {
	return &DetectorStream{x: x, y: y}
}

// Observe samples Real at the detector cell. Non-finite values are treated
// as silence and the rest are clamped to [-1, 1].
func (s *DetectorStream) Observe(solver *wave.Solver) {
	v := solver.Real(s.x, s.y)
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		v = 0
	case v > 1:
		v = 1
	case v < -1:
		v = -1
	}
	f := float32(v)
	s.mu.Lock()
	s.dc += detectorDCAlpha * (f - s.dc)
	s.target = f - s.dc
	s.mu.Unlock()
}

// Target returns the level Read is moving toward.
func (s *DetectorStream) Target() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target
}

// Read fills p with whole stereo frames, ramping linearly from the previous
// level to the latest observation so frame-rate updates do not click.
func (s *DetectorStream) Read(p []byte) (int, error) {
	frames := len(p) / 4
	if frames == 0 {
		return 0, nil
	}
	s.mu.Lock()
	from, to := s.level, s.target
	s.level = to
	s.mu.Unlock()

	step := (to - from) / float32(frames)
	for i := 0; i < frames; i++ {
		v := int16((from + step*float32(i+1)) * 32767)
		o := i * 4
		p[o] = byte(v)
		p[o+1] = byte(v >> 8)
		p[o+2] = p[o]
		p[o+3] = p[o+1]
	}
	return frames * 4, nil
}

func (s *DetectorStream) Close() error {
	return nil
}
