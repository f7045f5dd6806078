package config

import (
	_ "embed"

	"qwave/internal/wave"
)

//go:embed defaults/qwave.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration used when no file is found.
func Default() Config {
	sim := wave.DefaultConfig()
	return Config{
		Simulation: Simulation{
			GridSize:       sim.GridSize,
			TimeStep:       sim.TimeStep,
			WaveSpeed:      sim.WaveSpeed,
			AmplitudeScale: sim.AmplitudeScale,
			BarrierHeight:  sim.BarrierHeight,
			Workers:        sim.Workers,
		},
		View: View{
			Scale:         6,
			StepsPerFrame: 4,
			TPS:           60,
			ShowBarrier:   true,
			Audio:         false,
			DivergeLimit:  wave.DefaultAmplitudeLimit,
		},
	}
}
