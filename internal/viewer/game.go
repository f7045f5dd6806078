// Package viewer renders a running solver in an Ebiten window. It is the
// display collaborator: it samples intensity once per frame, applies the
// amplitude scale, and optionally sonifies a detector cell behind the
// barrier.
package viewer

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"qwave/internal/config"
	"qwave/internal/frame"
	"qwave/internal/wave"
)

const (
	audioSampleRate          = 48000
	audioPlayerBufferLatency = 60 * time.Millisecond

	minStepsPerFrame  = 1
	maxStepsPerFrame  = 200
	stepsPerFrameStep = 1
)

// Game adapts a wave.Solver to ebiten.Game.
type Game struct {
	solver *wave.Solver
	view   config.View
	logger *log.Logger
	n      int

	stepsPerFrame   int
	paused          bool
	density         bool
	lastSimDuration time.Duration
	divergedLogged  bool

	values  []float64
	pixels  []byte
	barrier []bool

	detectorX, detectorY int
	audioCtx             *audio.Context
	audioStream          *frame.DetectorStream
	audioPlayer          *audio.Player
}

// NewGame wires a solver to the viewer. Audio failures are logged and the
// viewer continues silently.
func NewGame(solver *wave.Solver, view config.View, logger *log.Logger) *Game {
	n := solver.Size()
	g := &Game{
		solver:        solver,
		view:          view,
		logger:        logger,
		n:             n,
		stepsPerFrame: view.StepsPerFrame,
		values:        make([]float64, n*n),
		pixels:        make([]byte, n*n*4),
		barrier:       make([]bool, n*n),
		detectorX:     3 * n / 4,
		detectorY:     n / 2,
	}
	g.adjustStepsPerFrame(0)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			g.barrier[x*n+y] = solver.Potential(x, y) > 0
		}
	}
	if view.Audio {
		g.startAudio()
	}
	return g
}

func (g *Game) startAudio() {
	ctx := audio.NewContext(audioSampleRate)
	stream := frame.NewDetectorStream(g.detectorX, g.detectorY)
	player, err := ctx.NewPlayer(stream)
	if err != nil {
		g.logger.Warn("audio player creation failed", "error", err)
		return
	}
	player.SetBufferSize(audioPlayerBufferLatency)
	player.Play()
	g.audioCtx = ctx
	g.audioStream = stream
	g.audioPlayer = player
	g.logger.Info("detector audio enabled", "x", g.detectorX, "y", g.detectorY)
}

// Update advances the simulation by the configured number of steps.
func (g *Game) Update() error {
	g.handleControls()
	if g.paused {
		return nil
	}
	simStart := time.Now()
	g.solver.StepN(g.stepsPerFrame)
	g.lastSimDuration = time.Since(simStart)

	if g.audioStream != nil {
		g.audioStream.Observe(g.solver)
	}
	if !g.divergedLogged {
		if err := g.solver.Healthy(g.view.DivergeLimit); err != nil {
			g.logger.Warn("simulation unstable; lower the time step", "error", err,
				"dt", g.solver.Config().TimeStep, "stable_dt", g.solver.StableTimeStep())
			g.divergedLogged = true
		}
	}
	return nil
}

// reset restores the initial packet and clears the divergence latch.
func (g *Game) reset() {
	g.solver.Reset()
	g.divergedLogged = false
	g.logger.Debug("field reset")
}
