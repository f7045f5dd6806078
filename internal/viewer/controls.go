package viewer

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const debugLevel = log.DebugLevel

// handleControls processes playback hotkeys.
func (g *Game) handleControls() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.density = !g.density
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.adjustStepsPerFrame(-stepsPerFrameStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.adjustStepsPerFrame(stepsPerFrameStep)
	}
}

// adjustStepsPerFrame clamps the per-frame step batch within bounds.
func (g *Game) adjustStepsPerFrame(delta int) {
	g.stepsPerFrame += delta
	if g.stepsPerFrame < minStepsPerFrame {
		g.stepsPerFrame = minStepsPerFrame
	} else if g.stepsPerFrame > maxStepsPerFrame {
		g.stepsPerFrame = maxStepsPerFrame
	}
}
