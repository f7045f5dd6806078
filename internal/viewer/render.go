package viewer

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"qwave/internal/frame"
)

// Draw renders the current intensity, barrier overlay, and debug text.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.density {
		g.solver.SampleDensityInto(g.values)
	} else {
		g.solver.SampleIntensityInto(g.values)
	}
	frame.EncodeGray(g.pixels, g.values, g.n, g.solver.Config().AmplitudeScale)
	if g.view.ShowBarrier {
		frame.OverlayMask(g.pixels, g.barrier, g.n)
	}
	screen.WritePixels(g.pixels)

	if g.logger.GetLevel() <= debugLevel {
		mode := "|re|"
		if g.density {
			mode = "re²+im²"
		}
		msg := fmt.Sprintf("TPS: %.1f\nSteps: %d (%d/frame, +/-)\nSim: %.2f ms\nMax amp: %.3f\nMode: %s",
			ebiten.ActualTPS(), g.solver.Steps(), g.stepsPerFrame,
			g.lastSimDuration.Seconds()*1000, g.solver.MaxAmplitude(), mode)
		if g.audioStream != nil {
			msg += fmt.Sprintf("\nDetector: %+.3f", g.audioStream.Target())
		}
		if g.paused {
			msg += "\nPAUSED"
		}
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout reports the logical screen size, one pixel per cell.
func (g *Game) Layout(_, _ int) (int, int) { return g.n, g.n }
