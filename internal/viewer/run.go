package viewer

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	scale := g.view.Scale
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowSize(g.n*scale, g.n*scale)
	ebiten.SetWindowTitle(fmt.Sprintf("Quantum wave %dx%d", g.n, g.n))
	if g.view.TPS > 0 {
		ebiten.SetTPS(g.view.TPS)
	}
	defer g.close()
	return ebiten.RunGame(g)
}

func (g *Game) close() {
	if g.audioPlayer != nil {
		_ = g.audioPlayer.Close()
	}
}
