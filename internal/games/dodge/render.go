package dodge

import (
	"fmt"

	"github.com/vovakirdan/dodge-creeps/internal/core"
)

// PlayerChar fills the player's hitbox.
const PlayerChar = '█'

// Render draws the playfield and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.machine == nil {
		dst.DrawTextCentered(dst.Height()/2, "cannot start game, see log", core.ColorRed)
		return
	}

	for _, m := range g.world.Mobs() {
		x, y := g.world.scale.ToCell(m.Position)
		dst.SetColored(x, y, m.Kind.Glyph, m.Kind.Color)
	}

	if p := g.world.Player(); p.Visible() {
		r := g.world.PlayerRect()
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				dst.SetColored(x, y, PlayerChar, core.ColorBrightYellow)
			}
		}
	}

	g.hud.Render(dst)

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED ", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, " press p to resume ", core.ColorGray)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := fmt.Sprintf("need %dx%d, have %dx%d", MinScreenW, MinScreenH, g.runtime.ScreenW, g.runtime.ScreenH)
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Terminal too small", core.ColorRed)
	dst.DrawTextCentered(y, msg, core.ColorGray)
}
