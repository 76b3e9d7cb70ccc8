package dodge

import "github.com/vovakirdan/dodge-creeps/internal/round"

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick           uint64
	Phase          round.Phase
	Score          int
	Rounds         int
	Mobs           int
	PlayerX        float64
	PlayerY        float64
	PlayerVisible  bool
	Message        string
	MessageVisible bool
	StartVisible   bool
	Paused         bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.machine == nil {
		return Snapshot{Tick: g.tick, Paused: g.paused}
	}
	msg, visible := g.hud.Message()
	p := g.world.Player()
	return Snapshot{
		Tick:           g.tick,
		Phase:          g.machine.Phase(),
		Score:          g.machine.Score(),
		Rounds:         g.machine.Rounds(),
		Mobs:           len(g.world.Mobs()),
		PlayerX:        p.Position.X,
		PlayerY:        p.Position.Y,
		PlayerVisible:  p.Visible(),
		Message:        msg,
		MessageVisible: visible,
		StartVisible:   g.hud.StartVisible(),
		Paused:         g.paused,
	}
}
