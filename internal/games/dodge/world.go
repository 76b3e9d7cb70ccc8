package dodge

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/dodge-creeps/internal/core"
	"github.com/vovakirdan/dodge-creeps/internal/round"
	"github.com/vovakirdan/dodge-creeps/internal/spawn"
)

// Scale maps simulation units onto terminal cells.
type Scale struct {
	CellWidth  float64
	CellHeight float64
}

// ToCell returns the cell containing a point.
func (s Scale) ToCell(v core.Vec2) (x, y int) {
	return int(math.Floor(v.X / s.CellWidth)), int(math.Floor(v.Y / s.CellHeight))
}

// World holds the player and the live mobs of a round.
type World struct {
	player *Player
	mobs   []Mob
	rng    *rand.Rand
	scale  Scale
	size   core.Vec2 // Play area in units
	start  core.Vec2 // Player start position
}

var _ round.World = (*World)(nil)

// NewWorld creates an empty world of size units. The player is hidden until
// the first Reset.
func NewWorld(player *Player, size, start core.Vec2, scale Scale, rng *rand.Rand) *World {
	return &World{
		player: player,
		rng:    rng,
		scale:  scale,
		size:   size,
		start:  start,
	}
}

// Reset clears the previous round's mobs and places the player at the start.
func (w *World) Reset() {
	w.mobs = w.mobs[:0]
	w.player.Start(w.start)
}

// Embody adds a spawned enemy as a mob of a random kind.
func (w *World) Embody(e spawn.Enemy) {
	w.mobs = append(w.mobs, Mob{
		Position: e.Position,
		Velocity: e.Velocity(),
		Kind:     mobKinds[w.rng.Intn(len(mobKinds))],
	})
}

// Mobs returns the live mobs. The slice must not be modified.
func (w *World) Mobs() []Mob {
	return w.mobs
}

// Player returns the avatar.
func (w *World) Player() *Player {
	return w.player
}

// Size returns the play area in units.
func (w *World) Size() core.Vec2 {
	return w.size
}

// Step moves the player and every mob, then drops mobs that left the screen.
func (w *World) Step(dir core.Vec2, dt float64) {
	// Keep the player one unit inside so it never maps to an off-screen cell
	w.player.Move(dir, dt, w.size.Sub(core.V(1, 1)))

	live := w.mobs[:0]
	for _, m := range w.mobs {
		m.Step(dt)
		if !w.offscreen(m.Position) {
			live = append(live, m)
		}
	}
	w.mobs = live
}

// offscreen reports whether a point is more than one cell outside the play area.
func (w *World) offscreen(p core.Vec2) bool {
	mx, my := w.scale.CellWidth, w.scale.CellHeight
	return p.X < -mx || p.Y < -my || p.X > w.size.X+mx || p.Y > w.size.Y+my
}

// PlayerRect returns the player's hitbox in cells.
func (w *World) PlayerRect() core.Rect {
	x, y := w.scale.ToCell(w.player.Position)
	return core.NewRect(x-w.player.Width/2, y-w.player.Height/2, w.player.Width, w.player.Height)
}

// PlayerHit reports whether a collidable player overlaps any mob.
func (w *World) PlayerHit() bool {
	if !w.player.Collidable() {
		return false
	}
	pr := w.PlayerRect()
	for _, m := range w.mobs {
		x, y := w.scale.ToCell(m.Position)
		if pr.Intersects(core.NewRect(x, y, 1, 1)) {
			return true
		}
	}
	return false
}
