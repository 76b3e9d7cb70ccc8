package dodge

import "github.com/vovakirdan/dodge-creeps/internal/core"

// Player is the avatar the user steers away from mobs.
// Positions are in simulation units, centered on the avatar.
type Player struct {
	Position core.Vec2
	Speed    float64 // Units per second
	Width    int     // Hitbox in cells
	Height   int

	visible    bool
	collidable bool
}

// Start places the player and makes it visible and collidable.
func (p *Player) Start(pos core.Vec2) {
	p.Position = pos
	p.visible = true
	p.collidable = true
}

// Move applies one tick of input. Diagonals are normalized so every
// direction moves at the same speed. The player stays inside bounds.
func (p *Player) Move(dir core.Vec2, dt float64, bounds core.Vec2) {
	if !p.visible {
		return
	}
	if dir.Len() > 0 {
		p.Position = p.Position.Add(dir.Normalized().Scale(p.Speed * dt))
	}
	p.Position = p.Position.Clamp(core.V(0, 0), bounds)
}

// Hit hides the player and disables further collisions.
func (p *Player) Hit() {
	p.visible = false
	p.collidable = false
}

// Visible reports whether the player is shown.
func (p *Player) Visible() bool {
	return p.visible
}

// Collidable reports whether the player can be hit.
func (p *Player) Collidable() bool {
	return p.collidable
}
