package dodge

import "github.com/vovakirdan/dodge-creeps/internal/core"

// MobKind is the look of a mob. It has no effect on movement.
type MobKind struct {
	Name  string
	Glyph rune
	Color core.Color
}

// Mob kinds, picked at random on spawn.
var mobKinds = []MobKind{
	{Name: "fly", Glyph: 'ω', Color: core.ColorMagenta},
	{Name: "swim", Glyph: '≈', Color: core.ColorCyan},
	{Name: "walk", Glyph: 'Ж', Color: core.ColorRed},
}

// Mob is an embodied enemy moving in a straight line.
type Mob struct {
	Position core.Vec2
	Velocity core.Vec2
	Kind     MobKind
}

// Step moves the mob by dt seconds.
func (m *Mob) Step(dt float64) {
	m.Position = m.Position.Add(m.Velocity.Scale(dt))
}
