package round

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/dodge-creeps/internal/spawn"
	"github.com/vovakirdan/dodge-creeps/internal/timer"
)

// ErrMissingCollaborator is returned by New when a required dependency is nil.
var ErrMissingCollaborator = errors.New("round: missing collaborator")

// Messages shown by the round.
const (
	GetReadyText = "Get Ready!"
	GameOverText = "Game Over"
	TitleText    = "Dodge the\nCreeps!"
)

// Presenter renders round state. Implemented by the HUD.
type Presenter interface {
	// ShowMessage shows a transient message; it hides itself when the
	// message timer expires.
	ShowMessage(text string)
	// ShowTitle shows a message that stays until replaced.
	ShowTitle(text string)
	UpdateScore(score int)
	ShowVersion(version string)
	ShowStartControl()
	HideStartControl()
}

// World embodies spawned enemies and owns the player avatar.
type World interface {
	// Reset clears the previous round's mobs and places the player.
	Reset()
	// Embody adds a spawned enemy to the world.
	Embody(e spawn.Enemy)
}

// Spawner produces enemy descriptors.
type Spawner interface {
	Spawn() spawn.Enemy
}

// Timer is the part of timer.Timer the round needs.
type Timer interface {
	Start()
	Stop()
	Running() bool
	OnTimeout(fn func()) *timer.Handle
}

// Scheduler runs one-shot delayed callbacks.
type Scheduler interface {
	After(d time.Duration, fn func()) *timer.Handle
}

// Deps are the collaborators of a Machine. All fields are required except
// Version, which defaults to empty.
type Deps struct {
	Presenter Presenter
	World     World
	Spawner   Spawner

	StartTimer   Timer // One-shot "Get Ready!" delay
	SpawnTimer   Timer // Repeating, one mob per expiration
	ScoreTimer   Timer // Repeating, one point per expiration
	MessageTimer Timer // Shared with the presenter's transient messages

	Scheduler  Scheduler
	TitleDelay time.Duration // Between the title and the start control

	Version string
}

func (d Deps) validate() error {
	required := []struct {
		name    string
		missing bool
	}{
		{"Presenter", d.Presenter == nil},
		{"World", d.World == nil},
		{"Spawner", d.Spawner == nil},
		{"StartTimer", d.StartTimer == nil},
		{"SpawnTimer", d.SpawnTimer == nil},
		{"ScoreTimer", d.ScoreTimer == nil},
		{"MessageTimer", d.MessageTimer == nil},
		{"Scheduler", d.Scheduler == nil},
	}

	var missing []string
	for _, r := range required {
		if r.missing {
			missing = append(missing, r.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingCollaborator, strings.Join(missing, ", "))
	}
	return nil
}
