// Package round implements the round lifecycle of Dodge the Creeps: the
// phase state machine, the spawn and score loops, and the game-over message
// sequence. It knows nothing about rendering or input; collaborators are
// injected through small interfaces.
package round

// Phase is the discrete stage of a round.
type Phase int

const (
	PhaseIdle     Phase = iota // Before the first round
	PhaseStarting              // "Get Ready!" delay
	PhaseRunning               // Mobs spawn, score ticks
	PhaseOver                  // Player was hit
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseStarting:
		return "Starting"
	case PhaseRunning:
		return "Running"
	case PhaseOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// Event is an input to the state machine.
type Event int

const (
	EventStartRequested    Event = iota // Start control pressed
	EventStartDelayExpired              // Start timer fired
	EventScoreTick                      // Score timer fired
	EventSpawnTick                      // Spawn timer fired
	EventPlayerHit                      // Player collided with a mob
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventStartRequested:
		return "StartRequested"
	case EventStartDelayExpired:
		return "StartDelayExpired"
	case EventScoreTick:
		return "ScoreTick"
	case EventSpawnTick:
		return "SpawnTick"
	case EventPlayerHit:
		return "PlayerHit"
	default:
		return "Unknown"
	}
}

// accepts reports whether ev is defined in phase p.
func (p Phase) accepts(ev Event) bool {
	switch ev {
	case EventStartRequested:
		return p == PhaseIdle || p == PhaseOver
	case EventStartDelayExpired:
		return p == PhaseStarting
	case EventScoreTick, EventSpawnTick, EventPlayerHit:
		return p == PhaseRunning
	default:
		return false
	}
}
