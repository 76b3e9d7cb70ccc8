package round

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge-creeps/internal/timer"
)

// Machine owns the round state: phase and score. Events enter through
// Dispatch; timer expirations are turned into events internally. All calls
// must come from one goroutine (the game tick).
type Machine struct {
	deps     Deps
	seq      *Sequencer
	logger   *log.Logger
	observer func(from, to Phase)

	phase  Phase
	score  int
	rounds int

	handles []*timer.Handle
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger. Transitions and ignored events log at debug level.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithObserver registers a callback run after every phase change.
func WithObserver(fn func(from, to Phase)) Option {
	return func(m *Machine) {
		m.observer = fn
	}
}

// New validates the collaborators and returns a machine in PhaseIdle.
func New(deps Deps, opts ...Option) (*Machine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}

	m := &Machine{
		deps:   deps,
		logger: log.New(io.Discard),
		phase:  PhaseIdle,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.seq = NewSequencer(deps.Presenter, deps.MessageTimer, deps.Scheduler, deps.TitleDelay, m.logger)

	m.handles = append(m.handles,
		deps.StartTimer.OnTimeout(func() { m.Dispatch(EventStartDelayExpired) }),
		deps.SpawnTimer.OnTimeout(m.onSpawnTimer),
		deps.ScoreTimer.OnTimeout(m.onScoreTimer),
	)

	if deps.Version != "" {
		deps.Presenter.ShowVersion(deps.Version)
	}
	return m, nil
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Score returns the current score.
func (m *Machine) Score() int {
	return m.score
}

// Rounds returns how many rounds have been started.
func (m *Machine) Rounds() int {
	return m.rounds
}

// Sequencer exposes the game-over message chain for inspection.
func (m *Machine) Sequencer() *Sequencer {
	return m.seq
}

// Dispatch feeds one event to the machine. Events that are not defined in
// the current phase are ignored.
func (m *Machine) Dispatch(ev Event) {
	if !m.phase.accepts(ev) {
		m.logger.Debug("event ignored", "event", ev, "phase", m.phase)
		return
	}

	switch ev {
	case EventStartRequested:
		m.startRound()

	case EventStartDelayExpired:
		m.transition(PhaseRunning)
		m.deps.SpawnTimer.Start()
		m.deps.ScoreTimer.Start()

	case EventScoreTick:
		m.score++
		m.deps.Presenter.UpdateScore(m.score)

	case EventSpawnTick:
		e := m.deps.Spawner.Spawn()
		m.deps.World.Embody(e)
		m.logger.Debug("mob spawned", "x", e.Position.X, "y", e.Position.Y, "heading", e.Heading, "speed", e.Speed)

	case EventPlayerHit:
		// Disarm before anything else so no further tick can fire this round
		m.deps.SpawnTimer.Stop()
		m.deps.ScoreTimer.Stop()
		m.transition(PhaseOver)
		m.seq.Begin()
	}
}

func (m *Machine) startRound() {
	m.seq.Cancel()
	m.deps.StartTimer.Stop()
	m.deps.SpawnTimer.Stop()
	m.deps.ScoreTimer.Stop()

	m.score = 0
	m.rounds++
	m.deps.Presenter.HideStartControl()
	m.deps.Presenter.UpdateScore(m.score)
	m.deps.Presenter.ShowMessage(GetReadyText)
	m.deps.StartTimer.Start()
	m.deps.World.Reset()

	m.transition(PhaseStarting)
}

func (m *Machine) transition(to Phase) {
	from := m.phase
	m.phase = to
	m.logger.Debug("phase changed", "from", from, "to", to, "score", m.score)
	if m.observer != nil {
		m.observer(from, to)
	}
}

func (m *Machine) onSpawnTimer() {
	if m.phase != PhaseRunning {
		m.assertf("spawn timer fired in phase %s", m.phase)
		return
	}
	m.Dispatch(EventSpawnTick)
}

func (m *Machine) onScoreTimer() {
	if m.phase != PhaseRunning {
		m.assertf("score timer fired in phase %s", m.phase)
		return
	}
	m.Dispatch(EventScoreTick)
}

// assertf reports a broken invariant: fatal with the dodgedebug build tag,
// logged and ignored otherwise.
func (m *Machine) assertf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if assertionsEnabled {
		panic("round: invariant violated: " + msg)
	}
	m.logger.Debug("invariant violated", "detail", msg)
}

// Close detaches the machine from its timers and stops them.
// The machine must not be used afterwards.
func (m *Machine) Close() {
	m.seq.Cancel()
	for _, h := range m.handles {
		h.Cancel()
	}
	m.handles = nil
	m.deps.StartTimer.Stop()
	m.deps.SpawnTimer.Stop()
	m.deps.ScoreTimer.Stop()
}
