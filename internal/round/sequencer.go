package round

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge-creeps/internal/timer"
)

// SequenceStep is the position of the game-over message chain.
type SequenceStep int

const (
	StepNone     SequenceStep = iota // No chain in flight
	StepGameOver                     // "Game Over" shown, waiting for the message timer
	StepTitle                        // Title shown, waiting for the title delay
)

// Sequencer plays the game-over message chain:
// "Game Over" -> message timer -> title -> title delay -> start control.
// Only one chain is in flight at a time; every callback carries the epoch it
// was scheduled in and does nothing once the chain has been cancelled.
type Sequencer struct {
	presenter Presenter
	message   Timer
	scheduler Scheduler
	delay     time.Duration
	logger    *log.Logger

	epoch         uint64
	step          SequenceStep
	messageHandle *timer.Handle
	delayHandle   *timer.Handle
}

// NewSequencer creates an idle sequencer.
func NewSequencer(p Presenter, message Timer, sched Scheduler, delay time.Duration, logger *log.Logger) *Sequencer {
	return &Sequencer{
		presenter: p,
		message:   message,
		scheduler: sched,
		delay:     delay,
		logger:    logger,
	}
}

// Begin starts a new chain, cancelling any chain already in flight.
func (s *Sequencer) Begin() {
	s.Cancel()
	epoch := s.epoch

	s.step = StepGameOver
	s.presenter.ShowMessage(GameOverText)
	s.message.Start()
	s.messageHandle = s.message.OnTimeout(func() { s.onMessageExpired(epoch) })
	s.logger.Debug("game over sequence started", "epoch", epoch)
}

func (s *Sequencer) onMessageExpired(epoch uint64) {
	if epoch != s.epoch || s.step != StepGameOver {
		return
	}
	s.messageHandle.Cancel()
	s.messageHandle = nil

	s.step = StepTitle
	s.presenter.ShowTitle(TitleText)
	s.delayHandle = s.scheduler.After(s.delay, func() { s.onDelayExpired(epoch) })
}

func (s *Sequencer) onDelayExpired(epoch uint64) {
	if epoch != s.epoch || s.step != StepTitle {
		return
	}
	s.delayHandle = nil
	s.step = StepNone
	s.presenter.ShowStartControl()
	s.logger.Debug("game over sequence finished", "epoch", epoch)
}

// Cancel stops the chain in flight, if any. Pending callbacks become no-ops.
func (s *Sequencer) Cancel() {
	s.epoch++
	if s.step == StepNone {
		return
	}

	if s.messageHandle != nil {
		s.messageHandle.Cancel()
		s.messageHandle = nil
		s.message.Stop()
	}
	if s.delayHandle != nil {
		s.delayHandle.Cancel()
		s.delayHandle = nil
	}
	s.logger.Debug("game over sequence cancelled", "step", s.step)
	s.step = StepNone
}

// Active reports whether a chain is in flight.
func (s *Sequencer) Active() bool {
	return s.step != StepNone
}

// Step returns the current position of the chain.
func (s *Sequencer) Step() SequenceStep {
	return s.step
}
