package timer

import "time"

// Service owns a set of timers and advances them together.
type Service struct {
	timers    []*Timer
	elapsed   time.Duration
	advancing bool
}

// NewService creates an empty timer service.
func NewService() *Service {
	return &Service{}
}

// NewTimer creates a stopped timer with the given period.
func (s *Service) NewTimer(name string, wait time.Duration, oneShot bool) *Timer {
	t := &Timer{
		name:    name,
		oneShot: oneShot,
		service: s,
	}
	t.SetWait(wait)
	s.timers = append(s.timers, t)
	return t
}

// After runs fn once, d from now, unless the returned handle is cancelled
// first. The backing timer is released after it fires.
func (s *Service) After(d time.Duration, fn func()) *Handle {
	t := s.NewTimer("after", d, true)
	h := &Handle{timer: t, owned: true}
	h.fn = func() {
		h.cancelled = true
		s.dispose(t)
		fn()
	}
	t.callbacks = append(t.callbacks, h)
	t.Start()
	return h
}

// Advance moves simulated time forward by dt, firing expired timers in
// creation order. Timers created or started during Advance start counting on
// the next call.
func (s *Service) Advance(dt time.Duration) {
	if dt <= 0 || s.advancing {
		return
	}
	s.elapsed += dt
	s.advancing = true
	defer func() {
		s.advancing = false
		for _, t := range s.timers {
			t.fresh = false
		}
	}()

	snapshot := make([]*Timer, len(s.timers))
	copy(snapshot, s.timers)
	for _, t := range snapshot {
		if t.disposed || t.fresh {
			continue
		}
		t.advance(dt)
	}
}

// Elapsed returns the total simulated time advanced so far.
func (s *Service) Elapsed() time.Duration {
	return s.elapsed
}

// Len returns the number of live timers.
func (s *Service) Len() int {
	return len(s.timers)
}

// StopAll disarms every timer without removing callbacks.
func (s *Service) StopAll() {
	for _, t := range s.timers {
		t.Stop()
	}
}

func (s *Service) dispose(t *Timer) {
	if t.disposed {
		return
	}
	t.disposed = true
	t.running = false
	for i, c := range s.timers {
		if c == t {
			s.timers = append(s.timers[:i:i], s.timers[i+1:]...)
			return
		}
	}
}
