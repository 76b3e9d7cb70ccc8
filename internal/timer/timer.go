// Package timer provides a deterministic, tick-driven timer service.
//
// Nothing in this package runs on its own goroutine. The owner advances the
// Service once per simulation tick and every expiration callback runs
// synchronously inside that call, one at a time, in a stable order: timers in
// creation order, callbacks in registration order. Stopping a timer takes
// effect immediately, so a timer stopped by an earlier callback in the same
// Advance does not fire. A timer started from a callback begins counting on
// the next Advance.
package timer

import "time"

// Timer fires its callbacks each time its wait time elapses while running.
// A one-shot timer stops itself after firing; a repeating timer rearms.
type Timer struct {
	name      string
	wait      time.Duration
	oneShot   bool
	remaining time.Duration
	running   bool
	callbacks []*Handle
	service   *Service
	disposed  bool
	fresh     bool // Armed during the current Advance
}

// Name returns the label the timer was created with.
func (t *Timer) Name() string {
	return t.name
}

// Wait returns the configured period.
func (t *Timer) Wait() time.Duration {
	return t.wait
}

// SetWait changes the period. A running timer keeps its current countdown;
// the new period applies from the next Start or rearm.
func (t *Timer) SetWait(d time.Duration) {
	if d <= 0 {
		d = time.Nanosecond
	}
	t.wait = d
}

// OneShot reports whether the timer stops after its first expiration.
func (t *Timer) OneShot() bool {
	return t.oneShot
}

// Start arms the timer for a full period, restarting it if already running.
func (t *Timer) Start() {
	if t.disposed {
		return
	}
	t.remaining = t.wait
	t.running = true
	t.fresh = t.service != nil && t.service.advancing
}

// Stop disarms the timer. Pending expirations are dropped.
func (t *Timer) Stop() {
	t.running = false
	t.remaining = 0
}

// Running reports whether the timer is armed.
func (t *Timer) Running() bool {
	return t.running
}

// Remaining returns the time left before the next expiration.
func (t *Timer) Remaining() time.Duration {
	if !t.running {
		return 0
	}
	return t.remaining
}

// OnTimeout registers fn to run on every expiration until the returned
// handle is cancelled.
func (t *Timer) OnTimeout(fn func()) *Handle {
	h := &Handle{timer: t, fn: fn}
	t.callbacks = append(t.callbacks, h)
	return h
}

// Listeners returns the number of registered callbacks.
func (t *Timer) Listeners() int {
	return len(t.callbacks)
}

func (t *Timer) remove(h *Handle) {
	for i, c := range t.callbacks {
		if c == h {
			t.callbacks = append(t.callbacks[:i:i], t.callbacks[i+1:]...)
			return
		}
	}
}

// advance moves the countdown forward by dt and fires if it reaches zero.
func (t *Timer) advance(dt time.Duration) {
	if !t.running {
		return
	}
	t.remaining -= dt
	if t.remaining > 0 {
		return
	}

	if t.oneShot {
		t.running = false
		t.remaining = 0
	} else {
		// Carry the overshoot into the next period, firing at most once per tick
		t.remaining += t.wait
		if t.remaining <= 0 {
			t.remaining = t.wait
		}
	}
	t.fire()
}

func (t *Timer) fire() {
	// Snapshot so callbacks may register or cancel handles while we iterate
	snapshot := make([]*Handle, len(t.callbacks))
	copy(snapshot, t.callbacks)

	for _, h := range snapshot {
		if h.cancelled {
			continue
		}
		h.fn()
	}
}

// Handle identifies one registered callback.
type Handle struct {
	timer     *Timer
	fn        func()
	cancelled bool
	owned     bool // The handle owns its timer (Service.After)
}

// Cancel removes the callback. For handles returned by Service.After the
// underlying timer is stopped and released as well. Cancel is idempotent and
// safe on a nil handle.
func (h *Handle) Cancel() {
	if h == nil || h.cancelled {
		return
	}
	h.cancelled = true
	h.timer.remove(h)
	if h.owned {
		h.timer.Stop()
		h.timer.service.dispose(h.timer)
	}
}

// Active reports whether the callback can still fire.
func (h *Handle) Active() bool {
	if h == nil || h.cancelled {
		return false
	}
	if h.owned {
		return h.timer.running
	}
	return true
}
