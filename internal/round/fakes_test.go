package round

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/dodge-creeps/internal/core"
	"github.com/vovakirdan/dodge-creeps/internal/spawn"
	"github.com/vovakirdan/dodge-creeps/internal/timer"
)

const step = 100 * time.Millisecond

// recorder keeps an ordered log of every collaborator call.
type recorder struct {
	calls []string
}

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) count(call string) int {
	n := 0
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (r *recorder) index(call string) int {
	for i, c := range r.calls {
		if c == call {
			return i
		}
	}
	return -1
}

func (r *recorder) since(mark int) []string {
	return append([]string(nil), r.calls[mark:]...)
}

func (r *recorder) String() string {
	return strings.Join(r.calls, " | ")
}

// recordingPresenter behaves like the HUD: transient messages start the
// shared message timer, which hides them on expiry.
type recordingPresenter struct {
	rec     *recorder
	message *timer.Timer
}

func newRecordingPresenter(rec *recorder, message *timer.Timer) *recordingPresenter {
	p := &recordingPresenter{rec: rec, message: message}
	message.OnTimeout(func() { rec.add("HideMessage") })
	return p
}

func (p *recordingPresenter) ShowMessage(text string) {
	p.rec.add("ShowMessage:%s", text)
	p.message.Start()
}

func (p *recordingPresenter) ShowTitle(text string)      { p.rec.add("ShowTitle:%s", text) }
func (p *recordingPresenter) UpdateScore(score int)      { p.rec.add("UpdateScore:%d", score) }
func (p *recordingPresenter) ShowVersion(version string) { p.rec.add("ShowVersion:%s", version) }
func (p *recordingPresenter) ShowStartControl()          { p.rec.add("ShowStartControl") }
func (p *recordingPresenter) HideStartControl()          { p.rec.add("HideStartControl") }

type recordingWorld struct {
	rec     *recorder
	enemies []spawn.Enemy
}

func (w *recordingWorld) Reset() {
	w.rec.add("Reset")
	w.enemies = nil
}

func (w *recordingWorld) Embody(e spawn.Enemy) {
	w.rec.add("Embody")
	w.enemies = append(w.enemies, e)
}

// countingSpawner hands out enemies with increasing speed so they can be told apart.
type countingSpawner struct {
	n int
}

func (s *countingSpawner) Spawn() spawn.Enemy {
	s.n++
	return spawn.Enemy{Position: core.V(0, 0), Speed: float64(s.n)}
}

type fixture struct {
	svc     *timer.Service
	start   *timer.Timer
	spawn   *timer.Timer
	score   *timer.Timer
	message *timer.Timer

	rec     *recorder
	world   *recordingWorld
	spawner *countingSpawner
	deps    Deps
}

func newFixture() *fixture {
	svc := timer.NewService()
	f := &fixture{
		svc:     svc,
		start:   svc.NewTimer("start", 2*time.Second, true),
		spawn:   svc.NewTimer("spawn", 500*time.Millisecond, false),
		score:   svc.NewTimer("score", time.Second, false),
		message: svc.NewTimer("message", 2*time.Second, true),
		rec:     &recorder{},
		spawner: &countingSpawner{},
	}
	f.world = &recordingWorld{rec: f.rec}
	f.deps = Deps{
		Presenter:    newRecordingPresenter(f.rec, f.message),
		World:        f.world,
		Spawner:      f.spawner,
		StartTimer:   f.start,
		SpawnTimer:   f.spawn,
		ScoreTimer:   f.score,
		MessageTimer: f.message,
		Scheduler:    svc,
		TitleDelay:   time.Second,
		Version:      "1.0.0",
	}
	return f
}

func (f *fixture) machine(t *testing.T, opts ...Option) *Machine {
	t.Helper()
	m, err := New(f.deps, opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return m
}

// advance steps the clock in fixed increments.
func (f *fixture) advance(total time.Duration) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += step {
		f.svc.Advance(step)
	}
}
