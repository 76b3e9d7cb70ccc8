package hud

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge-creeps/internal/core"
	"github.com/vovakirdan/dodge-creeps/internal/round"
	"github.com/vovakirdan/dodge-creeps/internal/timer"
)

func newTestHUD() (*HUD, *timer.Service, *timer.Timer) {
	svc := timer.NewService()
	msg := svc.NewTimer("message", 2*time.Second, true)
	return New(msg), svc, msg
}

func advance(svc *timer.Service, total time.Duration) {
	const step = 100 * time.Millisecond
	for elapsed := time.Duration(0); elapsed < total; elapsed += step {
		svc.Advance(step)
	}
}

func TestInitialState(t *testing.T) {
	h, _, _ := newTestHUD()

	text, visible := h.Message()
	if text != round.TitleText || !visible {
		t.Errorf("Message() = (%q, %v), expected the title", text, visible)
	}
	if !h.StartVisible() {
		t.Error("start control should be visible on launch")
	}
	if h.VersionLabel() != "" {
		t.Errorf("VersionLabel() = %q before ShowVersion", h.VersionLabel())
	}
}

func TestShowMessageHidesOnTimeout(t *testing.T) {
	h, svc, _ := newTestHUD()

	h.ShowMessage(round.GetReadyText)
	advance(svc, 1900*time.Millisecond)
	if _, visible := h.Message(); !visible {
		t.Fatal("message hidden too early")
	}
	advance(svc, 100*time.Millisecond)
	if text, visible := h.Message(); visible {
		t.Errorf("message %q still visible after the timer expired", text)
	}
}

func TestShowMessageRestartsTimer(t *testing.T) {
	h, svc, _ := newTestHUD()

	h.ShowMessage("first")
	advance(svc, 1500*time.Millisecond)
	h.ShowMessage("second")
	advance(svc, 1500*time.Millisecond)

	if text, visible := h.Message(); text != "second" || !visible {
		t.Errorf("Message() = (%q, %v), expected second message still visible", text, visible)
	}
}

func TestShowTitleStays(t *testing.T) {
	h, svc, _ := newTestHUD()

	h.ShowTitle(round.TitleText)
	advance(svc, 10*time.Second)
	if _, visible := h.Message(); !visible {
		t.Error("title should stay visible")
	}
}

func TestPressStart(t *testing.T) {
	h, _, _ := newTestHUD()
	pressed := 0
	h.OnStart(func() { pressed++ })

	if !h.PressStart() {
		t.Fatal("PressStart() = false with the control visible")
	}
	if h.StartVisible() {
		t.Error("start control should hide when pressed")
	}
	if h.PressStart() {
		t.Error("PressStart() = true with the control hidden")
	}
	if pressed != 1 {
		t.Errorf("onStart called %d times, expected 1", pressed)
	}

	h.ShowStartControl()
	h.PressStart()
	if pressed != 2 {
		t.Errorf("onStart called %d times, expected 2", pressed)
	}
}

func TestTitleSurvivesMessageExpiry(t *testing.T) {
	h, svc, msg := newTestHUD()
	seq := round.NewSequencer(h, msg, svc, time.Second, log.New(io.Discard))

	seq.Begin()
	if text, _ := h.Message(); text != round.GameOverText {
		t.Fatalf("Message() = %q, expected %q", text, round.GameOverText)
	}

	advance(svc, 2*time.Second)
	if text, visible := h.Message(); text != round.TitleText || !visible {
		t.Fatalf("Message() = (%q, %v), expected the title to be visible", text, visible)
	}
	if h.StartVisible() {
		t.Fatal("start control shown before the title delay")
	}

	advance(svc, time.Second)
	if !h.StartVisible() {
		t.Error("start control should be visible at the end of the sequence")
	}
	if text, visible := h.Message(); text != round.TitleText || !visible {
		t.Errorf("title should stay with the start control, got (%q, %v)", text, visible)
	}
}

func TestRender(t *testing.T) {
	h, _, _ := newTestHUD()
	h.UpdateScore(42)
	h.ShowVersion("1.0.0")

	s := core.NewScreen(40, 12)
	h.Render(s)

	tests := []struct {
		name string
		row  int
		want string
	}{
		{"score", 0, "42"},
		{"title first line", 3, "Dodge the"},
		{"title second line", 4, "Creeps!"},
		{"start control", 8, StartLabel},
		{"version", 11, "v1.0.0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if row := s.Row(tc.row); !strings.Contains(row, tc.want) {
				t.Errorf("row %d = %q, expected it to contain %q", tc.row, row, tc.want)
			}
		})
	}

	if !strings.HasSuffix(s.Row(11), "v1.0.0 ") {
		t.Errorf("version should be right-aligned, row = %q", s.Row(11))
	}
	if s.GetCell(20, 0).Color != core.ColorBrightYellow {
		t.Errorf("score color = %d", s.GetCell(20, 0).Color)
	}
}

func TestRenderHidesMessageAndControl(t *testing.T) {
	h, svc, _ := newTestHUD()
	h.HideStartControl()
	h.ShowMessage("Get Ready!")
	advance(svc, 2*time.Second)

	s := core.NewScreen(40, 12)
	h.Render(s)

	out := s.String()
	if strings.Contains(out, "Get Ready!") || strings.Contains(out, StartLabel) {
		t.Errorf("hidden elements rendered:\n%s", out)
	}
}

func TestCloseStopsHiding(t *testing.T) {
	h, svc, msg := newTestHUD()
	h.Close()
	if msg.Listeners() != 0 {
		t.Fatalf("message timer has %d listeners after Close", msg.Listeners())
	}
	h.ShowMessage("stuck")
	advance(svc, 5*time.Second)
	if _, visible := h.Message(); !visible {
		t.Error("message hidden after Close")
	}
}
