// Package hud is the heads-up display of the game: score, transient
// messages, the title, the version string and the start control.
// It implements round.Presenter and draws itself onto a core.Screen.
package hud

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/dodge-creeps/internal/core"
	"github.com/vovakirdan/dodge-creeps/internal/round"
	"github.com/vovakirdan/dodge-creeps/internal/timer"
)

// StartLabel is the caption of the start control.
const StartLabel = "[ Start ]"

// MessageTimer is the shared timer that hides transient messages.
type MessageTimer interface {
	Start()
	OnTimeout(fn func()) *timer.Handle
}

// HUD holds what the player sees on top of the play area.
type HUD struct {
	message     MessageTimer
	hideHandle  *timer.Handle
	onStart     func()
	text        string
	textVisible bool
	score       int
	version     string
	start       bool
}

var _ round.Presenter = (*HUD)(nil)

// New creates a HUD showing the title and the start control, as on launch.
// The HUD subscribes to the message timer here; create it before anything
// else subscribes so messages are hidden before later listeners run.
func New(message MessageTimer) *HUD {
	h := &HUD{
		message:     message,
		text:        round.TitleText,
		textVisible: true,
		start:       true,
	}
	h.hideHandle = message.OnTimeout(h.hideMessage)
	return h
}

// OnStart sets the callback run when the start control is pressed.
func (h *HUD) OnStart(fn func()) {
	h.onStart = fn
}

// PressStart activates the start control. It returns false when the
// control is hidden.
func (h *HUD) PressStart() bool {
	if !h.start {
		return false
	}
	h.start = false
	if h.onStart != nil {
		h.onStart()
	}
	return true
}

// ShowMessage shows text until the message timer expires.
func (h *HUD) ShowMessage(text string) {
	h.text = text
	h.textVisible = true
	h.message.Start()
}

// ShowTitle shows text until it is replaced.
func (h *HUD) ShowTitle(text string) {
	h.text = text
	h.textVisible = true
}

func (h *HUD) hideMessage() {
	h.textVisible = false
}

// UpdateScore sets the displayed score.
func (h *HUD) UpdateScore(score int) {
	h.score = score
}

// ShowVersion sets the version label.
func (h *HUD) ShowVersion(version string) {
	h.version = version
}

// ShowStartControl makes the start control visible.
func (h *HUD) ShowStartControl() {
	h.start = true
}

// HideStartControl hides the start control.
func (h *HUD) HideStartControl() {
	h.start = false
}

// Message returns the current message and whether it is visible.
func (h *HUD) Message() (string, bool) {
	return h.text, h.textVisible
}

// Score returns the displayed score.
func (h *HUD) Score() int {
	return h.score
}

// StartVisible reports whether the start control is shown.
func (h *HUD) StartVisible() bool {
	return h.start
}

// VersionLabel returns the version as displayed, or "" when unset.
func (h *HUD) VersionLabel() string {
	if h.version == "" {
		return ""
	}
	return "v" + h.version
}

// Close stops listening to the message timer.
func (h *HUD) Close() {
	h.hideHandle.Cancel()
}

// Render draws the HUD over whatever is already on the screen.
func (h *HUD) Render(s *core.Screen) {
	w, ht := s.Width(), s.Height()

	s.DrawTextCentered(0, strconv.Itoa(h.score), core.ColorBrightYellow)

	if h.textVisible && h.text != "" {
		lines := strings.Split(h.text, "\n")
		top := ht/3 - len(lines)/2
		for i, line := range lines {
			s.DrawTextCentered(top+i, line, core.ColorBrightCyan)
		}
	}

	if h.start {
		y := ht * 2 / 3
		s.DrawTextCentered(y, StartLabel, core.ColorGreen)
		s.DrawTextCentered(y+1, "press enter", core.ColorGray)
	}

	if label := h.VersionLabel(); label != "" {
		s.DrawTextColored(w-len(label)-1, ht-1, label, core.ColorGray)
	}
}
