package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodge-creeps/internal/core"
	"github.com/vovakirdan/dodge-creeps/internal/storage"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColored(0, 0, "score", core.ColorBrightYellow)
	s.DrawTextColored(6, 0, "7", core.ColorGray)
	s.SetColored(2, 2, 'ω', core.ColorMagenta)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, expected 3:\n%s", len(lines), out)
	}
	for _, want := range []string{"score", "7", "ω"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q", got)
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText() = %q", got)
	}
}

func TestScoreboardBoards(t *testing.T) {
	store := openStore(t)
	for _, e := range []storage.ScoreEntry{
		{GameID: "stub", Player: "ann", Score: 12},
		{GameID: "stub", Player: "bob", Score: 30},
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, "ann", 100, 30)
	if len(m.scores) != 2 || m.scores[0].Player != "bob" {
		t.Fatalf("first board scores = %+v", m.scores)
	}
	view := m.View()
	for _, want := range []string{"HIGH SCORES - Stub", "bob", "ann"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	// The player's own board is last; shift+tab wraps to it
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if title := m.boards[m.cursor].Title; title != "My scores" {
		t.Fatalf("board = %q, expected My scores", title)
	}
	if len(m.scores) != 1 || m.scores[0].Player != "ann" {
		t.Errorf("my scores = %+v", m.scores)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.cursor != 0 {
		t.Errorf("tab should wrap to the first board, cursor = %d", m.cursor)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "", 60, 20)
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Errorf("view:\n%s", m.View())
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should leave the scoreboard")
	}
}
