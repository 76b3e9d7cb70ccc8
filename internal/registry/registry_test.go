package registry

import (
	"testing"

	"github.com/vovakirdan/dodge-creeps/internal/core"
)

type fakeGame struct{ id string }

func (g fakeGame) ID() string { return g.id }
func (g fakeGame) Title() string { return "Game " + g.id }
func (g fakeGame) Reset(core.RuntimeConfig) {}
func (g fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g fakeGame) Render(*core.Screen) {}
func (g fakeGame) State() core.GameState { return core.GameState{} }

func TestRegistry(t *testing.T) {
	Register("zz_b", func() Game { return fakeGame{id: "zz_b"} })
	Register("zz_a", func() Game { return fakeGame{id: "zz_a"} })

	games := List()
	var ids []string
	for _, g := range games {
		ids = append(ids, g.ID)
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List() not sorted: %v", ids)
		}
	}

	if !Exists("zz_a") || Exists("missing") {
		t.Error("Exists() mismatch")
	}

	g, err := Create("zz_a")
	if err != nil || g.Title() != "Game zz_a" {
		t.Errorf("Create() = %v, %v", g, err)
	}
	if _, err := Create("missing"); err == nil {
		t.Error("expected error for unknown game")
	}

	for _, g := range games {
		if g.ID == "zz_b" && g.Title != "Game zz_b" {
			t.Errorf("List() title = %q, expected Game zz_b", g.Title)
		}
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name string
		id   string
		f    Factory
	}{
		{"duplicate", "zz_dup", func() Game { return fakeGame{id: "zz_dup"} }},
		{"empty id", "", func() Game { return fakeGame{} }},
		{"nil factory", "zz_nil", nil},
	}
	Register("zz_dup", func() Game { return fakeGame{id: "zz_dup"} })

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Register(%q) should panic", tc.id)
				}
			}()
			Register(tc.id, tc.f)
		})
	}
	if Exists("zz_nil") || Exists("") {
		t.Error("a rejected registration must not be stored")
	}
}
