package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge-creeps/internal/games/dodge"
	"github.com/vovakirdan/dodge-creeps/internal/storage"
)

func TestWithLoggerWritesFailureBeforeReturning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "dodge.log")
	boom := errors.New("no terminal")

	err := withLogger(path, func(logger *log.Logger) error {
		logger.Info("starting local game")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("withLogger() = %v, expected %v", err, boom)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"starting local game", "command failed", "no terminal"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log missing %q:\n%s", want, data)
		}
	}
}

func TestWithLoggerSuccess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dodge.log")

	if err := withLogger(path, func(*log.Logger) error { return nil }); err != nil {
		t.Fatalf("withLogger() = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "command failed") {
		t.Errorf("unexpected failure in log:\n%s", data)
	}
}

func setScoreFlags(t *testing.T, db, player string) {
	t.Helper()
	oldDB, oldPlayer, oldLimit, oldInteractive := flagDBPath, flagPlayer, flagLimit, flagInteractive
	t.Cleanup(func() {
		flagDBPath, flagPlayer, flagLimit, flagInteractive = oldDB, oldPlayer, oldLimit, oldInteractive
	})
	flagDBPath, flagPlayer, flagLimit, flagInteractive = db, player, 10, false
}

func TestShowScores(t *testing.T) {
	db := filepath.Join(t.TempDir(), "scores.db")
	store, err := storage.Open(db)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range []storage.ScoreEntry{
		{GameID: dodge.GameID, Player: "ann", Difficulty: "hard", Score: 21},
		{GameID: dodge.GameID, Score: 9},
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatal(err)
		}
	}
	store.Close()

	setScoreFlags(t, db, "")
	var out bytes.Buffer
	if err := showScores(&out); err != nil {
		t.Fatalf("showScores() = %v", err)
	}
	for _, want := range []string{"ann", "hard", "21", "9", "Best: 21  Rounds: 2"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestShowScoresEmpty(t *testing.T) {
	setScoreFlags(t, filepath.Join(t.TempDir(), "scores.db"), "nobody")

	var out bytes.Buffer
	if err := showScores(&out); err != nil {
		t.Fatalf("showScores() = %v", err)
	}
	if !strings.Contains(out.String(), "No scores recorded yet.") {
		t.Errorf("output:\n%s", out.String())
	}
}

func TestShowScoresReturnsOpenError(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	setScoreFlags(t, filepath.Join(file, "scores.db"), "")

	var out bytes.Buffer
	if err := showScores(&out); err == nil {
		t.Fatal("expected an error for a database under a regular file")
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}
