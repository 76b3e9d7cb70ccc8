package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dodge-creeps/internal/core"
	"github.com/vovakirdan/dodge-creeps/internal/games/dodge"
	"github.com/vovakirdan/dodge-creeps/internal/platform/tui"
	"github.com/vovakirdan/dodge-creeps/internal/registry"
	"github.com/vovakirdan/dodge-creeps/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Dodge the Creeps",
	Long: `Start a local game.

Controls:
  Arrows/WASD - Move
  Enter/Space - Start
  P/Esc       - Pause
  Ctrl+S      - Screenshot to ~/.dodge/screenshots
  Q/Ctrl+C    - Quit

Difficulty options:
  (none) - No progression, mob speeds stay in the configured range
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  dodge play
  dodge play --difficulty hard
  dodge play --config ./my-dodge.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	runLogged(flagLogFile, playLocal)
}

func playLocal(logger *log.Logger) error {
	dodge.SetLogger(logger)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(dodge.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting local game", "width", width, "height", height, "difficulty", flagDifficulty)
	if err := tui.Run(game, store, cfg,
		tui.WithPlayer(localPlayer()),
		tui.WithDifficulty(flagDifficulty),
		tui.WithLogger(logger),
	); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// localPlayer names local scores after the OS user.
func localPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
