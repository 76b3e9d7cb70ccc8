package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dodge-creeps/internal/games/dodge"
	"github.com/vovakirdan/dodge-creeps/internal/platform/tui"
	"github.com/vovakirdan/dodge-creeps/internal/storage"
)

var (
	flagLimit       int
	flagPlayer      string
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores.

Examples:
  dodge scores
  dodge scores --limit 20
  dodge scores --player alice
  dodge scores -i          # browse in a table`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show this player's scores")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in the terminal UI")
}

func runScores(cmd *cobra.Command, args []string) {
	if err := showScores(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// showScores prints the scoreboard to w, or opens the interactive one.
// The store is closed before it returns.
func showScores(w io.Writer) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = tw, th
		}
		return tui.RunScoreboard(store, flagPlayer, width, height)
	}

	var scores []storage.ScoreEntry
	if flagPlayer != "" {
		scores, err = store.PlayerScores(flagPlayer, flagLimit)
	} else {
		scores, err = store.TopScores(dodge.GameID, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintln(w, "High Scores - Dodge the Creeps")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'dodge play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-6s  %-16s  %-7s  %s\n", "Rank", "Score", "Player", "Level", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-16s  %-7s  %s\n", "----", "-----", "------", "-----", "----")

	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-6d  %-16s  %-7s  %s\n",
			i+1, entry.Score, orDash(entry.Player), orDash(entry.Difficulty),
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	if stats, err := store.GetGameStats(dodge.GameID); err == nil && stats.GamesCount > 0 {
		fmt.Fprintf(w, "Best: %d  Rounds: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
