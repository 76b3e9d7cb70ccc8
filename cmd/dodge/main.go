// dodge is Dodge the Creeps for the terminal: steer clear of the mobs that
// pour in from the edges of the screen for as long as you can.
//
// Usage:
//
//	dodge play               - Play a round locally
//	dodge serve              - Start SSH server for remote play
//	dodge scores             - Show high scores
//	dodge config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.dodge/scores.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Log destination (default: ~/.dodge/dodge.log)
//	--debug               - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge-creeps/internal/config"
	"github.com/vovakirdan/dodge-creeps/internal/games/dodge"
	"github.com/vovakirdan/dodge-creeps/internal/logging"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Dodge the Creeps - survive the mobs in your terminal",
	Long: `Dodge the Creeps is a terminal arcade game. Press Start, then keep the
player away from the creeps spawning around the edge of the screen. Every
second you survive scores a point.

Available commands:
  play     - Play locally
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  dodge play
  dodge play --difficulty hard
  dodge serve --ssh :2222
  dodge scores --limit 20`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			return fmt.Errorf("unknown difficulty %q (easy, normal, hard, fixed)", flagDifficulty)
		}
		dodge.SetConfigPath(flagConfig)
		dodge.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dodge/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.dodge/dodge.log", "Log file for play sessions")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger. An empty file logs to stderr.
func newLogger(file string) (*log.Logger, func() error) {
	logger, closeLog, err := logging.New(logging.Options{
		Prefix: "dodge",
		Debug:  flagDebug,
		File:   file,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; logging to stderr\n", err)
		logger, closeLog, _ = logging.New(logging.Options{Prefix: "dodge", Debug: flagDebug})
	}
	return logger, closeLog
}

// runLogged runs fn with the command logger and exits non-zero if it fails.
func runLogged(file string, fn func(*log.Logger) error) {
	if err := withLogger(file, fn); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// withLogger runs fn with a logger writing to file. A failure is logged,
// and the log is closed before withLogger returns.
func withLogger(file string, fn func(*log.Logger) error) error {
	logger, closeLog := newLogger(file)
	defer closeLog()

	if err := fn(logger); err != nil {
		logger.Error("command failed", "error", err)
		return err
	}
	return nil
}
