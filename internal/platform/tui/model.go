package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge-creeps/internal/core"
	"github.com/vovakirdan/dodge-creeps/internal/logging"
	"github.com/vovakirdan/dodge-creeps/internal/registry"
	"github.com/vovakirdan/dodge-creeps/internal/storage"
)

// SessionStats accumulates finished rounds. It is shared by pointer so the
// totals survive Bubble Tea's value-copied models.
type SessionStats struct {
	mu        sync.Mutex
	rounds    int
	bestScore int
}

func (s *SessionStats) record(score int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rounds++
	if score > s.bestScore {
		s.bestScore = score
	}
}

// Totals returns the number of finished rounds and the best score.
func (s *SessionStats) Totals() (rounds, bestScore int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rounds, s.bestScore
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	keys       *HeldKeys
	inputFrame core.InputFrame
	gameState  core.GameState
	stats      *SessionStats
	player     string
	sessionID  string
	difficulty string
	shotDir    string
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithPlayer sets the name scores are saved under.
func WithPlayer(name string) ModelOption {
	return func(m *Model) { m.player = name }
}

// WithSession tags saved scores with an SSH session ID and collects the
// session totals into stats.
func WithSession(id string, stats *SessionStats) ModelOption {
	return func(m *Model) {
		m.sessionID = id
		if stats != nil {
			m.stats = stats
		}
	}
}

// WithDifficulty records the difficulty preset name alongside saved scores.
func WithDifficulty(preset string) ModelOption {
	return func(m *Model) { m.difficulty = preset }
}

// WithLogger sets the logger for score and screenshot errors.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithHold sets how long a movement key stays held after a press.
func WithHold(d time.Duration) ModelOption {
	return func(m *Model) { m.keys = NewHeldKeys(d) }
}

// WithScreenshotDir sets where ctrl+s screenshots are written.
func WithScreenshotDir(dir string) ModelOption {
	return func(m *Model) { m.shotDir = dir }
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logging.Discard(),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		keys:       NewHeldKeys(DefaultHoldDuration),
		inputFrame: core.NewInputFrame(),
		stats:      &SessionStats{},
		shotDir:    filepath.Join(os.Getenv("HOME"), ".dodge", "screenshots"),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionBack {
		action = core.ActionPause
	}
	m.keys.Press(action, now)

	return m, nil
}

// handleResize processes window resize events. The world is sized from the
// screen, so a resize starts a fresh session and ends any round under way.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}
	if st := m.game.State(); st.Playing && !m.scoreSaved {
		m.logger.Info("round cut short by resize", "score", st.Score)
		m.saveScore(st.Score)
	}
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.keys.Release()
	m.logger.Debug("screen resized", "width", msg.Width, "height", msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.keys.Fill(&m.inputFrame, now)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		m.saveScore(m.gameState.Score)
		m.scoreSaved = true
	case !m.gameState.GameOver:
		m.scoreSaved = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScore records a finished round. Storage errors are logged and the
// game continues.
func (m Model) saveScore(score int) {
	m.stats.record(score)
	if m.store == nil || score <= 0 {
		return
	}
	_, err := m.store.SaveScore(storage.ScoreEntry{
		GameID:     m.game.ID(),
		Player:     m.player,
		SessionID:  m.sessionID,
		Difficulty: m.difficulty,
		Score:      score,
	})
	if err != nil {
		m.logger.Error("cannot save score", "score", score, "error", err)
		return
	}
	m.logger.Debug("score saved", "player", m.player, "score", score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "dir", m.shotDir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// Stats returns the session totals collected by this model.
func (m Model) Stats() *SessionStats {
	return m.stats
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
