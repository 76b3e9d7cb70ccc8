// Package dodge implements Dodge the Creeps: steer the player away from
// mobs that spawn around the edge of the screen, and survive as long as
// possible. Round flow lives in the round package; this package wires it to
// timers, the HUD and the playfield.
package dodge

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge-creeps/internal/config"
	"github.com/vovakirdan/dodge-creeps/internal/core"
	"github.com/vovakirdan/dodge-creeps/internal/hud"
	"github.com/vovakirdan/dodge-creeps/internal/logging"
	"github.com/vovakirdan/dodge-creeps/internal/registry"
	"github.com/vovakirdan/dodge-creeps/internal/round"
	"github.com/vovakirdan/dodge-creeps/internal/spawn"
	"github.com/vovakirdan/dodge-creeps/internal/timer"
)

// GameID is the registry and score-table ID of the game.
const GameID = "dodge"

// Minimum playable terminal size.
const (
	MinScreenW = 30
	MinScreenH = 12
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// defaultLogger is used by games that are not given WithLogger
var defaultLogger = logging.Discard()

// SetLogger sets the logger used by games created from the registry.
func SetLogger(l *log.Logger) {
	if l != nil {
		defaultLogger = l
	}
}

// SetConfigPath sets the custom config path used by games created from the registry.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// Game is one Dodge the Creeps session.
type Game struct {
	cfg        config.DodgeConfig
	fixedCfg   bool // cfg was injected; don't reload on Reset
	logger     *log.Logger
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager

	timers       *timer.Service
	startTimer   *timer.Timer
	spawnTimer   *timer.Timer
	scoreTimer   *timer.Timer
	messageTimer *timer.Timer

	hud     *hud.HUD
	world   *World
	spawner *spawn.Spawner
	machine *round.Machine

	tick       uint64
	dt         time.Duration
	paused     bool
	tooSmall   bool
	lastScored int // Score the difficulty was last applied for
	err        error
}

// Option configures a Game.
type Option func(*Game)

// WithConfig uses cfg instead of loading the configuration on Reset.
func WithConfig(cfg config.DodgeConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
		g.fixedCfg = true
	}
}

// WithLogger sets the logger for the game and its round machine.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a game. Call Reset before Step.
func New(opts ...Option) *Game {
	g := &Game{logger: defaultLogger}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dodge the Creeps"
}

// Reset builds a fresh session for the given screen: new timers, HUD and
// round machine, with the title and start control showing.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = rt
	g.dt = time.Second / time.Duration(rt.TickRate)
	g.tick = 0
	g.paused = false
	g.lastScored = 0
	g.err = nil
	g.tooSmall = rt.ScreenW < MinScreenW || rt.ScreenH < MinScreenH

	if !g.fixedCfg {
		cfg, err := config.Load(configPath)
		if err != nil {
			g.logger.Warn("using default config", "path", configPath, "error", err)
			cfg = config.DefaultDodgeConfig()
		}
		if difficultyPreset != "" {
			config.ApplyPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	if g.machine != nil {
		g.machine.Close()
		g.hud.Close()
		g.machine = nil
	}

	if err := g.build(rand.New(rand.NewSource(rt.Seed))); err != nil {
		g.err = err
		g.logger.Error("cannot start game", "error", err)
	}
}

// build wires timers, HUD, world, spawner and round machine.
func (g *Game) build(rng *rand.Rand) error {
	cfg := g.cfg
	g.timers = timer.NewService()
	g.startTimer = g.timers.NewTimer("start", cfg.Timers.StartDelay, true)
	g.spawnTimer = g.timers.NewTimer("spawn", cfg.Timers.SpawnInterval, false)
	g.scoreTimer = g.timers.NewTimer("score", cfg.Timers.ScoreInterval, false)
	g.messageTimer = g.timers.NewTimer("message", cfg.Timers.MessageDuration, true)

	// The HUD must subscribe to the message timer before the round does
	g.hud = hud.New(g.messageTimer)

	scale := Scale{CellWidth: cfg.World.CellWidth, CellHeight: cfg.World.CellHeight}
	size := core.V(float64(g.runtime.ScreenW)*scale.CellWidth, float64(g.runtime.ScreenH)*scale.CellHeight)
	start := core.V(size.X*cfg.Player.StartX, size.Y*cfg.Player.StartY)
	player := &Player{Speed: cfg.Player.Speed, Width: cfg.Player.Width, Height: cfg.Player.Height}
	g.world = NewWorld(player, size, start, scale, rng)

	// Half a cell outside the play area: mobs enter from off-screen and are
	// still inside the offscreen cull margin.
	path := spawn.NewMarginRectPath(size.X, size.Y, scale.CellWidth/2, scale.CellHeight/2)
	spawner, err := spawn.NewSpawner(path, rng,
		spawn.WithSpeedRange(cfg.Mobs.MinSpeed, cfg.Mobs.MaxSpeed),
		spawn.WithJitter(cfg.Mobs.Jitter),
	)
	if err != nil {
		return err
	}
	g.spawner = spawner
	g.applyDifficulty(0)

	machine, err := round.New(round.Deps{
		Presenter:    g.hud,
		World:        g.world,
		Spawner:      g.spawner,
		StartTimer:   g.startTimer,
		SpawnTimer:   g.spawnTimer,
		ScoreTimer:   g.scoreTimer,
		MessageTimer: g.messageTimer,
		Scheduler:    g.timers,
		TitleDelay:   cfg.Timers.TitleDelay,
		Version:      cfg.Version,
	}, round.WithLogger(g.logger), round.WithObserver(g.onPhaseChange))
	if err != nil {
		return err
	}
	g.machine = machine
	g.hud.OnStart(func() { g.machine.Dispatch(round.EventStartRequested) })
	return nil
}

func (g *Game) onPhaseChange(from, to round.Phase) {
	switch to {
	case round.PhaseStarting:
		g.lastScored = 0
		g.applyDifficulty(0)
		g.logger.Info("round started", "round", g.machine.Rounds())
	case round.PhaseOver:
		g.logger.Info("round over", "score", g.machine.Score(), "mobs", len(g.world.Mobs()))
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.machine == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	if in.Has(core.ActionConfirm) {
		g.hud.PressStart()
	}

	g.timers.Advance(g.dt)
	g.world.Step(in.Direction(), g.dt.Seconds())

	if g.machine.Phase() == round.PhaseRunning && g.world.PlayerHit() {
		g.world.Player().Hit()
		g.machine.Dispatch(round.EventPlayerHit)
	}

	if score := g.machine.Score(); score != g.lastScored {
		g.lastScored = score
		g.applyDifficulty(score)
	}

	return core.StepResult{State: g.State()}
}

// applyDifficulty scales mob speed and the spawn period for score.
func (g *Game) applyDifficulty(score int) {
	ticks := int(g.tick)
	factor := g.difficulty.SpeedFactor(score, ticks)
	g.spawner.SetSpeedRange(g.cfg.Mobs.MinSpeed*factor, g.cfg.Mobs.MaxSpeed*factor)
	g.spawnTimer.SetWait(g.difficulty.SpawnInterval(g.cfg.Timers.SpawnInterval, score, ticks))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.machine == nil {
		return core.GameState{Paused: g.paused}
	}
	phase := g.machine.Phase()
	return core.GameState{
		Score:    g.machine.Score(),
		GameOver: phase == round.PhaseOver,
		Playing:  phase == round.PhaseStarting || phase == round.PhaseRunning,
		Paused:   g.paused,
	}
}

// Err returns the error that prevented the last Reset from building the game.
func (g *Game) Err() error {
	return g.err
}

// Config returns the configuration of the current session.
func (g *Game) Config() config.DodgeConfig {
	return g.cfg
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
