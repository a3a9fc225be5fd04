// Package game adapts the simulation engine to the platform's Game
// interface: it owns the run lifecycle (serve, pause, level transitions,
// restart), the score/ammo ledger, difficulty progression, and rendering.
package game

import (
	"fmt"

	"github.com/smolin/blockade/internal/config"
	"github.com/smolin/blockade/internal/core"
	"github.com/smolin/blockade/internal/engine"
	"github.com/smolin/blockade/internal/engine/event"
	"github.com/smolin/blockade/internal/engine/powerup"
	"github.com/smolin/blockade/internal/engine/rng"
	"github.com/smolin/blockade/internal/level"
	"github.com/smolin/blockade/internal/registry"
)

// GameState constants
const (
	StatePlaying    = "playing"
	StateLevelClear = "levelclear" // Short pause before the next level loads
	StateGameOver   = "gameover"
	StateWin        = "win" // All levels completed (campaign only)
	StatePaused     = "paused"
)

// Mode represents the game mode.
type Mode int

const (
	ModeCampaign Mode = iota // Play through the catalogue, win at the end
	ModeEndless              // Cycle the catalogue forever
)

// hudRows is the number of terminal rows reserved above the play field.
const hudRows = 2

// levelClearTicks is the pause between clearing a level and loading the next.
const levelClearTicks = 90

// noticeTicks is how long a power-up notice stays on the HUD.
const noticeTicks = 120

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// startLevel overrides the catalogue position a run starts at (1-based, 0 = config)
var startLevel int

// SetStartLevel sets the 1-based starting level; 0 restores the config value.
func SetStartLevel(n int) {
	startLevel = n
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game implements the platform Game interface over an engine session.
type Game struct {
	mode Mode

	sess   *engine.Session
	ledger *Ledger
	rand   *rng.Source

	state      string
	tickCount  int
	clearDelay int
	clearBonus int // bonus seconds at the last level completion, for the overlay
	cycle      int // completed catalogue passes (endless mode)

	// Transient HUD notice driven by engine events.
	notice      string
	noticeUntil int

	runtime    core.RuntimeConfig
	cfg        config.Config
	difficulty *config.DifficultyManager

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new game instance (campaign mode).
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new game instance in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "blockade_endless"
	}
	return "blockade"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Blockade (Endless)"
	}
	return "Blockade"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	if startLevel > 0 {
		cfg.Gameplay.StartLevel = startLevel - 1
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.minScreenW = 40
	g.minScreenH = 16
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.tickCount = 0
	g.clearDelay = 0
	g.clearBonus = 0
	g.cycle = 0
	g.notice = ""

	g.ledger = NewLedger(cfg.Gameplay.StartAmmo, cfg.Gameplay.MaxAmmo)
	g.rand = rng.New(runtime.Seed)

	g.sess = engine.NewSession(engine.Config{
		BallRadius:   cfg.Ball.Radius,
		BallSpeed:    cfg.Ball.Speed,
		BulletRadius: cfg.Bullet.Radius,
		BulletSpeed:  cfg.Bullet.Speed,
		PaddleWidths: powerup.Widths{
			Small:  cfg.Paddle.WidthSmall,
			Medium: cfg.Paddle.WidthMedium,
			Large:  cfg.Paddle.WidthLarge,
		},
		PaddleHeight:    cfg.Paddle.Height,
		PaddleSpeed:     cfg.Paddle.Speed,
		Lives:           cfg.Gameplay.Lives,
		AutoLaunchTicks: cfg.Ball.AutoLaunchTicks,
		StartLevel:      cfg.Gameplay.StartLevel,
	}, g.fieldRect, g.ledger, g.rand)

	g.state = StatePlaying
}

// fieldRect maps the current terminal size to the play-field rectangle in
// virtual pixels, leaving the HUD rows at the top. Re-read every frame so
// resizes are picked up.
func (g *Game) fieldRect() core.Rect {
	return core.NewRect(
		0,
		float64(hudRows*core.CellPixelsY),
		float64(g.runtime.ScreenW*core.CellPixelsX),
		float64((g.runtime.ScreenH-hudRows)*core.CellPixelsY),
	)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	if g.state == StatePaused || g.state == StateGameOver || g.state == StateWin {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	if g.state == StateLevelClear {
		g.clearDelay--
		if g.clearDelay <= 0 {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	// Difficulty progression retunes the ball target speed as play goes on.
	if g.difficulty.IsEnabled() {
		g.sess.SetBallTargetSpeed(g.difficulty.BallSpeed(g.cfg.Ball.Speed, g.ledger.Score(), g.tickCount))
	}

	events := g.sess.Step(g.runtime.TickMillis(), in)
	g.dispatch(events)

	return core.StepResult{State: g.State()}
}

// dispatch reacts to the engine's domain events: state transitions for
// game-over and level-complete, HUD notices for the rest.
func (g *Game) dispatch(events []event.Event) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case event.GameOver:
			g.state = StateGameOver

		case event.LevelComplete:
			g.clearBonus = ev.Bonus
			if g.mode == ModeCampaign && g.sess.LevelIndex()+1 >= level.Count() {
				g.state = StateWin
				break
			}
			g.state = StateLevelClear
			g.clearDelay = levelClearTicks

		case event.PaddleGrown:
			g.setNotice("PADDLE +")
		case event.PaddleShrunk:
			g.setNotice("PADDLE -")
		case event.ReverseChanged:
			if ev.On {
				g.setNotice("REVERSE!")
			} else {
				g.setNotice("reverse off")
			}
		case event.StickyChanged:
			if ev.On {
				g.setNotice("STICKY")
			}
		case event.AmmoChanged:
			// Rendered in the HUD every frame; no notice needed.
		case event.BallSpawned:
			g.setNotice("MULTIBALL")
		case event.Explosion:
			g.setNotice("BOOM")
		case event.BallLost:
			g.setNotice("ball lost")
		}
	}
}

// advanceLevel moves the session to the next catalogue entry, tracking
// endless-mode cycles.
func (g *Game) advanceLevel() {
	if g.mode == ModeEndless && g.sess.LevelIndex()+1 >= level.Count() {
		g.cycle++
	}
	g.sess.AdvanceLevel()
	g.state = StatePlaying
}

func (g *Game) setNotice(s string) {
	g.notice = s
	g.noticeUntil = g.tickCount + noticeTicks
}

// levelNumber returns the 1-based level number shown on the HUD, counting
// catalogue cycles in endless mode.
func (g *Game) levelNumber() int {
	return g.cycle*level.Count() + g.sess.LevelIndex() + 1
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.ledger != nil {
		score = g.ledger.Score()
	}
	level := 0
	if g.sess != nil {
		level = g.levelNumber()
	}
	return core.GameState{
		Score:    score,
		Level:    level,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Session exposes the underlying engine session, for snapshots and tests.
func (g *Game) Session() *engine.Session {
	return g.sess
}

// Ledger exposes the score/ammo store.
func (g *Game) Ledger() *Ledger {
	return g.ledger
}

func levelLabel(g *Game) string {
	if g.mode == ModeEndless {
		return fmt.Sprintf("Level: %d", g.levelNumber())
	}
	return fmt.Sprintf("Level: %d/%d", g.sess.LevelIndex()+1, level.Count())
}

// Register the games with the registry
func init() {
	registry.Register("blockade", func() registry.Game {
		return New()
	})
	registry.Register("blockade_endless", func() registry.Game {
		return NewEndless()
	})
}
