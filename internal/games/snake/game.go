// Package snake implements the grid snake game: the movement and collision
// simulation, food placement, the Playing/GameOver state machine, and the
// adapter that plugs it into the terminal front end.
package snake

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// ID is the registry identifier and score-table key of the game.
const ID = "snake"

// hudHeight is the number of screen rows above the play field.
const hudHeight = 2

// Options carries everything the game needs from the outside world.
type Options struct {
	Settings       Settings
	MovesPerSecond int
	HighScores     HighScoreStore
	Logger         *log.Logger
}

// DefaultOptions returns options with default settings and no persistence.
func DefaultOptions() Options {
	return Options{
		Settings:       DefaultSettings(),
		MovesPerSecond: 8,
	}
}

// Game adapts the Engine to the platform's registry.Game interface.
type Game struct {
	opts    Options
	logger  *log.Logger
	engine  *Engine
	stepper *Stepper
	frames  uint64

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a snake game. Reset must be called before Step or Render.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		opts:   opts,
		logger: logger,
	}
}

var (
	_ registry.Game       = (*Game)(nil)
	_ registry.Resizable  = (*Game)(nil)
	_ registry.Summarizer = (*Game)(nil)
	_ registry.Flusher    = (*Game)(nil)
)

func init() {
	registry.Register(ID, func() registry.Game {
		return New(DefaultOptions())
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset starts a fresh session: new engine, high score reloaded from the
// store, RNG seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	g.engine = NewEngine(g.opts.Settings, rng, g.opts.HighScores, g.logger)
	g.stepper = NewStepper(g.opts.MovesPerSecond, cfg.TickRate)
	g.frames = 0
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the available screen area. The simulation is held while
// the play field does not fit.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	grid := g.opts.Settings.Grid
	g.tooSmall = w < grid.Width+2 || h < grid.Height+2+hudHeight
}

// Step handles one frame of input and runs any simulation moves that are due.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.frames++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.engine.Phase() == PhaseGameOver {
		if input.Has(core.ActionRestart) || input.Has(core.ActionConfirm) {
			g.engine.Restart()
			g.stepper.Reset()
		}
		return core.StepResult{State: g.State()}
	}

	if d, ok := directionFor(input.Direction()); ok {
		g.engine.RequestDirection(d)
	}

	moves := g.stepper.Advance()
	ran := 0
	for range moves {
		if g.engine.Phase() != PhasePlaying {
			break
		}
		res := g.engine.Tick()
		ran++
		if res.NewHighScore {
			g.logger.Info("new high score", "score", g.engine.HighScore())
		}
	}

	return core.StepResult{State: g.State(), Moves: ran}
}

// directionFor maps a directional action onto a grid direction.
func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return Up, true
	case core.ActionDown:
		return Down, true
	case core.ActionLeft:
		return Left, true
	case core.ActionRight:
		return Right, true
	default:
		return Direction{}, false
	}
}

// State returns the platform-level game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.engine.Score(),
		HighScore: g.engine.HighScore(),
		GameOver:  g.engine.Phase() == PhaseGameOver,
	}
}

// Snapshot returns the engine snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.engine.Snapshot()
}

// Summary reports the length and move count of the current game.
func (g *Game) Summary() registry.Summary {
	snap := g.engine.Snapshot()
	return registry.Summary{Length: snap.Length, Moves: int(snap.Tick)}
}

// Flush persists a high score that could not be saved earlier.
func (g *Game) Flush() error {
	if g.engine == nil {
		return nil
	}
	return g.engine.Flush()
}
