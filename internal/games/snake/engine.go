package snake

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// Phase is the coarse game state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver

	// PhaseMenu and PhasePaused are reserved. Nothing transitions into them.
	PhaseMenu
	PhasePaused
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseMenu:
		return "menu"
	case PhasePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// HighScoreStore persists the best score between runs.
// Load is called once when the engine is built; Save whenever a game ends
// with a new best. Failures are logged and otherwise ignored.
type HighScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// Settings is the static gameplay configuration.
type Settings struct {
	Grid            Grid
	InitialLength   int
	ScorePerFood    int
	GrowthPerFood   int
	MaxFoodAttempts int
}

// DefaultSettings mirrors the embedded YAML defaults.
func DefaultSettings() Settings {
	return Settings{
		Grid:            Grid{Width: 40, Height: 30},
		InitialLength:   3,
		ScorePerFood:    10,
		GrowthPerFood:   1,
		MaxFoodAttempts: DefaultMaxFoodAttempts,
	}
}

// TickResult reports what happened during one simulation step.
type TickResult struct {
	Moved        bool
	Ate          bool
	Died         bool
	NewHighScore bool
}

// Engine is the game-state machine. It owns the snake, the food, the score
// and the high score, and is driven by Tick and Restart.
type Engine struct {
	settings Settings
	snake    *Snake
	food     *Food
	store    HighScoreStore
	logger   *log.Logger

	phase     Phase
	score     int
	highScore int
	persisted int // last high score handed to the store
	ticks     uint64
}

// NewEngine builds an engine in the Playing phase. store may be nil, in
// which case the high score lives only as long as the engine.
func NewEngine(settings Settings, rng *rand.Rand, store HighScoreStore, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	e := &Engine{
		settings: settings,
		snake:    NewSnake(settings.Grid, settings.InitialLength),
		food:     NewFood(settings.Grid, rng, settings.MaxFoodAttempts),
		store:    store,
		logger:   logger,
		phase:    PhasePlaying,
	}
	e.highScore = e.loadHighScore()
	e.persisted = e.highScore
	e.placeFood()
	return e
}

func (e *Engine) loadHighScore() int {
	if e.store == nil {
		return 0
	}
	hs, err := e.store.Load()
	if err != nil {
		e.logger.Warn("could not load high score, starting from zero", "error", err)
		return 0
	}
	return max(hs, 0)
}

// RequestDirection buffers a direction for the next tick. Each request is
// checked against the heading of the last move; accepted requests replace
// earlier ones and rejected or invalid ones leave the buffer untouched.
func (e *Engine) RequestDirection(d Direction) {
	e.snake.ChangeDirection(d)
}

// Tick advances the simulation by one move. It does nothing unless the
// engine is Playing.
func (e *Engine) Tick() TickResult {
	var res TickResult
	if e.phase != PhasePlaying {
		return res
	}
	e.ticks++

	e.snake.Move()
	res.Moved = true

	if e.snake.HitsWall(e.settings.Grid) || e.snake.HitsSelf() {
		res.Died = true
		res.NewHighScore = e.gameOver()
		return res
	}

	if e.snake.Head() == e.food.Position() {
		res.Ate = true
		e.snake.Grow(e.settings.GrowthPerFood)
		e.score += e.settings.ScorePerFood
		e.placeFood()
	}
	return res
}

func (e *Engine) gameOver() bool {
	e.phase = PhaseGameOver
	e.logger.Debug("snake crashed", "head", e.snake.Head(), "score", e.score, "length", e.snake.Len())

	if e.score <= e.highScore {
		return false
	}
	e.highScore = e.score
	e.persistHighScore()
	return true
}

func (e *Engine) persistHighScore() {
	if e.store == nil {
		return
	}
	if err := e.store.Save(e.highScore); err != nil {
		e.logger.Warn("could not save high score", "score", e.highScore, "error", err)
		return
	}
	e.persisted = e.highScore
}

// placeFood relocates the food away from the current body.
func (e *Engine) placeFood() {
	if !e.food.SpawnAwayFrom(e.snake.body) {
		e.logger.Debug("food placement exhausted its attempts", "position", e.food.Position(), "length", e.snake.Len())
	}
}

// Restart starts a new game from GameOver. It returns false and does
// nothing in any other phase. The high score is kept.
func (e *Engine) Restart() bool {
	if e.phase != PhaseGameOver {
		return false
	}
	e.reset()
	return true
}

func (e *Engine) reset() {
	e.snake.Reset(e.settings.Grid, e.settings.InitialLength)
	e.placeFood()
	e.score = 0
	e.ticks = 0
	e.phase = PhasePlaying
}

// Flush writes the high score through the store if it changed since it was
// last saved. Intended for process shutdown.
func (e *Engine) Flush() error {
	if e.store == nil || e.highScore == e.persisted {
		return nil
	}
	if err := e.store.Save(e.highScore); err != nil {
		return err
	}
	e.persisted = e.highScore
	return nil
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Score returns the score of the current game.
func (e *Engine) Score() int {
	return e.score
}

// HighScore returns the best score seen so far.
func (e *Engine) HighScore() int {
	return e.highScore
}
