package snake

import (
	"errors"
	"math/rand"
	"testing"
)

// memStore is a HighScoreStore for tests.
type memStore struct {
	value   int
	loadErr error
	saveErr error
	saves   []int
}

func (m *memStore) Load() (int, error) {
	return m.value, m.loadErr
}

func (m *memStore) Save(score int) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.value = score
	m.saves = append(m.saves, score)
	return nil
}

func newTestEngine(t *testing.T, store HighScoreStore) *Engine {
	t.Helper()
	return NewEngine(DefaultSettings(), rand.New(rand.NewSource(42)), store, nil)
}

// putFoodAhead places the food on the cell the next move will enter.
func putFoodAhead(e *Engine) {
	e.food.position = e.snake.Head().Add(e.snake.PendingHeading())
}

func TestEngineStartsPlaying(t *testing.T) {
	e := newTestEngine(t, nil)

	if e.Phase() != PhasePlaying {
		t.Errorf("Phase() = %v, expected playing", e.Phase())
	}
	if e.Score() != 0 || e.HighScore() != 0 {
		t.Errorf("score/high = %d/%d, expected 0/0", e.Score(), e.HighScore())
	}
	if e.snake.Occupies(e.food.Position()) {
		t.Errorf("initial food %v is on the snake", e.food.Position())
	}
}

func TestEngineEndToEnd(t *testing.T) {
	e := newTestEngine(t, nil)
	e.food.position = Cell{X: 0, Y: 0} // out of the way

	// One move with no input: head advances right, length unchanged.
	head := e.snake.Head()
	tail := e.snake.Body()[2]
	e.Tick()
	if e.snake.Head() != (Cell{X: head.X + 1, Y: head.Y}) {
		t.Errorf("head = %v, expected %v", e.snake.Head(), Cell{X: head.X + 1, Y: head.Y})
	}
	if e.snake.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", e.snake.Len())
	}
	if e.snake.Occupies(tail) {
		t.Errorf("old tail %v should have been dropped", tail)
	}

	// grow(1) then one move: length 4.
	e.snake.Grow(1)
	e.Tick()
	if e.snake.Len() != 4 {
		t.Errorf("Len() = %d after growth, expected 4", e.snake.Len())
	}

	// Move onto the food.
	putFoodAhead(e)
	eaten := e.food.Position()
	res := e.Tick()

	if !res.Ate {
		t.Fatal("expected the snake to eat")
	}
	if e.Score() != DefaultSettings().ScorePerFood {
		t.Errorf("Score() = %d, expected %d", e.Score(), DefaultSettings().ScorePerFood)
	}
	if e.food.Position() == eaten {
		t.Error("food should have moved after being eaten")
	}
	if e.snake.Occupies(e.food.Position()) {
		t.Errorf("new food %v is on the snake", e.food.Position())
	}

	// The growth credit is paid on the next move.
	e.food.position = Cell{X: 0, Y: 0}
	e.Tick()
	if e.snake.Len() != 5 {
		t.Errorf("Len() = %d after eating, expected 5", e.snake.Len())
	}
}

func TestEngineWallCollisionEndsGame(t *testing.T) {
	e := newTestEngine(t, nil)
	e.food.position = Cell{X: 0, Y: 0}

	var res TickResult
	for i := 0; i < DefaultSettings().Grid.Width; i++ {
		res = e.Tick()
		if res.Died {
			break
		}
	}

	if !res.Died || e.Phase() != PhaseGameOver {
		t.Fatalf("expected game over after running into the right wall, phase = %v", e.Phase())
	}
	if e.snake.Head().X != DefaultSettings().Grid.Width {
		t.Errorf("head = %v, expected x = %d", e.snake.Head(), DefaultSettings().Grid.Width)
	}

	// GameOver ignores ticks.
	before := e.Snapshot()
	if res := e.Tick(); res.Moved {
		t.Error("Tick() moved the snake during game over")
	}
	if e.Snapshot().Head != before.Head {
		t.Error("snake moved during game over")
	}
}

func TestEngineDeathStopsTick(t *testing.T) {
	e := NewEngine(Settings{
		Grid:          Grid{Width: 40, Height: 30},
		InitialLength: 5,
		ScorePerFood:  10,
		GrowthPerFood: 1,
	}, rand.New(rand.NewSource(1)), nil, nil)
	e.food.position = Cell{X: 0, Y: 0}

	e.RequestDirection(Up)
	e.Tick()
	e.RequestDirection(Left)
	e.Tick()

	// Food sits on the cell where the snake is about to bite itself.
	e.food.position = e.snake.Head().Add(Down)
	e.RequestDirection(Down)
	res := e.Tick()

	if !res.Died {
		t.Fatalf("expected self collision, body = %v", e.snake.Body())
	}
	if res.Ate || e.Score() != 0 {
		t.Error("food must not be eaten on the tick the snake dies")
	}
}

func TestEngineRequestDirectionKeepsAcceptedTurn(t *testing.T) {
	tests := []struct {
		name     string
		requests []Direction
		expected Direction
	}{
		{"single turn", []Direction{Up}, Up},
		{"later valid request replaces earlier", []Direction{Up, Down}, Down},
		{"reversal after turn is ignored", []Direction{Up, Left}, Up},
		{"invalid after turn is ignored", []Direction{Up, {}}, Up},
		{"invalid alone", []Direction{{DX: 2, DY: 0}}, Right},
		{"reversal alone", []Direction{Left}, Right},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, nil)
			e.food.position = Cell{X: 0, Y: 0}

			for _, d := range tt.requests {
				e.RequestDirection(d)
			}
			e.Tick()

			if e.snake.Heading() != tt.expected {
				t.Errorf("Heading() = %v, expected %v", e.snake.Heading(), tt.expected)
			}
		})
	}
}

func TestEngineReversalCheckedAgainstLastMove(t *testing.T) {
	e := newTestEngine(t, nil)
	e.food.position = Cell{X: 0, Y: 0}

	e.RequestDirection(Down)
	e.Tick()

	// Up is the reverse of the applied heading now.
	e.RequestDirection(Up)
	e.Tick()
	if e.snake.Heading() != Down {
		t.Errorf("Heading() = %v, expected down after reversal attempt", e.snake.Heading())
	}
}

func TestEngineHighScoreSavedOnGameOver(t *testing.T) {
	store := &memStore{value: 5}
	e := newTestEngine(t, store)

	if e.HighScore() != 5 {
		t.Fatalf("HighScore() = %d, expected 5 loaded from store", e.HighScore())
	}

	putFoodAhead(e)
	e.Tick()
	crash(e)

	if e.HighScore() != 10 {
		t.Errorf("HighScore() = %d, expected 10", e.HighScore())
	}
	if len(store.saves) != 1 || store.saves[0] != 10 {
		t.Errorf("saves = %v, expected [10]", store.saves)
	}
}

func TestEngineHighScoreNotSavedWhenNotBeaten(t *testing.T) {
	store := &memStore{value: 500}
	e := newTestEngine(t, store)

	putFoodAhead(e)
	e.Tick()
	crash(e)

	if e.HighScore() != 500 {
		t.Errorf("HighScore() = %d, expected 500", e.HighScore())
	}
	if len(store.saves) != 0 {
		t.Errorf("saves = %v, expected none", store.saves)
	}
}

func TestEngineLoadFailureFallsBackToZero(t *testing.T) {
	e := newTestEngine(t, &memStore{value: 70, loadErr: errors.New("corrupt")})
	if e.HighScore() != 0 {
		t.Errorf("HighScore() = %d, expected 0 on load error", e.HighScore())
	}
}

func TestEngineSaveFailureIsRetriedOnFlush(t *testing.T) {
	store := &memStore{saveErr: errors.New("read-only")}
	e := newTestEngine(t, store)

	putFoodAhead(e)
	e.Tick()
	crash(e)

	if e.HighScore() != 10 {
		t.Fatalf("HighScore() = %d, expected 10 even when saving fails", e.HighScore())
	}
	if err := e.Flush(); err == nil {
		t.Error("Flush() should report the store error")
	}

	store.saveErr = nil
	if err := e.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if store.value != 10 {
		t.Errorf("store value = %d, expected 10", store.value)
	}

	if err := e.Flush(); err != nil || len(store.saves) != 1 {
		t.Errorf("Flush() with nothing pending should not save again, saves = %v", store.saves)
	}
}

func TestEngineRestart(t *testing.T) {
	store := &memStore{}
	e := newTestEngine(t, store)
	fresh := e.Snapshot()

	if e.Restart() {
		t.Error("Restart() should be ignored while playing")
	}

	putFoodAhead(e)
	e.Tick()
	crash(e)
	if e.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, expected game over", e.Phase())
	}

	if !e.Restart() {
		t.Fatal("Restart() from game over returned false")
	}
	snap := e.Snapshot()
	if snap.Phase != PhasePlaying || snap.Score != 0 {
		t.Errorf("after restart phase/score = %v/%d, expected playing/0", snap.Phase, snap.Score)
	}
	if snap.HighScore != 10 {
		t.Errorf("high score = %d, expected 10 to survive restart", snap.HighScore)
	}
	if snap.Length != fresh.Length || snap.Head != fresh.Head || snap.Heading != Right {
		t.Errorf("snake not reset: %+v", snap)
	}
	if contains(snap.Body, snap.Food) {
		t.Errorf("food %v placed on the fresh snake", snap.Food)
	}
}

func TestEngineDeterminism(t *testing.T) {
	run := func() Snapshot {
		e := NewEngine(DefaultSettings(), rand.New(rand.NewSource(12345)), nil, nil)
		script := map[int]Direction{3: Down, 9: Left, 15: Up, 22: Right}
		for i := 0; i < 40; i++ {
			if d, ok := script[i]; ok {
				e.RequestDirection(d)
			}
			e.Tick()
		}
		return e.Snapshot()
	}

	a, b := run(), run()
	if a.Tick != b.Tick || a.Score != b.Score || a.Head != b.Head || a.Food != b.Food || a.Phase != b.Phase {
		t.Errorf("snapshots differ:\n%+v\n%+v", a, b)
	}
}

func TestPhaseString(t *testing.T) {
	tests := map[Phase]string{
		PhasePlaying:  "playing",
		PhaseGameOver: "game_over",
		PhaseMenu:     "menu",
		PhasePaused:   "paused",
		Phase(99):     "unknown",
	}
	for p, want := range tests {
		if p.String() != want {
			t.Errorf("Phase(%d).String() = %q, expected %q", int(p), p.String(), want)
		}
	}
}

// crash drives the snake into the top wall.
func crash(e *Engine) {
	e.food.position = Cell{X: 0, Y: e.settings.Grid.Height - 1}
	e.RequestDirection(Up)
	for e.Phase() == PhasePlaying {
		e.Tick()
	}
}
