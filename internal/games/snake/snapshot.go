package snake

// Snapshot is a read-only copy of everything a presentation layer needs to
// draw a frame, and what determinism tests compare.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Score     int
	HighScore int
	Length    int
	Head      Cell
	Heading   Direction
	Food      Cell
	Body      []Cell // head first
}

// Snapshot captures the current engine state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:      e.ticks,
		Phase:     e.phase,
		Score:     e.score,
		HighScore: e.highScore,
		Length:    e.snake.Len(),
		Head:      e.snake.Head(),
		Heading:   e.snake.Heading(),
		Food:      e.food.Position(),
		Body:      e.snake.Body(),
	}
}
