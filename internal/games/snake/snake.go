package snake

// Snake is the player's body on the grid, head first.
//
// heading is the direction applied on the last move; pendingHeading is the
// direction the next move will use. Reversal is checked against heading, so
// several requests between two moves can never turn the snake back on itself.
type Snake struct {
	body           []Cell
	heading        Direction
	pendingHeading Direction
	pendingGrowth  int
}

// NewSnake returns a snake in its initial position on grid.
func NewSnake(grid Grid, length int) *Snake {
	s := &Snake{}
	s.Reset(grid, length)
	return s
}

// Reset lays the snake out as a horizontal row centered on the grid with the
// head rightmost, heading right and no growth owed.
func (s *Snake) Reset(grid Grid, length int) {
	length = max(length, 1)
	head := grid.Center()

	s.body = make([]Cell, length)
	for i := range s.body {
		s.body[i] = Cell{X: head.X - i, Y: head.Y}
	}
	s.heading = Right
	s.pendingHeading = Right
	s.pendingGrowth = 0
}

// ChangeDirection requests a new heading for the next move.
// Invalid directions and the reverse of the current heading are ignored.
func (s *Snake) ChangeDirection(d Direction) {
	if !d.Valid() || d == s.heading.Opposite() {
		return
	}
	s.pendingHeading = d
}

// Move advances the head one cell along the pending heading. The tail is
// dropped unless a growth credit is available, in which case it is consumed.
func (s *Snake) Move() {
	s.heading = s.pendingHeading
	newHead := s.body[0].Add(s.heading)

	s.body = append(s.body, Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead

	if s.pendingGrowth > 0 {
		s.pendingGrowth--
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// Grow owes the snake n more segments, paid out one per move.
func (s *Snake) Grow(n int) {
	if n <= 0 {
		return
	}
	s.pendingGrowth += n
}

// HitsWall reports whether the head has left the grid.
func (s *Snake) HitsWall(grid Grid) bool {
	return !grid.Contains(s.body[0])
}

// HitsSelf reports whether the head overlaps any other segment.
func (s *Snake) HitsSelf() bool {
	head := s.body[0]
	for _, c := range s.body[1:] {
		if c == head {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment is on c.
func (s *Snake) Occupies(c Cell) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}

// Head returns the head cell.
func (s *Snake) Head() Cell {
	return s.body[0]
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Heading returns the direction applied on the last move.
func (s *Snake) Heading() Direction {
	return s.heading
}

// PendingHeading returns the direction the next move will use.
func (s *Snake) PendingHeading() Direction {
	return s.pendingHeading
}

// PendingGrowth returns the number of growth credits not yet consumed.
func (s *Snake) PendingGrowth() int {
	return s.pendingGrowth
}
