package snake

// Stepper converts frames at a fixed frame rate into simulation moves at a
// slower, fixed move rate. It uses an integer accumulator so that exactly
// movesPerSecond moves are issued for every frameRate frames, independent of
// how long each frame actually took.
type Stepper struct {
	movesPerSecond int
	frameRate      int
	acc            int
}

// NewStepper creates a stepper. Non-positive rates are treated as 1.
func NewStepper(movesPerSecond, frameRate int) *Stepper {
	return &Stepper{
		movesPerSecond: max(movesPerSecond, 1),
		frameRate:      max(frameRate, 1),
	}
}

// Advance accounts for one frame and returns how many moves are due.
func (s *Stepper) Advance() int {
	s.acc += s.movesPerSecond
	n := s.acc / s.frameRate
	s.acc %= s.frameRate
	return n
}

// Reset drops any partially accumulated move.
func (s *Stepper) Reset() {
	s.acc = 0
}
