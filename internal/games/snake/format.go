package snake

import "fmt"

// FormatScore renders a score zero-padded to six digits.
func FormatScore(score int) string {
	return fmt.Sprintf("%06d", max(score, 0))
}
