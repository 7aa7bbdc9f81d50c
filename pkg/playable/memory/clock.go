package memory

import "fmt"

// Tick advances the elapsed time by one second
// The clock only runs between the first reveal and the win.
func Tick(s State) State {
	if !s.running || s.won {
		return s
	}

	s.elapsed++
	return s
}

// FormatElapsed formats seconds as MM:SS
func FormatElapsed(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
