package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTick(t *testing.T) {
	s := newTestState("A,B,A,B")

	// not started
	assert.Equal(t, 0, Tick(s).Elapsed())

	s, _ = Reveal(s, 0)
	s = Tick(s)
	s = Tick(s)
	assert.Equal(t, 2, s.Elapsed())
	assert.Equal(t, []int{0}, s.Revealed())
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "00:00", FormatElapsed(0))
	assert.Equal(t, "00:09", FormatElapsed(9))
	assert.Equal(t, "01:05", FormatElapsed(65))
	assert.Equal(t, "10:00", FormatElapsed(600))
	assert.Equal(t, "100:01", FormatElapsed(6001))
}
