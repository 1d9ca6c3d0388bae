package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeInputEditing(t *testing.T) {
	var s TimeInputState
	for _, c := range "130" {
		s.InsertChar(c)
	}
	assert.Equal(t, "130", s.Input)
	assert.Equal(t, 3, s.CursorPos)

	s.MoveCursorLeft()
	s.MoveCursorLeft()
	s.InsertChar(':')
	assert.Equal(t, "1:30", s.Input)
	assert.Equal(t, 2, s.CursorPos)

	s.Backspace()
	assert.Equal(t, "130", s.Input)
	assert.Equal(t, 1, s.CursorPos)

	s.Delete()
	assert.Equal(t, "10", s.Input)

	s.MoveCursorRight()
	s.MoveCursorRight()
	assert.Equal(t, 2, s.CursorPos)

	s.Clear()
	assert.Equal(t, TimeInputState{}, s)

	// No-ops on an empty buffer.
	s.Backspace()
	s.Delete()
	s.MoveCursorLeft()
	assert.Equal(t, TimeInputState{}, s)
}

func TestTimeInputRender(t *testing.T) {
	out := TimeInput(TimeInputState{Input: "1:30", CursorPos: 1}, 20)
	assert.Contains(t, out, "1_:30")
	assert.Contains(t, out, ">")
}
