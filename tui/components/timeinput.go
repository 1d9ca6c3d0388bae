// Package components provides reusable TUI components.
package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/user/hours-cli/tui/styles"
)

// TimeInputState holds the state for the single-line duration input.
type TimeInputState struct {
	// Input is the current input buffer
	Input string
	// CursorPos is the cursor position within the input
	CursorPos int
}

// TimeInput renders the input line with a '>' prompt and a cursor.
func TimeInput(state TimeInputState, width int) string {
	input := state.Input
	cursor := "_"

	var displayInput string
	if state.CursorPos >= len(input) {
		displayInput = input + cursor
	} else {
		displayInput = input[:state.CursorPos] + cursor + input[state.CursorPos:]
	}

	content := styles.Prompt.Render("> ") + styles.Input.Render(displayInput)

	lineStyle := lipgloss.NewStyle().
		Background(styles.DarkBackground).
		Width(width)

	return lineStyle.Render(content)
}

// InsertChar inserts a character at the current cursor position.
func (s *TimeInputState) InsertChar(c rune) {
	if s.CursorPos >= len(s.Input) {
		s.Input += string(c)
	} else {
		s.Input = s.Input[:s.CursorPos] + string(c) + s.Input[s.CursorPos:]
	}
	s.CursorPos += len(string(c))
}

// Backspace deletes the character before the cursor.
func (s *TimeInputState) Backspace() {
	if s.CursorPos > 0 && len(s.Input) > 0 {
		if s.CursorPos >= len(s.Input) {
			s.Input = s.Input[:len(s.Input)-1]
		} else {
			s.Input = s.Input[:s.CursorPos-1] + s.Input[s.CursorPos:]
		}
		s.CursorPos--
	}
}

// Delete deletes the character at the cursor.
func (s *TimeInputState) Delete() {
	if s.CursorPos < len(s.Input) {
		s.Input = s.Input[:s.CursorPos] + s.Input[s.CursorPos+1:]
	}
}

// MoveCursorLeft moves the cursor left.
func (s *TimeInputState) MoveCursorLeft() {
	if s.CursorPos > 0 {
		s.CursorPos--
	}
}

// MoveCursorRight moves the cursor right.
func (s *TimeInputState) MoveCursorRight() {
	if s.CursorPos < len(s.Input) {
		s.CursorPos++
	}
}

// Clear empties the input buffer.
func (s *TimeInputState) Clear() {
	s.Input = ""
	s.CursorPos = 0
}
