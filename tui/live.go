// Package tui implements the interactive converter screen.
package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/user/hours-cli/pkg/timeutil"
	"github.com/user/hours-cli/tui/components"
	"github.com/user/hours-cli/tui/styles"
)

// defaultWidth is used until the first tea.WindowSizeMsg arrives.
const defaultWidth = 40

// Model is the Bubbletea model for the live converter.
// It re-runs the conversion on every keystroke.
type Model struct {
	conv  timeutil.Converter
	input components.TimeInputState
	// last successful conversion of the current input
	result timeutil.Result
	// conversion error for the current input, nil when it converts
	err error
	// width of the terminal
	width int
	// submitted is set when Enter accepted a valid input
	submitted bool
	quitting  bool
}

// NewModel creates a live converter model using conv.
func NewModel(conv timeutil.Converter) *Model {
	m := &Model{conv: conv, width: defaultWidth}
	m.convert()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.err == nil {
				m.submitted = true
				return m, tea.Quit
			}
			return m, nil
		case tea.KeyBackspace:
			m.input.Backspace()
		case tea.KeyDelete:
			m.input.Delete()
		case tea.KeyLeft:
			m.input.MoveCursorLeft()
		case tea.KeyRight:
			m.input.MoveCursorRight()
		case tea.KeyCtrlU:
			m.input.Clear()
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				m.input.InsertChar(r)
			}
		default:
			return m, nil
		}
		m.convert()
	}
	return m, nil
}

func (m *Model) convert() {
	m.result, m.err = m.conv.Convert(m.input.Input)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting || m.submitted {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Time converter"))
	b.WriteString("\n")
	b.WriteString(components.TimeInput(m.input, m.width-4))
	b.WriteString("\n")
	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(styles.Hint.Render("enter: accept  esc: quit"))

	return styles.Box.Render(b.String())
}

func (m *Model) status() string {
	if m.err != nil {
		var pe *timeutil.ParseError
		if errors.As(m.err, &pe) {
			return styles.Error.Render(pe.Reason)
		}
		return styles.Error.Render(m.err.Error())
	}
	return styles.Hint.Render(m.result.Notation.String()+" → ") + styles.Result.Render(m.result.Output)
}

// Output returns the accepted conversion, or false if the user quit.
func (m *Model) Output() (timeutil.Result, bool) {
	return m.result, m.submitted
}

// Run starts the live converter and returns the accepted conversion. ok is
// false when the user quit without accepting.
func Run(conv timeutil.Converter, opts ...tea.ProgramOption) (res timeutil.Result, ok bool, err error) {
	final, err := tea.NewProgram(NewModel(conv), opts...).Run()
	if err != nil {
		return timeutil.Result{}, false, fmt.Errorf("live converter failed: %w", err)
	}
	res, ok = final.(*Model).Output()
	return res, ok, nil
}
