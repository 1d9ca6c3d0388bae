package forms

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/hours-cli/tui/styles"
)

// Theme returns a huh theme that matches the converter palette.
func Theme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(styles.Focus).
		PaddingLeft(1)
	t.Focused.Title = styles.Title
	t.Focused.Description = styles.Hint
	t.Focused.ErrorIndicator = styles.Error
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(styles.Red)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(styles.Info)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(styles.Border)
	t.Focused.TextInput.Prompt = styles.Prompt
	t.Focused.TextInput.Text = styles.Input

	t.Blurred.Base = t.Blurred.Base.
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true).
		PaddingLeft(1)
	t.Blurred.Title = styles.Hint
	t.Blurred.TextInput.Text = styles.Hint

	return t
}
