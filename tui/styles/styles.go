// Package styles provides Lipgloss styles for the converter using the Ciapre colour palette.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - Ciapre (warm, earthy) theme from Gogh
const (
	// DarkBackground is the input line background (Ciapre ANSI 0 black)
	DarkBackground = lipgloss.Color("#181818")
	// Border is the dim accent colour for borders and placeholders (Ciapre ANSI 6 brown)
	Border = lipgloss.Color("#5C4F4B")
	// Focus is used for focused elements (Ciapre ANSI 5 magenta)
	Focus = lipgloss.Color("#724D7C")
	// Muted is a secondary text colour (Ciapre foreground)
	Muted = lipgloss.Color("#AEA47A")
	// Text is the primary text colour (Ciapre ANSI 14 cream)
	Text = lipgloss.Color("#F3DBB2")
	// Accent is used for titles (Ciapre ANSI 13 bright magenta)
	Accent = lipgloss.Color("#D33061")
	// Info is used for prompts and the cursor (Ciapre ANSI 12 bright blue)
	Info = lipgloss.Color("#3097C6")
	// Red is used for errors (Ciapre ANSI 1)
	Red = lipgloss.Color("#AC3835")
	// Green is used for conversion results (Ciapre ANSI 2)
	Green = lipgloss.Color("#A6A75D")
)

// Title is the style for the screen header
var Title = lipgloss.NewStyle().
	Foreground(Accent).
	Bold(true)

// Prompt is the style for the input prompt
var Prompt = lipgloss.NewStyle().
	Foreground(Info).
	Bold(true)

// Input is the style for typed text
var Input = lipgloss.NewStyle().
	Foreground(Text)

// Hint is the style for help and notation labels
var Hint = lipgloss.NewStyle().
	Foreground(Muted)

// Error is the style for error messages
var Error = lipgloss.NewStyle().
	Foreground(Red).
	Bold(true)

// Result is the style for conversion results
var Result = lipgloss.NewStyle().
	Foreground(Green).
	Bold(true)

// Box frames the live converter.
var Box = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(0, 1)
