package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - titles, borders, primary buttons
	SuccessColor = lipgloss.Color("#43BF6D") // Green - success, checkmarks
	ErrorColor   = lipgloss.Color("#FF5555") // Red - field errors
	WarningColor = lipgloss.Color("#FFA500") // Orange - warnings
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info, disabled controls
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
	BadgeColor   = lipgloss.Color("#FED9CC") // Peach - icon brick badge
	FieldBgColor = lipgloss.Color("#F3F2F1") // Light gray - read-only text areas
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
	DialogWidth      = 64  // Default dialog width
)

// Shared styles
var (
	// DialogTitleStyle is for dialog titles
	DialogTitleStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// FieldLabelStyle is for form field labels
	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// FieldErrorStyle is for validation messages under a field
	FieldErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// DisabledFieldStyle is for read-only field values
	DisabledFieldStyle = lipgloss.NewStyle().
				Foreground(MutedColor)

	// MutedStyle is for secondary text
	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// LinkStyle is for hyperlinks
	LinkStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Underline(true)

	// PrimaryButtonStyle is for the enabled primary action
	PrimaryButtonStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor).
				Bold(true).
				Padding(0, 2)

	// DefaultButtonStyle is for secondary actions
	DefaultButtonStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Border(lipgloss.NormalBorder(), false, false, false, false).
				Padding(0, 2)

	// DisabledButtonStyle is for actions that cannot be taken
	DisabledButtonStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Strikethrough(true).
				Padding(0, 2)

	// SuccessTitleStyle is for the success result title
	SuccessTitleStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	// ErrorTitleStyle is for the error result title
	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// ErrorMessageStyle is for error message text
	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// ResultKeyStyle is for result detail keys
	ResultKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(15)

	// ResultValueStyle is for result detail values
	ResultValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)
)

// Markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// DialogBoxStyle returns the border style for dialogs
func DialogBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width-2).
		Padding(1, 2)
}

// RenderHorizontalDivider creates a horizontal line of the specified width
func RenderHorizontalDivider(width int, char string) string {
	if width < 0 {
		width = 0
	}
	return lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Render(strings.Repeat(char, width))
}
