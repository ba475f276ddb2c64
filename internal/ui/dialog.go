package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Button is a dialog footer action.
type Button struct {
	Label    string
	Primary  bool
	Disabled bool
}

// Render returns the styled button.
func (b Button) Render() string {
	label := "[ " + b.Label + " ]"
	switch {
	case b.Disabled:
		return DisabledButtonStyle.Render(label)
	case b.Primary:
		return PrimaryButtonStyle.Render(label)
	default:
		return DefaultButtonStyle.Render(label)
	}
}

// Dialog is the chrome shared by every dialog: a title, a body and a footer
// of buttons aligned to the right.
type Dialog struct {
	Title   string
	Body    string
	Buttons []Button
	Help    string
	Width   int
}

// Render returns the dialog box as a string.
func (d Dialog) Render() string {
	width := d.Width
	if width <= 0 {
		width = DialogWidth
	}
	inner := width - 6 // border and padding

	var sections []string
	sections = append(sections, DialogTitleStyle.Render(d.Title))
	sections = append(sections, RenderHorizontalDivider(inner, "─"))
	sections = append(sections, d.Body)

	if len(d.Buttons) > 0 {
		buttons := make([]string, 0, len(d.Buttons))
		for _, b := range d.Buttons {
			buttons = append(buttons, b.Render())
		}
		footer := lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(buttons, " "))
		sections = append(sections, "", lipgloss.PlaceHorizontal(inner, lipgloss.Right, footer))
	}

	box := DialogBoxStyle(width).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	if d.Help == "" {
		return box
	}
	return lipgloss.JoinVertical(lipgloss.Left, box, MutedStyle.Render(" "+d.Help))
}

// RenderField renders a labelled field value with its error message, if any.
func RenderField(label string, value string, errMsg string) string {
	lines := []string{FieldLabelStyle.Render(label), value}
	if errMsg != "" {
		lines = append(lines, FieldErrorStyle.Render(errMsg))
	}
	return strings.Join(lines, "\n")
}
