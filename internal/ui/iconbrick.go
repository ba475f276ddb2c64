package ui

import "github.com/charmbracelet/lipgloss"

// ErrorBadgeGlyph is drawn inside the icon brick badge.
const ErrorBadgeGlyph = "!"

var (
	iconBrickStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(MutedColor)

	iconBadgeStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Background(BadgeColor).
			Bold(true).
			Padding(0, 1)
)

// RenderIconBrick renders the error badge brick used to flag entries that
// need attention.
func RenderIconBrick() string {
	return iconBrickStyle.Render(iconBadgeStyle.Render(ErrorBadgeGlyph))
}

// RenderInlineBadge renders the badge without the brick border, for use on a
// single table line.
func RenderInlineBadge() string {
	return iconBadgeStyle.Render(ErrorBadgeGlyph)
}
