package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirm displays a warning box and asks a yes/no question on in. Only "y"
// or "yes" (any case) confirms; read errors and EOF count as "no".
func Confirm(in io.Reader, out io.Writer, title string, lines []string) bool {
	width := GetTerminalWidth()

	var body []string
	body = append(body, "")
	body = append(body, lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true).
		Render(fmt.Sprintf("   ⚠  %s", title)))
	body = append(body, "")
	for _, line := range lines {
		body = append(body, lipgloss.NewStyle().Foreground(TextColor).Render("   • "+line))
	}
	body = append(body, "")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(WarningColor).
		Width(width-2).
		Padding(0, 2).
		Render(strings.Join(body, "\n"))

	fmt.Fprintln(out, box)
	fmt.Fprint(out, lipgloss.NewStyle().Foreground(WarningColor).Bold(true).Render("Proceed? [y/N]: "))

	reader := bufio.NewReader(in)
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		fmt.Fprintln(out)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	}

	fmt.Fprintln(out, MutedStyle.Render("  Operation cancelled."))
	return false
}
