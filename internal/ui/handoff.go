package ui

import (
	"html"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/microcosm-cc/bluemonday"
)

// HandoffResult is how the handoff dialog was closed.
type HandoffResult int

const (
	HandoffPending HandoffResult = iota
	HandoffBack
	HandoffDismissed
)

// HandoffConfig describes the provisioning handoff dialog: instructions for
// another developer to finish provisioning, with a one-key copy.
type HandoffConfig struct {
	Title                 string
	DeveloperInstructions string
	LearnMoreLink         string
	HandoffInstructions   string
	CopyOnOpen            bool
}

type copyMsg struct{}

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// SanitizeText strips markup from prose destined for the terminal. It is not
// applied to handoff instructions, which may contain literal <placeholders>.
func SanitizeText(raw string) string {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(raw)))
}

// HandoffModel is the provisioning handoff dialog.
type HandoffModel struct {
	Config    HandoffConfig
	Clipboard Clipboard
	Keys      handoffKeyMap
	Help      help.Model

	Width  int
	Status string

	instructions string
	result       HandoffResult
}

// NewHandoffModel creates the dialog. A nil clipboard uses the system clipboard.
func NewHandoffModel(cfg HandoffConfig, cb Clipboard) HandoffModel {
	if cb == nil {
		cb = SystemClipboard{}
	}
	cfg.DeveloperInstructions = SanitizeText(cfg.DeveloperInstructions)
	return HandoffModel{
		Config:       cfg,
		Clipboard:    cb,
		Keys:         newHandoffKeyMap(),
		Help:         help.New(),
		Width:        DialogWidth,
		instructions: strings.TrimSpace(cfg.HandoffInstructions),
	}
}

// Init implements tea.Model
func (m HandoffModel) Init() tea.Cmd {
	if m.Config.CopyOnOpen {
		return func() tea.Msg { return copyMsg{} }
	}
	return nil
}

// Update implements tea.Model
func (m HandoffModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = min(msg.Width, DialogWidth+16)

	case copyMsg:
		m.copy()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Copy):
			m.copy()
		case key.Matches(msg, m.Keys.Back):
			m.result = HandoffBack
			return m, tea.Quit
		case key.Matches(msg, m.Keys.OK), key.Matches(msg, m.Keys.Dismiss):
			m.result = HandoffDismissed
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *HandoffModel) copy() {
	if CopyToClipboard(m.Clipboard, m.instructions) {
		m.Status = "Copied to clipboard"
	}
}

// View implements tea.Model
func (m HandoffModel) View() string {
	var sections []string

	if m.Config.DeveloperInstructions != "" {
		line := m.Config.DeveloperInstructions
		if m.Config.LearnMoreLink != "" {
			line += "  " + LinkStyle.Render("Learn more: "+m.Config.LearnMoreLink)
		}
		sections = append(sections, lipgloss.NewStyle().Width(m.Width-6).Render(line), "")
	}

	header := FieldLabelStyle.Render("Instructions")
	if m.Status != "" {
		header += "  " + MutedStyle.Render(SuccessMarker+" "+m.Status)
	}
	sections = append(sections, header)
	sections = append(sections, lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(MutedColor).
		Width(m.Width-8).
		Render(m.instructions))

	return Dialog{
		Title: m.Config.Title,
		Body:  lipgloss.JoinVertical(lipgloss.Left, sections...),
		Buttons: []Button{
			{Label: "Back"},
			{Label: "OK", Primary: true},
		},
		Help:  m.Help.View(m.Keys),
		Width: m.Width,
	}.Render()
}

// Result reports how the dialog was closed.
func (m HandoffModel) Result() HandoffResult {
	return m.result
}

// Instructions returns the text copied by the copy action.
func (m HandoffModel) Instructions() string {
	return m.instructions
}

// RunHandoffDialog runs the dialog full screen until it is closed.
func RunHandoffDialog(m HandoffModel, opts ...tea.ProgramOption) (HandoffModel, error) {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return m, err
	}
	return final.(HandoffModel), nil
}
