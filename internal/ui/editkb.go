package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/kbforms/internal/form"
	"github.com/muurk/kbforms/internal/logging"
	"github.com/muurk/kbforms/internal/qna"
)

// EditKBModel is the "edit knowledge base name" dialog. The name is typed
// into a text input bound to the form; the source URL, if any, is shown
// read-only.
// Done is disabled while the form has errors.
type EditKBModel struct {
	Form *form.Form[qna.EditFromURLData]

	NameInput textinput.Model
	Keys      editKeyMap
	Help      help.Model

	Width     int
	submitted bool
	dismissed bool
}

// NewEditKBModel creates the dialog for an already constructed edit form.
func NewEditKBModel(f *form.Form[qna.EditFromURLData]) EditKBModel {
	input := textinput.New()
	input.Placeholder = "Type a name for this knowledge base"
	input.CharLimit = 128
	input.Width = DialogWidth - 10
	input.SetValue(f.Data().Name)
	input.Focus()

	return EditKBModel{
		Form:      f,
		NameInput: input,
		Keys:      newEditKeyMap(),
		Help:      help.New(),
		Width:     DialogWidth,
	}
}

// Init implements tea.Model
func (m EditKBModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m EditKBModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = min(msg.Width, DialogWidth)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Cancel):
			m.dismissed = true
			return m, tea.Quit

		case key.Matches(msg, m.Keys.Submit):
			if m.Form.HasErrors() {
				return m, nil
			}
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.NameInput, cmd = m.NameInput.Update(msg)
	if m.NameInput.Value() != m.Form.Data().Name {
		if err := m.Form.UpdateField(qna.FieldName, m.NameInput.Value()); err != nil {
			logging.Error("Failed to update form field", zap.String("field", qna.FieldName), zap.Error(err))
		}
	}
	return m, cmd
}

// View implements tea.Model
func (m EditKBModel) View() string {
	data := m.Form.Data()

	sections := []string{
		RenderField("Knowledge base name", m.NameInput.View(), m.Form.Error(qna.FieldName)),
	}
	// Knowledge bases authored locally have no source website.
	if urlErr := m.Form.Error(qna.FieldURL); data.URL != "" || urlErr != "" {
		sections = append(sections, "",
			RenderField("FAQ website (source)", DisabledFieldStyle.Render(data.URL), urlErr))
	}
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)

	return Dialog{
		Title: "Edit knowledge base name",
		Body:  body,
		Buttons: []Button{
			{Label: "Cancel"},
			{Label: "Done", Primary: true, Disabled: m.Form.HasErrors()},
		},
		Help:  m.Help.View(m.Keys),
		Width: m.Width,
	}.Render()
}

// Submitted reports whether the dialog closed through Done.
func (m EditKBModel) Submitted() bool {
	return m.submitted
}

// Dismissed reports whether the dialog was cancelled.
func (m EditKBModel) Dismissed() bool {
	return m.dismissed
}

// Data returns the form record.
func (m EditKBModel) Data() qna.EditFromURLData {
	return m.Form.Data()
}

// RunEditDialog runs the dialog full screen until it is submitted or dismissed.
func RunEditDialog(m EditKBModel, opts ...tea.ProgramOption) (EditKBModel, error) {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return m, err
	}
	return final.(EditKBModel), nil
}
