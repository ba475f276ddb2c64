package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/kbforms/internal/config"
	"github.com/muurk/kbforms/internal/form"
	"github.com/muurk/kbforms/internal/logging"
	"github.com/muurk/kbforms/internal/project"
	"github.com/muurk/kbforms/internal/prompt"
	"github.com/muurk/kbforms/internal/qna"
	"github.com/muurk/kbforms/internal/ui"
	"github.com/muurk/kbforms/internal/urls"
)

// Command flags
var (
	newName     string
	interactive bool
	assumeYes   bool

	handoffTitle          string
	handoffFile           string
	developerInstructions string
	learnMoreLink         string
)

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(handoffCmd)
	rootCmd.AddCommand(historyCmd)

	renameCmd.Flags().StringVar(&newName, "name", "", "New knowledge base name")
	renameCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for the new name")
	renameCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")

	handoffCmd.Flags().StringVar(&handoffTitle, "title", "Share resource request", "Dialog title")
	handoffCmd.Flags().StringVarP(&handoffFile, "file", "f", "-", "File holding the handoff instructions ('-' for stdin)")
	handoffCmd.Flags().StringVar(&developerInstructions, "developer-instructions", "", "Text shown above the instructions")
	handoffCmd.Flags().StringVar(&learnMoreLink, "learn-more", urls.ProvisioningHandoff, "Link shown next to the developer instructions")
}

// openProject resolves the project directory and loads it.
func openProject(registry *config.Registry) (*project.Project, error) {
	dir := registry.ResolveProject(projectDir)
	p, err := project.Load(dir)
	if err != nil {
		return nil, err
	}
	registry.TouchProject(dir)
	return p, nil
}

// saveRegistry persists the registry; failures only cost history.
func saveRegistry(registry *config.Registry) {
	if err := registry.Save(); err != nil {
		logging.Warn("Failed to save configuration", zap.Error(err))
	}
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List knowledge bases",
	Long: `List the knowledge bases of the project with their source URL.

Entries whose name or URL would be rejected by the edit form are marked
with an error badge and the reason.`,
	Example: `  kbforms list
  kbforms list --project ./bots/echo`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	registry := loadRegistry()
	p, err := openProject(registry)
	if err != nil {
		return err
	}
	defer saveRegistry(registry)

	out := cmd.OutOrStdout()
	if len(p.Files) == 0 {
		fmt.Fprintf(out, "No knowledge bases found in %s\n", p.Dir)
		return nil
	}

	nameStyle := lipgloss.NewStyle().Width(24)
	idStyle := ui.MutedStyle.Width(32)

	fmt.Fprintf(out, "%d knowledge base(s) in %s\n\n", len(p.Files), p.Dir)
	invalid := 0
	for _, file := range p.Files {
		f, err := qna.NewEditForm(p.Files, file)
		if err != nil {
			return err
		}

		marker := "   "
		if f.HasErrors() {
			marker = ui.RenderInlineBadge()
			invalid++
		}
		url := file.URL()
		if url == "" {
			url = ui.MutedStyle.Render("(no source url)")
		}
		fmt.Fprintf(out, "%s %s %s %s\n", marker, nameStyle.Render(file.Name()), idStyle.Render(file.ID), url)

		for _, line := range formatErrors(f.Errors()) {
			fmt.Fprintf(out, "      %s\n", ui.FieldErrorStyle.Render(line))
		}
	}

	if invalid > 0 {
		summary := fmt.Sprintf(" %d knowledge base(s) need attention. See %s", invalid, urls.QnAFileFormat)
		fmt.Fprintf(out, "\n%s\n", lipgloss.JoinHorizontal(lipgloss.Center, ui.RenderIconBrick(), summary))
	}
	return nil
}

// formatErrors renders form errors as sorted "field: message" lines.
func formatErrors(errs map[string]string) []string {
	lines := make([]string, 0, len(errs))
	for _, field := range []string{qna.FieldPreName, qna.FieldName, qna.FieldURL} {
		if msg, ok := errs[field]; ok {
			lines = append(lines, field+": "+msg)
		}
	}
	return lines
}

var renameCmd = &cobra.Command{
	Use:   "rename <knowledge-base>",
	Short: "Rename a knowledge base",
	Long: `Rename a knowledge base. Every locale file of the knowledge base is
renamed together, keeping its locale suffix.

The new name must be unique in the project and may only contain letters,
digits, '-' and '_'. Use --interactive to be prompted for the name.`,
	Example: `  kbforms rename faq --name support
  kbforms rename faq.source.en-us --name support --yes
  kbforms rename faq -i`,
	Args: cobra.ExactArgs(1),
	RunE: runRename,
}

func runRename(cmd *cobra.Command, args []string) error {
	if !interactive && newName == "" {
		return errors.New("either --name or --interactive is required")
	}

	registry := loadRegistry()
	p, err := openProject(registry)
	if err != nil {
		return err
	}
	defer saveRegistry(registry)

	file, err := p.Find(args[0])
	if err != nil {
		return err
	}
	f, err := qna.NewEditForm(p.Files, file)
	if err != nil {
		return err
	}

	if interactive {
		if err := prompt.EditKnowledgeBase(cmd.Context(), prompt.NewSurveyDriver(), f); err != nil {
			return err
		}
	} else if err := f.UpdateField(qna.FieldName, newName); err != nil {
		return err
	}

	return submitRename(cmd, registry, p, file, f, !assumeYes && !interactive)
}

// submitRename applies a valid edit form. Invalid forms are reported with
// their field errors.
func submitRename(cmd *cobra.Command, registry *config.Registry, p *project.Project, file qna.File, f *form.Form[qna.EditFromURLData], confirm bool) error {
	out := cmd.OutOrStdout()

	err := f.Submit(func(data qna.EditFromURLData) error {
		if data.Name == data.PreName {
			fmt.Fprintln(out, "Name unchanged; nothing to do.")
			return nil
		}

		var preview []string
		for _, locale := range p.Locales(file.Name()) {
			preview = append(preview, fmt.Sprintf("%s → %s", locale.ID, qna.RenameID(locale.ID, data.Name)))
		}
		if confirm && !ui.Confirm(cmd.InOrStdin(), out, "Rename knowledge base", preview) {
			return nil
		}

		moves, err := p.Rename(file.ID, data.Name)
		if err != nil {
			return err
		}
		details := make([]ui.Detail, 0, len(moves)+1)
		for _, m := range moves {
			registry.RecordRename(p.Dir, m.From, m.To)
			details = append(details, ui.Detail{Key: "Renamed", Value: fmt.Sprintf("%s → %s", m.From, m.To)})
		}
		if data.URL != "" {
			details = append(details, ui.Detail{Key: "Source", Value: data.URL})
		}

		fmt.Fprintln(out, ui.NewSuccessResult("Knowledge base renamed", details...).Render())
		return nil
	})

	if form.IsInvalidError(err) {
		fmt.Fprintln(out, ui.NewFailureResult("Knowledge base not renamed", formatErrors(f.Errors())).Render())
		fmt.Fprintf(out, "Naming rules: %s\n", urls.KnowledgeBaseNames)
		return fmt.Errorf("invalid input for %s", file.ID)
	}
	return err
}

var editCmd = &cobra.Command{
	Use:   "edit <knowledge-base>",
	Short: "Rename a knowledge base in an interactive dialog",
	Long: `Open the "Edit knowledge base name" dialog for a knowledge base.

Done is disabled while the name is empty, invalid or already used by
another knowledge base. Press Esc to cancel.`,
	Example: `  kbforms edit faq`,
	Args:    cobra.ExactArgs(1),
	RunE:    runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	registry := loadRegistry()
	p, err := openProject(registry)
	if err != nil {
		return err
	}
	defer saveRegistry(registry)

	file, err := p.Find(args[0])
	if err != nil {
		return err
	}
	f, err := qna.NewEditForm(p.Files, file)
	if err != nil {
		return err
	}

	final, err := ui.RunEditDialog(ui.NewEditKBModel(f))
	if err != nil {
		return fmt.Errorf("dialog failed: %w", err)
	}
	if !final.Submitted() {
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
		return nil
	}

	return submitRename(cmd, registry, p, file, f, false)
}

var handoffCmd = &cobra.Command{
	Use:   "handoff",
	Short: "Show provisioning handoff instructions",
	Long: `Show instructions to hand to another developer who will provision
resources, with a key to copy them to the clipboard.

Copying is best-effort: if no clipboard is available the failure is logged
and the dialog stays open.`,
	Example: `  kbforms handoff -f request.txt --developer-instructions "Send this to your Azure admin"
  az-request | kbforms handoff`,
	RunE: runHandoff,
}

func runHandoff(cmd *cobra.Command, args []string) error {
	instructions, err := readInstructions(cmd.InOrStdin(), handoffFile)
	if err != nil {
		return err
	}

	registry := loadRegistry()
	model := ui.NewHandoffModel(ui.HandoffConfig{
		Title:                 handoffTitle,
		DeveloperInstructions: developerInstructions,
		LearnMoreLink:         learnMoreLink,
		HandoffInstructions:   instructions,
		CopyOnOpen:            registry.Preferences.CopyOnOpen,
	}, nil)

	final, err := ui.RunHandoffDialog(model)
	if err != nil {
		return fmt.Errorf("dialog failed: %w", err)
	}
	if final.Result() == ui.HandoffBack {
		fmt.Fprintln(cmd.OutOrStdout(), "Back.")
	}
	return nil
}

func readInstructions(stdin io.Reader, path string) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read instructions: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", errors.New("handoff instructions are empty")
	}
	return string(data), nil
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show knowledge base renames made in this project",
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	registry := loadRegistry()
	dir := registry.ResolveProject(projectDir)
	out := cmd.OutOrStdout()

	proj := registry.GetProject(dir)
	if proj == nil || len(proj.History) == 0 {
		fmt.Fprintln(out, "No renames recorded.")
		return nil
	}
	for _, rec := range proj.History {
		fmt.Fprintf(out, "%s  %s → %s\n", rec.At.Format("2006-01-02 15:04"), rec.From, rec.To)
	}
	return nil
}
