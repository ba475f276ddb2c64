// Package ui provides the terminal dialogs and styled output of kbforms.
//
// Dialogs are Bubble Tea models rendered with Lipgloss. They share the
// Dialog chrome: a title, a body and a footer of buttons. Two dialogs are
// provided:
//
//   - EditKBModel: renames a knowledge base. The name input is bound to a
//     form.Form; the Done button is disabled while the form has errors.
//   - HandoffModel: shows provisioning instructions meant for another
//     developer, with a key to copy them to the clipboard.
//
// Both follow the Elm architecture: Update returns a new model and the
// caller inspects the final model after the program exits:
//
//	final, err := ui.RunEditDialog(ui.NewEditKBModel(f))
//	if err != nil {
//	    return err
//	}
//	if final.Submitted() {
//	    rename(final.Data())
//	}
//
// # Clipboard
//
// Copying is best-effort. CopyToClipboard logs failures through the logging
// package and swallows them; the dialog only reports successful copies.
//
// # Non-interactive Output
//
// Result boxes, Confirm and the icon brick badge are used by the plain CLI
// commands. Their width follows the terminal, clamped between
// MinTerminalWidth and MaxContentWidth.
package ui
