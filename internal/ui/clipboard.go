package ui

import (
	"github.com/atotto/clipboard"

	"github.com/muurk/kbforms/internal/logging"
)

// Clipboard writes text to a clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard is the platform clipboard.
type SystemClipboard struct{}

// WriteAll implements Clipboard
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// CopyToClipboard copies text on a best-effort basis. Failures are logged and
// swallowed; the return value only reports whether the copy happened.
func CopyToClipboard(cb Clipboard, text string) bool {
	if cb == nil {
		cb = SystemClipboard{}
	}
	err := cb.WriteAll(text)
	logging.LogClipboard("copy", len(text), err)
	return err == nil
}
