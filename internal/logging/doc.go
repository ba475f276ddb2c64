// Package logging provides structured logging for kbforms.
//
// This package wraps a zap logger with convenience functions for the logging
// patterns used by the CLI and its dialogs.
//
// # Log Levels
//
//   - Debug: field updates, clipboard events, key handling
//   - Info: renames and saved configuration
//   - Warn: swallowed failures (clipboard writes)
//   - Error: failures reported to the user
//
// # Configuration
//
// Logging is silent unless a level is given, either with the --log-level flag
// or the KBFORMS_LOG_LEVEL environment variable:
//
//	if err := logging.Initialize(level); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// Output goes to stderr in console format so it does not interleave with
// command output written to stdout.
package logging
