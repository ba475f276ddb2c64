// Package config provides user configuration management for kbforms.
//
// This package manages a YAML-based configuration file that stores user
// preferences and, per bot project directory, the history of knowledge base
// renames made through kbforms. The configuration follows OS-specific
// conventions for storage location.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/kbforms/config.yaml or $HOME/.config/kbforms/config.yaml
//   - macOS: $HOME/.config/kbforms/config.yaml
//   - Windows: %LOCALAPPDATA%\kbforms\config.yaml
//
// KBFORMS_CONFIG_DIR overrides the directory on every platform.
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    return err
//	}
//
//	registry.RecordRename(projectDir, "faq.source", "help.source")
//
//	if err := registry.Save(); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across goroutines.
// File operations are protected by a mutex to ensure atomic writes.
package config
