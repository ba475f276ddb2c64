package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// MaxHistory caps the rename history kept per project.
const MaxHistory = 20

// Registry represents the entire user configuration file.
type Registry struct {
	Version     int                 `yaml:"version"`
	Projects    map[string]*Project `yaml:"projects,omitempty"` // Keyed by absolute project directory
	Preferences *Preferences        `yaml:"preferences,omitempty"`
}

// Project represents what kbforms remembers about one bot project directory.
type Project struct {
	LastOpened time.Time       `yaml:"last_opened,omitempty"`
	History    []*RenameRecord `yaml:"history,omitempty"` // Most recent last
}

// RenameRecord is one knowledge base rename made through kbforms.
type RenameRecord struct {
	From string    `yaml:"from"` // Previous file id
	To   string    `yaml:"to"`   // New file id
	At   time.Time `yaml:"at"`
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	DefaultProject string `yaml:"default_project,omitempty"` // Used when --project is not given
	CopyOnOpen     bool   `yaml:"copy_on_open"`              // Copy handoff instructions when the dialog opens
}

// Preference keys accepted by Preferences.Set.
const (
	PrefDefaultProject = "default-project"
	PrefCopyOnOpen     = "copy-on-open"
)

// PreferenceKeys lists the settable preference keys.
var PreferenceKeys = []string{PrefDefaultProject, PrefCopyOnOpen}

// Set updates the preference key from its command-line form. The default
// project is stored as an absolute path and must be an existing directory;
// an empty value clears it.
func (p *Preferences) Set(key string, value string) error {
	switch key {
	case PrefDefaultProject:
		if value == "" {
			p.DefaultProject = ""
			return nil
		}
		abs, err := filepath.Abs(value)
		if err != nil {
			return fmt.Errorf("invalid project directory: %w", err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return fmt.Errorf("invalid project directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("invalid project directory: %s is not a directory", abs)
		}
		p.DefaultProject = abs
	case PrefCopyOnOpen:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %q (expected true or false)", key, value)
		}
		p.CopyOnOpen = b
	default:
		return fmt.Errorf("unknown preference %q (valid: %s)", key, strings.Join(PreferenceKeys, ", "))
	}
	return nil
}

// Get returns the preference key in its command-line form.
func (p *Preferences) Get(key string) (string, error) {
	switch key {
	case PrefDefaultProject:
		return p.DefaultProject, nil
	case PrefCopyOnOpen:
		return strconv.FormatBool(p.CopyOnOpen), nil
	default:
		return "", fmt.Errorf("unknown preference %q (valid: %s)", key, strings.Join(PreferenceKeys, ", "))
	}
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     1,
		Projects:    make(map[string]*Project),
		Preferences: defaultPreferences(),
	}
}

func defaultPreferences() *Preferences {
	return &Preferences{
		CopyOnOpen: false,
	}
}

// projectKey normalises a directory into the key used in Projects.
func projectKey(dir string) string {
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return filepath.Clean(dir)
}

// GetProject retrieves project metadata by directory.
// Returns nil if the project doesn't exist in the registry.
func (r *Registry) GetProject(dir string) *Project {
	return r.Projects[projectKey(dir)]
}

// EnsureProject ensures a project entry exists in the registry and returns it.
func (r *Registry) EnsureProject(dir string) *Project {
	if r.Projects == nil {
		r.Projects = make(map[string]*Project)
	}

	key := projectKey(dir)
	if project, exists := r.Projects[key]; exists {
		return project
	}

	project := &Project{}
	r.Projects[key] = project
	return project
}

// TouchProject records that a project was opened.
func (r *Registry) TouchProject(dir string) {
	r.EnsureProject(dir).LastOpened = time.Now()
}

// RecordRename appends a rename to the project's history, dropping the
// oldest entries beyond MaxHistory.
func (r *Registry) RecordRename(dir string, from string, to string) {
	project := r.EnsureProject(dir)
	project.History = append(project.History, &RenameRecord{
		From: from,
		To:   to,
		At:   time.Now(),
	})
	if len(project.History) > MaxHistory {
		project.History = project.History[len(project.History)-MaxHistory:]
	}
}

// ResolveProject returns dir, or the preferred default project when dir is empty.
func (r *Registry) ResolveProject(dir string) string {
	if dir != "" {
		return dir
	}
	if r.Preferences != nil && r.Preferences.DefaultProject != "" {
		return r.Preferences.DefaultProject
	}
	return "."
}
