package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/kbforms/internal/logging"
	"github.com/muurk/kbforms/internal/qna"
)

var (
	// ErrNotFound is returned when no knowledge base matches an id or name.
	ErrNotFound = errors.New("knowledge base not found")
	// ErrExists is returned when a rename would overwrite another file.
	ErrExists = errors.New("knowledge base already exists")
)

// Project is a bot project directory holding .qna knowledge base files.
type Project struct {
	Dir   string
	Files []qna.File
}

// Load reads every .qna file directly inside dir, sorted by id.
func Load(dir string) (*Project, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read project directory: %w", err)
	}

	p := &Project{Dir: dir}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != qna.FileExtension {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}
		p.Files = append(p.Files, qna.File{
			ID:      strings.TrimSuffix(entry.Name(), qna.FileExtension),
			Content: string(data),
		})
	}

	sort.Slice(p.Files, func(i, j int) bool { return p.Files[i].ID < p.Files[j].ID })
	return p, nil
}

// Find returns the file whose id or knowledge base name equals ref.
// Ids take precedence over names.
func (p *Project) Find(ref string) (qna.File, error) {
	for _, f := range p.Files {
		if f.ID == ref {
			return f, nil
		}
	}
	for _, f := range p.Files {
		if f.Name() == ref {
			return f, nil
		}
	}

	if suggestion := qna.Suggest(ref, p.Files); suggestion != "" {
		return qna.File{}, fmt.Errorf("%w: %q (did you mean %q?)", ErrNotFound, ref, suggestion)
	}
	return qna.File{}, fmt.Errorf("%w: %q", ErrNotFound, ref)
}

// Locales returns every file of the knowledge base name, sorted by id.
func (p *Project) Locales(name string) []qna.File {
	var out []qna.File
	for _, f := range p.Files {
		if f.Name() == name {
			out = append(out, f)
		}
	}
	return out
}

// Path returns the on-disk path of a knowledge base id.
func (p *Project) Path(id string) string {
	return filepath.Join(p.Dir, id+qna.FileExtension)
}

// Move is one file renamed on disk.
type Move struct {
	From string // Previous file id
	To   string // New file id
}

// Rename gives the knowledge base of file id the name newName. Every locale
// file of that knowledge base moves together, so "faq.source.en-us" and
// "faq.source.fr-fr" both become "help.source.*". The move of id itself comes
// first in the result. Renaming to the current name is a no-op.
//
// No file is moved when any target already exists; if a move fails part way
// the earlier moves are rolled back.
func (p *Project) Rename(id string, newName string) ([]Move, error) {
	var current *qna.File
	for i := range p.Files {
		if p.Files[i].ID == id {
			current = &p.Files[i]
			break
		}
	}
	if current == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	oldName := current.Name()
	if newName == oldName {
		return nil, nil
	}

	moves := []Move{{From: id, To: qna.RenameID(id, newName)}}
	for _, f := range p.Files {
		if f.ID != id && f.Name() == oldName {
			moves = append(moves, Move{From: f.ID, To: qna.RenameID(f.ID, newName)})
		}
	}

	for _, m := range moves {
		if _, err := os.Stat(p.Path(m.To)); err == nil {
			return nil, fmt.Errorf("%w: %s", ErrExists, m.To)
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to check %s: %w", m.To, err)
		}
	}

	for i, m := range moves {
		if err := os.Rename(p.Path(m.From), p.Path(m.To)); err != nil {
			p.rollback(moves[:i])
			return nil, fmt.Errorf("failed to rename %s: %w", m.From, err)
		}
	}

	renamed := make(map[string]string, len(moves))
	for _, m := range moves {
		renamed[m.From] = m.To
		logging.LogRename(p.Dir, m.From, m.To)
	}
	for i := range p.Files {
		if to, ok := renamed[p.Files[i].ID]; ok {
			p.Files[i].ID = to
		}
	}
	sort.Slice(p.Files, func(i, j int) bool { return p.Files[i].ID < p.Files[j].ID })
	return moves, nil
}

func (p *Project) rollback(done []Move) {
	for i := len(done) - 1; i >= 0; i-- {
		if err := os.Rename(p.Path(done[i].To), p.Path(done[i].From)); err != nil {
			logging.Error("Failed to roll back rename",
				zap.String("from", done[i].To),
				zap.String("to", done[i].From),
				zap.Error(err))
		}
	}
}
