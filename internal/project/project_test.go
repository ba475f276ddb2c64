package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/muurk/kbforms/internal/qna"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func ids(p *Project) []string {
	var out []string
	for _, f := range p.Files {
		out = append(out, f.ID)
	}
	return out
}

func fileIDs(files []qna.File) []string {
	var out []string
	for _, f := range files {
		out = append(out, f.ID)
	}
	return out
}

func TestLoad(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"faq.source.en-us.qna": "> !# @url = https://a.b/faq\n",
		"billing.source.qna":   "",
		"notes.txt":            "ignored",
	})
	if err := os.Mkdir(filepath.Join(dir, "sub.qna"), 0700); err != nil {
		t.Fatal(err)
	}

	p, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff([]string{"billing.source", "faq.source.en-us"}, ids(p)); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
	if got := p.Files[1].URL(); got != "https://a.b/faq" {
		t.Errorf("URL() = %q", got)
	}
}

func TestLoadMissingDir(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestFind(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"faq.source.en-us.qna": "",
		"support.source.qna":   "",
	})
	p, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		ref     string
		wantID  string
		wantErr string
	}{
		{"faq.source.en-us", "faq.source.en-us", ""},
		{"support", "support.source", ""},
		{"suport", "", `did you mean "support"`},
		{"zzzzzzzz", "", "not found"},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			f, err := p.Find(tt.ref)
			if tt.wantErr != "" {
				if !errors.Is(err, ErrNotFound) || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("Find(%q) error = %v, want %q", tt.ref, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Find(%q) error = %v", tt.ref, err)
			}
			if f.ID != tt.wantID {
				t.Errorf("Find(%q) = %q, want %q", tt.ref, f.ID, tt.wantID)
			}
		})
	}
}

func TestRename(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"faq.source.en-us.qna": "content",
		"billing.source.qna":   "",
	})
	p, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}

	moves, err := p.Rename("faq.source.en-us", "help")
	if err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	if diff := cmp.Diff([]Move{{From: "faq.source.en-us", To: "help.source.en-us"}}, moves); diff != "" {
		t.Errorf("moves mismatch (-want +got):\n%s", diff)
	}
	data, err := os.ReadFile(filepath.Join(dir, "help.source.en-us.qna"))
	if err != nil || string(data) != "content" {
		t.Errorf("renamed file = %q, %v", data, err)
	}
	if _, err := os.Stat(filepath.Join(dir, "faq.source.en-us.qna")); !os.IsNotExist(err) {
		t.Errorf("old file still present: %v", err)
	}
	if diff := cmp.Diff([]string{"billing.source", "help.source.en-us"}, ids(p)); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestRenameMovesEveryLocale(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"faq.source.en-us.qna": "en",
		"faq.source.fr-fr.qna": "fr",
		"faqs.source.qna":      "",
	})
	p, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]string{"faq.source.en-us", "faq.source.fr-fr"}, fileIDs(p.Locales("faq"))); diff != "" {
		t.Errorf("Locales() mismatch (-want +got):\n%s", diff)
	}

	moves, err := p.Rename("faq.source.fr-fr", "help")
	if err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	want := []Move{
		{From: "faq.source.fr-fr", To: "help.source.fr-fr"},
		{From: "faq.source.en-us", To: "help.source.en-us"},
	}
	if diff := cmp.Diff(want, moves); diff != "" {
		t.Errorf("moves mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"faqs.source", "help.source.en-us", "help.source.fr-fr"}, ids(p)); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
	for _, name := range []string{"help.source.en-us.qna", "help.source.fr-fr.qna", "faqs.source.qna"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s missing: %v", name, err)
		}
	}
}

func TestRenameErrors(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"faq.source.en-us.qna":     "",
		"faq.source.fr-fr.qna":     "",
		"billing.source.fr-fr.qna": "",
	})
	p, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := p.Rename("missing.source", "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Rename(missing) error = %v, want ErrNotFound", err)
	}

	// Only the fr-fr target clashes; nothing may move.
	if _, err := p.Rename("faq.source.en-us", "billing"); !errors.Is(err, ErrExists) {
		t.Errorf("Rename(onto existing) error = %v, want ErrExists", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "faq.source.en-us.qna")); err != nil {
		t.Errorf("file moved despite a clashing locale: %v", err)
	}

	moves, err := p.Rename("faq.source.en-us", "faq")
	if err != nil || len(moves) != 0 {
		t.Errorf("Rename(same name) = %+v, %v", moves, err)
	}
}
