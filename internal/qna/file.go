package qna

import (
	"bufio"
	"strings"
)

// FileExtension is the extension of knowledge base files on disk.
const FileExtension = ".qna"

// URLOption is the header option holding the FAQ website a knowledge base
// was imported from.
const URLOption = "url"

// File is a knowledge base source file. ID is the file name without the
// .qna extension, e.g. "faq.source.en-us".
type File struct {
	ID      string
	Content string
}

// KBName returns the knowledge base name encoded in a file id: everything
// before the first dot.
func KBName(id string) string {
	name, _, _ := strings.Cut(id, ".")
	return name
}

// RenameID returns id with its knowledge base name replaced, keeping the
// remaining suffix ("faq.source.en-us" -> "help.source.en-us").
func RenameID(id string, name string) string {
	_, suffix, found := strings.Cut(id, ".")
	if !found {
		return name
	}
	return name + "." + suffix
}

// Name returns the knowledge base name of the file.
func (f File) Name() string {
	return KBName(f.ID)
}

// URL returns the file's url option, or "" when it has none.
func (f File) URL() string {
	return ParseOptions(f.Content)[URLOption]
}

// FromURL reports whether the knowledge base was imported from a FAQ website.
func (f File) FromURL() bool {
	return f.URL() != ""
}

// ParseOptions reads the "> !# @key = value" option lines of a .qna file.
// Parsing stops at the first line that is neither blank, a comment nor an
// option, so options in the body are ignored.
func ParseOptions(content string) map[string]string {
	options := make(map[string]string)

	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, ">") {
			break
		}

		rest := strings.TrimSpace(strings.TrimPrefix(line, ">"))
		if !strings.HasPrefix(rest, "!#") {
			continue // plain comment
		}
		rest = strings.TrimSpace(strings.TrimPrefix(rest, "!#"))
		if !strings.HasPrefix(rest, "@") {
			continue
		}

		key, value, found := strings.Cut(rest[1:], "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		options[key] = strings.TrimSpace(value)
	}

	return options
}
