package qna

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Validation messages shown next to the offending field.
const (
	MsgInvalidName   = "Name contains invalid characters"
	MsgDuplicateName = "Duplicate knowledge base name"
	MsgInvalidURL    = "A valid url should start with http:// or https://"
)

// MaxSuggestionDistance bounds the edit distance accepted by Suggest.
const MaxSuggestionDistance = 3

var (
	fileNameRegex = regexp.MustCompile(`^[a-zA-Z0-9-_]+$`)
	urlRegex      = regexp.MustCompile(`^https?://\w+`)
)

// ValidateName returns a name validator rejecting invalid characters and
// names already used by one of sources. Callers exclude the file being
// edited from sources. Empty names are accepted; required-ness is a form
// concern.
func ValidateName(sources []File) func(name string) string {
	return func(name string) string {
		if name == "" {
			return ""
		}
		for _, source := range sources {
			if source.Name() == name {
				return MsgDuplicateName
			}
		}
		if !fileNameRegex.MatchString(name) {
			return MsgInvalidName
		}
		return ""
	}
}

// ValidateURL rejects non-empty values that are not http(s) URLs.
func ValidateURL(value string) string {
	if value == "" {
		return ""
	}
	if !urlRegex.MatchString(value) {
		return MsgInvalidURL
	}
	u, err := url.Parse(value)
	if err != nil || u.Host == "" {
		return MsgInvalidURL
	}
	return ""
}

// Others returns the files that belong to a knowledge base other than name.
// Every locale file of name is excluded, so a knowledge base never clashes
// with itself.
func Others(files []File, name string) []File {
	out := make([]File, 0, len(files))
	for _, f := range files {
		if f.Name() != name {
			out = append(out, f)
		}
	}
	return out
}

// Suggest returns the knowledge base name closest to name, or "" when none
// is within MaxSuggestionDistance.
func Suggest(name string, files []File) string {
	best := ""
	bestDist := MaxSuggestionDistance + 1
	for _, f := range files {
		candidate := f.Name()
		dist := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(candidate))
		if dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	return best
}
