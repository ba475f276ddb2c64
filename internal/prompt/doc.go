// Package prompt edits forms with line-based terminal prompts, for use when
// a full screen dialog is not wanted.
package prompt
