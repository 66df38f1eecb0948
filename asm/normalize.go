package asm

import (
	"strings"
)

// commentMarker starts a comment that runs to the end of the line.
const commentMarker = "//"

// Normalize removes surrounding whitespace and any trailing comment from a
// source line. Blank and comment-only lines normalize to the empty string.
// A lone '/' is not a comment and is kept.
func Normalize(line string) string {
	line, _, _ = strings.Cut(strings.TrimSpace(line), commentMarker)
	return strings.TrimSpace(line)
}
