package editor

// This file provides grapheme cluster helpers.
//
// A keystroke is one rune, and cursor columns are grapheme cluster indices
// rather than byte offsets. A keystroke that extends the cluster before it,
// such as a combining mark, leaves the column count unchanged. For ASCII
// text all three units agree.

import (
	"github.com/rivo/uniseg"
)

// GraphemeCount returns the number of grapheme clusters in a string.
// For example: "hello" = 5, "h😀llo" = 5.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// GraphemeToByteOffset converts a grapheme index to byte offset.
// Returns len(s) if graphemeIdx >= grapheme count.
// Returns 0 if graphemeIdx <= 0.
func GraphemeToByteOffset(s string, graphemeIdx int) int {
	if graphemeIdx <= 0 {
		return 0
	}

	idx := 0
	state := -1
	original := s
	for len(s) > 0 {
		_, rest, _, newState := uniseg.StepString(s, state)
		idx++
		if idx == graphemeIdx {
			return len(original) - len(rest)
		}
		s = rest
		state = newState
	}
	return len(original)
}

// InsertAtGrapheme inserts text before the grapheme at graphemeIdx.
// It returns the new string and the grapheme index just past the inserted
// text. Text that joins the preceding cluster, such as a combining mark,
// does not advance the index.
func InsertAtGrapheme(s string, graphemeIdx int, insert string) (string, int) {
	offset := GraphemeToByteOffset(s, graphemeIdx)
	out := s[:offset] + insert + s[offset:]
	return out, min(GraphemeCount(out[:offset+len(insert)]), GraphemeCount(out))
}

// Keystrokes splits a command string into keystrokes, one per rune.
// A combining mark after ` stays a separate keystroke, so the escape is
// still seen.
func Keystrokes(s string) []string {
	keys := make([]string, 0, len(s))
	for _, r := range s {
		keys = append(keys, string(r))
	}
	return keys
}
