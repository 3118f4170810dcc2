package presentation

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// CursorLine renders line followed by a caret under column col, where col is
// a grapheme index. Wide characters such as CJK or emoji shift the caret by
// their display width. Columns past the end of the line place the caret
// after it; a negative column places it at the start.
func CursorLine(line string, col int) string {
	width := 0
	idx := 0
	state := -1
	rest := line
	for len(rest) > 0 && idx < col {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		width += runewidth.StringWidth(cluster)
		idx++
	}
	if col > idx {
		width += col - idx
	}
	return line + "\n" + strings.Repeat(" ", width) + "^\n"
}
