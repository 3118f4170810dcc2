package presentation

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Line prefixes used by LineDiff.
const (
	diffPrefixEqual  = "  "
	diffPrefixDelete = "- "
	diffPrefixInsert = "+ "
)

// LineDiff returns a line-oriented diff of two rendered buffers. Every line
// of the result carries a two-character prefix: "  " for unchanged lines,
// "- " for lines only in before and "+ " for lines only in after.
func LineDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	chars1, chars2, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(chars1, chars2, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := diffPrefixEqual
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = diffPrefixDelete
		case diffmatchpatch.DiffInsert:
			prefix = diffPrefixInsert
		}
		for _, line := range splitLines(d.Text) {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// splitLines splits text on line breaks, ignoring a single trailing break.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
