package editor

import "strings"

// Position represents a cursor position in the buffer.
// Col is a grapheme index (not byte offset).
type Position struct {
	Row int // Line number (0-indexed)
	Col int // Column as grapheme index (0-indexed)
}

// Buffer is an ordered sequence of text lines addressed by row.
// Lines are never reordered; a Buffer always holds at least one line.
type Buffer struct {
	lines []string
}

// NewBuffer splits text on line breaks and loads the lines in order.
// Trailing line breaks do not produce trailing empty lines, so "a\n" and
// "a" load the same buffer. Empty text loads a single empty line.
func NewBuffer(text string) *Buffer {
	lines := strings.Split(text, "\n")
	end := len(lines)
	for end > 1 && lines[end-1] == "" {
		end--
	}
	return &Buffer{lines: lines[:end]}
}

// Len returns the number of lines.
func (b *Buffer) Len() int {
	return len(b.lines)
}

// Line returns the line at row.
func (b *Buffer) Line(row int) string {
	return b.lines[row]
}

// SetLine replaces the line at row.
func (b *Buffer) SetLine(row int, line string) {
	b.lines[row] = line
}

// Lines returns a copy of all lines in row order.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// String renders the buffer: every line followed by a line break, in row order.
func (b *Buffer) String() string {
	var sb strings.Builder
	for _, line := range b.lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}
