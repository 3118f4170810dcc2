package presentation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		col  int
		want string
	}{
		{name: "start", line: "hello", col: 0, want: "hello\n^\n"},
		{name: "middle", line: "hello", col: 2, want: "hello\n  ^\n"},
		{name: "last", line: "hello", col: 4, want: "hello\n    ^\n"},
		{name: "past end", line: "hello", col: 6, want: "hello\n      ^\n"},
		{name: "negative", line: "", col: -1, want: "\n^\n"},
		{name: "wide characters", line: "日本語", col: 2, want: "日本語\n    ^\n"},
		{name: "emoji cluster", line: "a😀b", col: 2, want: "a😀b\n   ^\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CursorLine(tt.line, tt.col))
		})
	}
}
