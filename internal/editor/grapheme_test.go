package editor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGraphemeCount(t *testing.T) {
	require.Equal(t, 0, GraphemeCount(""))
	require.Equal(t, 5, GraphemeCount("hello"))
	require.Equal(t, 5, GraphemeCount("h😀llo"))
	require.Equal(t, 3, GraphemeCount("a👍🏽b"), "emoji with skin tone is one cluster")
	require.Equal(t, 3, GraphemeCount("日本語"))
}

func TestGraphemeToByteOffset(t *testing.T) {
	tests := []struct {
		name string
		s    string
		idx  int
		want int
	}{
		{name: "negative", s: "hello", idx: -1, want: 0},
		{name: "zero", s: "hello", idx: 0, want: 0},
		{name: "ascii middle", s: "hello", idx: 2, want: 2},
		{name: "past end", s: "hello", idx: 10, want: 5},
		{name: "after emoji", s: "h😀llo", idx: 2, want: 5},
		{name: "after cjk", s: "日本語", idx: 1, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GraphemeToByteOffset(tt.s, tt.idx))
		})
	}
}

func TestInsertAtGrapheme(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		idx     int
		insert  string
		want    string
		wantIdx int
	}{
		{name: "start", s: "ab", idx: 0, insert: "X", want: "Xab", wantIdx: 1},
		{name: "middle", s: "ab", idx: 1, insert: "X", want: "aXb", wantIdx: 2},
		{name: "end", s: "ab", idx: 2, insert: "X", want: "abX", wantIdx: 3},
		{name: "after emoji", s: "h😀llo", idx: 2, insert: "X", want: "h😀Xllo", wantIdx: 3},
		{name: "empty", s: "", idx: 0, insert: "X", want: "X", wantIdx: 1},
		{name: "combining mark joins previous", s: "e", idx: 1, insert: "\u0301", want: "e\u0301", wantIdx: 1},
		{name: "skin tone joins emoji", s: "a👍b", idx: 2, insert: "🏽", want: "a👍🏽b", wantIdx: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, idx := InsertAtGrapheme(tt.s, tt.idx, tt.insert)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantIdx, idx)
		})
	}
}

func TestKeystrokes(t *testing.T) {
	require.Empty(t, Keystrokes(""))
	require.Equal(t, []string{"q", "a", "i", "X", "`", "q"}, Keystrokes("qaiX`q"))
	require.Equal(t, []string{"i", "👍", "🏽", "`"}, Keystrokes("i👍🏽`"))
	require.Equal(t, []string{"e", "\u0301", "x"}, Keystrokes("e\u0301x"), "combining mark is its own keystroke")
	require.Equal(t, []string{"`", "\u0301", "l"}, Keystrokes("`\u0301l"), "escape is not glued to a following mark")
}
