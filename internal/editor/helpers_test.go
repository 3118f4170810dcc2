package editor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reidwmulkey/vim/internal/flags"
)

// newTestEngine creates an engine with the given content.
func newTestEngine(text string, opts ...Option) *Engine {
	return New(text, opts...)
}

// newTestEngineWithFlags creates an engine with the named flags enabled.
func newTestEngineWithFlags(text string, names ...string) *Engine {
	enabled := make(map[string]bool, len(names))
	for _, name := range names {
		enabled[name] = true
	}
	return New(text, WithFlags(flags.New(enabled)))
}

// mustExecute executes keys and fails the test on error.
func mustExecute(t *testing.T, e *Engine, keys string) {
	t.Helper()
	_, err := e.Execute(keys)
	require.NoError(t, err, "Execute(%q)", keys)
}
