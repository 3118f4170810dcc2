package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reidwmulkey/vim/internal/flags"
)

func TestSaveFlags_CreatesNewFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	err := SaveFlags(configPath, map[string]bool{flags.FlagClampLineEnd: true})
	require.NoError(t, err)

	cfg := loadConfig(t, configPath)
	require.Equal(t, map[string]bool{flags.FlagClampLineEnd: true}, cfg.Editor.Flags)
}

func TestSaveFlags_PreservesOtherConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(configPath))

	err := SaveFlags(configPath, map[string]bool{
		flags.FlagClampAppend:  true,
		flags.FlagClampLineEnd: false,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	content := string(data)

	// Comments and unrelated sections survive.
	assert.Contains(t, content, "# Maximum nesting of macro playback.")
	assert.Contains(t, content, "max_macro_depth: 100")
	assert.Contains(t, content, "service_name: vimlite")
	assert.Contains(t, content, "clamp-append: true")
	assert.Contains(t, content, "clamp-line-end: false")

	cfg := loadConfig(t, configPath)
	require.True(t, cfg.Editor.Flags[flags.FlagClampAppend])
	require.False(t, cfg.Editor.Flags[flags.FlagClampLineEnd])
}

func TestSaveFlags_ReplacesPreviousFlags(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveFlags(configPath, map[string]bool{flags.FlagClampAppend: true}))
	require.NoError(t, SaveFlags(configPath, map[string]bool{flags.FlagClampLineEnd: true}))

	cfg := loadConfig(t, configPath)
	require.Equal(t, map[string]bool{flags.FlagClampLineEnd: true}, cfg.Editor.Flags)
}

func TestSaveFlags_RejectsNonMappingDocument(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("- just\n- a list\n"), 0o644))

	err := SaveFlags(configPath, map[string]bool{flags.FlagClampAppend: true})
	require.ErrorContains(t, err, "not a mapping")
}

func TestSaveFlags_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	require.NoError(t, SaveFlags(configPath, map[string]bool{}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "only the config file should remain")
}
