// Package config provides configuration types, defaults and persistence for vimlite.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/reidwmulkey/vim/internal/editor"
	"github.com/reidwmulkey/vim/internal/flags"
	"github.com/reidwmulkey/vim/internal/log"
	"github.com/reidwmulkey/vim/internal/tracing"
)

// Config holds all configuration options for vimlite.
type Config struct {
	Editor  EditorConfig   `mapstructure:"editor"`
	Log     LogConfig      `mapstructure:"log"`
	Tracing tracing.Config `mapstructure:"tracing"`
}

// EditorConfig holds engine behavior options.
type EditorConfig struct {
	// MaxMacroDepth bounds nested macro playback. A macro that plays itself
	// fails once this depth is reached.
	MaxMacroDepth int `mapstructure:"max_macro_depth"`

	// Flags opts into corrections of documented cursor quirks.
	// See the flags package for names.
	Flags map[string]bool `mapstructure:"flags"`
}

// LogConfig holds debug logging options.
type LogConfig struct {
	Debug bool   `mapstructure:"debug"` // Write a debug log (also --debug / VIMLITE_DEBUG)
	Path  string `mapstructure:"path"`  // Log file path
	Level string `mapstructure:"level"` // debug, info, warn or error
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Editor: EditorConfig{
			MaxMacroDepth: editor.DefaultMaxMacroDepth,
			Flags:         map[string]bool{},
		},
		Log: LogConfig{
			Debug: false,
			Path:  "vimlite.log",
			Level: "debug",
		},
		Tracing: tracing.DefaultConfig(),
	}
}

// SetDefaults registers every default with v so that keys missing from the
// config file still unmarshal to their defaults.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("editor.max_macro_depth", d.Editor.MaxMacroDepth)
	v.SetDefault("log.debug", d.Log.Debug)
	v.SetDefault("log.path", d.Log.Path)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.file_path", d.Tracing.FilePath)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
	v.SetDefault("tracing.service_name", d.Tracing.ServiceName)
}

// Validate checks the whole configuration.
func (c Config) Validate() error {
	if err := ValidateEditor(c.Editor); err != nil {
		return err
	}
	if err := ValidateLog(c.Log); err != nil {
		return err
	}
	return ValidateTracing(c.Tracing)
}

// ValidateEditor checks editor configuration for errors.
func ValidateEditor(e EditorConfig) error {
	if e.MaxMacroDepth < 1 {
		return fmt.Errorf("editor.max_macro_depth must be at least 1, got %d", e.MaxMacroDepth)
	}
	for name := range e.Flags {
		if !slices.Contains(flags.Known, name) {
			return fmt.Errorf("editor.flags: unknown flag %q (known: %s)", name, strings.Join(flags.Known, ", "))
		}
	}
	return nil
}

// ValidateLog checks logging configuration for errors.
func ValidateLog(l LogConfig) error {
	if _, err := log.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if l.Debug && l.Path == "" {
		return fmt.Errorf("log.path is required when log.debug is true")
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(t tracing.Config) error {
	if t.SampleRate < 0.0 || t.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", t.SampleRate)
	}

	if t.Exporter != "" && !slices.Contains(tracing.Exporters, t.Exporter) {
		return fmt.Errorf("tracing.exporter must be one of %s, got %q", strings.Join(tracing.Exporters, ", "), t.Exporter)
	}

	// Only validate path requirements when tracing is enabled
	if t.Enabled {
		if t.Exporter == tracing.ExporterFile && t.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if t.Exporter == tracing.ExporterOTLP && t.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// DefaultConfigTemplate returns the commented YAML written by WriteDefaultConfig.
func DefaultConfigTemplate() string {
	return `# vimlite configuration

editor:
  # Maximum nesting of macro playback. A macro that plays itself,
  # directly or through another macro, fails at this depth.
  max_macro_depth: 100

  # Corrections for documented cursor quirks (all off by default):
  #   clamp-line-end  - $ on an empty line lands on column 0 instead of -1
  #   clamp-append    - a does not move the cursor past the end of the line
  flags: {}

log:
  debug: false        # Write a debug log (also enabled by --debug or VIMLITE_DEBUG)
  path: vimlite.log
  level: debug        # debug, info, warn or error

tracing:
  enabled: false
  exporter: file      # none, file, stdout or otlp
  file_path: vimlite-traces.jsonl
  otlp_endpoint: localhost:4317
  sample_rate: 1.0
  service_name: vimlite
`
}

// WriteDefaultConfig creates a config file with default settings at the specified path.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
