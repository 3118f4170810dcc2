package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reidwmulkey/vim/internal/config"
	"github.com/reidwmulkey/vim/internal/log"
)

// defaultConfigPath is where config init and config set-flag write when no
// config file was found.
const defaultConfigPath = ".vimlite/config.yaml"

// annotationWritesConfig marks commands that create or update the config
// file, so a --config path that does not exist yet is not an error for them.
const annotationWritesConfig = "vimlite/writes-config"

var (
	version    = "dev"
	cfgFile    string
	debugFlag  bool
	cfg        config.Config
	cfgErr     error
	cfgMissing bool
	cfgUsed    string
	logCleanup func()
)

var rootCmd = &cobra.Command{
	Use:   "vimlite",
	Short: "A keystroke-driven modal text editor engine",
	Long: `vimlite runs a string of keystrokes against a text buffer and prints the result.

It understands a small modal command set: ^ $ l i a in normal mode, backtick
to leave insert mode, and q / @ to record and play back macros.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .vimlite/config.yaml or ~/.config/vimlite/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write a debug log (also VIMLITE_DEBUG)")
}

func initConfig() {
	cfg = config.Defaults()
	cfgErr = nil
	cfgMissing = false
	cfgUsed = ""

	v := viper.New()
	config.SetDefaults(v)
	_ = v.BindEnv("log.debug", "VIMLITE_DEBUG")
	_ = v.BindEnv("log.path", "VIMLITE_LOG")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .vimlite/config.yaml (current directory)
		// 2. ~/.config/vimlite/config.yaml (user config)
		if _, err := os.Stat(defaultConfigPath); err == nil {
			v.SetConfigFile(defaultConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			v.AddConfigPath(filepath.Join(home, ".config", "vimlite"))
			v.SetConfigName("config")
			v.SetConfigType("yaml")
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			cfgMissing = errors.Is(err, fs.ErrNotExist)
			cfgErr = fmt.Errorf("reading config: %w", err)
			return
		}
		// No config file anywhere; continue with defaults.
	}
	cfgUsed = v.ConfigFileUsed()

	if err := v.Unmarshal(&cfg); err != nil {
		cfgErr = fmt.Errorf("decoding config: %w", err)
	}
}

// setup validates the loaded config and starts debug logging when asked.
func setup(cmd *cobra.Command, _ []string) error {
	if cfgErr != nil {
		if !cfgMissing || cmd.Annotations[annotationWritesConfig] == "" {
			return cfgErr
		}
		// The command will create the file; start from defaults.
		cfg = config.Defaults()
	}
	if debugFlag {
		cfg.Log.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Log.Debug {
		cleanup, err := log.Init(cfg.Log.Path)
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		level, _ := log.ParseLevel(cfg.Log.Level)
		log.SetMinLevel(level)
		logCleanup = cleanup
		log.Info(log.CatCLI, "Starting", "command", cmd.CommandPath(), "version", version, "config", cfgUsed)
	}
	return nil
}

// configPath returns the config file to write: the --config flag, the file
// that was loaded, or the default location.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	if cfgUsed != "" {
		return cfgUsed
	}
	return defaultConfigPath
}

// Execute runs the root command
func Execute() error {
	defer func() {
		if logCleanup != nil {
			logCleanup()
			logCleanup = nil
		}
	}()
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
