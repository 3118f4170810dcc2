package cmd

import (
	"fmt"
	"maps"
	"os"

	"github.com/spf13/cobra"

	"github.com/reidwmulkey/vim/internal/config"
	"github.com/reidwmulkey/vim/internal/flags"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the vimlite config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default config file",
	Long: `Write the default config file, with comments describing every option.

Without a path the file is written to .vimlite/config.yaml. An existing file
is left untouched unless --force is given.`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{annotationWritesConfig: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := defaultConfigPath
		if len(args) == 1 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		}
		if err := config.WriteDefaultConfig(path); err != nil {
			return err
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return err
	},
}

var configSetFlagCmd = &cobra.Command{
	Use:   "set-flag name[=bool]...",
	Short: "Persist behavior flags in the config file",
	Long: `Persist behavior flags under editor.flags in the config file.

Known flags:
  clamp-line-end  $ on an empty line lands on column 0 instead of -1
  clamp-append    a does not move the cursor past the end of the line

Other settings and comments in the file are preserved.

Examples:
  vimlite config set-flag clamp-line-end
  vimlite config set-flag clamp-append=false`,
	Args:        cobra.MinimumNArgs(1),
	Annotations: map[string]string{annotationWritesConfig: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		updates, err := flags.Parse(args)
		if err != nil {
			return err
		}
		values := maps.Clone(cfg.Editor.Flags)
		if values == nil {
			values = map[string]bool{}
		}
		maps.Copy(values, updates)

		path := configPath()
		if err := config.SaveFlags(path, values); err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", path)
		return err
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd, configSetFlagCmd)
	rootCmd.AddCommand(configCmd)
}
