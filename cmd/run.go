package cmd

import (
	"context"
	"fmt"
	"io"
	"maps"
	"time"

	"github.com/spf13/cobra"

	"github.com/reidwmulkey/vim/internal/editor"
	"github.com/reidwmulkey/vim/internal/flags"
	"github.com/reidwmulkey/vim/internal/log"
	"github.com/reidwmulkey/vim/internal/presentation"
	"github.com/reidwmulkey/vim/internal/tracing"
)

// tracingShutdownTimeout bounds the final span flush.
const tracingShutdownTimeout = 5 * time.Second

var (
	runKeys       []string
	runText       string
	runFormat     string
	runDiff       bool
	runCursor     bool
	runFlagValues []string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute keystrokes against a text buffer",
	Long: `Execute keystrokes against a text buffer and print the resulting text.

The buffer is read from --text, or from stdin when --text is not given.
--keys may be repeated; each value is executed in order against the same
engine, so macros recorded by one value can be played by the next.

When a keystroke fails (for example @ followed by an unrecorded macro name)
the state reached so far is still printed and the command exits non-zero.

Examples:
  # Insert at the start of the line
  vimlite run --text hello --keys 'iX` + "`" + `'

  # Record macro z, then play it back
  vimlite run --text hello --keys 'qz$iX` + "`" + `q' --keys '^@z'

  # Show the full state as JSON
  echo hello | vimlite run --keys '$' --format json

  # Opt into a quirk correction
  vimlite run --text '' --keys '$' --cursor --flag clamp-line-end`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringArrayVarP(&runKeys, "keys", "k", nil, "keystrokes to execute (repeatable)")
	runCmd.Flags().StringVarP(&runText, "text", "t", "", "initial buffer text (default: read stdin)")
	runCmd.Flags().StringVarP(&runFormat, "format", "f", presentation.FormatText, "output format: text, json or yaml")
	runCmd.Flags().BoolVar(&runDiff, "diff", false, "show a line diff against the initial text")
	runCmd.Flags().BoolVar(&runCursor, "cursor", false, "show the cursor line with a caret under the cursor")
	runCmd.Flags().StringArrayVar(&runFlagValues, "flag", nil, "enable a behavior flag, name or name=bool (repeatable)")
	_ = runCmd.MarkFlagRequired("keys")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	if err := presentation.ValidateFormat(runFormat); err != nil {
		return err
	}

	text := runText
	if !cmd.Flags().Changed("text") {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}

	overrides, err := flags.Parse(runFlagValues)
	if err != nil {
		return err
	}
	enabled := maps.Clone(cfg.Editor.Flags)
	if enabled == nil {
		enabled = map[string]bool{}
	}
	maps.Copy(enabled, overrides)

	provider, err := tracing.NewProvider(cfg.Tracing, tracing.WithWriter(cmd.ErrOrStderr()))
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), tracingShutdownTimeout)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			log.ErrorErr(log.CatTrace, "Tracing shutdown failed", err)
		}
	}()

	engine := editor.New(text,
		editor.WithMaxMacroDepth(cfg.Editor.MaxMacroDepth),
		editor.WithFlags(flags.New(enabled)),
		editor.WithTracer(provider.Tracer()),
	)
	before := engine.Render()

	var runErr error
	for i, keys := range runKeys {
		if _, runErr = engine.ExecuteContext(cmd.Context(), keys); runErr != nil {
			runErr = fmt.Errorf("executing --keys #%d: %w", i+1, runErr)
			break
		}
	}
	log.Debug(log.CatCLI, "Run finished", "engine", engine.ID(), "mode", engine.Mode(), "cursor", engine.Cursor(), "error", runErr)

	result := presentation.FromEngine(engine, runErr)
	if err := writeResult(cmd.OutOrStdout(), result, before); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return runErr
}

// writeResult prints result in the selected format. In text format --diff
// replaces the rendered buffer and --cursor appends the caret line.
func writeResult(w io.Writer, result presentation.ResultDTO, before string) error {
	if runDiff {
		result.Diff = presentation.LineDiff(before, result.Text)
	}
	if runFormat != presentation.FormatText {
		return presentation.NewFormatter(w, runFormat).FormatResult(result)
	}

	if runDiff {
		if _, err := io.WriteString(w, result.Diff); err != nil {
			return err
		}
	} else if err := presentation.NewFormatter(w, runFormat).FormatResult(result); err != nil {
		return err
	}

	if runCursor {
		line := ""
		if row := result.Cursor.Row; row >= 0 && row < len(result.Lines) {
			line = result.Lines[row]
		}
		if _, err := io.WriteString(w, presentation.CursorLine(line, result.Cursor.Col)); err != nil {
			return err
		}
	}
	return nil
}
