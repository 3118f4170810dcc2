package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by NewFormatter.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the accepted output formats.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// ValidateFormat returns an error for unknown format names.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return fmt.Errorf("unknown format %q (expected one of: %s)", format, strings.Join(Formats, ", "))
	}
	return nil
}

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
	format string
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer, format string) *Formatter {
	return &Formatter{
		writer: writer,
		format: format,
	}
}

// FormatResult writes a run result. Text output is the rendered buffer only;
// structured formats carry the full state.
func (f *Formatter) FormatResult(result ResultDTO) error {
	switch f.format {
	case FormatJSON:
		encoder := json.NewEncoder(f.writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case FormatYAML:
		encoder := yaml.NewEncoder(f.writer)
		encoder.SetIndent(2)
		if err := encoder.Encode(result); err != nil {
			return err
		}
		return encoder.Close()
	case FormatText, "":
		_, err := io.WriteString(f.writer, result.Text)
		return err
	default:
		return ValidateFormat(f.format)
	}
}
