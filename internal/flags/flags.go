// Package flags provides behavior flags that opt into corrections of the
// editor's documented quirks. Flags are read-only after initialization and
// unknown flags are disabled.
package flags

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/reidwmulkey/vim/internal/log"
)

// Flag name constants for type-safe flag access.
const (
	// FlagClampLineEnd makes $ on an empty line land on column 0 instead of -1.
	FlagClampLineEnd = "clamp-line-end"

	// FlagClampAppend stops a from advancing the cursor past the end of the line.
	FlagClampAppend = "clamp-append"
)

// Known lists every flag the editor consults.
var Known = []string{FlagClampAppend, FlagClampLineEnd}

// Registry holds flag state loaded from configuration.
// Flags are read-only after initialization.
type Registry struct {
	flags map[string]bool
}

// New creates a Registry from a config map.
// If flags is nil, an empty registry is created (all flags disabled).
func New(flags map[string]bool) *Registry {
	r := &Registry{flags: make(map[string]bool, len(flags))}
	maps.Copy(r.flags, flags)
	log.Debug(log.CatConfig, "Behavior flags initialized", "count", len(r.flags), "flags", r.All())
	return r
}

// Enabled returns true if the named flag is enabled.
// Returns false for unknown flags and when called on a nil registry.
func (r *Registry) Enabled(name string) bool {
	if r == nil || r.flags == nil {
		return false
	}
	return r.flags[name]
}

// All returns a copy of all flags (for debugging/logging).
// Returns an empty map if the registry is nil.
func (r *Registry) All() map[string]bool {
	if r == nil || r.flags == nil {
		return make(map[string]bool)
	}
	result := make(map[string]bool, len(r.flags))
	maps.Copy(result, r.flags)
	return result
}

// Parse reads "name" or "name=bool" assignments, as given on the command
// line, into a flag map. Names must be Known.
func Parse(assignments []string) (map[string]bool, error) {
	out := make(map[string]bool, len(assignments))
	for _, a := range assignments {
		name, value, hasValue := strings.Cut(a, "=")
		name = strings.TrimSpace(name)
		if !slices.Contains(Known, name) {
			return nil, fmt.Errorf("unknown flag %q (known: %s)", name, strings.Join(Known, ", "))
		}
		enabled := true
		if hasValue {
			v, err := strconv.ParseBool(strings.TrimSpace(value))
			if err != nil {
				return nil, fmt.Errorf("flag %q: %w", name, err)
			}
			enabled = v
		}
		out[name] = enabled
	}
	return out, nil
}
