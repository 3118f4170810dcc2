package editor

import (
	"go.opentelemetry.io/otel/trace"

	"github.com/reidwmulkey/vim/internal/flags"
)

// DefaultMaxMacroDepth bounds nested macro playback.
const DefaultMaxMacroDepth = 100

// Option configures an Engine during creation.
type Option func(*Engine)

// WithMaxMacroDepth sets how deeply macro playback may nest.
func WithMaxMacroDepth(depth int) Option {
	return func(e *Engine) {
		if depth > 0 {
			e.maxMacroDepth = depth
		}
	}
}

// WithFlags sets the behavior flags consulted by commands.
func WithFlags(reg *flags.Registry) Option {
	return func(e *Engine) {
		e.flags = reg
	}
}

// WithTracer sets the tracer used for execute and playback spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(e *Engine) {
		if tracer != nil {
			e.tracer = tracer
		}
	}
}

// WithRegistry replaces the command registry used for dispatch.
func WithRegistry(reg *CommandRegistry) Option {
	return func(e *Engine) {
		if reg != nil {
			e.registry = reg
		}
	}
}
