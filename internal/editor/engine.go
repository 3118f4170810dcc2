package editor

import (
	"context"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/reidwmulkey/vim/internal/flags"
	"github.com/reidwmulkey/vim/internal/log"
	"github.com/reidwmulkey/vim/internal/tracing"
)

// Engine is the editor state machine: a buffer, a cursor, the active mode,
// recorded macros and the recording session, if any.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	id string

	// Content state
	buf    *Buffer
	cursor Position

	// Modal state
	mode         Mode
	pendingMacro bool              // next keystroke names a macro to play
	session      *recordingSession // nil when not recording
	macros       *Registry
	depth        int // current macro playback nesting

	// Configuration
	registry      *CommandRegistry
	flags         *flags.Registry
	tracer        trace.Tracer
	maxMacroDepth int
}

// New creates an engine whose buffer holds text, with the cursor at the
// start of the first line in normal mode.
func New(text string, opts ...Option) *Engine {
	e := &Engine{
		id:            uuid.New().String(),
		buf:           NewBuffer(text),
		mode:          ModeNormal,
		macros:        NewRegistry(),
		registry:      DefaultRegistry,
		tracer:        noop.NewTracerProvider().Tracer("noop"),
		maxMacroDepth: DefaultMaxMacroDepth,
	}
	for _, opt := range opts {
		opt(e)
	}
	log.Debug(log.CatEngine, "Engine created", "engine", e.id, "lines", e.buf.Len())
	return e
}

// Execute consumes keys one keystroke at a time and returns the engine so
// calls can be chained. It stops at the first failing keystroke; changes made
// by earlier keystrokes stay applied.
func (e *Engine) Execute(keys string) (*Engine, error) {
	return e.ExecuteContext(context.Background(), keys)
}

// ExecuteContext is Execute with a context. The context parents the trace
// spans and is checked for cancellation between keystrokes.
func (e *Engine) ExecuteContext(ctx context.Context, keys string) (*Engine, error) {
	ctx, span := e.tracer.Start(ctx, tracing.SpanExecute, trace.WithAttributes(
		attribute.String(tracing.AttrEngineID, e.id),
		attribute.Int(tracing.AttrKeysCount, utf8.RuneCountInString(keys)),
	))
	defer span.End()

	if err := e.run(ctx, keys); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.ErrorErr(log.CatEngine, "Execute failed", err, "engine", e.id, "cursor", e.cursor, "mode", e.mode)
		return e, err
	}
	span.SetAttributes(attribute.String(tracing.AttrMode, e.mode.String()))
	return e, nil
}

// run is the re-entrant interpreter loop shared by Execute and macro playback.
func (e *Engine) run(ctx context.Context, keys string) error {
	for _, key := range Keystrokes(keys) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if e.pendingMacro {
			e.pendingMacro = false
			if err := e.play(ctx, key); err != nil {
				return err
			}
		}
		// The trigger keystroke is still dispatched after playback.
		if err := e.dispatch(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// dispatch executes the command key triggers in the current mode, then
// appends key to the recording session when the command allows it.
// Each executed command is added as an event to the innermost span in ctx.
func (e *Engine) dispatch(ctx context.Context, key string) error {
	cmd, ok := e.registry.Resolve(e.mode, key)
	if !ok {
		e.record(key)
		return nil
	}

	log.Debug(log.CatEngine, "Dispatch", "engine", e.id, "command", cmd.ID(), "key", key)
	trace.SpanFromContext(ctx).AddEvent(tracing.EventCommand, trace.WithAttributes(
		attribute.String(tracing.AttrCommandID, cmd.ID()),
		attribute.String(tracing.AttrKey, key),
	))

	from := e.mode
	if err := cmd.Execute(e); err != nil {
		return err
	}
	if cmd.IsModeChange() && e.mode != from {
		log.Debug(log.CatEngine, "Mode changed", "engine", e.id, "command", cmd.ID(), "from", from, "to", e.mode)
	}
	if cmd.IsRecorded() {
		e.record(key)
	}
	return nil
}

// play runs the body recorded under name.
func (e *Engine) play(ctx context.Context, name string) error {
	body, ok := e.macros.Get(name)
	if !ok {
		return &UnknownMacroError{Name: name}
	}
	if e.depth >= e.maxMacroDepth {
		return &MacroDepthError{Name: name, Depth: e.maxMacroDepth}
	}

	ctx, span := e.tracer.Start(ctx, tracing.SpanMacroPlay, trace.WithAttributes(
		attribute.String(tracing.AttrMacroName, name),
		attribute.Int(tracing.AttrMacroDepth, e.depth+1),
	))
	defer span.End()

	log.Debug(log.CatMacro, "Playing macro", "engine", e.id, "name", name, "depth", e.depth+1)
	e.depth++
	defer func() { e.depth-- }()

	if err := e.run(ctx, body); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// record appends a typed keystroke to the active session.
//
// Only typed keystrokes are recorded. Keystrokes replayed from a macro
// (depth > 0) are skipped, so recording "@z" stores the @ and the name
// rather than a copy of z's body. This differs from a literal log of every
// interpreted keystroke, which would duplicate z's body and then replay it
// a second time through the stored @z.
func (e *Engine) record(key string) {
	if e.session == nil || e.depth > 0 {
		return
	}
	e.session.append(key)
}

func (e *Engine) startRecording() {
	e.session = &recordingSession{}
	log.Debug(log.CatMacro, "Recording started", "engine", e.id)
}

func (e *Engine) stopRecording() {
	s := e.session
	e.session = nil
	if !s.named {
		log.Debug(log.CatMacro, "Recording discarded, no name typed", "engine", e.id)
		return
	}
	e.macros.Set(s.name, s.body.String())
	log.Info(log.CatMacro, "Macro recorded", "engine", e.id, "name", s.name, "keystrokes", utf8.RuneCountInString(s.body.String()))
}

func (e *Engine) setMode(mode Mode) {
	e.mode = mode
}

func (e *Engine) currentLine() string {
	return e.buf.Line(e.cursor.Row)
}

// ============================================================================
// Accessors
// ============================================================================

// ID returns the engine's unique identifier, used to correlate logs and spans.
func (e *Engine) ID() string {
	return e.id
}

// Mode returns the active mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Cursor returns the cursor position.
func (e *Engine) Cursor() Position {
	return e.cursor
}

// Lines returns a copy of the buffer lines in row order.
func (e *Engine) Lines() []string {
	return e.buf.Lines()
}

// Render returns the buffer text with every line followed by a line break.
func (e *Engine) Render() string {
	return e.buf.String()
}

// String implements fmt.Stringer; it is the same as Render.
func (e *Engine) String() string {
	return e.Render()
}

// Recording reports whether a recording session is active, and the macro
// name once the first keystroke after q has been typed.
func (e *Engine) Recording() (name string, active bool) {
	if e.session == nil {
		return "", false
	}
	return e.session.name, true
}

// PendingMacro reports whether the next keystroke will be played back as a macro name.
func (e *Engine) PendingMacro() bool {
	return e.pendingMacro
}

// Macro returns the body recorded under name.
func (e *Engine) Macro(name string) (string, bool) {
	return e.macros.Get(name)
}

// Macros returns a copy of every recorded macro.
func (e *Engine) Macros() map[string]string {
	return e.macros.All()
}
