package tracing

// Span names.
const (
	SpanExecute   = "editor.execute"
	SpanMacroPlay = "macro.play"
)

// EventCommand is the span event added for each executed command.
const EventCommand = "command"

// Span and event attribute keys.
const (
	AttrEngineID   = "editor.id"
	AttrKeysCount  = "keys.count"
	AttrMode       = "editor.mode"
	AttrMacroName  = "macro.name"
	AttrMacroDepth = "macro.depth"
	AttrCommandID  = "command.id"
	AttrKey        = "key"
)
