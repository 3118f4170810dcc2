package editor

// Command represents a single-keystroke editor operation.
// Commands are looked up in a CommandRegistry by the current Mode and the
// keystroke, then executed against the Engine.
type Command interface {
	// Execute applies the command to the engine.
	// A non-nil error aborts the remaining keystrokes of the current Execute call.
	Execute(e *Engine) error

	// Keys returns the trigger key(s) that invoke this command.
	Keys() []string

	// Mode returns which mode this command operates in.
	Mode() Mode

	// ID returns a hierarchical identifier for this command type.
	// Used for logging and tracing. Examples: "move.right", "mode.insert".
	ID() string

	// IsRecorded returns true if the triggering keystroke is appended to an
	// active recording session after the command runs.
	IsRecorded() bool

	// IsModeChange returns true if this command changes the mode.
	IsModeChange() bool
}

// ============================================================================
// Base structs for reducing boilerplate in Command implementations
// ============================================================================

// MotionBase provides default implementations for motion commands.
// Motion commands are recorded and don't change mode.
type MotionBase struct{}

func (MotionBase) IsRecorded() bool   { return true }
func (MotionBase) IsModeChange() bool { return false }

// ModeEntryBase provides default implementations for mode switching commands.
type ModeEntryBase struct{}

func (ModeEntryBase) IsRecorded() bool   { return true }
func (ModeEntryBase) IsModeChange() bool { return true }

// InsertBase provides default implementations for insert-mode editing commands.
type InsertBase struct{}

func (InsertBase) IsRecorded() bool   { return true }
func (InsertBase) IsModeChange() bool { return false }

// ============================================================================
// CommandRegistry
// ============================================================================

// CommandRegistry provides mode-aware, key-based command dispatch.
// Commands are registered with their Mode() and Keys() used for lookup.
type CommandRegistry struct {
	// commands maps Mode -> trigger key -> command
	commands map[Mode]map[string]Command
}

// NewCommandRegistry creates an empty command registry.
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		commands: make(map[Mode]map[string]Command),
	}
}

// Register adds a command to the registry using its Mode() and Keys() methods.
// Commands with multiple keys are registered under each key.
func (r *CommandRegistry) Register(cmd Command) {
	mode := cmd.Mode()
	if r.commands[mode] == nil {
		r.commands[mode] = make(map[string]Command)
	}
	for _, key := range cmd.Keys() {
		r.commands[mode][key] = cmd
	}
}

// Get retrieves a command for a specific mode and key.
func (r *CommandRegistry) Get(mode Mode, key string) (Command, bool) {
	if modeMap, ok := r.commands[mode]; ok {
		if cmd, ok := modeMap[key]; ok {
			return cmd, true
		}
	}
	return nil, false
}

// Resolve returns the command a keystroke triggers in the given mode.
// Unregistered keys insert themselves in insert mode and are no-ops in
// normal mode, in which case ok is false.
func (r *CommandRegistry) Resolve(mode Mode, key string) (cmd Command, ok bool) {
	if cmd, ok := r.Get(mode, key); ok {
		return cmd, true
	}
	if mode == ModeInsert {
		return &InsertTextCommand{text: key}, true
	}
	return nil, false
}

// ============================================================================
// Default Registry
// ============================================================================

// DefaultRegistry is the global command registry with all built-in commands registered.
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *CommandRegistry {
	r := NewCommandRegistry()

	// Normal mode: motions
	r.Register(&MoveToLineStartCommand{})
	r.Register(&MoveToLineEndCommand{})
	r.Register(&MoveRightCommand{})

	// Normal mode: mode entry
	r.Register(&EnterInsertModeCommand{})
	r.Register(&EnterInsertModeAfterCommand{})

	// Normal mode: macros
	r.Register(&ToggleRecordingCommand{})
	r.Register(&ArmMacroCommand{})

	// Insert mode
	r.Register(&EscapeCommand{})

	return r
}
