package editor

// ============================================================================
// Macro Commands
// ============================================================================

// ToggleRecordingCommand starts or stops a recording session (q command).
// The toggle keystroke itself is never recorded.
type ToggleRecordingCommand struct{}

// Execute starts a session, or commits the active one to the macro registry.
func (c *ToggleRecordingCommand) Execute(e *Engine) error {
	if e.session == nil {
		e.startRecording()
	} else {
		e.stopRecording()
	}
	return nil
}

// Keys returns the trigger keys for this command.
func (c *ToggleRecordingCommand) Keys() []string {
	return []string{"q"}
}

// Mode returns the mode this command operates in.
func (c *ToggleRecordingCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *ToggleRecordingCommand) ID() string {
	return "macro.record"
}

func (c *ToggleRecordingCommand) IsRecorded() bool   { return false }
func (c *ToggleRecordingCommand) IsModeChange() bool { return false }

// ArmMacroCommand makes the next keystroke play back the macro it names (@ command).
type ArmMacroCommand struct{}

// Execute arms the pending-macro flag.
func (c *ArmMacroCommand) Execute(e *Engine) error {
	e.pendingMacro = true
	return nil
}

// Keys returns the trigger keys for this command.
func (c *ArmMacroCommand) Keys() []string {
	return []string{"@"}
}

// Mode returns the mode this command operates in.
func (c *ArmMacroCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *ArmMacroCommand) ID() string {
	return "macro.arm"
}

func (c *ArmMacroCommand) IsRecorded() bool   { return true }
func (c *ArmMacroCommand) IsModeChange() bool { return false }
