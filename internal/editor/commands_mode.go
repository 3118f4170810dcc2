package editor

import "github.com/reidwmulkey/vim/internal/flags"

// ============================================================================
// Mode Commands
// ============================================================================

// EscapeKey is the keystroke that returns from insert mode to normal mode.
const EscapeKey = "`"

// EnterInsertModeCommand enters insert mode at the cursor position (i command).
type EnterInsertModeCommand struct {
	ModeEntryBase
}

// Execute enters insert mode at the current cursor position.
func (c *EnterInsertModeCommand) Execute(e *Engine) error {
	e.setMode(ModeInsert)
	return nil
}

// Keys returns the trigger keys for this command.
func (c *EnterInsertModeCommand) Keys() []string {
	return []string{"i"}
}

// Mode returns the mode this command operates in.
func (c *EnterInsertModeCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *EnterInsertModeCommand) ID() string {
	return "mode.insert"
}

// EnterInsertModeAfterCommand enters insert mode after the cursor (a command).
// The column always advances by one, even past the end of the line, where a
// following insert fails with ErrColumnOutOfRange. flags.FlagClampAppend
// keeps the column at the end of the line instead.
type EnterInsertModeAfterCommand struct {
	ModeEntryBase
}

// Execute advances the cursor one column and enters insert mode.
func (c *EnterInsertModeAfterCommand) Execute(e *Engine) error {
	if !e.flags.Enabled(flags.FlagClampAppend) || e.cursor.Col < GraphemeCount(e.currentLine()) {
		e.cursor.Col++
	}
	e.setMode(ModeInsert)
	return nil
}

// Keys returns the trigger keys for this command.
func (c *EnterInsertModeAfterCommand) Keys() []string {
	return []string{"a"}
}

// Mode returns the mode this command operates in.
func (c *EnterInsertModeAfterCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *EnterInsertModeAfterCommand) ID() string {
	return "mode.insert_after"
}

// EscapeCommand returns to normal mode from insert mode.
// The cursor stays where it is.
type EscapeCommand struct {
	ModeEntryBase
}

// Execute switches back to normal mode.
func (c *EscapeCommand) Execute(e *Engine) error {
	e.setMode(ModeNormal)
	return nil
}

// Keys returns the trigger keys for this command.
func (c *EscapeCommand) Keys() []string {
	return []string{EscapeKey}
}

// Mode returns the mode this command operates in.
func (c *EscapeCommand) Mode() Mode {
	return ModeInsert
}

// ID returns the hierarchical identifier for this command.
func (c *EscapeCommand) ID() string {
	return "mode.normal"
}
