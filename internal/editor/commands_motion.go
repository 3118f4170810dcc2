package editor

import "github.com/reidwmulkey/vim/internal/flags"

// ============================================================================
// Motion Commands
// ============================================================================

// MoveToLineStartCommand moves cursor to the first column (^ motion).
type MoveToLineStartCommand struct {
	MotionBase
}

// Execute moves the cursor to the first column.
func (c *MoveToLineStartCommand) Execute(e *Engine) error {
	e.cursor.Col = 0
	return nil
}

// Keys returns the trigger keys for this command.
func (c *MoveToLineStartCommand) Keys() []string {
	return []string{"^"}
}

// Mode returns the mode this command operates in.
func (c *MoveToLineStartCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *MoveToLineStartCommand) ID() string {
	return "move.line_start"
}

// MoveToLineEndCommand moves cursor to the last column ($ motion).
//
// On an empty line the last column is -1. Enable flags.FlagClampLineEnd to
// land on column 0 instead.
type MoveToLineEndCommand struct {
	MotionBase
}

// Execute moves the cursor to the last column.
func (c *MoveToLineEndCommand) Execute(e *Engine) error {
	col := GraphemeCount(e.currentLine()) - 1
	if col < 0 && e.flags.Enabled(flags.FlagClampLineEnd) {
		col = 0
	}
	e.cursor.Col = col
	return nil
}

// Keys returns the trigger keys for this command.
func (c *MoveToLineEndCommand) Keys() []string {
	return []string{"$"}
}

// Mode returns the mode this command operates in.
func (c *MoveToLineEndCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *MoveToLineEndCommand) ID() string {
	return "move.line_end"
}

// MoveRightCommand moves cursor one character right (l motion).
// The cursor advances only while col+2 <= length, so it stops on the last
// character, the same column $ lands on.
type MoveRightCommand struct {
	MotionBase
}

// Execute moves the cursor one character to the right.
func (c *MoveRightCommand) Execute(e *Engine) error {
	if e.cursor.Col+2 <= GraphemeCount(e.currentLine()) {
		e.cursor.Col++
	}
	return nil
}

// Keys returns the trigger keys for this command.
func (c *MoveRightCommand) Keys() []string {
	return []string{"l"}
}

// Mode returns the mode this command operates in.
func (c *MoveRightCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *MoveRightCommand) ID() string {
	return "move.right"
}
