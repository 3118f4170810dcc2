package editor

// InsertTextCommand inserts a keystroke at the cursor and moves the cursor
// just past it. It is the fallback for every unregistered key in insert mode.
type InsertTextCommand struct {
	InsertBase
	text string
}

// Execute splits the current line at the cursor and inserts the text between the halves.
func (c *InsertTextCommand) Execute(e *Engine) error {
	line := e.currentLine()
	length := GraphemeCount(line)
	if e.cursor.Col < 0 || e.cursor.Col > length {
		return &ColumnError{Pos: e.cursor, Length: length}
	}
	// A combining mark joins the cluster before it, so the column is
	// recounted rather than incremented.
	updated, col := InsertAtGrapheme(line, e.cursor.Col, c.text)
	e.buf.SetLine(e.cursor.Row, updated)
	e.cursor.Col = col
	return nil
}

// Keys returns nil; insertion is resolved as a fallback rather than registered.
func (c *InsertTextCommand) Keys() []string {
	return nil
}

// Mode returns the mode this command operates in.
func (c *InsertTextCommand) Mode() Mode {
	return ModeInsert
}

// ID returns the hierarchical identifier for this command.
func (c *InsertTextCommand) ID() string {
	return "insert.text"
}
