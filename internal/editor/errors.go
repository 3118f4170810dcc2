package editor

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMacro is returned when playback names a macro that was never recorded.
	ErrUnknownMacro = errors.New("macro has not been recorded")

	// ErrMacroDepthExceeded is returned when nested macro playback exceeds the configured depth.
	ErrMacroDepthExceeded = errors.New("macro playback depth exceeded")

	// ErrColumnOutOfRange is returned when text is inserted at a column outside the current line.
	ErrColumnOutOfRange = errors.New("cursor column out of range")
)

// UnknownMacroError reports playback of an unregistered macro.
type UnknownMacroError struct {
	Name string
}

func (e *UnknownMacroError) Error() string {
	return fmt.Sprintf("tried to execute macro (%s) but that macro has not been recorded", e.Name)
}

func (e *UnknownMacroError) Unwrap() error { return ErrUnknownMacro }

// MacroDepthError reports a macro whose playback nests deeper than allowed,
// typically because it plays itself directly or through another macro.
type MacroDepthError struct {
	Name  string
	Depth int
}

func (e *MacroDepthError) Error() string {
	return fmt.Sprintf("macro (%s) exceeded playback depth %d", e.Name, e.Depth)
}

func (e *MacroDepthError) Unwrap() error { return ErrMacroDepthExceeded }

// ColumnError reports an insertion at a cursor position outside the line.
type ColumnError struct {
	Pos    Position
	Length int
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("cannot insert at row %d column %d: line has %d characters", e.Pos.Row, e.Pos.Col, e.Length)
}

func (e *ColumnError) Unwrap() error { return ErrColumnOutOfRange }
