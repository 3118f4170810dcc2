// Package editor implements a keystroke-driven modal text editor engine.
//
// An Engine owns an ordered Buffer of lines, a cursor, the active Mode and a
// macro Registry. Keystrokes are fed through Execute, which dispatches each
// one through the CommandRegistry for the current mode. Macro playback
// re-enters Execute for the recorded body.
package editor

// Mode represents the current editing mode.
type Mode int

const (
	// ModeNormal is the default mode for navigation and commands.
	ModeNormal Mode = iota
	// ModeInsert is the mode for inserting text.
	ModeInsert
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	default:
		return "UNKNOWN"
	}
}
