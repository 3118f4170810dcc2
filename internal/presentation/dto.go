package presentation

import (
	"github.com/reidwmulkey/vim/internal/editor"
)

// ResultDTO is the final editor state after a run, shaped for output.
type ResultDTO struct {
	EngineID     string            `json:"engine_id" yaml:"engine_id"`
	Text         string            `json:"text" yaml:"text"`
	Lines        []string          `json:"lines" yaml:"lines"`
	Cursor       CursorDTO         `json:"cursor" yaml:"cursor"`
	Mode         string            `json:"mode" yaml:"mode"`
	Macros       map[string]string `json:"macros" yaml:"macros"`
	Recording    *RecordingDTO     `json:"recording,omitempty" yaml:"recording,omitempty"`
	PendingMacro bool              `json:"pending_macro" yaml:"pending_macro"`
	Diff         string            `json:"diff,omitempty" yaml:"diff,omitempty"`
	Error        string            `json:"error,omitempty" yaml:"error,omitempty"`
}

// CursorDTO is a cursor position. Col may be -1 after $ on an empty line.
type CursorDTO struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// RecordingDTO describes an unfinished recording session.
type RecordingDTO struct {
	Name string `json:"name" yaml:"name"` // empty until the first keystroke after q
}

// FromEngine converts engine state to a DTO. runErr, when non-nil, is the
// error that stopped execution; the state is whatever had been applied.
func FromEngine(e *editor.Engine, runErr error) ResultDTO {
	cursor := e.Cursor()
	dto := ResultDTO{
		EngineID:     e.ID(),
		Text:         e.Render(),
		Lines:        e.Lines(),
		Cursor:       CursorDTO{Row: cursor.Row, Col: cursor.Col},
		Mode:         e.Mode().String(),
		Macros:       e.Macros(),
		PendingMacro: e.PendingMacro(),
	}
	if name, active := e.Recording(); active {
		dto.Recording = &RecordingDTO{Name: name}
	}
	if runErr != nil {
		dto.Error = runErr.Error()
	}
	return dto
}
