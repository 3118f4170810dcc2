package editor

import (
	"sort"
	"strings"
)

// Registry stores recorded macros by name. A name is a single keystroke.
// Recording a name again overwrites the previous body.
type Registry struct {
	macros map[string]string
}

// NewRegistry creates an empty macro registry.
func NewRegistry() *Registry {
	return &Registry{macros: make(map[string]string)}
}

// Get returns the body recorded under name.
func (r *Registry) Get(name string) (string, bool) {
	body, ok := r.macros[name]
	return body, ok
}

// Set records body under name, replacing any previous recording.
func (r *Registry) Set(name, body string) {
	r.macros[name] = body
}

// Len returns the number of recorded macros.
func (r *Registry) Len() int {
	return len(r.macros)
}

// Names returns the recorded macro names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.macros))
	for name := range r.macros {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns a copy of every recorded macro.
func (r *Registry) All() map[string]string {
	out := make(map[string]string, len(r.macros))
	for name, body := range r.macros {
		out[name] = body
	}
	return out
}

// recordingSession accumulates keystrokes between two q toggles.
// The first keystroke appended names the macro; the rest form its body.
type recordingSession struct {
	name  string
	named bool
	body  strings.Builder
}

// append adds a typed keystroke to the session.
func (s *recordingSession) append(key string) {
	if !s.named {
		s.name = key
		s.named = true
		return
	}
	s.body.WriteString(key)
}
