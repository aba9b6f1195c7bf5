// Package sink persists generated files.
package sink

import (
	"maps"
	"sync"
)

// Action describes what saving a file did, or would do on a dry run.
type Action string

const (
	ActionNew       Action = "new"
	ActionModified  Action = "modified"
	ActionUnchanged Action = "unchanged"
)

// Sink receives generated files.
type Sink interface {
	Save(path, text string) (Action, error)
}

// Memory is a Sink that keeps files in memory. It is safe for concurrent
// use.
type Memory struct {
	mu    sync.Mutex
	files map[string]string
	order []string
}

// Save implements Sink.
func (m *Memory) Save(path, text string) (Action, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.files == nil {
		m.files = make(map[string]string)
	}
	prev, ok := m.files[path]
	m.files[path] = text
	switch {
	case !ok:
		m.order = append(m.order, path)
		return ActionNew, nil
	case prev == text:
		return ActionUnchanged, nil
	default:
		return ActionModified, nil
	}
}

// Get returns the text saved under path.
func (m *Memory) Get(path string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	text, ok := m.files[path]
	return text, ok
}

// Paths returns saved paths in the order they were first saved.
func (m *Memory) Paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.order...)
}

// Files returns a copy of every saved file keyed by path.
func (m *Memory) Files() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return maps.Clone(m.files)
}
