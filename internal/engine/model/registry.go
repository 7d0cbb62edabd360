package model

import "sync"

// Registry holds uploaded models behind stable integer ids.
// Append-only: ids never change or get reused once handed out.
type Registry struct {
	mu     sync.Mutex
	models []*Model
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers an uploaded model and returns its id.
func (r *Registry) Add(m *Model) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.models = append(r.models, m)
	return len(r.models) - 1
}

// Get returns the model for an id, or nil for unknown ids.
func (r *Registry) Get(id int) *Model {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id < 0 || id >= len(r.models) {
		return nil
	}
	return r.models[id]
}

// Len returns the number of registered models.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.models)
}
