// Package meshset holds a process-wide registry of named meshes behind
// a read-write mutex. A *brep.Mesh itself carries no internal lock (brep
// is a single-owner data structure by design); this registry is where
// multiple independently-owned meshes become safely addressable from
// more than one goroutine, such as a CLI session juggling a loaded mesh
// alongside several operator-derived variants.
package meshset

import (
	"fmt"
	"sync"

	"github.com/sksmith/brep/brep"
)

// Registry maps names to meshes. The zero value is not usable; use New.
type Registry struct {
	mu     sync.RWMutex
	meshes map[string]*brep.Mesh
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{meshes: make(map[string]*brep.Mesh)}
}

// Put stores m under name, replacing any existing mesh with that name.
func (r *Registry) Put(name string, m *brep.Mesh) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.meshes[name] = m
}

// Get returns the mesh stored under name, or (nil, false) if absent.
func (r *Registry) Get(name string) (*brep.Mesh, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.meshes[name]
	return m, ok
}

// MustGet is like Get but returns an error instead of a boolean.
func (r *Registry) MustGet(name string) (*brep.Mesh, error) {
	m, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("meshset: no mesh named %q", name)
	}
	return m, nil
}

// Delete removes name from the registry, if present.
func (r *Registry) Delete(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.meshes, name)
}

// Names returns every registered name, in no particular order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.meshes))
	for name := range r.meshes {
		out = append(out, name)
	}
	return out
}

// Len reports the number of registered meshes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.meshes)
}
