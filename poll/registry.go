// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"sync"

	"github.com/danielhkuo/staffwatch/models"
)

// Managed pairs a poll with the lock that serializes access to it. The
// pipeline itself assumes single-writer access per poll; Managed is where
// that external serialization lives.
type Managed struct {
	mu   sync.RWMutex
	poll *models.Poll
}

// Update runs fn with exclusive access to the poll.
func (m *Managed) Update(fn func(*models.Poll) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(m.poll)
}

// View runs fn with shared read access to the poll. fn must not retain or
// mutate the poll.
func (m *Managed) View(fn func(*models.Poll)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	fn(m.poll)
}

// Registry holds the configured polls, keyed by poll ID, in configuration
// order.
type Registry struct {
	mu    sync.RWMutex
	byID  map[string]*Managed
	order []*Managed
}

func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*Managed)}
}

// Add registers a poll. A second poll with the same ID replaces the first
// in the lookup map but not in the ordering; configuration validation is
// expected to prevent duplicates.
func (r *Registry) Add(p *models.Poll) *Managed {
	m := &Managed{poll: p}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[p.PollID] = m
	r.order = append(r.order, m)
	return m
}

func (r *Registry) Get(id string) (*Managed, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.byID[id]
	return m, ok
}

// All returns the polls in configuration order.
func (r *Registry) All() []*Managed {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Managed, len(r.order))
	copy(out, r.order)
	return out
}
