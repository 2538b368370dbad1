package visitor

import (
	"sync"
	"time"

	"github.com/balanceu/balanceu/internal/utils"
	log "github.com/sirupsen/logrus"
)

// Sweeper drops state that has not been touched since cutoff and reports how
// many entries were removed.
type Sweeper interface {
	Sweep(cutoff time.Time) int
}

type entry[T any] struct {
	value    *T
	lastUsed time.Time
}

// Registry keeps one value of T per visitor. Access goes through Do, which
// serializes all work on the registry.
type Registry[T any] struct {
	name    string
	mu      sync.Mutex
	entries map[string]*entry[T]
	newFn   func() *T
	clock   utils.Clock
}

func NewRegistry[T any](name string, newFn func() *T, clock utils.Clock) *Registry[T] {
	return &Registry[T]{
		name:    name,
		entries: make(map[string]*entry[T]),
		newFn:   newFn,
		clock:   clock,
	}
}

// Do runs fn with the visitor's value, creating it first when missing.
func (r *Registry[T]) Do(visitorId string, fn func(value *T) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.lookup(visitorId))
}

// lookup returns the visitor's value, creating it when missing. r.mu must be held.
func (r *Registry[T]) lookup(visitorId string) *T {
	e, ok := r.entries[visitorId]
	if !ok {
		log.Tracef("%s: new state for visitor %s", r.name, visitorId)
		e = &entry[T]{value: r.newFn()}
		r.entries[visitorId] = e
	}
	e.lastUsed = r.clock.Now()
	return e.value
}

// Update is Do for callbacks that cannot fail.
func (r *Registry[T]) Update(visitorId string, fn func(value *T)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.lookup(visitorId))
}

// Reset replaces the visitor's value with a fresh one and runs fn on it.
func (r *Registry[T]) Reset(visitorId string, fn func(value *T) error) error {
	r.mu.Lock()
	e := &entry[T]{value: r.newFn(), lastUsed: r.clock.Now()}
	r.entries[visitorId] = e
	r.mu.Unlock()
	return r.Do(visitorId, fn)
}

func (r *Registry[T]) Forget(visitorId string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, visitorId)
}

func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Registry[T]) Sweep(cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, e := range r.entries {
		if e.lastUsed.Before(cutoff) {
			delete(r.entries, id)
			removed++
		}
	}
	if removed > 0 {
		log.Debugf("%s: dropped state of %d idle visitor(s)", r.name, removed)
	}
	return removed
}
