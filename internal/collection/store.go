// Package collection keeps an in-memory copy of a remote collection
// consistent with the backend. Local state changes only in response to
// confirmed server responses; the visible list always reflects last
// confirmed server state, never an optimistic guess.
package collection

import (
	"context"
	"fmt"
	"sync"

	"github.com/skillshare/skilladmin/internal/logging"
)

// Resource is an entity with a server-assigned identifier.
type Resource interface {
	Key() string
}

// Ops is the remote gateway a Store confirms against.
type Ops[T Resource] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, payload T) (T, error)
	Update(ctx context.Context, id string, payload T) (T, error)
	Remove(ctx context.Context, id string) error
}

// Store owns the canonical local copy of one collection. Order is server-list
// order; confirmed creates append to the tail. Writes to the same id are
// sequenced through a per-id lock so a late acknowledgment cannot overwrite
// a newer one.
type Store[T Resource] struct {
	ops    Ops[T]
	logger logging.Logger

	mu    sync.RWMutex
	items []T

	keyMu sync.Mutex
	keys  map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func NewStore[T Resource](ops Ops[T], logger logging.Logger) *Store[T] {
	return &Store[T]{ops: ops, logger: logger, keys: make(map[string]*keyLock)}
}

// Load replaces the entire collection with the server's list. Called once
// per screen activation.
func (s *Store[T]) Load(ctx context.Context) error {
	listed, err := s.ops.List(ctx)
	if err != nil {
		return fmt.Errorf("loading collection: %w", err)
	}

	s.mu.Lock()
	s.items = listed
	s.mu.Unlock()
	return nil
}

// Items returns a copy of the collection in its current order.
func (s *Store[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Get returns the element with the given id, if present.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.Key() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Filter is a pure read-side projection; it never mutates the collection.
func (s *Store[T]) Filter(keep func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Create sends the payload and, on confirmation, appends the server-assigned
// entity to the tail. Nothing is inserted before the server confirms.
func (s *Store[T]) Create(ctx context.Context, payload T) (T, error) {
	created, err := s.ops.Create(ctx, payload)
	if err != nil {
		var zero T
		return zero, err
	}

	s.mu.Lock()
	s.items = append(s.items, created)
	s.mu.Unlock()
	return created, nil
}

// Update sends the payload and, on confirmation, replaces the matching
// element with the server's result. On failure the collection is unchanged.
func (s *Store[T]) Update(ctx context.Context, id string, payload T) (T, error) {
	unlock := s.lockKey(id)
	defer unlock()

	updated, err := s.ops.Update(ctx, id, payload)
	if err != nil {
		var zero T
		return zero, err
	}

	s.ApplyUpdate(ctx, updated)
	return updated, nil
}

// Delete removes the element once the server confirms. Removing an id that
// is already absent locally is a no-op.
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	unlock := s.lockKey(id)
	defer unlock()

	if err := s.ops.Remove(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.items {
		if item.Key() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// ApplyUpdate applies a server-confirmed entity to the local collection.
// If the id is no longer present the collection is left unchanged and a
// consistency warning is logged; ids are server-assigned and immutable, so
// this should not happen.
func (s *Store[T]) ApplyUpdate(ctx context.Context, confirmed T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.items {
		if item.Key() == confirmed.Key() {
			s.items[i] = confirmed
			return
		}
	}
	s.logger.Warn(ctx, "confirmed update targets unknown id", "id", confirmed.Key())
}

// Locked runs fn while holding the write lock for id. Callers composing a
// read-check-write sequence (guard, network call, apply) use this so a
// concurrent writer cannot interleave between the check and the apply.
// fn must not call Update or Delete for the same id.
func (s *Store[T]) Locked(id string, fn func() error) error {
	unlock := s.lockKey(id)
	defer unlock()
	return fn()
}

// lockKey serializes writes per entity id. The returned func releases the
// lock and drops the entry once no writer holds it.
func (s *Store[T]) lockKey(id string) func() {
	s.keyMu.Lock()
	l, ok := s.keys[id]
	if !ok {
		l = &keyLock{}
		s.keys[id] = l
	}
	l.refs++
	s.keyMu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.keyMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.keys, id)
		}
		s.keyMu.Unlock()
	}
}
