package memory

import (
	"context"
	"sync"
	"time"
)

// Hooks let a Collection stamp ids and timestamps onto value-typed records
// without knowing their field layout.
type Hooks[T any] struct {
	// AssignID returns the record with its id set. Required.
	AssignID func(rec T, id int64) T
	// Stamp returns the record with its creation time set. Optional.
	Stamp func(rec T, now time.Time) T
	// Touch returns the record with its last-modified time refreshed,
	// applied after every successful update. Optional.
	Touch func(rec T, now time.Time) T
}

// Collection is a mutex-guarded map of records keyed by int64 id. Ids are
// assigned from a monotonic counter starting at 1 and are never reused, even
// after deletes. Scans iterate in insertion order.
type Collection[T any] struct {
	mu    sync.RWMutex
	next  int64
	order []int64
	items map[int64]T
	hooks Hooks[T]
	now   func() time.Time
}

func NewCollection[T any](hooks Hooks[T]) *Collection[T] {
	return &Collection[T]{
		next:  1,
		items: make(map[int64]T),
		hooks: hooks,
		now:   time.Now,
	}
}

// Get reports absence as ok=false, never as an error.
func (c *Collection[T]) Get(_ context.Context, id int64) (T, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.items[id]
	return rec, ok, nil
}

// List returns records matching pred in insertion order. A nil pred matches
// everything.
func (c *Collection[T]) List(_ context.Context, pred func(T) bool) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		rec, ok := c.items[id]
		if !ok {
			continue
		}
		if pred == nil || pred(rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (c *Collection[T]) Create(_ context.Context, rec T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.next
	c.next++

	rec = c.hooks.AssignID(rec, id)
	if c.hooks.Stamp != nil {
		rec = c.hooks.Stamp(rec, c.now())
	}
	c.items[id] = rec
	c.order = append(c.order, id)
	return rec, nil
}

// Update merges via apply and refreshes the last-modified stamp. Absence is
// ok=false, not an error.
func (c *Collection[T]) Update(ctx context.Context, id int64, apply func(T) T) (T, bool, error) {
	return c.Apply(ctx, id, func(rec T) (T, error) {
		return apply(rec), nil
	})
}

// Apply runs fn against the record under the collection lock; an error from
// fn aborts the mutation and leaves the record unchanged.
func (c *Collection[T]) Apply(_ context.Context, id int64, fn func(T) (T, error)) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false, nil
	}

	next, err := fn(rec)
	if err != nil {
		var zero T
		return zero, true, err
	}
	if c.hooks.Touch != nil {
		next = c.hooks.Touch(next, c.now())
	}
	c.items[id] = next
	return next, true, nil
}

// Delete is idempotent: the second call for the same id reports false.
func (c *Collection[T]) Delete(_ context.Context, id int64) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return false, nil
	}
	delete(c.items, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true, nil
}
