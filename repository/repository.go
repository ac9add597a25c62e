package repository

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"dentalpro-backend/models"
)

// ErrNotFound is returned when a referenced entity does not exist.
var ErrNotFound = errors.New("entity not found")

// Entity is the contract every stored type satisfies: metadata access,
// metadata replacement, and a deep copy. Meta is promoted from models.Base;
// WithMeta and Clone are small per-type value methods.
type Entity[T any] interface {
	Meta() models.Base
	WithMeta(models.Base) T
	Clone() T
}

// Options carries the injected collaborators: a clock and an id generator.
// Both default to the real thing; tests swap them for deterministic values.
type Options struct {
	Clock func() time.Time
	NewID func() string
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = time.Now
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	return o
}

// Collection is an in-memory store keyed by id. Every returned entity is a
// defensive copy, and Update applies its mutation under the collection lock
// so read-modify-write on a single entity cannot lose updates.
type Collection[T Entity[T]] struct {
	mu    sync.RWMutex
	items map[string]T
	clock func() time.Time
	newID func() string
}

func NewCollection[T Entity[T]](opts Options) *Collection[T] {
	opts = opts.withDefaults()
	return &Collection[T]{
		items: make(map[string]T),
		clock: opts.Clock,
		newID: opts.NewID,
	}
}

// Create stores a copy of e with a fresh id and timestamps. Whatever
// metadata the caller set is discarded.
func (c *Collection[T]) Create(e T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.clock()
	stored := e.Clone().WithMeta(models.Base{
		ID:        c.newID(),
		CreatedAt: now,
		UpdatedAt: now,
	})
	c.items[stored.Meta().ID] = stored
	return stored.Clone(), nil
}

// Update applies mutate to a copy of the stored entity and writes it back.
// The id and creation timestamp cannot be changed by the mutation; the
// update timestamp is refreshed.
func (c *Collection[T]) Update(id string, mutate func(*T)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	existing, ok := c.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	draft := existing.Clone()
	mutate(&draft)
	meta := existing.Meta()
	meta.UpdatedAt = c.clock()
	draft = draft.WithMeta(meta)
	c.items[id] = draft
	return draft.Clone(), nil
}

// Delete removes the entity. Deleting an absent id is a no-op.
func (c *Collection[T]) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, id)
	return nil
}

func (c *Collection[T]) FindByID(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return item.Clone(), nil
}

func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item.Clone())
	}
	return out
}

// Filter returns copies of all entities matching pred.
func (c *Collection[T]) Filter(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []T
	for _, item := range c.items {
		if pred(item) {
			out = append(out, item.Clone())
		}
	}
	return out
}

// Find returns the first entity matching pred, or ErrNotFound.
func (c *Collection[T]) Find(pred func(T) bool) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if pred(item) {
			return item.Clone(), nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

func (c *Collection[T]) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Load replaces the whole collection atomically, keeping the metadata the
// records already carry. Used by backup restore and the SQLite snapshot.
func (c *Collection[T]) Load(items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	replacement := make(map[string]T, len(items))
	for _, item := range items {
		replacement[item.Meta().ID] = item.Clone()
	}
	c.items = replacement
	return nil
}
