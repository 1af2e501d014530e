// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package memstore

import (
	"slices"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator returns an identity for a record created locally. n is the
// collection length before the insert.
type IDGenerator func(n int) string

// SequentialIDs numbers records len+1. Collection.Insert moves on to the
// next number while the candidate is taken.
func SequentialIDs(n int) string {
	return strconv.Itoa(n + 1)
}

// RandomIDs assigns a random UUID and never collides.
func RandomIDs(int) string {
	return uuid.NewString()
}

// Collection is an ordered, mutex-guarded list of records. It offers no
// transactions: concurrent writers interleave and the last write wins.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
	id    func(*T) *string
}

// NewCollection returns a collection holding a copy of items. id returns a
// pointer to a record's identity field.
func NewCollection[T any](id func(*T) *string, items []T) *Collection[T] {
	c := &Collection[T]{id: id}
	c.Set(items)
	return c
}

// All returns a snapshot of the records in collection order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Find returns the first record with the given id.
func (c *Collection[T]) Find(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.items {
		if *c.id(&c.items[i]) == id {
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}

// Insert assigns item an unused id from gen and adds it at the front
// (prepend) or the back of the collection. It returns the stored record.
func (c *Collection[T]) Insert(item T, gen IDGenerator, prepend bool) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	for n := len(c.items); ; n++ {
		id := gen(n)
		if c.indexLocked(id) < 0 {
			*c.id(&item) = id
			break
		}
	}
	if prepend {
		c.items = append([]T{item}, c.items...)
	} else {
		c.items = append(c.items, item)
	}
	return item
}

// Replace overwrites the first record with the given id, keeping that id.
// It reports whether a record was found.
func (c *Collection[T]) Replace(id string, item T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if *c.id(&c.items[i]) == id {
			*c.id(&item) = id
			c.items[i] = item
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Remove deletes the first record with the given id and returns how many
// were removed, 0 or 1.
func (c *Collection[T]) Remove(id string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexLocked(id)
	if i < 0 {
		return 0
	}
	c.items = slices.Delete(c.items, i, i+1)
	return 1
}

func (c *Collection[T]) indexLocked(id string) int {
	return slices.IndexFunc(c.items, func(item T) bool {
		return *c.id(&item) == id
	})
}

// Set replaces the whole collection with a copy of items.
func (c *Collection[T]) Set(items []T) {
	cp := make([]T, len(items))
	copy(cp, items)
	c.mu.Lock()
	c.items = cp
	c.mu.Unlock()
}

// Value holds a singleton record.
type Value[T any] struct {
	mu sync.RWMutex
	v  T
}

// NewValue returns a Value holding v.
func NewValue[T any](v T) *Value[T] {
	return &Value[T]{v: v}
}

// Get returns the current record.
func (s *Value[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v
}

// Set replaces the record.
func (s *Value[T]) Set(v T) {
	s.mu.Lock()
	s.v = v
	s.mu.Unlock()
}
