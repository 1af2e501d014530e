// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package service

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"folio/internal/memstore"
	"folio/internal/store"
)

// CollectionConfig wires one collection entity to its remote table and its
// fallback data.
type CollectionConfig[T, W any] struct {
	Entity string // log and metric label, e.g. "projects"
	Label  string // human name used in notices, e.g. "Project"

	Remote   store.Table[W] // nil when no remote store is configured
	Local    *memstore.Collection[T]
	ToWire   func(T) W
	FromWire func(W) T

	ID        func(*T) *string
	CreatedAt func(*T) *time.Time

	// Order is the remote listing order.
	Order []store.Order
	// SortLocal, when set, orders fallback listings.
	SortLocal func(a, b T) int
	// Prepend puts locally created records first instead of last.
	Prepend bool
	// SubstituteEmpty serves the fallback data when a remote listing
	// succeeds with no rows.
	SubstituteEmpty bool

	Retry   RetryPolicy
	IDs     memstore.IDGenerator
	Metrics *Metrics
	Now     func() time.Time
}

// Collection is the resilient CRUD surface of one collection entity. Every
// operation tries the remote table first and falls back to the local
// dataset on any failure. The exported List/Get/Create/Update/Delete never
// fail.
type Collection[T, W any] struct {
	cfg CollectionConfig[T, W]
}

// NewCollection returns a Collection for cfg.
func NewCollection[T, W any](cfg CollectionConfig[T, W]) *Collection[T, W] {
	if cfg.IDs == nil {
		cfg.IDs = memstore.SequentialIDs
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Collection[T, W]{cfg: cfg}
}

// Entity returns the entity label.
func (c *Collection[T, W]) Entity() string { return c.cfg.Entity }

// List returns every record, from the remote table when possible.
func (c *Collection[T, W]) List(ctx context.Context) []T {
	return c.ListResult(ctx).Value
}

// ListResult is List with the outcome attached.
func (c *Collection[T, W]) ListResult(ctx context.Context) Result[[]T] {
	return c.Select(ctx, "list", store.Query{}, nil, c.cfg.SubstituteEmpty)
}

// Select runs a filtered read. q carries the remote filters (the configured
// order is appended); match applies the same filter to the fallback data and
// may be nil. substitute controls whether an empty remote result is replaced
// by the fallback data.
func (c *Collection[T, W]) Select(ctx context.Context, op string, q store.Query, match func(T) bool, substitute bool) Result[[]T] {
	if c.cfg.Remote == nil {
		return c.localList(op, match, KindUnavailable, store.ErrNotConfigured)
	}

	var recs []W
	err := c.cfg.Retry.do(ctx, func(ctx context.Context, attempt int) error {
		var err error
		recs, err = c.cfg.Remote.Select(ctx, q.OrderBy(c.cfg.Order...))
		c.cfg.Metrics.remoteAttempt(c.cfg.Entity, op, err)
		if err != nil && c.cfg.Retry.Attempts > 1 {
			slog.Debug("remote read attempt failed",
				"entity", c.cfg.Entity, "op", op, "attempt", attempt, "error", err)
		}
		return err
	})
	if err != nil {
		return c.localList(op, match, classify(err), err)
	}

	if len(recs) == 0 && substitute {
		slog.Info("remote returned no rows, serving fallback data",
			"entity", c.cfg.Entity, "op", op)
		return c.localList(op, match, KindEmpty, nil)
	}

	items := make([]T, len(recs))
	for i, r := range recs {
		items[i] = c.cfg.FromWire(r)
	}
	return remote(items)
}

func (c *Collection[T, W]) localList(op string, match func(T) bool, kind ErrorKind, err error) Result[[]T] {
	if err != nil {
		slog.Warn("remote read failed, serving fallback data",
			"entity", c.cfg.Entity, "op", op, "kind", kind.String(), "error", err)
	}
	c.cfg.Metrics.fallback(c.cfg.Entity, op, kind)

	all := c.cfg.Local.All()
	items := make([]T, 0, len(all))
	for _, item := range all {
		if match == nil || match(item) {
			items = append(items, item)
		}
	}
	if c.cfg.SortLocal != nil {
		slices.SortStableFunc(items, c.cfg.SortLocal)
	}
	return fallback(items, kind, err)
}

// Get returns the record with the given id and whether it exists.
func (c *Collection[T, W]) Get(ctx context.Context, id string) (T, bool) {
	r := c.GetResult(ctx, id)
	return r.Value, r.Kind != KindNotFound
}

// GetResult is Get with the outcome attached.
func (c *Collection[T, W]) GetResult(ctx context.Context, id string) Result[T] {
	return c.Find(ctx, "get", store.Where("id", id), func(item T) bool {
		return *c.cfg.ID(&item) == id
	})
}

// Find returns the first record matching q remotely, or match locally.
func (c *Collection[T, W]) Find(ctx context.Context, op string, q store.Query, match func(T) bool) Result[T] {
	var err error
	if c.cfg.Remote == nil {
		err = store.ErrNotConfigured
	} else {
		var rec W
		err = c.cfg.Retry.do(ctx, func(ctx context.Context, _ int) error {
			var err error
			rec, err = c.cfg.Remote.Single(ctx, q.OrderBy(c.cfg.Order...))
			c.cfg.Metrics.remoteAttempt(c.cfg.Entity, op, err)
			return err
		})
		if err == nil {
			return remote(c.cfg.FromWire(rec))
		}
	}

	kind := classify(err)
	if kind != KindNotFound {
		slog.Warn("remote read failed, searching fallback data",
			"entity", c.cfg.Entity, "op", op, "kind", kind.String(), "error", err)
	}
	c.cfg.Metrics.fallback(c.cfg.Entity, op, kind)

	for _, item := range c.cfg.Local.All() {
		if !match(item) {
			continue
		}
		// The remote answered without the record; the local copy stands in
		// for it the way fallback rows stand in for an empty listing, so
		// Get agrees with Update and Delete on the same id.
		if kind == KindNotFound {
			return fallback(item, KindEmpty, nil)
		}
		return fallback(item, kind, err)
	}
	var zero T
	return fallback(zero, KindNotFound, err)
}

// Create stores item and always reports success.
func (c *Collection[T, W]) Create(ctx context.Context, item T) (T, Notice) {
	return c.CreateResult(ctx, item).Value, successNotice(c.cfg.Label, "created")
}

// CreateResult is Create with the outcome attached. On remote failure the
// record gets a locally synthesized id.
func (c *Collection[T, W]) CreateResult(ctx context.Context, item T) Result[T] {
	*c.cfg.ID(&item) = ""

	var err error
	if c.cfg.Remote == nil {
		err = store.ErrNotConfigured
	} else {
		var rec W
		rec, err = c.cfg.Remote.Insert(ctx, c.cfg.ToWire(item))
		c.cfg.Metrics.remoteAttempt(c.cfg.Entity, "create", err)
		if err == nil {
			return remote(c.cfg.FromWire(rec))
		}
	}

	kind := classify(err)
	if ts := c.cfg.CreatedAt(&item); ts.IsZero() {
		*ts = c.cfg.Now().UTC()
	}
	stored := c.cfg.Local.Insert(item, c.cfg.IDs, c.cfg.Prepend)
	slog.Warn("remote create failed, stored in fallback data",
		"entity", c.cfg.Entity, "id", *c.cfg.ID(&stored), "kind", kind.String(), "error", err)
	c.cfg.Metrics.fallback(c.cfg.Entity, "create", kind)
	return fallback(stored, kind, err)
}

// Update replaces the record with the given id and always reports success,
// including when no such record exists.
func (c *Collection[T, W]) Update(ctx context.Context, id string, item T) (T, Notice) {
	return c.UpdateResult(ctx, id, item).Value, successNotice(c.cfg.Label, "updated")
}

// UpdateResult is Update with the outcome attached. A fallback update of an
// unknown id changes nothing and reports KindNotFound.
func (c *Collection[T, W]) UpdateResult(ctx context.Context, id string, item T) Result[T] {
	*c.cfg.ID(&item) = id

	var err error
	if c.cfg.Remote == nil {
		err = store.ErrNotConfigured
	} else {
		var rec W
		rec, err = c.cfg.Remote.Update(ctx, id, c.cfg.ToWire(item))
		c.cfg.Metrics.remoteAttempt(c.cfg.Entity, "update", err)
		if err == nil {
			return remote(c.cfg.FromWire(rec))
		}
	}

	kind := classify(err)
	c.cfg.Metrics.fallback(c.cfg.Entity, "update", kind)

	existing, ok := c.cfg.Local.Find(id)
	if !ok {
		slog.Warn("remote update failed and record is not in fallback data",
			"entity", c.cfg.Entity, "id", id, "error", err)
		var zero T
		return fallback(zero, KindNotFound, err)
	}
	if ts := c.cfg.CreatedAt(&item); ts.IsZero() {
		*ts = *c.cfg.CreatedAt(&existing)
	}
	stored, ok := c.cfg.Local.Replace(id, item)
	if !ok {
		// Removed concurrently between Find and Replace.
		var zero T
		return fallback(zero, KindNotFound, err)
	}
	slog.Warn("remote update failed, applied to fallback data",
		"entity", c.cfg.Entity, "id", id, "kind", kind.String(), "error", err)
	return fallback(stored, kind, err)
}

// Delete removes the record with the given id and always reports success.
func (c *Collection[T, W]) Delete(ctx context.Context, id string) Notice {
	c.DeleteResult(ctx, id)
	return successNotice(c.cfg.Label, "deleted")
}

// DeleteResult is Delete with the outcome attached; the value is the number
// of records removed.
func (c *Collection[T, W]) DeleteResult(ctx context.Context, id string) Result[int] {
	var err error
	if c.cfg.Remote == nil {
		err = store.ErrNotConfigured
	} else {
		err = c.cfg.Remote.Delete(ctx, id)
		c.cfg.Metrics.remoteAttempt(c.cfg.Entity, "delete", err)
		if err == nil {
			return remote(1)
		}
	}

	kind := classify(err)
	c.cfg.Metrics.fallback(c.cfg.Entity, "delete", kind)
	removed := c.cfg.Local.Remove(id)
	slog.Warn("remote delete failed, applied to fallback data",
		"entity", c.cfg.Entity, "id", id, "removed", removed, "kind", kind.String(), "error", err)
	if removed == 0 {
		return fallback(0, KindNotFound, err)
	}
	return fallback(removed, kind, err)
}
