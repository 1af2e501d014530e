// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package service

import (
	"context"
	"log/slog"
	"time"

	"folio/internal/memstore"
	"folio/internal/store"
)

// SingletonConfig wires a singleton entity (at most one logical record) to
// its remote table and fallback value.
type SingletonConfig[T, W any] struct {
	Entity string
	Label  string

	Remote   store.Table[W]
	Local    *memstore.Value[T]
	ToWire   func(T) W
	FromWire func(W) T

	ID        func(*T) *string
	CreatedAt func(*T) *time.Time

	Metrics *Metrics
	Now     func() time.Time
}

// Singleton is the resilient get/upsert surface of a singleton entity. The
// newest remote row is the current record; when the table is empty or
// unreachable the fallback value is served.
type Singleton[T, W any] struct {
	cfg SingletonConfig[T, W]
}

// NewSingleton returns a Singleton for cfg.
func NewSingleton[T, W any](cfg SingletonConfig[T, W]) *Singleton[T, W] {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Singleton[T, W]{cfg: cfg}
}

// Entity returns the entity label.
func (s *Singleton[T, W]) Entity() string { return s.cfg.Entity }

// Get returns the current record.
func (s *Singleton[T, W]) Get(ctx context.Context) T {
	return s.GetResult(ctx).Value
}

// GetResult is Get with the outcome attached.
func (s *Singleton[T, W]) GetResult(ctx context.Context) Result[T] {
	var err error
	if s.cfg.Remote == nil {
		err = store.ErrNotConfigured
	} else {
		var rec W
		rec, err = s.cfg.Remote.Single(ctx, store.NewestFirst)
		s.cfg.Metrics.remoteAttempt(s.cfg.Entity, "get", err)
		if err == nil {
			return remote(s.cfg.FromWire(rec))
		}
	}

	kind := classify(err)
	if kind == KindNotFound {
		kind = KindEmpty
		slog.Info("remote has no record, serving fallback data", "entity", s.cfg.Entity)
	} else {
		slog.Warn("remote read failed, serving fallback data",
			"entity", s.cfg.Entity, "kind", kind.String(), "error", err)
	}
	s.cfg.Metrics.fallback(s.cfg.Entity, "get", kind)
	return fallback(s.cfg.Local.Get(), kind, err)
}

// Update upserts the record and always reports success.
func (s *Singleton[T, W]) Update(ctx context.Context, item T) (T, Notice) {
	return s.UpdateResult(ctx, item).Value, successNotice(s.cfg.Label, "saved")
}

// UpdateResult is Update with the outcome attached. Without an id the
// current remote row is replaced, or a new one inserted if there is none.
func (s *Singleton[T, W]) UpdateResult(ctx context.Context, item T) Result[T] {
	var err error
	if s.cfg.Remote == nil {
		err = store.ErrNotConfigured
	} else {
		if *s.cfg.ID(&item) == "" {
			if cur, err := s.cfg.Remote.Single(ctx, store.NewestFirst); err == nil {
				*s.cfg.ID(&item) = *s.cfg.ID(ptr(s.cfg.FromWire(cur)))
			}
		}
		var rec W
		rec, err = s.cfg.Remote.Upsert(ctx, s.cfg.ToWire(item))
		s.cfg.Metrics.remoteAttempt(s.cfg.Entity, "upsert", err)
		if err == nil {
			return remote(s.cfg.FromWire(rec))
		}
	}

	kind := classify(err)
	cur := s.cfg.Local.Get()
	if *s.cfg.ID(&item) == "" {
		*s.cfg.ID(&item) = *s.cfg.ID(&cur)
	}
	if ts := s.cfg.CreatedAt(&item); ts.IsZero() {
		if prev := *s.cfg.CreatedAt(&cur); !prev.IsZero() {
			*ts = prev
		} else {
			*ts = s.cfg.Now().UTC()
		}
	}
	s.cfg.Local.Set(item)
	slog.Warn("remote upsert failed, stored in fallback data",
		"entity", s.cfg.Entity, "kind", kind.String(), "error", err)
	s.cfg.Metrics.fallback(s.cfg.Entity, "upsert", kind)
	return fallback(item, kind, err)
}

func ptr[T any](v T) *T { return &v }
