// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store is the remote side of the data layer: one PostgreSQL table
// per entity, accessed through a small query-builder client. Rows travel as
// wire records whose field names follow the database columns; the mapping
// functions in this package convert them to and from the application models.
package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when a single-row operation matched nothing.
	ErrNotFound = errors.New("store: record not found")

	// ErrNotConfigured is returned by callers that have no remote table at
	// all (no database configured or reachable at startup).
	ErrNotConfigured = errors.New("store: remote store not configured")
)

// Table is the query-builder surface of one remote table. W is the wire
// record type.
type Table[W any] interface {
	// Name returns the table name.
	Name() string
	// Select returns all rows matching q.
	Select(ctx context.Context, q Query) ([]W, error)
	// Single returns the first row matching q, or ErrNotFound.
	Single(ctx context.Context, q Query) (W, error)
	// Insert stores rec and returns the row as written.
	Insert(ctx context.Context, rec W) (W, error)
	// Update replaces the row with the given id, or returns ErrNotFound.
	Update(ctx context.Context, id string, rec W) (W, error)
	// Upsert inserts rec or replaces the row with the same id.
	Upsert(ctx context.Context, rec W) (W, error)
	// Delete removes the row with the given id, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PGTable implements Table on PostgreSQL.
type PGTable[W any] struct {
	db      Querier
	name    string
	columns []column
}

// NewTable returns a PGTable for the named table. W must be a struct whose
// fields carry `db` tags naming the columns; it must include an "id" column.
func NewTable[W any](db Querier, name string) *PGTable[W] {
	return &PGTable[W]{db: db, name: name, columns: columnsOf(reflect.TypeFor[W]())}
}

// Name returns the table name.
func (t *PGTable[W]) Name() string { return t.name }

// Select returns all rows matching q.
func (t *PGTable[W]) Select(ctx context.Context, q Query) ([]W, error) {
	sql, args := buildSelect(t.name, columnNames(t.columns), q)
	rows, err := t.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", t.name, err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[W])
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", t.name, err)
	}
	return items, nil
}

// Single returns the first row matching q.
func (t *PGTable[W]) Single(ctx context.Context, q Query) (W, error) {
	sql, args := buildSelect(t.name, columnNames(t.columns), q.Limit(1))
	rows, err := t.db.Query(ctx, sql, args...)
	if err != nil {
		var zero W
		return zero, fmt.Errorf("select %s: %w", t.name, err)
	}
	return t.collectOne(rows, "select")
}

// Insert stores rec. An empty id or zero created_at is left to the column
// defaults.
func (t *PGTable[W]) Insert(ctx context.Context, rec W) (W, error) {
	cols, vals := recordValues(t.columns, rec, writeInsert)
	sql := buildInsert(t.name, cols, columnNames(t.columns))
	rows, err := t.db.Query(ctx, sql, vals...)
	if err != nil {
		var zero W
		return zero, fmt.Errorf("insert %s: %w", t.name, err)
	}
	return t.collectOne(rows, "insert")
}

// Update replaces every column except id and created_at.
func (t *PGTable[W]) Update(ctx context.Context, id string, rec W) (W, error) {
	cols, vals := recordValues(t.columns, rec, writeUpdate)
	sql := buildUpdate(t.name, cols, columnNames(t.columns))
	rows, err := t.db.Query(ctx, sql, append(vals, id)...)
	if err != nil {
		var zero W
		return zero, fmt.Errorf("update %s: %w", t.name, err)
	}
	return t.collectOne(rows, "update")
}

// Upsert inserts rec, replacing the existing row on id conflict.
func (t *PGTable[W]) Upsert(ctx context.Context, rec W) (W, error) {
	cols, vals := recordValues(t.columns, rec, writeInsert)
	sql := buildUpsert(t.name, cols, columnNames(t.columns))
	rows, err := t.db.Query(ctx, sql, vals...)
	if err != nil {
		var zero W
		return zero, fmt.Errorf("upsert %s: %w", t.name, err)
	}
	return t.collectOne(rows, "upsert")
}

// Delete removes the row with the given id.
func (t *PGTable[W]) Delete(ctx context.Context, id string) error {
	tag, err := t.db.Exec(ctx, buildDelete(t.name), id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", t.name, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete %s %s: %w", t.name, id, ErrNotFound)
	}
	return nil
}

func (t *PGTable[W]) collectOne(rows pgx.Rows, op string) (W, error) {
	rec, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[W])
	if errors.Is(err, pgx.ErrNoRows) {
		return rec, fmt.Errorf("%s %s: %w", op, t.name, ErrNotFound)
	}
	if err != nil {
		return rec, fmt.Errorf("%s %s: %w", op, t.name, err)
	}
	return rec, nil
}
