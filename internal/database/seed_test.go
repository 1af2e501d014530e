// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"context"
	"testing"

	"folio/internal/memstore"
)

func TestSeedIdempotent(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	data, err := memstore.New()
	if err != nil {
		t.Fatalf("memstore.New: %v", err)
	}

	// We don't clear the database first because other test packages may be
	// running concurrently against the same database.
	if _, err := Seed(ctx, pool, data); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	seeded, err := Seed(ctx, pool, data)
	if err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	if len(seeded) != 0 {
		t.Errorf("second Seed wrote tables %v, want none", seeded)
	}

	for _, table := range []string{"hero", "skills", "projects", "blog_posts"} {
		var n int
		if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if n < 1 {
			t.Errorf("expected rows in %s, got %d", table, n)
		}
	}
}
