// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// store_test.go runs PGTable against a real PostgreSQL database. Tests are
// skipped if PostgreSQL is not available.
package store_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/database"
	"folio/internal/models"
	"folio/internal/store"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "folio")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "folio")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testPool connects to the test database and runs migrations. If the
// database is unavailable, the test is skipped.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pool, err := database.Connect(context.Background(), testDSN())
	if err != nil {
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}
	t.Cleanup(pool.Close)

	require.NoError(t, database.Migrate(pool), "run migrations")
	return pool
}

func TestPGTableLifecycle(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	skills := store.NewTables(pool).Skills

	created, err := skills.Insert(ctx, store.SkillToRecord(models.Skill{
		Name: "Erlang", Category: "Backend", Level: 60, OrderIndex: 900,
	}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = skills.Delete(context.Background(), created.ID) })

	assert.NotEmpty(t, created.ID, "id comes from the column default")
	assert.False(t, created.CreatedAt.IsZero())

	got, err := skills.Single(ctx, store.Where("id", created.ID))
	require.NoError(t, err)
	assert.Equal(t, "Erlang", got.Name)

	got.Level = 75
	updated, err := skills.Update(ctx, created.ID, got)
	require.NoError(t, err)
	assert.Equal(t, 75, updated.Level)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt), "update keeps created_at")

	require.NoError(t, skills.Delete(ctx, created.ID))
	_, err = skills.Single(ctx, store.Where("id", created.ID))
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPGTableMissingRows(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	education := store.NewTables(pool).Education

	_, err := education.Update(ctx, "does-not-exist", store.EducationRecord{Degree: "PhD"})
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = education.Delete(ctx, "does-not-exist")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPGTableSelectOrderAndFilter(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	projects := store.NewTables(pool).Projects

	category := "backend"
	marker := "store-test-" + time.Now().Format("150405.000000")
	for i, title := range []string{"first", "second"} {
		rec, err := projects.Insert(ctx, store.ProjectToRecord(models.Project{
			Title:     title,
			Slug:      marker,
			Category:  models.ProjectCategory(category),
			Analytics: models.ProjectAnalytics{LinesOfCode: i + 1, Uptime: "99%"},
			CreatedAt: time.Now().Add(time.Duration(i) * time.Minute),
		}))
		require.NoError(t, err)
		t.Cleanup(func() { _ = projects.Delete(context.Background(), rec.ID) })
	}

	rows, err := projects.Select(ctx, store.Where("slug", marker).OrderBy(store.Desc("created_at")))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "second", rows[0].Title)
	assert.Equal(t, 2, rows[0].Analytics.LinesOfCode, "analytics round trips through jsonb")
	assert.NotNil(t, rows[1].Tech)
}

func TestPGTableUpsert(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	resume := store.NewTables(pool).Resume

	first, err := resume.Upsert(ctx, store.ResumeRecord{FileURL: "a.pdf", FileName: "a.pdf"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = resume.Delete(context.Background(), first.ID) })

	second, err := resume.Upsert(ctx, store.ResumeRecord{ID: first.ID, FileURL: "b.pdf", FileName: "b.pdf"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "b.pdf", second.FileURL)
	assert.True(t, first.CreatedAt.Equal(second.CreatedAt), "upsert keeps created_at")
}

func TestPGTableNullablePublishedAt(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	posts := store.NewTables(pool).BlogPosts

	draft, err := posts.Insert(ctx, store.BlogPostToRecord(models.BlogPost{Title: "Draft"}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = posts.Delete(context.Background(), draft.ID) })

	assert.Nil(t, draft.PublishedAt)
	assert.False(t, draft.IsPublished)
}
