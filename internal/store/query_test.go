// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSelect(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		sql, args := buildSelect("skills", []string{"id", "name"}, Query{})
		assert.Equal(t, `SELECT "id", "name" FROM "skills"`, sql)
		assert.Empty(t, args)
	})

	t.Run("filters order and limit", func(t *testing.T) {
		q := Where("slug", "hello").Eq("is_published", true).
			OrderBy(Desc("created_at"), Asc("title")).Limit(5)
		sql, args := buildSelect("blog_posts", []string{"id"}, q)
		assert.Equal(t,
			`SELECT "id" FROM "blog_posts" WHERE "slug" = $1 AND "is_published" = $2 ORDER BY "created_at" DESC, "title" ASC LIMIT 5`,
			sql)
		assert.Equal(t, []any{"hello", true}, args)
	})

	t.Run("identifiers are quoted", func(t *testing.T) {
		sql, _ := buildSelect(`evil"; DROP TABLE x; --`, []string{"id"}, Query{})
		assert.Equal(t, `SELECT "id" FROM "evil""; DROP TABLE x; --"`, sql)
	})
}

func TestQueryIsImmutable(t *testing.T) {
	base := Where("category", "backend")
	a := base.Eq("is_featured", true)
	b := base.OrderBy(Desc("created_at"))

	assert.Len(t, base.filters, 1)
	assert.Len(t, a.filters, 2)
	assert.Len(t, b.filters, 1)
	assert.Empty(t, base.orders)
}

func TestBuildWrites(t *testing.T) {
	cols := []string{"name", "level"}
	ret := []string{"id", "name", "level"}

	assert.Equal(t,
		`INSERT INTO "skills" ("name", "level") VALUES ($1, $2) RETURNING "id", "name", "level"`,
		buildInsert("skills", cols, ret))
	assert.Equal(t,
		`UPDATE "skills" SET "name" = $1, "level" = $2 WHERE "id" = $3 RETURNING "id", "name", "level"`,
		buildUpdate("skills", cols, ret))
	assert.Equal(t,
		`INSERT INTO "hero" ("id", "name") VALUES ($1, $2) ON CONFLICT ("id") DO UPDATE SET "name" = EXCLUDED."name" RETURNING "id", "name"`,
		buildUpsert("hero", []string{"id", "name"}, []string{"id", "name"}))
	assert.Equal(t, `DELETE FROM "skills" WHERE "id" = $1`, buildDelete("skills"))
}

func TestRecordValues(t *testing.T) {
	cols := columnsOf(reflect.TypeFor[SkillRecord]())
	require.Equal(t, []string{"id", "name", "category", "level", "icon", "order_index", "created_at"}, columnNames(cols))

	t.Run("insert skips empty id and zero created_at", func(t *testing.T) {
		names, vals := recordValues(cols, SkillRecord{Name: "Go", Level: 90}, writeInsert)
		assert.Equal(t, []string{"name", "category", "level", "icon", "order_index"}, names)
		assert.Equal(t, []any{"Go", "", 90, "", 0}, vals)
	})

	t.Run("insert keeps explicit id and created_at", func(t *testing.T) {
		ts := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		names, _ := recordValues(cols, SkillRecord{ID: "7", Name: "Go", CreatedAt: ts}, writeInsert)
		assert.Contains(t, names, "id")
		assert.Contains(t, names, "created_at")
	})

	t.Run("update never writes id or created_at", func(t *testing.T) {
		names, _ := recordValues(cols, SkillRecord{ID: "7", CreatedAt: time.Now()}, writeUpdate)
		assert.NotContains(t, names, "id")
		assert.NotContains(t, names, "created_at")
	})
}
