// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"folio/internal/memstore"
	"folio/internal/store"
)

// Seed copies the fallback dataset's site content into every remote table
// that is still empty, in a single transaction. The contact and appointment
// inboxes are never seeded. Tables that already hold rows are left
// alone, so Seed is safe to run repeatedly. It returns the names of the
// tables it filled.
func Seed(ctx context.Context, pool *pgxpool.Pool, data *memstore.Dataset) ([]string, error) {
	var seeded []string
	err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		t := store.NewTables(tx)
		steps := []func() (string, error){
			func() (string, error) {
				return seedRows(ctx, t.Hero, one(data.Hero.Get()), store.HeroToRecord)
			},
			func() (string, error) {
				return seedRows(ctx, t.About, one(data.About.Get()), store.AboutToRecord)
			},
			func() (string, error) {
				return seedRows(ctx, t.ProfileImage, one(data.ProfileImage.Get()), store.ProfileImageToRecord)
			},
			func() (string, error) {
				return seedRows(ctx, t.Resume, one(data.Resume.Get()), store.ResumeToRecord)
			},
			func() (string, error) {
				return seedRows(ctx, t.Experiences, data.Experiences.All(), store.ExperienceToRecord)
			},
			func() (string, error) {
				return seedRows(ctx, t.Education, data.Education.All(), store.EducationToRecord)
			},
			func() (string, error) {
				return seedRows(ctx, t.Projects, data.Projects.All(), store.ProjectToRecord)
			},
			func() (string, error) {
				return seedRows(ctx, t.BlogPosts, data.BlogPosts.All(), store.BlogPostToRecord)
			},
			func() (string, error) {
				return seedRows(ctx, t.Skills, data.Skills.All(), store.SkillToRecord)
			},
		}
		for _, step := range steps {
			name, err := step()
			if err != nil {
				return err
			}
			if name != "" {
				seeded = append(seeded, name)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	if len(seeded) == 0 {
		slog.Info("database already seeded, skipping")
	} else {
		slog.Info("database seeded from fallback dataset", "tables", seeded)
	}
	return seeded, nil
}

// seedRows inserts items into table when it has no rows. It returns the
// table name when rows were written.
func seedRows[T, W any](ctx context.Context, table store.Table[W], items []T, toWire func(T) W) (string, error) {
	existing, err := table.Select(ctx, store.Query{}.Limit(1))
	if err != nil {
		return "", err
	}
	if len(existing) > 0 || len(items) == 0 {
		return "", nil
	}
	for _, item := range items {
		if _, err := table.Insert(ctx, toWire(item)); err != nil {
			return "", err
		}
	}
	return table.Name(), nil
}

func one[T any](v T) []T { return []T{v} }
