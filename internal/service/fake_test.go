// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"folio/internal/memstore"
	"folio/internal/store"
)

var errRemote = errors.New("connection refused")

// fakeTable is an in-test store.Table. When err is set every operation
// fails with it; selectFailures makes only the first reads fail.
type fakeTable[W any] struct {
	mu             sync.Mutex
	name           string
	rows           []W
	err            error
	selectFailures int
	selectCalls    int
	writes         int
}

func (f *fakeTable[W]) Name() string { return f.name }

func (f *fakeTable[W]) read() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.selectCalls++
	if f.err != nil {
		return f.err
	}
	if f.selectCalls <= f.selectFailures {
		return errRemote
	}
	return nil
}

func (f *fakeTable[W]) write() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	return f.err
}

func (f *fakeTable[W]) Select(ctx context.Context, q store.Query) ([]W, error) {
	if err := f.read(); err != nil {
		return nil, err
	}
	return f.rows, nil
}

func (f *fakeTable[W]) Single(ctx context.Context, q store.Query) (W, error) {
	var zero W
	if err := f.read(); err != nil {
		return zero, err
	}
	if len(f.rows) == 0 {
		return zero, store.ErrNotFound
	}
	return f.rows[0], nil
}

func (f *fakeTable[W]) Insert(ctx context.Context, rec W) (W, error) {
	if err := f.write(); err != nil {
		var zero W
		return zero, err
	}
	f.rows = append(f.rows, rec)
	return rec, nil
}

func (f *fakeTable[W]) Update(ctx context.Context, id string, rec W) (W, error) {
	if err := f.write(); err != nil {
		var zero W
		return zero, err
	}
	return rec, nil
}

func (f *fakeTable[W]) Upsert(ctx context.Context, rec W) (W, error) {
	if err := f.write(); err != nil {
		var zero W
		return zero, err
	}
	return rec, nil
}

func (f *fakeTable[W]) Delete(ctx context.Context, id string) error {
	return f.write()
}

// failingTables returns tables whose every call fails with err.
func failingTables(err error) *store.Tables {
	return &store.Tables{
		Hero:            &fakeTable[store.HeroRecord]{err: err},
		About:           &fakeTable[store.AboutRecord]{err: err},
		Experiences:     &fakeTable[store.ExperienceRecord]{err: err},
		Education:       &fakeTable[store.EducationRecord]{err: err},
		Projects:        &fakeTable[store.ProjectRecord]{err: err},
		BlogPosts:       &fakeTable[store.BlogPostRecord]{err: err},
		Skills:          &fakeTable[store.SkillRecord]{err: err},
		ProfileImage:    &fakeTable[store.ProfileImageRecord]{err: err},
		Resume:          &fakeTable[store.ResumeRecord]{err: err},
		ContactMessages: &fakeTable[store.ContactMessageRecord]{err: err},
		Appointments:    &fakeTable[store.AppointmentRecord]{err: err},
	}
}

// emptyTables returns tables that answer every read with no rows.
func emptyTables() *store.Tables {
	return &store.Tables{
		Hero:            &fakeTable[store.HeroRecord]{},
		About:           &fakeTable[store.AboutRecord]{},
		Experiences:     &fakeTable[store.ExperienceRecord]{},
		Education:       &fakeTable[store.EducationRecord]{},
		Projects:        &fakeTable[store.ProjectRecord]{},
		BlogPosts:       &fakeTable[store.BlogPostRecord]{},
		Skills:          &fakeTable[store.SkillRecord]{},
		ProfileImage:    &fakeTable[store.ProfileImageRecord]{},
		Resume:          &fakeTable[store.ResumeRecord]{},
		ContactMessages: &fakeTable[store.ContactMessageRecord]{},
		Appointments:    &fakeTable[store.AppointmentRecord]{},
	}
}

var fastRetry = RetryPolicy{Attempts: 3, Delay: time.Millisecond}

// newTestServices returns services over tables and a fresh seed dataset.
func newTestServices(t *testing.T, tables *store.Tables) (*Services, *memstore.Dataset) {
	t.Helper()
	data, err := memstore.New()
	require.NoError(t, err)
	retry := fastRetry
	return New(tables, data, Options{BlogRetry: &retry}), data
}
