// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package service is the resilient data layer of the portfolio. Each entity
// gets a uniform get/list/create/update/delete surface that tries the remote
// store and degrades to the in-memory fallback dataset on any failure, so
// callers always receive a usable value.
package service

import (
	"cmp"
	"context"
	"time"

	"folio/internal/memstore"
	"folio/internal/models"
	"folio/internal/store"
)

// Options tune the services built by New.
type Options struct {
	// IDs synthesizes ids for records created in the fallback data.
	// Defaults to memstore.SequentialIDs.
	IDs memstore.IDGenerator
	// BlogRetry is the retry policy of blog reads. Defaults to BlogRetry.
	BlogRetry *RetryPolicy
	Metrics   *Metrics
	Now       func() time.Time
}

// Services holds the data service of every entity.
type Services struct {
	Hero         *Singleton[models.Hero, store.HeroRecord]
	About        *Singleton[models.About, store.AboutRecord]
	ProfileImage *Singleton[models.ProfileImage, store.ProfileImageRecord]
	Resume       *Singleton[models.Resume, store.ResumeRecord]

	Experiences  *Collection[models.Experience, store.ExperienceRecord]
	Education    *Collection[models.Education, store.EducationRecord]
	Projects     *ProjectService
	Blog         *BlogService
	Skills       *Collection[models.Skill, store.SkillRecord]
	Messages     *Collection[models.ContactMessage, store.ContactMessageRecord]
	Appointments *Collection[models.Appointment, store.AppointmentRecord]
}

// New builds the services over tables and data. tables may be nil, in which
// case every operation is served by data alone.
func New(tables *store.Tables, data *memstore.Dataset, opts Options) *Services {
	if tables == nil {
		tables = &store.Tables{}
	}
	blogRetry := BlogRetry
	if opts.BlogRetry != nil {
		blogRetry = *opts.BlogRetry
	}

	return &Services{
		Hero: NewSingleton(SingletonConfig[models.Hero, store.HeroRecord]{
			Entity: "hero", Label: "Hero section",
			Remote: tables.Hero, Local: data.Hero,
			ToWire: store.HeroToRecord, FromWire: store.HeroFromRecord,
			ID:        func(h *models.Hero) *string { return &h.ID },
			CreatedAt: func(h *models.Hero) *time.Time { return &h.CreatedAt },
			Metrics:   opts.Metrics, Now: opts.Now,
		}),
		About: NewSingleton(SingletonConfig[models.About, store.AboutRecord]{
			Entity: "about", Label: "About section",
			Remote: tables.About, Local: data.About,
			ToWire: store.AboutToRecord, FromWire: store.AboutFromRecord,
			ID:        func(a *models.About) *string { return &a.ID },
			CreatedAt: func(a *models.About) *time.Time { return &a.CreatedAt },
			Metrics:   opts.Metrics, Now: opts.Now,
		}),
		ProfileImage: NewSingleton(SingletonConfig[models.ProfileImage, store.ProfileImageRecord]{
			Entity: "profile_image", Label: "Profile image",
			Remote: tables.ProfileImage, Local: data.ProfileImage,
			ToWire: store.ProfileImageToRecord, FromWire: store.ProfileImageFromRecord,
			ID:        func(p *models.ProfileImage) *string { return &p.ID },
			CreatedAt: func(p *models.ProfileImage) *time.Time { return &p.CreatedAt },
			Metrics:   opts.Metrics, Now: opts.Now,
		}),
		Resume: NewSingleton(SingletonConfig[models.Resume, store.ResumeRecord]{
			Entity: "resume", Label: "Resume",
			Remote: tables.Resume, Local: data.Resume,
			ToWire: store.ResumeToRecord, FromWire: store.ResumeFromRecord,
			ID:        func(r *models.Resume) *string { return &r.ID },
			CreatedAt: func(r *models.Resume) *time.Time { return &r.CreatedAt },
			Metrics:   opts.Metrics, Now: opts.Now,
		}),

		Experiences: NewCollection(CollectionConfig[models.Experience, store.ExperienceRecord]{
			Entity: "experiences", Label: "Experience",
			Remote: tables.Experiences, Local: data.Experiences,
			ToWire: store.ExperienceToRecord, FromWire: store.ExperienceFromRecord,
			ID:        func(e *models.Experience) *string { return &e.ID },
			CreatedAt: func(e *models.Experience) *time.Time { return &e.CreatedAt },
			Order:     []store.Order{store.Desc("created_at")},
			Prepend:   true, SubstituteEmpty: true,
			IDs: opts.IDs, Metrics: opts.Metrics, Now: opts.Now,
		}),
		Education: NewCollection(CollectionConfig[models.Education, store.EducationRecord]{
			Entity: "education", Label: "Education",
			Remote: tables.Education, Local: data.Education,
			ToWire: store.EducationToRecord, FromWire: store.EducationFromRecord,
			ID:        func(e *models.Education) *string { return &e.ID },
			CreatedAt: func(e *models.Education) *time.Time { return &e.CreatedAt },
			Order:     []store.Order{store.Desc("created_at")},
			Prepend:   true, SubstituteEmpty: true,
			IDs: opts.IDs, Metrics: opts.Metrics, Now: opts.Now,
		}),
		Projects: &ProjectService{NewCollection(CollectionConfig[models.Project, store.ProjectRecord]{
			Entity: "projects", Label: "Project",
			Remote: tables.Projects, Local: data.Projects,
			ToWire: store.ProjectToRecord, FromWire: store.ProjectFromRecord,
			ID:        func(p *models.Project) *string { return &p.ID },
			CreatedAt: func(p *models.Project) *time.Time { return &p.CreatedAt },
			Order:     []store.Order{store.Desc("created_at")},
			Prepend:   true, SubstituteEmpty: true,
			IDs: opts.IDs, Metrics: opts.Metrics, Now: opts.Now,
		})},
		Blog: &BlogService{NewCollection(CollectionConfig[models.BlogPost, store.BlogPostRecord]{
			Entity: "blog", Label: "Blog post",
			Remote: tables.BlogPosts, Local: data.BlogPosts,
			ToWire: store.BlogPostToRecord, FromWire: store.BlogPostFromRecord,
			ID:        func(p *models.BlogPost) *string { return &p.ID },
			CreatedAt: func(p *models.BlogPost) *time.Time { return &p.CreatedAt },
			Order:     []store.Order{store.Desc("created_at")},
			Prepend:   true, SubstituteEmpty: true,
			Retry: blogRetry,
			IDs:   opts.IDs, Metrics: opts.Metrics, Now: opts.Now,
		})},
		Skills: NewCollection(CollectionConfig[models.Skill, store.SkillRecord]{
			Entity: "skills", Label: "Skill",
			Remote: tables.Skills, Local: data.Skills,
			ToWire: store.SkillToRecord, FromWire: store.SkillFromRecord,
			ID:        func(s *models.Skill) *string { return &s.ID },
			CreatedAt: func(s *models.Skill) *time.Time { return &s.CreatedAt },
			Order:     []store.Order{store.Asc("order_index")},
			SortLocal: func(a, b models.Skill) int { return cmp.Compare(a.OrderIndex, b.OrderIndex) },
			SubstituteEmpty: true,
			IDs:             opts.IDs, Metrics: opts.Metrics, Now: opts.Now,
		}),
		Messages: NewCollection(CollectionConfig[models.ContactMessage, store.ContactMessageRecord]{
			Entity: "contact_messages", Label: "Message",
			Remote: tables.ContactMessages, Local: data.ContactMessages,
			ToWire: store.ContactMessageToRecord, FromWire: store.ContactMessageFromRecord,
			ID:        func(m *models.ContactMessage) *string { return &m.ID },
			CreatedAt: func(m *models.ContactMessage) *time.Time { return &m.CreatedAt },
			Order:     []store.Order{store.Desc("created_at")},
			Prepend:   true,
			IDs:       opts.IDs, Metrics: opts.Metrics, Now: opts.Now,
		}),
		Appointments: NewCollection(CollectionConfig[models.Appointment, store.AppointmentRecord]{
			Entity: "appointments", Label: "Appointment",
			Remote: tables.Appointments, Local: data.Appointments,
			ToWire: store.AppointmentToRecord, FromWire: store.AppointmentFromRecord,
			ID:        func(a *models.Appointment) *string { return &a.ID },
			CreatedAt: func(a *models.Appointment) *time.Time { return &a.CreatedAt },
			Order:     []store.Order{store.Asc("appointment_date"), store.Asc("appointment_time")},
			SortLocal: compareAppointments,
			IDs:       opts.IDs, Metrics: opts.Metrics, Now: opts.Now,
		}),
	}
}

func compareAppointments(a, b models.Appointment) int {
	return cmp.Or(cmp.Compare(a.Date, b.Date), cmp.Compare(a.Time, b.Time))
}

// ProjectService adds category filtering to the project collection.
type ProjectService struct {
	*Collection[models.Project, store.ProjectRecord]
}

// ByCategory returns the projects of one category. An empty category is
// a legitimate answer and is not replaced by fallback data.
func (s *ProjectService) ByCategory(ctx context.Context, category models.ProjectCategory) []models.Project {
	return s.ByCategoryResult(ctx, category).Value
}

// ByCategoryResult is ByCategory with the outcome attached.
func (s *ProjectService) ByCategoryResult(ctx context.Context, category models.ProjectCategory) Result[[]models.Project] {
	return s.Select(ctx, "list_by_category", store.Where("category", string(category)),
		func(p models.Project) bool { return p.Category == category }, false)
}

// BlogService adds slug lookup and the published listing to the blog
// collection. Blog reads are retried before falling back.
type BlogService struct {
	*Collection[models.BlogPost, store.BlogPostRecord]
}

// BySlug returns the post with the given slug. Slugs are not unique; the
// newest match wins.
func (s *BlogService) BySlug(ctx context.Context, slug string) (models.BlogPost, bool) {
	r := s.BySlugResult(ctx, slug)
	return r.Value, r.Kind != KindNotFound
}

// BySlugResult is BySlug with the outcome attached.
func (s *BlogService) BySlugResult(ctx context.Context, slug string) Result[models.BlogPost] {
	return s.Find(ctx, "get_by_slug", store.Where("slug", slug),
		func(p models.BlogPost) bool { return p.Slug == slug })
}

// Published returns the published posts, newest first.
func (s *BlogService) Published(ctx context.Context) []models.BlogPost {
	return s.PublishedResult(ctx).Value
}

// PublishedResult is Published with the outcome attached.
func (s *BlogService) PublishedResult(ctx context.Context) Result[[]models.BlogPost] {
	return s.Select(ctx, "list_published", store.Where("is_published", true),
		func(p models.BlogPost) bool { return p.Published }, s.cfg.SubstituteEmpty)
}
