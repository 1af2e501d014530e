// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"folio/internal/cache"
	"folio/internal/models"
	"folio/internal/service"
	"folio/internal/store"
	"folio/internal/upload"
)

// maxUploadSize is the largest file the admin upload accepts (10 MB).
const maxUploadSize = 10 << 20

// Admin groups the admin API handlers.
type Admin struct {
	svc      *service.Services
	uploader *upload.Uploader

	Hero         *SingletonResource[models.Hero, store.HeroRecord]
	About        *SingletonResource[models.About, store.AboutRecord]
	ProfileImage *SingletonResource[models.ProfileImage, store.ProfileImageRecord]
	Resume       *SingletonResource[models.Resume, store.ResumeRecord]

	Experiences  *Resource[models.Experience, store.ExperienceRecord]
	Education    *Resource[models.Education, store.EducationRecord]
	Projects     *Resource[models.Project, store.ProjectRecord]
	Blog         *Resource[models.BlogPost, store.BlogPostRecord]
	Skills       *Resource[models.Skill, store.SkillRecord]
	Messages     *Resource[models.ContactMessage, store.ContactMessageRecord]
	Appointments *Resource[models.Appointment, store.AppointmentRecord]
}

// NewAdmin creates the admin handler group. now stamps blog publish
// dates and may be nil.
func NewAdmin(svc *service.Services, rc *cache.ResponseCache, uploader *upload.Uploader, now func() time.Time) *Admin {
	if now == nil {
		now = time.Now
	}
	if uploader == nil {
		uploader = upload.New()
	}
	return &Admin{
		svc:      svc,
		uploader: uploader,

		Hero:         NewSingletonResource(svc.Hero, rc),
		About:        NewSingletonResource(svc.About, rc),
		ProfileImage: NewSingletonResource(svc.ProfileImage, rc),
		Resume:       NewSingletonResource(svc.Resume, rc),

		Experiences:  NewResource(svc.Experiences, rc, nil),
		Education:    NewResource(svc.Education, rc, nil),
		Projects:     NewResource(svc.Projects.Collection, rc, prepareProject),
		Blog:         NewResource(svc.Blog.Collection, rc, prepareBlogPost(now)),
		Skills:       NewResource(svc.Skills, rc, nil),
		Messages:     NewResource(svc.Messages, rc, nil),
		Appointments: NewResource(svc.Appointments, rc, prepareAppointment),
	}
}

// dashboard is the body of GET /admin/api/dashboard.
type dashboard struct {
	Counts              map[string]int `json:"counts"`
	PublishedPosts      int            `json:"publishedPosts"`
	UnreadMessages      int            `json:"unreadMessages"`
	PendingAppointments int            `json:"pendingAppointments"`
	// Fallback lists the entities counted from fallback data.
	Fallback []string `json:"fallback"`
}

type tally struct {
	entity   string
	total    int
	matched  int
	fallback bool
}

// tallyOf counts the records of c, and those passing match when it is set.
func tallyOf[T, W any](c *service.Collection[T, W], match func(T) bool) func(context.Context) tally {
	return func(ctx context.Context) tally {
		res := c.ListResult(ctx)
		t := tally{entity: c.Entity(), total: len(res.Value), fallback: res.Fallback()}
		if match != nil {
			for _, item := range res.Value {
				if match(item) {
					t.matched++
				}
			}
		}
		return t
	}
}

// Dashboard handles GET /admin/api/dashboard. The collections are counted
// concurrently.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	jobs := []func(context.Context) tally{
		tallyOf(a.svc.Experiences, nil),
		tallyOf(a.svc.Education, nil),
		tallyOf(a.svc.Projects.Collection, nil),
		tallyOf(a.svc.Skills, nil),
		tallyOf(a.svc.Blog.Collection, func(p models.BlogPost) bool { return p.Published }),
		tallyOf(a.svc.Messages, func(m models.ContactMessage) bool { return !m.Read }),
		tallyOf(a.svc.Appointments, func(ap models.Appointment) bool {
			return ap.Status == models.AppointmentPending
		}),
	}

	tallies := make([]tally, len(jobs))
	g, ctx := errgroup.WithContext(r.Context())
	for i, job := range jobs {
		g.Go(func() error {
			tallies[i] = job(ctx)
			return nil
		})
	}
	g.Wait()

	d := dashboard{Counts: make(map[string]int, len(tallies)), Fallback: []string{}}
	for _, t := range tallies {
		d.Counts[t.entity] = t.total
		if t.fallback {
			d.Fallback = append(d.Fallback, t.entity)
		}
		switch t.entity {
		case a.svc.Blog.Entity():
			d.PublishedPosts = t.matched
		case a.svc.Messages.Entity():
			d.UnreadMessages = t.matched
		case a.svc.Appointments.Entity():
			d.PendingAppointments = t.matched
		}
	}
	writeJSON(w, http.StatusOK, envelope{Data: d})
}

// Upload handles POST /admin/api/upload with a multipart "file" field.
func (a *Admin) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, upload.Result{Error: "File too large. Maximum size is 10 MB."})
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, upload.Result{Error: "No file provided."})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, upload.Result{Error: "Could not read the uploaded file."})
		return
	}

	res := a.uploader.Upload(r.Context(), upload.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	status := http.StatusOK
	if !res.Success {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, res)
}
