// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"folio/internal/cache"
	"folio/internal/mail"
	"folio/internal/markdown"
	"folio/internal/models"
	"folio/internal/service"
)

// Public groups the handlers of the public portfolio API.
type Public struct {
	svc   *service.Services
	cache *cache.ResponseCache

	// notifier sends the emails that follow a contact message or a
	// booking. Nil disables notifications.
	notifier mail.Sender
	owner    string

	smtp      mail.SMTPConfig
	smtpHosts []string
	newSender func(mail.SMTPConfig) mail.Sender
}

// PublicConfig holds the dependencies of NewPublic.
type PublicConfig struct {
	Services *service.Services
	Cache    *cache.ResponseCache
	Notifier mail.Sender
	// OwnerEmail receives contact and booking notifications.
	OwnerEmail string
	// SMTP is the server send-email delivers through unless the request
	// names its own.
	SMTP mail.SMTPConfig
	// SMTPAllowedHosts lists the other hosts a request may name.
	SMTPAllowedHosts []string
}

// NewPublic creates the public handler group.
func NewPublic(cfg PublicConfig) *Public {
	return &Public{
		svc:       cfg.Services,
		cache:     cfg.Cache,
		notifier:  cfg.Notifier,
		owner:     cfg.OwnerEmail,
		smtp:      cfg.SMTP,
		smtpHosts: cfg.SMTPAllowedHosts,
		newSender: func(c mail.SMTPConfig) mail.Sender {
			return mail.NewSMTPSender(c)
		},
	}
}

// blogPostView is a published post with its rendered body.
type blogPostView struct {
	models.BlogPost
	ContentHTML string `json:"contentHtml"`
}

// serve writes the envelope produced by load, caching it when the data
// came from the remote store. load reports false when the resource does
// not exist.
func (p *Public) serve(w http.ResponseWriter, r *http.Request, load func(ctx context.Context) (any, service.Source, bool)) {
	ctx := r.Context()
	key := cache.Key(r.URL.Path, r.URL.RawQuery)
	if body, ok := p.cache.Get(ctx, key); ok {
		w.Header().Set("X-Cache", "HIT")
		writeRaw(w, http.StatusOK, body)
		return
	}

	data, src, ok := load(ctx)
	if !ok {
		writeError(w, http.StatusNotFound, "Not found.")
		return
	}
	body, err := json.Marshal(envelope{Data: data, Source: src})
	if err != nil {
		slog.Error("encode response failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if src == service.SourceRemote {
		p.cache.Set(ctx, key, body)
	}
	writeRaw(w, http.StatusOK, body)
}

// resultOf adapts a read that always finds its value to serve.
func resultOf[T any](fn func(context.Context) service.Result[T]) func(context.Context) (any, service.Source, bool) {
	return func(ctx context.Context) (any, service.Source, bool) {
		res := fn(ctx)
		return res.Value, res.Source, true
	}
}

// Hero handles GET /api/hero.
func (p *Public) Hero(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, resultOf(p.svc.Hero.GetResult))
}

// About handles GET /api/about.
func (p *Public) About(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, resultOf(p.svc.About.GetResult))
}

// ProfileImage handles GET /api/profile-image.
func (p *Public) ProfileImage(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, resultOf(p.svc.ProfileImage.GetResult))
}

// Resume handles GET /api/resume.
func (p *Public) Resume(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, resultOf(p.svc.Resume.GetResult))
}

// Experiences handles GET /api/experiences.
func (p *Public) Experiences(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, resultOf(p.svc.Experiences.ListResult))
}

// Education handles GET /api/education.
func (p *Public) Education(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, resultOf(p.svc.Education.ListResult))
}

// Skills handles GET /api/skills.
func (p *Public) Skills(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, resultOf(p.svc.Skills.ListResult))
}

// Projects handles GET /api/projects, optionally filtered by ?category=.
func (p *Public) Projects(w http.ResponseWriter, r *http.Request) {
	category := models.ProjectCategory(r.URL.Query().Get("category"))
	if category == "" {
		p.serve(w, r, resultOf(p.svc.Projects.ListResult))
		return
	}
	if !category.Valid() {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{
			Error:  "Validation failed.",
			Fields: map[string]string{"category": "Must be one of: fullstack, backend, frontend."},
		})
		return
	}
	p.serve(w, r, func(ctx context.Context) (any, service.Source, bool) {
		res := p.svc.Projects.ByCategoryResult(ctx, category)
		return res.Value, res.Source, true
	})
}

// Project handles GET /api/projects/{id}.
func (p *Public) Project(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p.serve(w, r, func(ctx context.Context) (any, service.Source, bool) {
		res := p.svc.Projects.GetResult(ctx, id)
		return res.Value, res.Source, res.Kind != service.KindNotFound
	})
}

// Blog handles GET /api/blog. Only published posts are listed.
func (p *Public) Blog(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, resultOf(p.svc.Blog.PublishedResult))
}

// BlogPost handles GET /api/blog/{slug} and renders the post body.
func (p *Public) BlogPost(w http.ResponseWriter, r *http.Request) {
	s := chi.URLParam(r, "slug")
	p.serve(w, r, func(ctx context.Context) (any, service.Source, bool) {
		res := p.svc.Blog.BySlugResult(ctx, s)
		if res.Kind == service.KindNotFound || !res.Value.Published {
			return nil, "", false
		}
		html, err := markdown.ToHTML(res.Value.Content)
		if err != nil {
			slog.Warn("render blog post failed", "slug", s, "error", err)
		}
		return blogPostView{BlogPost: res.Value, ContentHTML: html}, res.Source, true
	})
}

// Contact handles POST /api/contact.
func (p *Public) Contact(w http.ResponseWriter, r *http.Request) {
	var m models.ContactMessage
	if !decodeJSON(w, r, &m) {
		return
	}
	m.Read = false

	created, notice := p.svc.Messages.Create(r.Context(), m)

	var msgs []mail.Message
	if p.owner != "" {
		msgs = append(msgs, mail.ContactNotification(p.owner, created))
	}
	if err := p.notify(r.Context(), msgs...); err != nil {
		notice = service.Notice{
			Level:   service.NoticeWarning,
			Title:   "Message saved",
			Message: "Your message was received, but the notification email could not be sent.",
		}
	}
	writeJSON(w, http.StatusCreated, envelope{Data: created, Notice: &notice})
}

// BookAppointment handles POST /api/appointments. The owner is notified
// and the client gets a confirmation.
func (p *Public) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var a models.Appointment
	if !decodeJSON(w, r, &a) {
		return
	}
	a.Status = models.AppointmentPending

	created, notice := p.svc.Appointments.Create(r.Context(), a)

	msgs := []mail.Message{mail.AppointmentConfirmation(created)}
	if p.owner != "" {
		msgs = append(msgs, mail.AppointmentNotification(p.owner, created))
	}
	if err := p.notify(r.Context(), msgs...); err != nil {
		notice = service.Notice{
			Level:   service.NoticeWarning,
			Title:   "Appointment booked",
			Message: "Your appointment was booked, but the confirmation email could not be sent.",
		}
	}
	writeJSON(w, http.StatusCreated, envelope{Data: created, Notice: &notice})
}

// notify sends msgs concurrently. A failed send does not stop the others;
// the first error is returned once all have finished.
func (p *Public) notify(ctx context.Context, msgs ...mail.Message) error {
	if p.notifier == nil || len(msgs) == 0 {
		return nil
	}
	var g errgroup.Group
	for _, m := range msgs {
		g.Go(func() error {
			if err := p.notifier.Send(ctx, m); err != nil {
				slog.Warn("notification email failed", "subject", m.Subject, "error", err)
				return err
			}
			return nil
		})
	}
	return g.Wait()
}

// SendEmail handles POST /api/send-email, delivering one message through
// SMTP. The request may carry its own server config, limited to the
// configured and allowed hosts.
func (p *Public) SendEmail(w http.ResponseWriter, r *http.Request) {
	var req mail.Request
	if !decodeJSON(w, r, &req) {
		return
	}
	cfg := p.smtp
	if req.Config != nil {
		var err error
		if cfg, err = req.Config.Merge(p.smtp, p.smtpHosts); err != nil {
			slog.Warn("send email refused", "error", err)
			writeJSON(w, http.StatusUnprocessableEntity, errorBody{
				Error:  "Validation failed.",
				Fields: map[string]string{"config.host": "Host is not allowed."},
			})
			return
		}
	}

	if err := p.newSender(cfg).Send(r.Context(), req.Message); err != nil {
		status := http.StatusBadGateway
		msg := "Email delivery failed."
		if errors.Is(err, mail.ErrNotConfigured) {
			status = http.StatusServiceUnavailable
			msg = "Email delivery is not configured."
		}
		slog.Warn("send email failed", "error", err)
		writeJSON(w, status, mail.Response{Success: false, Error: msg})
		return
	}
	writeJSON(w, http.StatusOK, mail.Response{Success: true})
}
