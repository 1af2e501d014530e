// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up the HTTP routes and middleware chains of the folio
// API. Routes are split into the public API, the admin API and operational
// endpoints (health, metrics).
package router

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"folio/internal/handlers"
	"folio/internal/middleware"
)

// Options holds everything New wires into the router.
type Options struct {
	Public *handlers.Public
	Admin  *handlers.Admin

	// RateLimiter guards the public write endpoints. Nil disables it.
	RateLimiter *middleware.RateLimiter
	// AdminTokenHash is the bcrypt hash of the admin bearer token.
	AdminTokenHash string
	// EmailToken guards send-email. Empty limits it to loopback callers.
	EmailToken string
	CORSOrigins    []string

	// Ping reports whether the remote store is reachable. Nil means the
	// server runs without one.
	Ping func(context.Context) error
	// Metrics serves /metrics when set.
	Metrics http.Handler
}

// collection is the admin CRUD surface of one entity.
type collection interface {
	List(http.ResponseWriter, *http.Request)
	Get(http.ResponseWriter, *http.Request)
	Create(http.ResponseWriter, *http.Request)
	Update(http.ResponseWriter, *http.Request)
	Delete(http.ResponseWriter, *http.Request)
}

// singleton is the admin surface of a singleton entity.
type singleton interface {
	Get(http.ResponseWriter, *http.Request)
	Put(http.ResponseWriter, *http.Request)
}

// New creates the configured Chi router.
func New(opts Options) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.CORS(opts.CORSOrigins))

	r.Get("/health", healthHandler(opts.Ping))
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}

	public := opts.Public
	r.Route("/api", func(r chi.Router) {
		r.Get("/hero", public.Hero)
		r.Get("/about", public.About)
		r.Get("/experiences", public.Experiences)
		r.Get("/education", public.Education)
		r.Get("/projects", public.Projects)
		r.Get("/projects/{id}", public.Project)
		r.Get("/blog", public.Blog)
		r.Get("/blog/{slug}", public.BlogPost)
		r.Get("/skills", public.Skills)
		r.Get("/profile-image", public.ProfileImage)
		r.Get("/resume", public.Resume)

		r.Group(func(r chi.Router) {
			if opts.RateLimiter != nil {
				r.Use(opts.RateLimiter.Middleware)
			}
			r.Post("/contact", public.Contact)
			r.Post("/appointments", public.BookAppointment)
		})

		// send-email is the notifier's delivery hop, not a public relay.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireServiceToken(opts.EmailToken))
			if opts.RateLimiter != nil {
				r.Use(opts.RateLimiter.Middleware)
			}
			r.Post("/send-email", public.SendEmail)
		})
	})

	admin := opts.Admin
	r.Route("/admin/api", func(r chi.Router) {
		r.Use(middleware.NoStore)
		r.Use(middleware.RequireAdminToken(opts.AdminTokenHash))

		r.Get("/dashboard", admin.Dashboard)
		r.Post("/upload", admin.Upload)

		singletonRoutes(r, "/hero", admin.Hero)
		singletonRoutes(r, "/about", admin.About)
		singletonRoutes(r, "/profile-image", admin.ProfileImage)
		singletonRoutes(r, "/resume", admin.Resume)

		r.Route("/experiences", collectionRoutes(admin.Experiences))
		r.Route("/education", collectionRoutes(admin.Education))
		r.Route("/projects", collectionRoutes(admin.Projects))
		r.Route("/blog", collectionRoutes(admin.Blog))
		r.Route("/skills", collectionRoutes(admin.Skills))
		r.Route("/messages", collectionRoutes(admin.Messages))
		r.Route("/appointments", collectionRoutes(admin.Appointments))
	})

	return r
}

func collectionRoutes(h collection) func(chi.Router) {
	return func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	}
}

func singletonRoutes(r chi.Router, path string, h singleton) {
	r.Get(path, h.Get)
	r.Put(path, h.Put)
}

// healthHandler reports the server status and whether the remote store is
// reachable. The server stays healthy without it, serving fallback data.
func healthHandler(ping func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		remote := "disabled"
		if ping != nil {
			remote = "connected"
			if err := ping(r.Context()); err != nil {
				remote = "unavailable"
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok", "remote": remote})
	}
}
