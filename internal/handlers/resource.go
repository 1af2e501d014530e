// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"folio/internal/cache"
	"folio/internal/service"
)

// Resource serves the admin CRUD endpoints of one collection entity.
type Resource[T, W any] struct {
	svc     *service.Collection[T, W]
	cache   *cache.ResponseCache
	prepare func(*T)
}

// NewResource returns the admin handlers of svc. prepare, if set, fills
// derived fields before a create or update.
func NewResource[T, W any](svc *service.Collection[T, W], rc *cache.ResponseCache, prepare func(*T)) *Resource[T, W] {
	return &Resource[T, W]{svc: svc, cache: rc, prepare: prepare}
}

// List handles GET /{entity}.
func (h *Resource[T, W]) List(w http.ResponseWriter, r *http.Request) {
	res := h.svc.ListResult(r.Context())
	writeJSON(w, http.StatusOK, envelope{Data: res.Value, Source: res.Source})
}

// Get handles GET /{entity}/{id}.
func (h *Resource[T, W]) Get(w http.ResponseWriter, r *http.Request) {
	res := h.svc.GetResult(r.Context(), chi.URLParam(r, "id"))
	if res.Kind == service.KindNotFound {
		writeError(w, http.StatusNotFound, "Not found.")
		return
	}
	writeJSON(w, http.StatusOK, envelope{Data: res.Value, Source: res.Source})
}

// Create handles POST /{entity}.
func (h *Resource[T, W]) Create(w http.ResponseWriter, r *http.Request) {
	var item T
	if !h.decode(w, r, &item) {
		return
	}
	created, notice := h.svc.Create(r.Context(), item)
	h.cache.InvalidateAll(r.Context())
	writeJSON(w, http.StatusCreated, envelope{Data: created, Notice: &notice})
}

// Update handles PUT /{entity}/{id}.
func (h *Resource[T, W]) Update(w http.ResponseWriter, r *http.Request) {
	var item T
	if !h.decode(w, r, &item) {
		return
	}
	updated, notice := h.svc.Update(r.Context(), chi.URLParam(r, "id"), item)
	h.cache.InvalidateAll(r.Context())
	writeJSON(w, http.StatusOK, envelope{Data: updated, Notice: &notice})
}

// Delete handles DELETE /{entity}/{id}.
func (h *Resource[T, W]) Delete(w http.ResponseWriter, r *http.Request) {
	notice := h.svc.Delete(r.Context(), chi.URLParam(r, "id"))
	h.cache.InvalidateAll(r.Context())
	writeJSON(w, http.StatusOK, envelope{Notice: &notice})
}

// decode fills derived fields before validating, since they may satisfy
// required tags.
func (h *Resource[T, W]) decode(w http.ResponseWriter, r *http.Request, item *T) bool {
	if !decodeBody(w, r, item) {
		return false
	}
	if h.prepare != nil {
		h.prepare(item)
	}
	return checkStruct(w, item)
}

// SingletonResource serves GET and PUT for a singleton entity.
type SingletonResource[T, W any] struct {
	svc   *service.Singleton[T, W]
	cache *cache.ResponseCache
}

// NewSingletonResource returns the admin handlers of svc.
func NewSingletonResource[T, W any](svc *service.Singleton[T, W], rc *cache.ResponseCache) *SingletonResource[T, W] {
	return &SingletonResource[T, W]{svc: svc, cache: rc}
}

// Get handles GET /{entity}.
func (h *SingletonResource[T, W]) Get(w http.ResponseWriter, r *http.Request) {
	res := h.svc.GetResult(r.Context())
	writeJSON(w, http.StatusOK, envelope{Data: res.Value, Source: res.Source})
}

// Put handles PUT /{entity}.
func (h *SingletonResource[T, W]) Put(w http.ResponseWriter, r *http.Request) {
	var item T
	if !decodeJSON(w, r, &item) {
		return
	}
	saved, notice := h.svc.Update(r.Context(), item)
	h.cache.InvalidateAll(r.Context())
	writeJSON(w, http.StatusOK, envelope{Data: saved, Notice: &notice})
}
