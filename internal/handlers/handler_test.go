// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides the shared test setup: handlers over services
// with no remote store, so every request is served by a fresh fallback
// dataset.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"folio/internal/mail"
	"folio/internal/memstore"
	"folio/internal/service"
)

const ownerEmail = "owner@folio.test"

// fakeSender records sent messages and fails with err when set.
type fakeSender struct {
	mu   sync.Mutex
	sent []mail.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, m mail.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, m)
	return f.err
}

func (f *fakeSender) recipients() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var to []string
	for _, m := range f.sent {
		to = append(to, m.To)
	}
	return to
}

type testAPI struct {
	router   chi.Router
	public   *Public
	admin    *Admin
	notifier *fakeSender
	data     *memstore.Dataset
}

var fixedNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	data, err := memstore.New()
	require.NoError(t, err)
	svc := service.New(nil, data, service.Options{
		Now: func() time.Time { return fixedNow },
	})

	notifier := &fakeSender{}
	public := NewPublic(PublicConfig{Services: svc, Notifier: notifier, OwnerEmail: ownerEmail})
	admin := NewAdmin(svc, nil, nil, func() time.Time { return fixedNow })

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/hero", public.Hero)
		r.Get("/skills", public.Skills)
		r.Get("/projects", public.Projects)
		r.Get("/projects/{id}", public.Project)
		r.Get("/blog", public.Blog)
		r.Get("/blog/{slug}", public.BlogPost)
		r.Post("/contact", public.Contact)
		r.Post("/appointments", public.BookAppointment)
		r.Post("/send-email", public.SendEmail)
	})
	r.Route("/admin/api", func(r chi.Router) {
		r.Get("/dashboard", admin.Dashboard)
		r.Post("/upload", admin.Upload)
		r.Get("/hero", admin.Hero.Get)
		r.Put("/hero", admin.Hero.Put)
		for path, res := range map[string]interface {
			List(http.ResponseWriter, *http.Request)
			Get(http.ResponseWriter, *http.Request)
			Create(http.ResponseWriter, *http.Request)
			Update(http.ResponseWriter, *http.Request)
			Delete(http.ResponseWriter, *http.Request)
		}{
			"/projects": admin.Projects,
			"/blog":     admin.Blog,
			"/skills":   admin.Skills,
		} {
			r.Get(path, res.List)
			r.Post(path, res.Create)
			r.Get(path+"/{id}", res.Get)
			r.Put(path+"/{id}", res.Update)
			r.Delete(path+"/{id}", res.Delete)
		}
	})

	return &testAPI{router: r, public: public, admin: admin, notifier: notifier, data: data}
}

// do sends a request with an optional JSON body.
func (api *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	api.router.ServeHTTP(rr, req)
	return rr
}

// response mirrors envelope with the data left raw.
type response struct {
	Data   json.RawMessage `json:"data"`
	Source string          `json:"source"`
	Notice *service.Notice `json:"notice"`
	Error  string          `json:"error"`
	Fields map[string]string `json:"fields"`
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder, data any) response {
	t.Helper()
	var resp response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(resp.Data, data))
	}
	return resp
}

func jsonDecode(rr *httptest.ResponseRecorder, v any) error {
	return json.Unmarshal(rr.Body.Bytes(), v)
}
