// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/models"
	"folio/internal/service"
	"folio/internal/upload"
)

func TestAdminCreateProjectDerivesSlug(t *testing.T) {
	api := newTestAPI(t)

	rr := api.do(t, http.MethodPost, "/admin/api/projects", map[string]any{
		"id": "caller-id", "title": "Status Page Kit", "description": "Hosted status pages.",
		"category": "fullstack", "tech": []string{"Go"},
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var p models.Project
	resp := decodeResponse(t, rr, &p)
	assert.Equal(t, "4", p.ID)
	assert.Equal(t, "status-page-kit", p.Slug)
	require.NotNil(t, resp.Notice)
	assert.Equal(t, "Project created successfully.", resp.Notice.Message)

	rr = api.do(t, http.MethodGet, "/admin/api/projects", nil)
	var projects []models.Project
	decodeResponse(t, rr, &projects)
	require.Len(t, projects, 4)
	assert.Equal(t, "Status Page Kit", projects[0].Title)
}

func TestAdminCreateValidation(t *testing.T) {
	api := newTestAPI(t)

	rr := api.do(t, http.MethodPost, "/admin/api/projects", map[string]any{
		"title": "No Category", "description": "x", "category": "mobile",
		"githubUrl": "not a url", "analytics": map[string]any{"linesOfCode": -1},
	})
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	resp := decodeResponse(t, rr, nil)
	assert.Equal(t, "Must be one of: fullstack, backend, frontend.", resp.Fields["category"])
	assert.Equal(t, "Must be a valid URL.", resp.Fields["githubUrl"])
	assert.Contains(t, resp.Fields, "analytics.linesOfCode")
	assert.Equal(t, 3, api.data.Projects.Len())
}

func TestAdminCreateBlogPostFillsDerivedFields(t *testing.T) {
	api := newTestAPI(t)

	rr := api.do(t, http.MethodPost, "/admin/api/blog", map[string]any{
		"title": "Hello, Go!", "content": "Some *words* here.", "published": true,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var p models.BlogPost
	decodeResponse(t, rr, &p)
	assert.Equal(t, "hello-go", p.Slug)
	assert.Equal(t, "Some words here.", p.Excerpt)
	assert.Equal(t, 1, p.ReadTime)
	require.NotNil(t, p.PublishedAt)
	assert.True(t, p.PublishedAt.Equal(fixedNow))
}

func TestAdminUpdateAndDelete(t *testing.T) {
	api := newTestAPI(t)

	rr := api.do(t, http.MethodPut, "/admin/api/skills/1", map[string]any{
		"name": "Go", "category": "Backend", "level": 99, "orderIndex": 1,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var s models.Skill
	decodeResponse(t, rr, &s)
	assert.Equal(t, 99, s.Level)

	rr = api.do(t, http.MethodPut, "/admin/api/skills/1", map[string]any{
		"name": "Go", "category": "Backend", "level": 120,
	})
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "Must be 100 or less.", decodeResponse(t, rr, nil).Fields["level"])

	rr = api.do(t, http.MethodDelete, "/admin/api/skills/1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeResponse(t, rr, nil)
	require.NotNil(t, resp.Notice)
	assert.Equal(t, service.NoticeSuccess, resp.Notice.Level)

	rr = api.do(t, http.MethodGet, "/admin/api/skills/1", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// Unknown ids still report success.
	rr = api.do(t, http.MethodDelete, "/admin/api/skills/404", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	rr = api.do(t, http.MethodPut, "/admin/api/skills/404", map[string]any{
		"name": "Zig", "category": "Systems", "level": 10,
	})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 7, api.data.Skills.Len())
}

func TestAdminSingleton(t *testing.T) {
	api := newTestAPI(t)

	rr := api.do(t, http.MethodPut, "/admin/api/hero", map[string]any{"title": "Engineer"})
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "This field is required.", decodeResponse(t, rr, nil).Fields["name"])

	rr = api.do(t, http.MethodPut, "/admin/api/hero", map[string]any{"name": "Sam Park", "title": "Engineer"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = api.do(t, http.MethodGet, "/admin/api/hero", nil)
	var hero models.Hero
	resp := decodeResponse(t, rr, &hero)
	assert.Equal(t, "Sam Park", hero.Name)
	assert.Equal(t, "fallback", resp.Source)
}

func TestAdminDashboard(t *testing.T) {
	api := newTestAPI(t)

	rr := api.do(t, http.MethodGet, "/admin/api/dashboard", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var d dashboard
	decodeResponse(t, rr, &d)
	assert.Equal(t, 3, d.Counts["projects"])
	assert.Equal(t, 8, d.Counts["skills"])
	assert.Equal(t, 2, d.PublishedPosts)
	assert.Equal(t, 1, d.UnreadMessages)
	assert.Equal(t, 1, d.PendingAppointments)
	assert.Len(t, d.Fallback, 7)
}

func TestAdminUpload(t *testing.T) {
	api := newTestAPI(t)

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var pngData bytes.Buffer
	require.NoError(t, png.Encode(&pngData, img))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "avatar.png")
	require.NoError(t, err)
	fw.Write(pngData.Bytes())
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/api/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	api.router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var res upload.Result
	require.NoError(t, jsonDecode(rr, &res))
	assert.True(t, res.Success)
	assert.Equal(t, "inline", res.Provider)
	assert.True(t, strings.HasPrefix(res.URL, "data:image/png;base64,"), res.URL)
}

func TestAdminUploadWithoutFile(t *testing.T) {
	api := newTestAPI(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	mw.WriteField("alt", "nothing")
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/api/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	api.router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
