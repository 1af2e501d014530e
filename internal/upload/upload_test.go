// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

type failingBackend struct{ calls int }

func (f *failingBackend) Name() string { return "broken" }

func (f *failingBackend) Upload(context.Context, File) (Result, error) {
	f.calls++
	return Result{}, errors.New("boom")
}

type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
	failOn  string
}

func newMemStore() *memStore {
	return &memStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *memStore) Upload(_ context.Context, key, contentType string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn != "" && strings.Contains(key, m.failOn) {
		return errors.New("put failed")
	}
	m.objects[key] = data
	m.types[key] = contentType
	return nil
}

func (m *memStore) FileURL(key string) string { return "https://media.example.com/" + key }

func TestUploadRejectsEmptyAndDisallowed(t *testing.T) {
	u := New()

	res := u.Upload(context.Background(), File{Name: "a.png"})
	assert.False(t, res.Success)
	assert.Equal(t, "No file provided.", res.Error)

	res = u.Upload(context.Background(), File{Name: "a.html", Data: []byte("<html><body>x</body></html>")})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "not allowed")
}

func TestUploadFallsBackToDataURL(t *testing.T) {
	broken := &failingBackend{}
	u := New(broken)
	data := pngBytes(t, 2, 2)

	res := u.Upload(context.Background(), File{Name: "a.png", ContentType: "text/plain", Data: data})
	require.True(t, res.Success)
	assert.Equal(t, "inline", res.Provider)
	assert.True(t, strings.HasPrefix(res.URL, "data:image/png;base64,"), "content type is sniffed")
	assert.Equal(t, 1, broken.calls)
}

func TestUploadDataURLTooLarge(t *testing.T) {
	data := append([]byte("%PDF-1.7\n"), make([]byte, MaxDataURLBytes)...)
	res := New().Upload(context.Background(), File{Name: "big.pdf", Data: data})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "too large")
}

func TestCDNUpload(t *testing.T) {
	var gotPreset, gotName string
	var gotData []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/demo/auto/upload", r.URL.Path)
		file, header, err := r.FormFile("file")
		if assert.NoError(t, err) {
			gotName = header.Filename
			gotData, _ = io.ReadAll(file)
		}
		gotPreset = r.FormValue("upload_preset")
		json.NewEncoder(w).Encode(map[string]string{"secure_url": "https://cdn.example.com/demo/a.png"})
	}))
	defer srv.Close()

	data := pngBytes(t, 2, 2)
	u := New(NewCDN(srv.URL+"/", "demo", "unsigned"))
	res := u.Upload(context.Background(), File{Name: "a.png", Data: data})

	require.True(t, res.Success, res.Error)
	assert.Equal(t, "cdn", res.Provider)
	assert.Equal(t, "https://cdn.example.com/demo/a.png", res.URL)
	assert.Equal(t, "unsigned", gotPreset)
	assert.Equal(t, "a.png", gotName)
	assert.Equal(t, data, gotData)
}

func TestCDNErrorFallsThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Upload preset not found"}}`))
	}))
	defer srv.Close()

	cdn := NewCDN(srv.URL, "demo", "missing")
	_, err := cdn.Upload(context.Background(), File{Name: "a.png", Data: []byte("x")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Upload preset not found")

	store := newMemStore()
	res := New(cdn, NewS3(store)).Upload(context.Background(), File{Name: "a.png", Data: pngBytes(t, 2, 2)})
	assert.Equal(t, "s3", res.Provider)
}

func TestS3UploadWithVariants(t *testing.T) {
	store := newMemStore()
	s3 := NewS3(store)
	s3.now = func() time.Time { return time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC) }
	s3.newID = func() string { return "abc" }

	res := New(s3).Upload(context.Background(), File{Name: "Shot.PNG", Data: pngBytes(t, 1200, 600)})
	require.True(t, res.Success, res.Error)
	assert.Equal(t, "https://media.example.com/uploads/2026/04/abc.png", res.URL)
	assert.Equal(t, map[string]string{
		"thumb": "https://media.example.com/uploads/2026/04/abc_thumb.jpg",
		"md":    "https://media.example.com/uploads/2026/04/abc_md.jpg",
	}, res.Variants)
	assert.Equal(t, "image/png", store.types["uploads/2026/04/abc.png"])
	assert.Equal(t, "image/jpeg", store.types["uploads/2026/04/abc_thumb.jpg"])
}

func TestS3VariantFailureKeepsOriginal(t *testing.T) {
	store := newMemStore()
	store.failOn = "_thumb"
	s3 := NewS3(store)
	s3.newID = func() string { return "id1" }

	res, err := s3.Upload(context.Background(), File{Name: "a.png", ContentType: "image/png", Data: pngBytes(t, 1200, 600)})
	require.NoError(t, err)
	assert.Contains(t, res.URL, "id1.png")
	assert.NotContains(t, res.Variants, "thumb")
	assert.Contains(t, res.Variants, "md")
}

func TestS3PDFHasNoVariants(t *testing.T) {
	store := newMemStore()
	res := New(NewS3(store)).Upload(context.Background(), File{Name: "cv.pdf", Data: []byte("%PDF-1.7\n...")})
	require.True(t, res.Success)
	assert.True(t, strings.HasSuffix(res.URL, ".pdf"))
	assert.Nil(t, res.Variants)
	assert.Len(t, store.objects, 1)
}

func TestProviders(t *testing.T) {
	u := New(NewCDN("https://x", "c", "p"), NewS3(newMemStore()))
	assert.Equal(t, []string{"cdn", "s3"}, u.Providers())
}
