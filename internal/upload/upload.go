// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package upload stores admin-uploaded images and documents. Backends are
// tried in order (image CDN, then object storage); when none is configured
// or all fail, the file is inlined as a base64 data URL so the admin form
// still gets a usable URL.
package upload

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	"folio/internal/imaging"
)

// MaxDataURLBytes caps files inlined as data URLs.
const MaxDataURLBytes = 5 << 20

// File is one uploaded file.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Result is the outcome of an upload.
type Result struct {
	URL      string            `json:"url"`
	Success  bool              `json:"success"`
	Error    string            `json:"error,omitempty"`
	Provider string            `json:"provider,omitempty"`
	Variants map[string]string `json:"variants,omitempty"`
}

// Backend stores a file and returns its public URL.
type Backend interface {
	Name() string
	Upload(ctx context.Context, f File) (Result, error)
}

// Uploader runs the backend chain.
type Uploader struct {
	backends []Backend
}

// New returns an uploader trying backends in order.
func New(backends ...Backend) *Uploader {
	return &Uploader{backends: backends}
}

// Providers returns the names of the configured backends.
func (u *Uploader) Providers() []string {
	names := make([]string, len(u.backends))
	for i, b := range u.backends {
		names[i] = b.Name()
	}
	return names
}

// Upload stores f. The content type is sniffed from the data; f.ContentType
// is ignored.
func (u *Uploader) Upload(ctx context.Context, f File) Result {
	if len(f.Data) == 0 {
		return Result{Error: "No file provided."}
	}
	f.ContentType = imaging.DetectType(f.Data, f.Name)
	if !imaging.Allowed(f.ContentType) {
		return Result{Error: fmt.Sprintf("File type %q is not allowed.", f.ContentType)}
	}

	for _, b := range u.backends {
		res, err := b.Upload(ctx, f)
		if err == nil {
			res.Success = true
			res.Provider = b.Name()
			slog.Info("file uploaded", "provider", b.Name(), "name", f.Name, "url", res.URL)
			return res
		}
		slog.Warn("upload backend failed, trying next", "provider", b.Name(), "name", f.Name, "error", err)
	}

	if len(f.Data) > MaxDataURLBytes {
		return Result{Error: fmt.Sprintf("File too large to inline. Maximum size is %d MB.", MaxDataURLBytes>>20)}
	}
	return Result{URL: DataURL(f), Success: true, Provider: "inline"}
}

// DataURL encodes f as a base64 data URL.
func DataURL(f File) string {
	return "data:" + f.ContentType + ";base64," + base64.StdEncoding.EncodeToString(f.Data)
}
