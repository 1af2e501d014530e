// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package upload

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"folio/internal/imaging"
)

// ObjectStore is the part of storage.Client the S3 backend needs.
type ObjectStore interface {
	Upload(ctx context.Context, key, contentType string, data []byte) error
	FileURL(key string) string
}

// S3 uploads to object storage and adds downscaled variants of raster
// images.
type S3 struct {
	store ObjectStore
	now   func() time.Time
	newID func() string
}

// NewS3 returns an S3 backend over store.
func NewS3(store ObjectStore) *S3 {
	return &S3{store: store, now: time.Now, newID: uuid.NewString}
}

// Name implements Backend.
func (s *S3) Name() string { return "s3" }

// Upload implements Backend. Variant failures are logged and do not fail
// the upload.
func (s *S3) Upload(ctx context.Context, f File) (Result, error) {
	now := s.now()
	id := s.newID()
	prefix := fmt.Sprintf("uploads/%d/%02d/%s", now.Year(), now.Month(), id)
	key := prefix + imaging.Extension(f.Name, f.ContentType)

	if err := s.store.Upload(ctx, key, f.ContentType, f.Data); err != nil {
		return Result{}, err
	}
	res := Result{URL: s.store.FileURL(key)}

	if !imaging.Scalable(f.ContentType) {
		return res, nil
	}
	variants, err := imaging.GenerateVariants(f.Data, nil)
	if err != nil {
		slog.Warn("variant generation failed", "key", key, "error", err)
		return res, nil
	}
	for _, v := range variants {
		vk := prefix + "_" + v.Name + ".jpg"
		if err := s.store.Upload(ctx, vk, v.ContentType, v.Data); err != nil {
			slog.Warn("variant upload failed", "key", vk, "error", err)
			continue
		}
		if res.Variants == nil {
			res.Variants = make(map[string]string)
		}
		res.Variants[v.Name] = s.store.FileURL(vk)
	}
	return res, nil
}
