// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// CDN uploads to an image CDN with an unsigned upload preset.
type CDN struct {
	endpoint string
	preset   string
	http     *http.Client
}

// NewCDN returns a CDN backend posting to {baseURL}/{cloudName}/auto/upload.
func NewCDN(baseURL, cloudName, preset string) *CDN {
	return &CDN{
		endpoint: strings.TrimRight(baseURL, "/") + "/" + cloudName + "/auto/upload",
		preset:   preset,
		http:     &http.Client{Timeout: 60 * time.Second},
	}
}

// Name implements Backend.
func (c *CDN) Name() string { return "cdn" }

type cdnResponse struct {
	SecureURL string `json:"secure_url"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload implements Backend.
func (c *CDN) Upload(ctx context.Context, f File) (Result, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", f.Name)
	if err != nil {
		return Result{}, fmt.Errorf("cdn form: %w", err)
	}
	if _, err := part.Write(f.Data); err != nil {
		return Result{}, fmt.Errorf("cdn form: %w", err)
	}
	if err := mw.WriteField("upload_preset", c.preset); err != nil {
		return Result{}, fmt.Errorf("cdn form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return Result{}, fmt.Errorf("cdn form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return Result{}, fmt.Errorf("cdn request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("cdn upload: %w", err)
	}
	defer resp.Body.Close()

	var out cdnResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Result{}, fmt.Errorf("cdn response (status %d): %w", resp.StatusCode, err)
	}
	if out.Error != nil {
		return Result{}, fmt.Errorf("cdn upload: %s", out.Error.Message)
	}
	if resp.StatusCode >= 300 || out.SecureURL == "" {
		return Result{}, fmt.Errorf("cdn upload: status %d without url", resp.StatusCode)
	}
	return Result{URL: out.SecureURL}, nil
}
