// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client posts messages to a send-email endpoint.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
}

// NewClient returns a client for the endpoint URL. A non-empty token is
// sent as a bearer token.
func NewClient(endpoint, token string) *Client {
	return &Client{
		endpoint: endpoint,
		token:    token,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

// Send posts m and fails unless the endpoint reports success.
func (c *Client) Send(ctx context.Context, m Message) error {
	body, err := json.Marshal(Request{Message: m})
	if err != nil {
		return fmt.Errorf("encode email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send email request: %w", err)
	}
	defer resp.Body.Close()

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("decode email response (status %d): %w", resp.StatusCode, err)
	}
	if !out.Success {
		if out.Error == "" {
			out.Error = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("send email: %s", out.Error)
	}
	return nil
}
