// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(60, 3)
	defer rl.Stop()
	now := time.Now()

	for i := 0; i < 3; i++ {
		if !rl.allow("test-ip", now) {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.allow("test-ip", now) {
		t.Error("4th request should be rate-limited")
	}
	if !rl.allow("other-ip", now) {
		t.Error("different IP should be allowed")
	}
}

// At 60 a minute one token comes back every second.
func TestRateLimiterRefill(t *testing.T) {
	rl := NewRateLimiter(60, 1)
	defer rl.Stop()
	now := time.Now()

	if !rl.allow("ip", now) {
		t.Fatal("first request should be allowed")
	}
	if rl.allow("ip", now.Add(500*time.Millisecond)) {
		t.Error("should be limited before the refill")
	}
	if !rl.allow("ip", now.Add(1100*time.Millisecond)) {
		t.Error("should be allowed after a token refills")
	}
}

func TestRateLimiterMiddleware(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	defer rl.Stop()
	handler := rl.Middleware(okHandler)

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	for i := 0; i < 2; i++ {
		if rr := send(); rr.Code != http.StatusOK {
			t.Fatalf("request %d: got status %d, want 200", i+1, rr.Code)
		}
	}
	rr := send()
	if rr.Code != http.StatusTooManyRequests {
		t.Errorf("got status %d, want 429", rr.Code)
	}
	if rr.Header().Get("Retry-After") == "" {
		t.Error("Retry-After should be set")
	}
}

func TestRateLimiterCleanup(t *testing.T) {
	rl := NewRateLimiter(10, 5)
	defer rl.Stop()
	now := time.Now()

	rl.allow("ip-old", now.Add(-time.Hour))
	rl.allow("ip-fresh", now)
	rl.cleanup(now)

	rl.mu.Lock()
	_, oldExists := rl.clients["ip-old"]
	_, freshExists := rl.clients["ip-fresh"]
	rl.mu.Unlock()

	if oldExists {
		t.Error("ip-old should have been cleaned up")
	}
	if !freshExists {
		t.Error("ip-fresh should still exist")
	}
}

func TestClientIP(t *testing.T) {
	trusted, err := ParseTrustedProxies("192.168.1.1, 10.0.0.0/8")
	if err != nil {
		t.Fatalf("ParseTrustedProxies: %v", err)
	}

	tests := []struct {
		name       string
		xff        string
		xri        string
		remoteAddr string
		want       string
	}{
		{"forwarded by trusted proxy", "198.51.100.7", "", "192.168.1.1:1234", "198.51.100.7"},
		{"chain through trusted hops", "198.51.100.7, 10.0.0.5", "", "192.168.1.1:1234", "198.51.100.7"},
		{"client-supplied prefix is skipped", "1.2.3.4, 198.51.100.7", "", "192.168.1.1:1234", "198.51.100.7"},
		{"all hops trusted", "10.0.0.9, 10.0.0.5", "", "192.168.1.1:1234", "10.0.0.9"},
		{"x-real-ip from trusted proxy", "", "198.51.100.8", "192.168.1.1:1234", "198.51.100.8"},
		{"untrusted peer ignores x-forwarded-for", "1.2.3.4", "", "203.0.113.9:1234", "203.0.113.9"},
		{"untrusted peer ignores x-real-ip", "", "1.2.3.4", "203.0.113.9:1234", "203.0.113.9"},
		{"remote addr only", "", "", "192.168.1.1:1234", "192.168.1.1"},
		{"ipv6 remote addr", "", "", "[::1]:1234", "::1"},
		{"remote addr no port", "", "", "203.0.113.9", "203.0.113.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}
			if got := clientIP(req, trusted); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseTrustedProxies(t *testing.T) {
	got, err := ParseTrustedProxies(" 127.0.0.1 , ::1, 10.1.2.3/8,")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"127.0.0.1/32", "::1/128", "10.0.0.0/8"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i].String() != want[i] {
			t.Errorf("prefix %d: got %s, want %s", i, got[i], want[i])
		}
	}

	if empty, err := ParseTrustedProxies(""); err != nil || len(empty) != 0 {
		t.Errorf("empty list: got %v, %v", empty, err)
	}
	if _, err := ParseTrustedProxies("not-an-ip"); err == nil {
		t.Error("expected an error for an invalid address")
	}
}

// Rotating X-Forwarded-For must not mint fresh buckets for a direct client.
func TestRateLimiterIgnoresSpoofedForwarding(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	defer rl.Stop()
	handler := rl.Middleware(okHandler)

	codes := make([]int, 0, 3)
	for _, xff := range []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"} {
		req := httptest.NewRequest(http.MethodPost, "/api/send-email", nil)
		req.RemoteAddr = "203.0.113.9:5555"
		req.Header.Set("X-Forwarded-For", xff)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	if codes[0] != http.StatusOK {
		t.Errorf("first request: got %d, want 200", codes[0])
	}
	for i, code := range codes[1:] {
		if code != http.StatusTooManyRequests {
			t.Errorf("request %d: got %d, want 429", i+2, code)
		}
	}
}
