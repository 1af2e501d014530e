// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// RequireAdminToken rejects requests whose bearer token does not match the
// bcrypt hash. An empty hash leaves the routes open; config.Load refuses
// that in production.
func RequireAdminToken(hash string) func(http.Handler) http.Handler {
	if hash == "" {
		slog.Warn("admin API is not protected: ADMIN_TOKEN_HASH is empty")
		return func(next http.Handler) http.Handler { return next }
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				w.Header().Set("WWW-Authenticate", `Bearer realm="admin"`)
				writeError(w, http.StatusUnauthorized, "Missing bearer token.")
				return
			}
			if bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)) != nil {
				slog.Warn("admin token rejected", "remote", remoteHost(r), "path", r.URL.Path)
				writeError(w, http.StatusUnauthorized, "Invalid token.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireServiceToken guards endpoints meant for the server's own
// components, such as send-email. With a token set, callers must present it
// as a bearer token. Without one only loopback peers get through; the
// forwarding headers are not consulted.
func RequireServiceToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				if !isLoopback(r) {
					slog.Warn("internal endpoint refused", "remote", remoteHost(r), "path", r.URL.Path)
					writeError(w, http.StatusForbidden, "Forbidden.")
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			got, ok := bearerToken(r)
			if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				slog.Warn("service token rejected", "remote", remoteHost(r), "path", r.URL.Path)
				w.Header().Set("WWW-Authenticate", `Bearer realm="service"`)
				writeError(w, http.StatusUnauthorized, "Invalid token.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
