// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the JSON handlers of the folio API. Public
// handlers serve the portfolio site; admin handlers expose CRUD over every
// entity. Both only talk to the data services, which never fail.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"folio/internal/service"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// envelope is the body of every successful response.
type envelope struct {
	Data   any             `json:"data"`
	Source service.Source  `json:"source,omitempty"`
	Notice *service.Notice `json:"notice,omitempty"`
}

// errorBody is the body of every error response.
type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		slog.Error("encode response failed", "error", err)
		writeRaw(w, http.StatusInternalServerError, []byte(`{"error":"Internal Server Error"}`))
		return
	}
	writeRaw(w, status, body)
}

func writeRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// decodeJSON reads the request body into dst and validates it. On failure
// it writes the error response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	return decodeBody(w, r, dst) && checkStruct(w, dst)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body.")
		return false
	}
	return true
}

// checkStruct writes a 422 listing every invalid field of v.
func checkStruct(w http.ResponseWriter, v any) bool {
	if fields := validateStruct(v); fields != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: "Validation failed.", Fields: fields})
		return false
	}
	return true
}
