// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON API consumed by the Applyn
// dashboard SPA and the public preview endpoints.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"applyn/internal/builder"
)

// respondJSON writes v as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode failed", "error", err)
	}
}

// respondError writes a standard error envelope.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// issueEntry is the wire form of one validation issue: the JSON path to
// the failing field plus a human-readable message.
type issueEntry struct {
	Path    []string `json:"path"`
	Message string   `json:"message"`
}

// respondIssues writes a 422 carrying every validation issue so the
// editor can annotate the exact components that failed.
func respondIssues(w http.ResponseWriter, issues builder.Issues) {
	entries := make([]issueEntry, len(issues))
	for i, iss := range issues {
		path := iss.Path
		if path == nil {
			path = []string{}
		}
		entries[i] = issueEntry{Path: path, Message: iss.Message}
	}
	respondJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"error":  "validation failed",
		"issues": entries,
	})
}

// encodePayload marshals a response body to raw bytes for handlers that
// cache what they serve.
func encodePayload(v any) ([]byte, error) {
	return json.Marshal(v)
}

// decodeBody decodes a JSON request body into dst, rejecting unknown
// payloads larger than 2 MB.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 2<<20)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
