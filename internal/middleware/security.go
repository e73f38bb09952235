// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

package middleware

import "net/http"

// securityHeaders applied to every response. The frame restriction matters
// most here: the screen editor must not be embeddable on foreign origins.
var securityHeaders = map[string]string{
	"X-Content-Type-Options": "nosniff",
	"X-Frame-Options":        "SAMEORIGIN",
	"X-XSS-Protection":       "0", // legacy filter off, CSP territory
	"Referrer-Policy":        "strict-origin-when-cross-origin",
	"Permissions-Policy":     "interest-cohort=()",
}

// SecureHeaders sets baseline browser hardening headers on every response.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		for name, value := range securityHeaders {
			h.Set(name, value)
		}
		next.ServeHTTP(w, r)
	})
}
