// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// Applyn server. Routes split into the authenticated dashboard API under
// /api/v1 and the public preview endpoints.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"applyn/internal/handlers"
	"applyn/internal/middleware"
	"applyn/internal/session"
	"applyn/web"
)

// Handlers bundles every handler group the router wires up.
type Handlers struct {
	Auth      *handlers.Auth
	Apps      *handlers.Apps
	Screens   *handlers.Screens
	Templates *handlers.Templates
	Builds    *handlers.Builds
	Push      *handlers.Push
	Tickets   *handlers.Tickets
	Preview   *handlers.Preview
	Metrics   *handlers.Metrics
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. loginLimiter throttles credential guessing
// on the login endpoint.
func New(sessionStore *session.Store, loginLimiter *middleware.RateLimiter, h Handlers) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check — no auth, no CSRF.
	r.Get("/health", healthHandler)

	// Dashboard API.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.CSRF)

		// Auth endpoints — reachable without a session.
		r.With(loginLimiter.Middleware).Post("/auth/login", h.Auth.Login)
		r.Post("/auth/logout", h.Auth.Logout)

		// 2FA — requires auth but NOT completed verification.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Post("/auth/2fa/setup", h.Auth.TwoFASetup)
			r.Post("/auth/2fa/verify", h.Auth.TwoFAVerify)
		})

		// Authenticated dashboard area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			r.Get("/auth/me", h.Auth.Me)

			// Template catalog
			r.Get("/templates", h.Templates.List)
			r.Get("/templates/{templateID}", h.Templates.Get)

			// Apps and everything scoped to one app
			r.Route("/apps", func(r chi.Router) {
				r.Get("/", h.Apps.List)
				r.Post("/", h.Apps.Create)

				r.Route("/{appID}", func(r chi.Router) {
					r.Get("/", h.Apps.Get)
					r.Put("/", h.Apps.Update)
					r.Delete("/", h.Apps.Delete)

					// Branding
					r.Post("/icon", h.Apps.UploadIcon)
					r.Delete("/icon", h.Apps.DeleteIcon)

					// Visual editor
					r.Get("/screens", h.Screens.Get)
					r.Put("/screens", h.Screens.Save)
					r.Post("/screens/template", h.Screens.ApplyTemplate)
					r.Post("/screens/blueprint", h.Screens.ImportBlueprint)

					// Build queue
					r.Get("/builds", h.Builds.List)
					r.Post("/builds", h.Builds.Enqueue)
					r.Get("/builds/{buildID}", h.Builds.Status)

					// Push notifications
					r.Get("/push", h.Push.List)
					r.Post("/push", h.Push.Create)
					r.Post("/push/{pushID}/queue", h.Push.Queue)
					r.Delete("/push/{pushID}", h.Push.Delete)
				})
			})

			// Support tickets
			r.Route("/tickets", func(r chi.Router) {
				r.Get("/", h.Tickets.List)
				r.Post("/", h.Tickets.Create)
				r.Get("/{ticketID}", h.Tickets.Get)
				r.Post("/{ticketID}/messages", h.Tickets.Reply)

				// Workflow transitions — admin only
				r.With(middleware.RequireAdmin).Put("/{ticketID}/status", h.Tickets.UpdateStatus)
			})

			// Admin metrics
			r.With(middleware.RequireAdmin).Get("/admin/metrics", h.Metrics.Overview)
		})
	})

	// Public preview — no auth, looked up by slug.
	r.Get("/preview/{slug}/screens.json", h.Preview.Screens)
	r.Get("/preview/{slug}/qr.png", h.Preview.QR)

	// Embedded dashboard assets.
	staticFS, _ := fs.Sub(web.StaticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
