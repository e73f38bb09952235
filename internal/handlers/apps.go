// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"applyn/internal/builder"
	"applyn/internal/cache"
	"applyn/internal/middleware"
	"applyn/internal/models"
	"applyn/internal/slug"
	"applyn/internal/storage"
	"applyn/internal/store"
	"applyn/internal/templates"
)

// Apps groups the app CRUD and icon handlers.
type Apps struct {
	appStore *store.AppStore
	screens  *cache.ScreensCache
	storage  *storage.Client
}

// NewApps creates a new Apps handler group. The screens cache and the
// storage client may be nil when Redis caching or S3 are disabled.
func NewApps(appStore *store.AppStore, screens *cache.ScreensCache, storage *storage.Client) *Apps {
	return &Apps{appStore: appStore, screens: screens, storage: storage}
}

// appFromRequest loads the app named by the {appID} URL parameter and
// enforces ownership: owners see their own apps, admins see all. Writes
// the error response and returns nil on any failure.
func (h *Apps) appFromRequest(w http.ResponseWriter, r *http.Request) *models.App {
	return loadOwnedApp(w, r, h.appStore)
}

// loadOwnedApp is shared by every handler group that scopes a route to
// one app.
func loadOwnedApp(w http.ResponseWriter, r *http.Request, apps *store.AppStore) *models.App {
	id, err := uuid.Parse(chi.URLParam(r, "appID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid app id")
		return nil
	}

	app, err := apps.FindByID(id)
	if err != nil {
		slog.Error("app lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return nil
	}
	if app == nil {
		respondError(w, http.StatusNotFound, "app not found")
		return nil
	}

	sess := middleware.SessionFromCtx(r.Context())
	if sess.Role != string(models.RoleAdmin) && app.OwnerID != sess.UserID {
		respondError(w, http.StatusNotFound, "app not found")
		return nil
	}
	return app
}

// List returns the caller's apps (all apps for admins).
func (h *Apps) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var (
		apps []models.App
		err  error
	)
	if sess.Role == string(models.RoleAdmin) {
		apps, err = h.appStore.List()
	} else {
		apps, err = h.appStore.ListByOwner(sess.UserID)
	}
	if err != nil {
		slog.Error("list apps failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if apps == nil {
		apps = []models.App{}
	}
	respondJSON(w, http.StatusOK, apps)
}

// Create makes a new app. When a template ID is given, the catalog
// screens are instantiated and personalized with the app's name before
// the first save.
func (h *Apps) Create(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req struct {
		Name           string  `json:"name"`
		WebsiteURL     string  `json:"website_url"`
		TemplateID     *string `json:"template_id"`
		PrimaryColor   string  `json:"primary_color"`
		SecondaryColor string  `json:"secondary_color"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if msg := validateAppInput(req.Name, req.WebsiteURL); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	for _, c := range []string{req.PrimaryColor, req.SecondaryColor} {
		if msg := validateColor(c); msg != "" {
			respondError(w, http.StatusBadRequest, msg)
			return
		}
	}

	app := &models.App{
		OwnerID:        sess.UserID,
		Name:           req.Name,
		WebsiteURL:     req.WebsiteURL,
		TemplateID:     req.TemplateID,
		Plan:           models.PlanFree,
		PrimaryColor:   orDefault(req.PrimaryColor, "#2563eb"),
		SecondaryColor: orDefault(req.SecondaryColor, "#f59e0b"),
	}

	if req.TemplateID != nil {
		screens, ok := templates.BuildScreens(*req.TemplateID, req.Name)
		if !ok {
			respondError(w, http.StatusNotFound, "unknown template")
			return
		}
		normalized, issues := builder.ValidateScreens(screens)
		if len(issues) > 0 {
			slog.Error("template produced invalid screens", "template", *req.TemplateID, "issues", issues.Error())
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}
		raw, err := builder.EncodeScreens(normalized)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}
		app.EditorScreens = raw
	}

	s, err := h.uniqueSlug(req.Name)
	if err != nil {
		slog.Error("slug generation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	app.Slug = s

	created, err := h.appStore.Create(app)
	if err != nil {
		slog.Error("create app failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// Get returns one app.
func (h *Apps) Get(w http.ResponseWriter, r *http.Request) {
	app := h.appFromRequest(w, r)
	if app == nil {
		return
	}
	respondJSON(w, http.StatusOK, app)
}

// Update writes the app's branding and settings fields.
func (h *Apps) Update(w http.ResponseWriter, r *http.Request) {
	app := h.appFromRequest(w, r)
	if app == nil {
		return
	}

	var req struct {
		Name           string `json:"name"`
		WebsiteURL     string `json:"website_url"`
		PrimaryColor   string `json:"primary_color"`
		SecondaryColor string `json:"secondary_color"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if msg := validateAppInput(req.Name, req.WebsiteURL); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	for _, c := range []string{req.PrimaryColor, req.SecondaryColor} {
		if msg := validateColor(c); msg != "" {
			respondError(w, http.StatusBadRequest, msg)
			return
		}
	}

	app.Name = req.Name
	app.WebsiteURL = req.WebsiteURL
	if req.PrimaryColor != "" {
		app.PrimaryColor = req.PrimaryColor
	}
	if req.SecondaryColor != "" {
		app.SecondaryColor = req.SecondaryColor
	}

	if err := h.appStore.Update(app); err != nil {
		slog.Error("update app failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusOK, app)
}

// Delete removes an app and everything hanging off it.
func (h *Apps) Delete(w http.ResponseWriter, r *http.Request) {
	app := h.appFromRequest(w, r)
	if app == nil {
		return
	}

	if err := h.appStore.Delete(app.ID); err != nil {
		slog.Error("delete app failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if h.screens != nil {
		h.screens.Invalidate(r.Context(), app.Slug)
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// uniqueSlug derives a slug from the app name and appends a numeric
// suffix until it is free.
func (h *Apps) uniqueSlug(name string) (string, error) {
	base := slug.Generate(name)
	if base == "" {
		base = "app"
	}

	candidate := base
	for i := 2; ; i++ {
		exists, err := h.appStore.SlugExists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
