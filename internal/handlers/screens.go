// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"applyn/internal/builder"
	"applyn/internal/cache"
	"applyn/internal/store"
	"applyn/internal/templates"
)

// Screens groups the visual editor persistence handlers.
type Screens struct {
	appStore *store.AppStore
	cache    *cache.ScreensCache
}

// NewScreens creates a new Screens handler group. The cache may be nil.
func NewScreens(appStore *store.AppStore, cache *cache.ScreensCache) *Screens {
	return &Screens{appStore: appStore, cache: cache}
}

// Get returns the app's editor screens. Payloads saved before the
// spacing token scale are migrated on load and written back, so the
// stored form converges without a bulk migration.
func (h *Screens) Get(w http.ResponseWriter, r *http.Request) {
	app := loadOwnedApp(w, r, h.appStore)
	if app == nil {
		return
	}

	var screens []builder.Screen
	if len(app.EditorScreens) > 0 {
		var err error
		screens, err = builder.DecodeScreens(app.EditorScreens)
		if err != nil {
			slog.Error("stored screens corrupt", "app", app.ID, "error", err)
			respondError(w, http.StatusInternalServerError, "stored screens are corrupt")
			return
		}
	}

	migrated, changed := builder.MigrateLegacySpacing(screens)
	if changed {
		raw, err := builder.EncodeScreens(migrated)
		if err == nil {
			if err := h.appStore.SaveScreens(app.ID, raw); err != nil {
				slog.Warn("screens migration write-back failed", "app", app.ID, "error", err)
			} else if h.cache != nil {
				h.cache.Invalidate(r.Context(), app.Slug)
			}
		}
		screens = migrated
	}

	if screens == nil {
		screens = []builder.Screen{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"screens": screens})
}

// Save validates and persists an editor payload. Validation failures come
// back as a 422 with a field path per issue; nothing is stored unless the
// whole payload passes.
func (h *Screens) Save(w http.ResponseWriter, r *http.Request) {
	app := loadOwnedApp(w, r, h.appStore)
	if app == nil {
		return
	}

	var req struct {
		Screens json.RawMessage `json:"screens"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	screens, err := builder.DecodeScreens(req.Screens)
	if err != nil {
		respondError(w, http.StatusBadRequest, "screens payload is not valid JSON")
		return
	}

	// Old editors may still send pixel spacing; migrate before validating.
	screens, _ = builder.MigrateLegacySpacing(screens)

	normalized, issues := builder.ValidateScreens(screens)
	if len(issues) > 0 {
		respondIssues(w, issues)
		return
	}

	raw, err := builder.EncodeScreens(normalized)
	if err != nil {
		slog.Error("encode screens failed", "app", app.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if err := h.appStore.SaveScreens(app.ID, raw); err != nil {
		slog.Error("save screens failed", "app", app.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if h.cache != nil {
		h.cache.Invalidate(r.Context(), app.Slug)
	}

	respondJSON(w, http.StatusOK, map[string]any{"screens": normalized})
}

// ApplyTemplate replaces the app's screens with a personalized copy of a
// catalog template. The current screens are overwritten; the dashboard
// confirms with the user before calling this.
func (h *Screens) ApplyTemplate(w http.ResponseWriter, r *http.Request) {
	app := loadOwnedApp(w, r, h.appStore)
	if app == nil {
		return
	}

	var req struct {
		TemplateID string `json:"template_id"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	screens, ok := templates.BuildScreens(req.TemplateID, app.Name)
	if !ok {
		respondError(w, http.StatusNotFound, "unknown template")
		return
	}

	normalized, issues := builder.ValidateScreens(screens)
	if len(issues) > 0 {
		slog.Error("template produced invalid screens", "template", req.TemplateID, "issues", issues.Error())
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	raw, err := builder.EncodeScreens(normalized)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if err := h.appStore.SaveScreens(app.ID, raw); err != nil {
		slog.Error("save screens failed", "app", app.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if h.cache != nil {
		h.cache.Invalidate(r.Context(), app.Slug)
	}

	respondJSON(w, http.StatusOK, map[string]any{"screens": normalized})
}

// ImportBlueprint converts an AppBlueprint document into editor screens
// and saves them. Used by the website import pipeline, which emits
// blueprints rather than raw screens.
func (h *Screens) ImportBlueprint(w http.ResponseWriter, r *http.Request) {
	app := loadOwnedApp(w, r, h.appStore)
	if app == nil {
		return
	}

	var bp builder.Blueprint
	if !decodeBody(w, r, &bp) {
		return
	}

	screens, err := builder.ScreensFromBlueprint(bp)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	normalized, issues := builder.ValidateScreens(screens)
	if len(issues) > 0 {
		respondIssues(w, issues)
		return
	}

	raw, err := builder.EncodeScreens(normalized)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if err := h.appStore.SaveScreens(app.ID, raw); err != nil {
		slog.Error("save screens failed", "app", app.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if h.cache != nil {
		h.cache.Invalidate(r.Context(), app.Slug)
	}

	respondJSON(w, http.StatusOK, map[string]any{"screens": normalized})
}
