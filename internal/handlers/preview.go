// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"

	"applyn/internal/builder"
	"applyn/internal/cache"
	"applyn/internal/store"
)

// Preview serves the public app preview endpoints: the screen payload
// the preview shell renders, and the QR code shown in the dashboard that
// links a phone to it. No authentication; apps are looked up by slug.
type Preview struct {
	appStore *store.AppStore
	cache    *cache.ScreensCache
	baseURL  string
}

// NewPreview creates a new Preview handler group. cache may be nil.
func NewPreview(appStore *store.AppStore, cache *cache.ScreensCache, baseURL string) *Preview {
	return &Preview{appStore: appStore, cache: cache, baseURL: baseURL}
}

// Screens returns an app's current screens as JSON for the preview
// shell. Responses are cached per slug; the editor invalidates on save.
func (h *Preview) Screens(w http.ResponseWriter, r *http.Request) {
	s := chi.URLParam(r, "slug")

	if h.cache != nil {
		if payload, ok := h.cache.Get(r.Context(), s); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write(payload)
			return
		}
	}

	app, err := h.appStore.FindBySlug(s)
	if err != nil {
		slog.Error("preview app lookup failed", "slug", s, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if app == nil {
		respondError(w, http.StatusNotFound, "app not found")
		return
	}

	screens := []builder.Screen{}
	if len(app.EditorScreens) > 0 {
		decoded, err := builder.DecodeScreens(app.EditorScreens)
		if err != nil {
			slog.Error("stored screens corrupt", "app", app.ID, "error", err)
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}
		decoded, _ = builder.MigrateLegacySpacing(decoded)
		screens = decoded
	}

	payload := map[string]any{
		"name":            app.Name,
		"website_url":     app.WebsiteURL,
		"primary_color":   app.PrimaryColor,
		"secondary_color": app.SecondaryColor,
		"icon_url":        app.IconURL,
		"screens":         screens,
	}

	// Render once so cache and response carry identical bytes.
	raw, err := encodePayload(payload)
	if err != nil {
		slog.Error("encode preview payload failed", "app", app.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if h.cache != nil {
		h.cache.Set(r.Context(), s, raw)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(raw)
}

// QR returns a PNG QR code pointing at the app's hosted preview, for the
// dashboard's "open on your phone" panel.
func (h *Preview) QR(w http.ResponseWriter, r *http.Request) {
	s := chi.URLParam(r, "slug")

	app, err := h.appStore.FindBySlug(s)
	if err != nil {
		slog.Error("preview app lookup failed", "slug", s, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if app == nil {
		respondError(w, http.StatusNotFound, "app not found")
		return
	}

	png, err := qrcode.Encode(app.PreviewURL(h.baseURL), qrcode.Medium, 256)
	if err != nil {
		slog.Error("qr encode failed", "app", app.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
