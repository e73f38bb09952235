// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"applyn/internal/models"
	"applyn/internal/storage"
	"applyn/internal/store"
)

// artifactLinkTTL is how long a presigned artifact download stays valid.
const artifactLinkTTL = 24 * time.Hour

// Builds groups the build queue handlers. Status transitions happen in
// the external build workers; these handlers only enqueue and read.
type Builds struct {
	appStore   *store.AppStore
	buildStore *store.BuildStore
	storage    *storage.Client
}

// NewBuilds creates a new Builds handler group. storage may be nil when
// object storage is unconfigured; artifact links are then served as-is.
func NewBuilds(appStore *store.AppStore, buildStore *store.BuildStore, storage *storage.Client) *Builds {
	return &Builds{appStore: appStore, buildStore: buildStore, storage: storage}
}

// Enqueue queues a build for the app. iOS builds are gated to the pro
// plan, and every plan has a monthly quota.
func (h *Builds) Enqueue(w http.ResponseWriter, r *http.Request) {
	app := loadOwnedApp(w, r, h.appStore)
	if app == nil {
		return
	}

	var req struct {
		Platform models.Platform `json:"platform"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Platform != models.PlatformAndroid && req.Platform != models.PlatformIOS {
		respondError(w, http.StatusBadRequest, "platform must be android or ios")
		return
	}
	if !app.Plan.AllowsPlatform(req.Platform) {
		respondError(w, http.StatusForbidden, "iOS builds require the pro plan")
		return
	}

	build, err := h.buildStore.Enqueue(app, req.Platform)
	if errors.Is(err, store.ErrQuotaExceeded) {
		respondError(w, http.StatusForbidden, "monthly build quota exceeded")
		return
	}
	if err != nil {
		slog.Error("enqueue build failed", "app", app.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondJSON(w, http.StatusCreated, build)
}

// List returns the app's build history plus quota usage for the month.
func (h *Builds) List(w http.ResponseWriter, r *http.Request) {
	app := loadOwnedApp(w, r, h.appStore)
	if app == nil {
		return
	}

	builds, err := h.buildStore.ListByApp(app.ID)
	if err != nil {
		slog.Error("list builds failed", "app", app.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if builds == nil {
		builds = []models.Build{}
	}

	used, err := h.buildStore.UsedThisMonth(app.ID)
	if err != nil {
		slog.Error("quota lookup failed", "app", app.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"builds":      builds,
		"quota_used":  used,
		"quota_limit": app.Plan.BuildQuota(),
	})
}

// Status returns one build for polling. When the build has succeeded and
// object storage is configured, the artifact URL is replaced with a
// presigned download link.
func (h *Builds) Status(w http.ResponseWriter, r *http.Request) {
	app := loadOwnedApp(w, r, h.appStore)
	if app == nil {
		return
	}

	buildID, err := uuid.Parse(chi.URLParam(r, "buildID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid build id")
		return
	}

	build, err := h.buildStore.FindByID(buildID)
	if err != nil {
		slog.Error("build lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if build == nil || build.AppID != app.ID {
		respondError(w, http.StatusNotFound, "build not found")
		return
	}

	if build.Status == models.BuildSucceeded && build.ArtifactURL != nil && h.storage != nil {
		signed, err := h.storage.ArtifactURL(r.Context(), *build.ArtifactURL, artifactLinkTTL)
		if err != nil {
			slog.Warn("artifact presign failed", "build", build.ID, "error", err)
		} else {
			build.ArtifactURL = &signed
		}
	}

	respondJSON(w, http.StatusOK, build)
}
