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
	"applyn/internal/store"
)

// Push groups the push notification compose handlers. Delivery happens
// in the external push pipeline, which consumes queued rows.
type Push struct {
	appStore  *store.AppStore
	pushStore *store.PushStore
}

func NewPush(appStore *store.AppStore, pushStore *store.PushStore) *Push {
	return &Push{appStore: appStore, pushStore: pushStore}
}

// Create saves a draft notification.
func (h *Push) Create(w http.ResponseWriter, r *http.Request) {
	app := loadOwnedApp(w, r, h.appStore)
	if app == nil {
		return
	}

	var req struct {
		Title       string     `json:"title"`
		Body        string     `json:"body"`
		ImageURL    *string    `json:"image_url"`
		ScheduledAt *time.Time `json:"scheduled_at"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if msg := validatePushInput(req.Title, req.Body); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	push, err := h.pushStore.Create(&models.PushNotification{
		AppID:       app.ID,
		Title:       req.Title,
		Body:        req.Body,
		ImageURL:    req.ImageURL,
		ScheduledAt: req.ScheduledAt,
	})
	if err != nil {
		slog.Error("create push failed", "app", app.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusCreated, push)
}

// List returns the app's notifications, newest first.
func (h *Push) List(w http.ResponseWriter, r *http.Request) {
	app := loadOwnedApp(w, r, h.appStore)
	if app == nil {
		return
	}

	pushes, err := h.pushStore.ListByApp(app.ID)
	if err != nil {
		slog.Error("list pushes failed", "app", app.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if pushes == nil {
		pushes = []models.PushNotification{}
	}
	respondJSON(w, http.StatusOK, pushes)
}

// pushFromRequest loads the {pushID} notification and checks it belongs
// to the route's app.
func (h *Push) pushFromRequest(w http.ResponseWriter, r *http.Request) *models.PushNotification {
	app := loadOwnedApp(w, r, h.appStore)
	if app == nil {
		return nil
	}

	id, err := uuid.Parse(chi.URLParam(r, "pushID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid notification id")
		return nil
	}

	push, err := h.pushStore.FindByID(id)
	if err != nil {
		slog.Error("push lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return nil
	}
	if push == nil || push.AppID != app.ID {
		respondError(w, http.StatusNotFound, "notification not found")
		return nil
	}
	return push
}

// Queue hands a draft to the delivery pipeline.
func (h *Push) Queue(w http.ResponseWriter, r *http.Request) {
	push := h.pushFromRequest(w, r)
	if push == nil {
		return
	}

	err := h.pushStore.Queue(push.ID)
	if errors.Is(err, store.ErrNotDraft) {
		respondError(w, http.StatusConflict, "notification already queued or sent")
		return
	}
	if err != nil {
		slog.Error("queue push failed", "push", push.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "queued"})
}

// Delete removes a draft. Sent history stays.
func (h *Push) Delete(w http.ResponseWriter, r *http.Request) {
	push := h.pushFromRequest(w, r)
	if push == nil {
		return
	}

	err := h.pushStore.Delete(push.ID)
	if errors.Is(err, store.ErrNotDraft) {
		respondError(w, http.StatusConflict, "only drafts can be deleted")
		return
	}
	if err != nil {
		slog.Error("delete push failed", "push", push.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
