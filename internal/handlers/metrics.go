// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"applyn/internal/store"
)

// Metrics serves the admin overview counters.
type Metrics struct {
	userStore   *store.UserStore
	appStore    *store.AppStore
	buildStore  *store.BuildStore
	ticketStore *store.TicketStore
}

func NewMetrics(userStore *store.UserStore, appStore *store.AppStore, buildStore *store.BuildStore, ticketStore *store.TicketStore) *Metrics {
	return &Metrics{
		userStore:   userStore,
		appStore:    appStore,
		buildStore:  buildStore,
		ticketStore: ticketStore,
	}
}

// Overview returns platform-wide counts for the admin dashboard.
func (h *Metrics) Overview(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.Count()
	if err != nil {
		slog.Error("count users failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	apps, err := h.appStore.Count()
	if err != nil {
		slog.Error("count apps failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	builds, err := h.buildStore.CountByStatus()
	if err != nil {
		slog.Error("count builds failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	openTickets, err := h.ticketStore.CountOpen()
	if err != nil {
		slog.Error("count tickets failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"users":        users,
		"apps":         apps,
		"builds":       builds,
		"open_tickets": openTickets,
	})
}
