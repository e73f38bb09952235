// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"applyn/internal/templates"
)

// Templates serves the industry template catalog to the dashboard.
type Templates struct{}

func NewTemplates() *Templates {
	return &Templates{}
}

// templateSummary is a catalog entry without its screens, which the
// picker grid doesn't need.
type templateSummary struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	PrimaryColor   string   `json:"primaryColor"`
	SecondaryColor string   `json:"secondaryColor"`
	Icon           string   `json:"icon"`
	Features       []string `json:"features"`
	ScreenCount    int      `json:"screenCount"`
}

// List returns the catalog without screen bodies.
func (h *Templates) List(w http.ResponseWriter, r *http.Request) {
	all := templates.List()
	out := make([]templateSummary, len(all))
	for i, t := range all {
		out[i] = templateSummary{
			ID:             t.ID,
			Name:           t.Name,
			Description:    t.Description,
			PrimaryColor:   t.PrimaryColor,
			SecondaryColor: t.SecondaryColor,
			Icon:           t.Icon,
			Features:       t.Features,
			ScreenCount:    len(t.Screens),
		}
	}
	respondJSON(w, http.StatusOK, out)
}

// Get returns one catalog entry with its full screens for the template
// preview pane.
func (h *Templates) Get(w http.ResponseWriter, r *http.Request) {
	t, ok := templates.Find(chi.URLParam(r, "templateID"))
	if !ok {
		respondError(w, http.StatusNotFound, "unknown template")
		return
	}
	respondJSON(w, http.StatusOK, t)
}
