// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"applyn/internal/markdown"
	"applyn/internal/middleware"
	"applyn/internal/models"
	"applyn/internal/store"
)

// Tickets groups the support ticket handlers.
type Tickets struct {
	ticketStore *store.TicketStore
}

func NewTickets(ticketStore *store.TicketStore) *Tickets {
	return &Tickets{ticketStore: ticketStore}
}

// Create opens a ticket with its first message. The message body is
// Markdown and rendered to HTML at save time.
func (h *Tickets) Create(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req struct {
		Subject  string                `json:"subject"`
		Body     string                `json:"body"`
		AppID    *uuid.UUID            `json:"app_id"`
		Priority models.TicketPriority `json:"priority"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if msg := validateTicketInput(req.Subject, req.Body); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	if req.Priority == "" {
		req.Priority = models.PriorityNormal
	}

	ticket, err := h.ticketStore.Create(&models.SupportTicket{
		UserID:   sess.UserID,
		AppID:    req.AppID,
		Subject:  req.Subject,
		Priority: req.Priority,
	})
	if err != nil {
		slog.Error("create ticket failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	html, err := markdown.ToHTML(req.Body)
	if err != nil {
		slog.Error("render ticket body failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if _, err := h.ticketStore.AddMessage(&models.TicketMessage{
		TicketID: ticket.ID,
		AuthorID: sess.UserID,
		Body:     req.Body,
		BodyHTML: html,
	}); err != nil {
		slog.Error("add ticket message failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondJSON(w, http.StatusCreated, ticket)
}

// List returns the caller's tickets; admins see every ticket.
func (h *Tickets) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var (
		tickets []models.SupportTicket
		err     error
	)
	if sess.Role == string(models.RoleAdmin) {
		tickets, err = h.ticketStore.List()
	} else {
		tickets, err = h.ticketStore.ListByUser(sess.UserID)
	}
	if err != nil {
		slog.Error("list tickets failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if tickets == nil {
		tickets = []models.SupportTicket{}
	}
	respondJSON(w, http.StatusOK, tickets)
}

// ticketFromRequest loads the {ticketID} ticket and enforces access:
// the ticket's owner or an admin.
func (h *Tickets) ticketFromRequest(w http.ResponseWriter, r *http.Request) *models.SupportTicket {
	id, err := uuid.Parse(chi.URLParam(r, "ticketID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid ticket id")
		return nil
	}

	ticket, err := h.ticketStore.FindByID(id)
	if err != nil {
		slog.Error("ticket lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return nil
	}
	if ticket == nil {
		respondError(w, http.StatusNotFound, "ticket not found")
		return nil
	}

	sess := middleware.SessionFromCtx(r.Context())
	if sess.Role != string(models.RoleAdmin) && ticket.UserID != sess.UserID {
		respondError(w, http.StatusNotFound, "ticket not found")
		return nil
	}
	return ticket
}

// Get returns a ticket with its full conversation.
func (h *Tickets) Get(w http.ResponseWriter, r *http.Request) {
	ticket := h.ticketFromRequest(w, r)
	if ticket == nil {
		return
	}

	messages, err := h.ticketStore.ListMessages(ticket.ID)
	if err != nil {
		slog.Error("list ticket messages failed", "ticket", ticket.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if messages == nil {
		messages = []models.TicketMessage{}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"ticket":   ticket,
		"messages": messages,
	})
}

// Reply appends a message. A customer reply reopens a pending ticket;
// an admin reply marks it pending (waiting on the customer).
func (h *Tickets) Reply(w http.ResponseWriter, r *http.Request) {
	ticket := h.ticketFromRequest(w, r)
	if ticket == nil {
		return
	}

	var req struct {
		Body string `json:"body"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if msg := validateTicketBody(req.Body); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	sess := middleware.SessionFromCtx(r.Context())
	html, err := markdown.ToHTML(req.Body)
	if err != nil {
		slog.Error("render ticket body failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	message, err := h.ticketStore.AddMessage(&models.TicketMessage{
		TicketID: ticket.ID,
		AuthorID: sess.UserID,
		Body:     req.Body,
		BodyHTML: html,
	})
	if err != nil {
		slog.Error("add ticket message failed", "ticket", ticket.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	status := models.TicketOpen
	if sess.Role == string(models.RoleAdmin) {
		status = models.TicketPending
	}
	if ticket.Status != models.TicketClosed && ticket.Status != status {
		if err := h.ticketStore.UpdateStatus(ticket.ID, status); err != nil {
			slog.Warn("ticket status update failed", "ticket", ticket.ID, "error", err)
		}
	}

	respondJSON(w, http.StatusCreated, message)
}

// UpdateStatus moves a ticket through its workflow. Admin only.
func (h *Tickets) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ticket := h.ticketFromRequest(w, r)
	if ticket == nil {
		return
	}

	var req struct {
		Status models.TicketStatus `json:"status"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	switch req.Status {
	case models.TicketOpen, models.TicketPending, models.TicketClosed:
	default:
		respondError(w, http.StatusBadRequest, "invalid status")
		return
	}

	if err := h.ticketStore.UpdateStatus(ticket.ID, req.Status); err != nil {
		slog.Error("update ticket status failed", "ticket", ticket.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": string(req.Status)})
}
