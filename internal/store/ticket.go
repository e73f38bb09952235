// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"applyn/internal/models"
)

// TicketStore handles support ticket and ticket message operations.
type TicketStore struct {
	db *sql.DB
}

func NewTicketStore(db *sql.DB) *TicketStore {
	return &TicketStore{db: db}
}

const ticketColumns = `id, user_id, app_id, subject, status, priority, created_at, updated_at`

func scanTicket(row appScanner) (*models.SupportTicket, error) {
	t := &models.SupportTicket{}
	err := row.Scan(
		&t.ID, &t.UserID, &t.AppID, &t.Subject, &t.Status, &t.Priority,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Create opens a new ticket.
func (s *TicketStore) Create(t *models.SupportTicket) (*models.SupportTicket, error) {
	created, err := scanTicket(s.db.QueryRow(`
		INSERT INTO support_tickets (user_id, app_id, subject, priority)
		VALUES ($1, $2, $3, $4)
		RETURNING `+ticketColumns,
		t.UserID, t.AppID, t.Subject, t.Priority))
	if err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}
	return created, nil
}

// FindByID retrieves a ticket by UUID. Returns nil if not found.
func (s *TicketStore) FindByID(id uuid.UUID) (*models.SupportTicket, error) {
	t, err := scanTicket(s.db.QueryRow(
		`SELECT `+ticketColumns+` FROM support_tickets WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("find ticket by id: %w", err)
	}
	return t, nil
}

// ListByUser returns a user's tickets, most recently active first.
func (s *TicketStore) ListByUser(userID uuid.UUID) ([]models.SupportTicket, error) {
	rows, err := s.db.Query(
		`SELECT `+ticketColumns+` FROM support_tickets WHERE user_id = $1 ORDER BY updated_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list tickets by user: %w", err)
	}
	defer rows.Close()
	return collectTickets(rows)
}

// List returns every ticket, most recently active first. Admin only.
func (s *TicketStore) List() ([]models.SupportTicket, error) {
	rows, err := s.db.Query(
		`SELECT ` + ticketColumns + ` FROM support_tickets ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()
	return collectTickets(rows)
}

func collectTickets(rows *sql.Rows) ([]models.SupportTicket, error) {
	var tickets []models.SupportTicket
	for rows.Next() {
		var t models.SupportTicket
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.AppID, &t.Subject, &t.Status, &t.Priority,
			&t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

// UpdateStatus moves a ticket through its workflow.
func (s *TicketStore) UpdateStatus(id uuid.UUID, status models.TicketStatus) error {
	_, err := s.db.Exec(`
		UPDATE support_tickets SET status = $1, updated_at = NOW() WHERE id = $2
	`, status, id)
	if err != nil {
		return fmt.Errorf("update ticket status: %w", err)
	}
	return nil
}

// AddMessage appends a reply and bumps the ticket's activity timestamp.
func (s *TicketStore) AddMessage(m *models.TicketMessage) (*models.TicketMessage, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin add message: %w", err)
	}
	defer tx.Rollback()

	created := &models.TicketMessage{}
	err = tx.QueryRow(`
		INSERT INTO ticket_messages (ticket_id, author_id, body, body_html)
		VALUES ($1, $2, $3, $4)
		RETURNING id, ticket_id, author_id, body, body_html, created_at
	`, m.TicketID, m.AuthorID, m.Body, m.BodyHTML).Scan(
		&created.ID, &created.TicketID, &created.AuthorID,
		&created.Body, &created.BodyHTML, &created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("add ticket message: %w", err)
	}

	_, err = tx.Exec(`
		UPDATE support_tickets SET updated_at = NOW() WHERE id = $1
	`, m.TicketID)
	if err != nil {
		return nil, fmt.Errorf("touch ticket: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit add message: %w", err)
	}
	return created, nil
}

// ListMessages returns a ticket's conversation in chronological order.
func (s *TicketStore) ListMessages(ticketID uuid.UUID) ([]models.TicketMessage, error) {
	rows, err := s.db.Query(`
		SELECT id, ticket_id, author_id, body, body_html, created_at
		FROM ticket_messages WHERE ticket_id = $1 ORDER BY created_at
	`, ticketID)
	if err != nil {
		return nil, fmt.Errorf("list ticket messages: %w", err)
	}
	defer rows.Close()

	var messages []models.TicketMessage
	for rows.Next() {
		var m models.TicketMessage
		if err := rows.Scan(
			&m.ID, &m.TicketID, &m.AuthorID, &m.Body, &m.BodyHTML, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ticket message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// CountOpen returns how many tickets are not closed, for admin metrics.
func (s *TicketStore) CountOpen() (int, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM support_tickets WHERE status != $1
	`, models.TicketClosed).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count open tickets: %w", err)
	}
	return count, nil
}
