// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"applyn/internal/models"
)

// ErrNotDraft is returned when a queue or delete targets a notification
// that has already left the draft state.
var ErrNotDraft = errors.New("push notification is not a draft")

// PushStore handles push notification database operations.
type PushStore struct {
	db *sql.DB
}

func NewPushStore(db *sql.DB) *PushStore {
	return &PushStore{db: db}
}

const pushColumns = `id, app_id, title, body, image_url, status,
	scheduled_at, sent_at, created_at`

func scanPush(row appScanner) (*models.PushNotification, error) {
	p := &models.PushNotification{}
	err := row.Scan(
		&p.ID, &p.AppID, &p.Title, &p.Body, &p.ImageURL, &p.Status,
		&p.ScheduledAt, &p.SentAt, &p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a draft notification for the app.
func (s *PushStore) Create(p *models.PushNotification) (*models.PushNotification, error) {
	created, err := scanPush(s.db.QueryRow(`
		INSERT INTO push_notifications (app_id, title, body, image_url, scheduled_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+pushColumns,
		p.AppID, p.Title, p.Body, p.ImageURL, p.ScheduledAt))
	if err != nil {
		return nil, fmt.Errorf("create push: %w", err)
	}
	return created, nil
}

// FindByID retrieves a notification by UUID. Returns nil if not found.
func (s *PushStore) FindByID(id uuid.UUID) (*models.PushNotification, error) {
	p, err := scanPush(s.db.QueryRow(
		`SELECT `+pushColumns+` FROM push_notifications WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("find push by id: %w", err)
	}
	return p, nil
}

// ListByApp returns all notifications for an app, newest first.
func (s *PushStore) ListByApp(appID uuid.UUID) ([]models.PushNotification, error) {
	rows, err := s.db.Query(
		`SELECT `+pushColumns+` FROM push_notifications WHERE app_id = $1 ORDER BY created_at DESC`, appID)
	if err != nil {
		return nil, fmt.Errorf("list pushes: %w", err)
	}
	defer rows.Close()

	var pushes []models.PushNotification
	for rows.Next() {
		var p models.PushNotification
		if err := rows.Scan(
			&p.ID, &p.AppID, &p.Title, &p.Body, &p.ImageURL, &p.Status,
			&p.ScheduledAt, &p.SentAt, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan push: %w", err)
		}
		pushes = append(pushes, p)
	}
	return pushes, rows.Err()
}

// Queue hands a draft notification to the delivery pipeline. Only drafts
// may be queued; the WHERE clause guards against double submission.
func (s *PushStore) Queue(id uuid.UUID) error {
	res, err := s.db.Exec(`
		UPDATE push_notifications SET status = $1 WHERE id = $2 AND status = $3
	`, models.PushQueued, id, models.PushDraft)
	if err != nil {
		return fmt.Errorf("queue push: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotDraft
	}
	return nil
}

// Delete removes a draft notification. Sent history is immutable.
func (s *PushStore) Delete(id uuid.UUID) error {
	res, err := s.db.Exec(`
		DELETE FROM push_notifications WHERE id = $1 AND status = $2
	`, id, models.PushDraft)
	if err != nil {
		return fmt.Errorf("delete push: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotDraft
	}
	return nil
}
