// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"applyn/internal/models"
)

// AppStore handles all app-related database operations.
type AppStore struct {
	db *sql.DB
}

func NewAppStore(db *sql.DB) *AppStore {
	return &AppStore{db: db}
}

const appColumns = `id, owner_id, name, slug, website_url, template_id, plan,
	primary_color, secondary_color, icon_url, editor_screens, created_at, updated_at`

type appScanner interface {
	Scan(dest ...any) error
}

func scanApp(row appScanner) (*models.App, error) {
	a := &models.App{}
	err := row.Scan(
		&a.ID, &a.OwnerID, &a.Name, &a.Slug, &a.WebsiteURL, &a.TemplateID, &a.Plan,
		&a.PrimaryColor, &a.SecondaryColor, &a.IconURL, &a.EditorScreens,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts a new app for the given owner.
func (s *AppStore) Create(a *models.App) (*models.App, error) {
	created, err := scanApp(s.db.QueryRow(`
		INSERT INTO apps (owner_id, name, slug, website_url, template_id, plan,
			primary_color, secondary_color, icon_url, editor_screens)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+appColumns,
		a.OwnerID, a.Name, a.Slug, a.WebsiteURL, a.TemplateID, a.Plan,
		a.PrimaryColor, a.SecondaryColor, a.IconURL, a.EditorScreens))
	if err != nil {
		return nil, fmt.Errorf("create app: %w", err)
	}
	return created, nil
}

// FindByID retrieves an app by UUID. Returns nil if not found.
func (s *AppStore) FindByID(id uuid.UUID) (*models.App, error) {
	a, err := scanApp(s.db.QueryRow(
		`SELECT `+appColumns+` FROM apps WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("find app by id: %w", err)
	}
	return a, nil
}

// FindBySlug retrieves an app by its preview slug. Returns nil if not found.
func (s *AppStore) FindBySlug(slug string) (*models.App, error) {
	a, err := scanApp(s.db.QueryRow(
		`SELECT `+appColumns+` FROM apps WHERE slug = $1`, slug))
	if err != nil {
		return nil, fmt.Errorf("find app by slug: %w", err)
	}
	return a, nil
}

// SlugExists reports whether any app already uses the slug.
func (s *AppStore) SlugExists(slug string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM apps WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check slug: %w", err)
	}
	return exists, nil
}

// ListByOwner returns all apps belonging to a user, newest first.
func (s *AppStore) ListByOwner(ownerID uuid.UUID) ([]models.App, error) {
	rows, err := s.db.Query(
		`SELECT `+appColumns+` FROM apps WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list apps by owner: %w", err)
	}
	defer rows.Close()
	return collectApps(rows)
}

// List returns every app in the system, newest first. Admin only.
func (s *AppStore) List() ([]models.App, error) {
	rows, err := s.db.Query(`SELECT ` + appColumns + ` FROM apps ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list apps: %w", err)
	}
	defer rows.Close()
	return collectApps(rows)
}

func collectApps(rows *sql.Rows) ([]models.App, error) {
	var apps []models.App
	for rows.Next() {
		var a models.App
		if err := rows.Scan(
			&a.ID, &a.OwnerID, &a.Name, &a.Slug, &a.WebsiteURL, &a.TemplateID, &a.Plan,
			&a.PrimaryColor, &a.SecondaryColor, &a.IconURL, &a.EditorScreens,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan app: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// Update writes the mutable branding and settings fields of an app.
func (s *AppStore) Update(a *models.App) error {
	_, err := s.db.Exec(`
		UPDATE apps SET name = $1, website_url = $2, primary_color = $3,
			secondary_color = $4, icon_url = $5, plan = $6, updated_at = NOW()
		WHERE id = $7
	`, a.Name, a.WebsiteURL, a.PrimaryColor, a.SecondaryColor, a.IconURL, a.Plan, a.ID)
	if err != nil {
		return fmt.Errorf("update app: %w", err)
	}
	return nil
}

// SaveScreens persists a validated editor screen payload for the app.
func (s *AppStore) SaveScreens(id uuid.UUID, screens json.RawMessage) error {
	_, err := s.db.Exec(`
		UPDATE apps SET editor_screens = $1, updated_at = NOW() WHERE id = $2
	`, screens, id)
	if err != nil {
		return fmt.Errorf("save app screens: %w", err)
	}
	return nil
}

// Delete removes an app and, via cascade, its builds, pushes and tickets.
func (s *AppStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM apps WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete app: %w", err)
	}
	return nil
}

// Count returns the total number of apps.
func (s *AppStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM apps`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count apps: %w", err)
	}
	return count, nil
}
