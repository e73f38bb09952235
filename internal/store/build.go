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

// ErrQuotaExceeded is returned by Enqueue when the app has already used
// its monthly build allowance for its plan.
var ErrQuotaExceeded = errors.New("monthly build quota exceeded")

// BuildStore handles build job database operations. The dashboard only
// enqueues and reads; status transitions belong to the external worker.
type BuildStore struct {
	db *sql.DB
}

func NewBuildStore(db *sql.DB) *BuildStore {
	return &BuildStore{db: db}
}

const buildColumns = `id, app_id, platform, status, version_code,
	artifact_url, build_log, queued_at, started_at, finished_at`

func scanBuild(row appScanner) (*models.Build, error) {
	b := &models.Build{}
	err := row.Scan(
		&b.ID, &b.AppID, &b.Platform, &b.Status, &b.VersionCode,
		&b.ArtifactURL, &b.BuildLog, &b.QueuedAt, &b.StartedAt, &b.FinishedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Enqueue creates a queued build job for the app. The quota count and the
// insert run in one transaction so two concurrent requests cannot both
// slip under the limit.
func (s *BuildStore) Enqueue(app *models.App, platform models.Platform) (*models.Build, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin enqueue: %w", err)
	}
	defer tx.Rollback()

	var used int
	err = tx.QueryRow(`
		SELECT COUNT(*) FROM builds
		WHERE app_id = $1 AND queued_at >= date_trunc('month', NOW())
	`, app.ID).Scan(&used)
	if err != nil {
		return nil, fmt.Errorf("count monthly builds: %w", err)
	}
	if used >= app.Plan.BuildQuota() {
		return nil, ErrQuotaExceeded
	}

	var version int
	err = tx.QueryRow(`
		SELECT COALESCE(MAX(version_code), 0) + 1 FROM builds
		WHERE app_id = $1 AND platform = $2
	`, app.ID, platform).Scan(&version)
	if err != nil {
		return nil, fmt.Errorf("next version code: %w", err)
	}

	b, err := scanBuild(tx.QueryRow(`
		INSERT INTO builds (app_id, platform, version_code)
		VALUES ($1, $2, $3)
		RETURNING `+buildColumns,
		app.ID, platform, version))
	if err != nil {
		return nil, fmt.Errorf("enqueue build: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit enqueue: %w", err)
	}
	return b, nil
}

// FindByID retrieves a build by UUID. Returns nil if not found.
func (s *BuildStore) FindByID(id uuid.UUID) (*models.Build, error) {
	b, err := scanBuild(s.db.QueryRow(
		`SELECT `+buildColumns+` FROM builds WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("find build by id: %w", err)
	}
	return b, nil
}

// ListByApp returns all builds for an app, newest first.
func (s *BuildStore) ListByApp(appID uuid.UUID) ([]models.Build, error) {
	rows, err := s.db.Query(
		`SELECT `+buildColumns+` FROM builds WHERE app_id = $1 ORDER BY queued_at DESC`, appID)
	if err != nil {
		return nil, fmt.Errorf("list builds: %w", err)
	}
	defer rows.Close()

	var builds []models.Build
	for rows.Next() {
		var b models.Build
		if err := rows.Scan(
			&b.ID, &b.AppID, &b.Platform, &b.Status, &b.VersionCode,
			&b.ArtifactURL, &b.BuildLog, &b.QueuedAt, &b.StartedAt, &b.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("scan build: %w", err)
		}
		builds = append(builds, b)
	}
	return builds, rows.Err()
}

// UsedThisMonth returns how many builds the app has queued in the current
// calendar month, for quota display in the dashboard.
func (s *BuildStore) UsedThisMonth(appID uuid.UUID) (int, error) {
	var used int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM builds
		WHERE app_id = $1 AND queued_at >= date_trunc('month', NOW())
	`, appID).Scan(&used)
	if err != nil {
		return 0, fmt.Errorf("count monthly builds: %w", err)
	}
	return used, nil
}

// CountByStatus returns build counts grouped by status, for the admin
// metrics endpoint.
func (s *BuildStore) CountByStatus() (map[models.BuildStatus]int, error) {
	rows, err := s.db.Query(`SELECT status, COUNT(*) FROM builds GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count builds by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.BuildStatus]int)
	for rows.Next() {
		var status models.BuildStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan build count: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
