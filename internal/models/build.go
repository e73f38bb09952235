// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Platform is the build target.
type Platform string

const (
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
)

// BuildStatus tracks a build job through its lifecycle. This service only
// enqueues jobs and serves status polling; the native build worker is a
// separate process that claims queued rows and flips them through
// building to a terminal state.
type BuildStatus string

const (
	BuildQueued    BuildStatus = "queued"
	BuildRunning   BuildStatus = "building"
	BuildSucceeded BuildStatus = "succeeded"
	BuildFailed    BuildStatus = "failed"
)

// Terminal reports whether the status is final.
func (s BuildStatus) Terminal() bool {
	return s == BuildSucceeded || s == BuildFailed
}

// Build represents one build job for an app.
type Build struct {
	ID          uuid.UUID   `json:"id"`
	AppID       uuid.UUID   `json:"app_id"`
	Platform    Platform    `json:"platform"`
	Status      BuildStatus `json:"status"`
	VersionCode int         `json:"version_code"`
	ArtifactURL *string     `json:"artifact_url,omitempty"`
	BuildLog    *string     `json:"build_log,omitempty"`
	QueuedAt    time.Time   `json:"queued_at"`
	StartedAt   *time.Time  `json:"started_at,omitempty"`
	FinishedAt  *time.Time  `json:"finished_at,omitempty"`
}
