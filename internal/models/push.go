// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// PushStatus tracks a notification from draft to delivery. Delivery
// itself happens in the external push pipeline; this service moves
// notifications from draft to queued and records what the pipeline
// reports back.
type PushStatus string

const (
	PushDraft  PushStatus = "draft"
	PushQueued PushStatus = "queued"
	PushSent   PushStatus = "sent"
	PushFailed PushStatus = "failed"
)

// PushNotification is one notification composed in the dashboard for an
// app's installed audience.
type PushNotification struct {
	ID          uuid.UUID  `json:"id"`
	AppID       uuid.UUID  `json:"app_id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	ImageURL    *string    `json:"image_url,omitempty"`
	Status      PushStatus `json:"status"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
