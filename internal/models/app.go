// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Plan is the subscription tier attached to an app. Payment collection
// happens in the external gateway; this service only reads the resulting
// entitlement.
type Plan string

const (
	PlanFree    Plan = "free"
	PlanStarter Plan = "starter"
	PlanPro     Plan = "pro"
)

// BuildQuota returns how many builds per month the plan allows.
func (p Plan) BuildQuota() int {
	switch p {
	case PlanStarter:
		return 10
	case PlanPro:
		return 100
	default:
		return 1
	}
}

// AllowsPlatform reports whether the plan may build for the platform.
// iOS builds require the pro tier.
func (p Plan) AllowsPlatform(platform Platform) bool {
	if platform == PlatformIOS {
		return p == PlanPro
	}
	return true
}

// App represents one customer app: the website it wraps, its branding,
// and the visual editor screens that drive the native-style preview.
//
// EditorScreens holds the raw persisted JSON array; it is decoded,
// migrated, and validated through the builder package on every load and
// save rather than trusted as stored.
type App struct {
	ID             uuid.UUID       `json:"id"`
	OwnerID        uuid.UUID       `json:"owner_id"`
	Name           string          `json:"name"`
	Slug           string          `json:"slug"`
	WebsiteURL     string          `json:"website_url"`
	TemplateID     *string         `json:"template_id,omitempty"`
	Plan           Plan            `json:"plan"`
	PrimaryColor   string          `json:"primary_color"`
	SecondaryColor string          `json:"secondary_color"`
	IconURL        *string         `json:"icon_url,omitempty"`
	EditorScreens  json.RawMessage `json:"editor_screens,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// PreviewURL returns the hosted web preview address for the app, encoded
// into the dashboard QR code.
func (a *App) PreviewURL(baseURL string) string {
	return baseURL + "/preview/" + a.Slug
}
