package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"applyn/internal/builder"
	"applyn/internal/templates"
)

// Seed populates the database with initial development data: a default
// admin user and a demo app instantiated from the ecommerce template
// through the normal clone/personalize/validate pipeline. It is a no-op
// when users already exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	// Default admin. 2FA is not enabled — they must set it up on first login.
	var adminID string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, display_name, role, totp_enabled)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, "admin@applyn.local", string(hash), "Admin", "admin", false).Scan(&adminID)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	// Demo app seeded the same way the dashboard creates one.
	screens, ok := templates.BuildScreens("ecommerce", "Demo Store")
	if !ok {
		return fmt.Errorf("seed: ecommerce template missing from catalog")
	}
	screens, issues := builder.ValidateScreens(screens)
	if len(issues) > 0 {
		return fmt.Errorf("seed: demo screens invalid: %w", issues)
	}
	raw, err := builder.EncodeScreens(screens)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	templateID := "ecommerce"
	_, err = db.Exec(`
		INSERT INTO apps (owner_id, name, slug, website_url, template_id, plan, editor_screens)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, adminID, "Demo Store", "demo-store", "https://demo.applyn.local", templateID, "pro", raw)
	if err != nil {
		return fmt.Errorf("seed insert demo app: %w", err)
	}

	slog.Info("database seeded with default admin user and demo app",
		"email", "admin@applyn.local",
		"password", "admin",
	)

	return nil
}
