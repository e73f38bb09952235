// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"encoding/json"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"applyn/internal/database"
	"applyn/internal/models"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "applyn")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "applyn")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := testDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// cleanUsers removes test users by email. Cascades take apps, builds,
// pushes and tickets with them. Call in t.Cleanup().
func cleanUsers(t *testing.T, db *sql.DB, emails ...string) {
	t.Helper()
	for _, email := range emails {
		db.Exec("DELETE FROM users WHERE email = $1", email)
	}
}

// testOwner creates a throwaway owner user for app-centric tests and
// schedules its removal.
func testOwner(t *testing.T, db *sql.DB, email string) *models.User {
	t.Helper()
	t.Cleanup(func() { cleanUsers(t, db, email) })

	user, err := NewUserStore(db).Create(email, "pass", "Store Test Owner", models.RoleOwner)
	if err != nil {
		t.Fatalf("create test owner: %v", err)
	}
	return user
}

// testApp creates an app under the owner with the given plan.
func testApp(t *testing.T, db *sql.DB, ownerID uuid.UUID, slug string, plan models.Plan) *models.App {
	t.Helper()

	app, err := NewAppStore(db).Create(&models.App{
		OwnerID:        ownerID,
		Name:           "Store Test App",
		Slug:           slug,
		WebsiteURL:     "https://example.com",
		Plan:           plan,
		PrimaryColor:   "#2563eb",
		SecondaryColor: "#f59e0b",
		EditorScreens:  json.RawMessage(`[]`),
	})
	if err != nil {
		t.Fatalf("create test app: %v", err)
	}
	return app
}
