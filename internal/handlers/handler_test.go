// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL or Redis are
// unavailable.
package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"applyn/internal/cache"
	"applyn/internal/database"
	"applyn/internal/middleware"
	"applyn/internal/models"
	"applyn/internal/session"
	"applyn/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "applyn")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "applyn")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testRedisClient returns a Redis client for handler tests on DB 15.
func testRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("REDIS_HOST", "localhost")
	port := envOr("REDIS_PORT", "6379")
	password := os.Getenv("REDIS_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Redis not reachable: %v", err)
	}

	t.Cleanup(func() {
		for _, pattern := range []string{"session:*", "screens:*"} {
			keys, _ := client.Keys(ctx, pattern).Result()
			if len(keys) > 0 {
				client.Del(ctx, keys...)
			}
		}
		client.Close()
	})

	return client
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB          *sql.DB
	Redis       *redis.Client
	Sessions    *session.Store
	UserStore   *store.UserStore
	AppStore    *store.AppStore
	BuildStore  *store.BuildStore
	PushStore   *store.PushStore
	TicketStore *store.TicketStore
	Cache       *cache.ScreensCache
	Auth        *Auth
	Apps        *Apps
	Screens     *Screens
	Templates   *Templates
	Builds      *Builds
	Push        *Push
	Tickets     *Tickets
	Preview     *Preview
	Metrics     *Metrics
}

// newTestEnv creates a complete test environment with all handler dependencies.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	rc := testRedisClient(t)

	sessions := session.NewStore(rc, false)
	userStore := store.NewUserStore(db)
	appStore := store.NewAppStore(db)
	buildStore := store.NewBuildStore(db)
	pushStore := store.NewPushStore(db)
	ticketStore := store.NewTicketStore(db)
	screensCache := cache.NewScreensCache(rc, 1*time.Minute)

	return &testEnv{
		DB:          db,
		Redis:       rc,
		Sessions:    sessions,
		UserStore:   userStore,
		AppStore:    appStore,
		BuildStore:  buildStore,
		PushStore:   pushStore,
		TicketStore: ticketStore,
		Cache:       screensCache,
		Auth:        NewAuth(sessions, userStore),
		Apps:        NewApps(appStore, screensCache, nil),
		Screens:     NewScreens(appStore, screensCache),
		Templates:   NewTemplates(),
		Builds:      NewBuilds(appStore, buildStore, nil),
		Push:        NewPush(appStore, pushStore),
		Tickets:     NewTickets(ticketStore),
		Preview:     NewPreview(appStore, screensCache, "https://preview.applyn.app"),
		Metrics:     NewMetrics(userStore, appStore, buildStore, ticketStore),
	}
}

// ctxWithSession adds session data to a context using the middleware key.
func ctxWithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, middleware.SessionKey, data)
}

// testSession creates a session.Data for testing.
func testSession(userID uuid.UUID, email, role string, twoFADone bool) *session.Data {
	return &session.Data{
		UserID:      userID,
		Email:       email,
		DisplayName: "Test User",
		Role:        role,
		TwoFADone:   twoFADone,
	}
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// ownerRequest builds a request carrying an appID param and the owner's
// session, the state every app-scoped handler sees after middleware.
func ownerRequest(r *http.Request, appID uuid.UUID, sess *session.Data) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("appID", appID.String())
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, middleware.SessionKey, sess)
	return r.WithContext(ctx)
}

// withChiURLParamExtra adds another URL parameter to a request that
// already carries a chi route context.
func withChiURLParamExtra(r *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(r.Context())
	rctx.URLParams.Add(key, value)
	return r
}

// createTestUser creates a user and schedules cleanup. Cascades remove
// the user's apps, builds, pushes, and tickets.
func createTestUser(t *testing.T, env *testEnv, email string, role models.Role) *models.User {
	t.Helper()
	t.Cleanup(func() { env.DB.Exec("DELETE FROM users WHERE email = $1", email) })

	user, err := env.UserStore.Create(email, "testpass", "Handler Test User", role)
	if err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

// createTestApp creates an app for the owner.
func createTestApp(t *testing.T, env *testEnv, ownerID uuid.UUID, slug string, plan models.Plan) *models.App {
	t.Helper()

	app, err := env.AppStore.Create(&models.App{
		OwnerID:        ownerID,
		Name:           "Handler Test App",
		Slug:           slug,
		WebsiteURL:     "https://example.com",
		Plan:           plan,
		PrimaryColor:   "#2563eb",
		SecondaryColor: "#f59e0b",
	})
	if err != nil {
		t.Fatalf("create test app: %v", err)
	}
	return app
}
