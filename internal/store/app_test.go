// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"applyn/internal/builder"
	"applyn/internal/models"
	"applyn/internal/templates"
)

func TestAppStoreCreateAndFind(t *testing.T) {
	db := testDB(t)
	s := NewAppStore(db)

	owner := testOwner(t, db, "test-app-create@store-test.local")
	app := testApp(t, db, owner.ID, "store-test-create", models.PlanFree)

	found, err := s.FindByID(app.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil {
		t.Fatal("expected app, got nil")
	}
	if found.Slug != "store-test-create" {
		t.Errorf("slug: got %q, want %q", found.Slug, "store-test-create")
	}

	bySlug, err := s.FindBySlug("store-test-create")
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if bySlug == nil || bySlug.ID != app.ID {
		t.Error("expected same app by slug")
	}

	missing, err := s.FindBySlug("store-test-no-such-slug")
	if err != nil {
		t.Fatalf("FindBySlug (not found): %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown slug")
	}
}

func TestAppStoreSlugExists(t *testing.T) {
	db := testDB(t)
	s := NewAppStore(db)

	owner := testOwner(t, db, "test-app-slug@store-test.local")
	testApp(t, db, owner.ID, "store-test-taken", models.PlanFree)

	exists, err := s.SlugExists("store-test-taken")
	if err != nil {
		t.Fatalf("SlugExists: %v", err)
	}
	if !exists {
		t.Error("expected taken slug to exist")
	}

	exists, err = s.SlugExists("store-test-free-slug")
	if err != nil {
		t.Fatalf("SlugExists: %v", err)
	}
	if exists {
		t.Error("expected free slug to not exist")
	}
}

// Screens saved through the store must come back byte-comparable after
// a decode, so the editor round-trips without drift.
func TestAppStoreSaveScreensRoundTrip(t *testing.T) {
	db := testDB(t)
	s := NewAppStore(db)

	owner := testOwner(t, db, "test-app-screens@store-test.local")
	app := testApp(t, db, owner.ID, "store-test-screens", models.PlanStarter)

	screens, ok := templates.BuildScreens("ecommerce", "Round Trip Shop")
	if !ok {
		t.Fatal("ecommerce template missing")
	}
	raw, err := builder.EncodeScreens(screens)
	if err != nil {
		t.Fatalf("EncodeScreens: %v", err)
	}

	if err := s.SaveScreens(app.ID, raw); err != nil {
		t.Fatalf("SaveScreens: %v", err)
	}

	found, err := s.FindByID(app.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	decoded, err := builder.DecodeScreens(found.EditorScreens)
	if err != nil {
		t.Fatalf("DecodeScreens: %v", err)
	}
	if len(decoded) != len(screens) {
		t.Fatalf("screens: got %d, want %d", len(decoded), len(screens))
	}
	if decoded[0].Name != screens[0].Name {
		t.Errorf("screen name: got %q, want %q", decoded[0].Name, screens[0].Name)
	}
	if _, issues := builder.ValidateScreens(decoded); len(issues) > 0 {
		t.Errorf("persisted screens failed validation: %v", issues)
	}
}

func TestAppStoreListByOwner(t *testing.T) {
	db := testDB(t)
	s := NewAppStore(db)

	owner := testOwner(t, db, "test-app-list@store-test.local")
	testApp(t, db, owner.ID, "store-test-list-1", models.PlanFree)
	testApp(t, db, owner.ID, "store-test-list-2", models.PlanPro)

	apps, err := s.ListByOwner(owner.ID)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(apps) != 2 {
		t.Fatalf("apps: got %d, want 2", len(apps))
	}
}

func TestAppStoreDeleteCascades(t *testing.T) {
	db := testDB(t)
	s := NewAppStore(db)

	owner := testOwner(t, db, "test-app-delete@store-test.local")
	app := testApp(t, db, owner.ID, "store-test-delete", models.PlanPro)

	if _, err := NewBuildStore(db).Enqueue(app, models.PlatformAndroid); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	if err := s.Delete(app.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	found, err := s.FindByID(app.ID)
	if err != nil {
		t.Fatalf("FindByID after delete: %v", err)
	}
	if found != nil {
		t.Error("expected app gone after delete")
	}

	builds, err := NewBuildStore(db).ListByApp(app.ID)
	if err != nil {
		t.Fatalf("ListByApp after delete: %v", err)
	}
	if len(builds) != 0 {
		t.Error("expected builds cascade-deleted with app")
	}
}

func TestAppStoreUpdate(t *testing.T) {
	db := testDB(t)
	s := NewAppStore(db)

	owner := testOwner(t, db, "test-app-update@store-test.local")
	app := testApp(t, db, owner.ID, "store-test-update", models.PlanFree)

	app.Name = "Renamed App"
	app.PrimaryColor = "#111111"
	app.Plan = models.PlanStarter
	if err := s.Update(app); err != nil {
		t.Fatalf("Update: %v", err)
	}

	found, err := s.FindByID(app.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.Name != "Renamed App" || found.PrimaryColor != "#111111" {
		t.Error("expected updated branding fields")
	}
	if found.Plan != models.PlanStarter {
		t.Errorf("plan: got %q, want %q", found.Plan, models.PlanStarter)
	}
}
