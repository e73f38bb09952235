// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"applyn/internal/models"
)

func TestUploadIconWithoutStorage(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "icon-no-storage@handler-test.local", models.RoleOwner)
	app := createTestApp(t, env, owner.ID, "handler-test-icon-storage", models.PlanFree)
	sess := testSession(owner.ID, owner.Email, "owner", true)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, _ := mw.CreateFormFile("file", "icon.png")
	part.Write([]byte("\x89PNG\r\n\x1a\nnot-a-real-png"))
	mw.Close()

	req := httptest.NewRequest("POST", "/api/v1/apps/x/icon", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req = ownerRequest(req, app.ID, sess)
	w := httptest.NewRecorder()

	env.Apps.UploadIcon(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status: got %d, want 503 when S3 is not configured", w.Code)
	}
}

func TestDeleteIconWithoutIcon(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "icon-delete-none@handler-test.local", models.RoleOwner)
	app := createTestApp(t, env, owner.ID, "handler-test-icon-none", models.PlanFree)
	sess := testSession(owner.ID, owner.Email, "owner", true)

	req := httptest.NewRequest("DELETE", "/api/v1/apps/x/icon", nil)
	req = ownerRequest(req, app.ID, sess)
	w := httptest.NewRecorder()

	env.Apps.DeleteIcon(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404 for app without icon", w.Code)
	}
}
