// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"applyn/internal/models"
)

func TestLoginOwner(t *testing.T) {
	env := newTestEnv(t)
	createTestUser(t, env, "login-owner@handler-test.local", models.RoleOwner)

	req := httptest.NewRequest("POST", "/api/v1/auth/login",
		strings.NewReader(`{"email":"login-owner@handler-test.local","password":"testpass"}`))
	w := httptest.NewRecorder()

	env.Auth.Login(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Next string `json:"next"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Next != "dashboard" {
		t.Errorf("next: got %q, want dashboard (owners skip 2FA)", resp.Next)
	}

	// Session cookie must be set.
	found := false
	for _, c := range w.Result().Cookies() {
		if c.Name == "ap_session" && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Error("expected session cookie")
	}
}

func TestLoginAdminRequires2FASetup(t *testing.T) {
	env := newTestEnv(t)
	createTestUser(t, env, "login-admin@handler-test.local", models.RoleAdmin)

	req := httptest.NewRequest("POST", "/api/v1/auth/login",
		strings.NewReader(`{"email":"login-admin@handler-test.local","password":"testpass"}`))
	w := httptest.NewRecorder()

	env.Auth.Login(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Next string `json:"next"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Next != "2fa_setup" {
		t.Errorf("next: got %q, want 2fa_setup for un-enrolled admin", resp.Next)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	createTestUser(t, env, "login-wrong@handler-test.local", models.RoleOwner)

	req := httptest.NewRequest("POST", "/api/v1/auth/login",
		strings.NewReader(`{"email":"login-wrong@handler-test.local","password":"nope"}`))
	w := httptest.NewRecorder()

	env.Auth.Login(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", w.Code)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest("POST", "/api/v1/auth/login",
		strings.NewReader(`{"email":"nobody@handler-test.local","password":"whatever"}`))
	w := httptest.NewRecorder()

	env.Auth.Login(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", w.Code)
	}
}

func TestTwoFASetupReturnsSecretAndQR(t *testing.T) {
	env := newTestEnv(t)
	admin := createTestUser(t, env, "2fa-setup@handler-test.local", models.RoleAdmin)
	sess := testSession(admin.ID, admin.Email, "admin", false)

	req := httptest.NewRequest("POST", "/api/v1/auth/2fa/setup", nil)
	req = req.WithContext(ctxWithSession(req.Context(), sess))
	w := httptest.NewRecorder()

	env.Auth.TwoFASetup(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Secret string `json:"secret"`
		QRPNG  string `json:"qr_png"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Secret == "" {
		t.Error("expected TOTP secret")
	}
	if resp.QRPNG == "" {
		t.Error("expected base64 QR PNG")
	}

	// The secret must now be stored on the user.
	user, err := env.UserStore.FindByID(admin.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if user.TOTPSecret == nil || *user.TOTPSecret != resp.Secret {
		t.Error("expected stored secret to match response")
	}
}

func TestTwoFAVerifyRejectsBadCode(t *testing.T) {
	env := newTestEnv(t)
	admin := createTestUser(t, env, "2fa-verify@handler-test.local", models.RoleAdmin)
	if err := env.UserStore.SetTOTPSecret(admin.ID, "JBSWY3DPEHPK3PXP"); err != nil {
		t.Fatalf("SetTOTPSecret: %v", err)
	}
	sess := testSession(admin.ID, admin.Email, "admin", false)

	req := httptest.NewRequest("POST", "/api/v1/auth/2fa/verify",
		strings.NewReader(`{"code":"000000"}`))
	req = req.WithContext(ctxWithSession(req.Context(), sess))
	w := httptest.NewRecorder()

	env.Auth.TwoFAVerify(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", w.Code)
	}
}
