package api

import (
	"net/http"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/anand7670/portfolio-backend/models"
)

func seedAdmin(t *testing.T, env *testEnv, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	err = env.database.UserRepo().Add(&models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         "admin",
	})
	if err != nil {
		t.Fatalf("seeding admin: %v", err)
	}
}

func TestLoginIssuesUsableToken(t *testing.T) {
	env := newTestEnv(t)
	seedAdmin(t, env, "admin@example.com", "hunter2")

	rec := env.doJSON(t, http.MethodPost, "/auth/login", map[string]string{
		"email":    "admin@example.com",
		"password": "hunter2",
	}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody[map[string]any](t, rec)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("expected a token in the login response")
	}

	// The issued token opens the admin surface
	rec = env.doJSON(t, http.MethodPut, "/portfolio/about", map[string]string{"aboutMe": "Updated bio"}, token)
	if rec.Code != http.StatusOK {
		t.Errorf("expected issued token to be accepted, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	seedAdmin(t, env, "admin@example.com", "hunter2")

	rec := env.doJSON(t, http.MethodPost, "/auth/login", map[string]string{
		"email":    "admin@example.com",
		"password": "wrong",
	}, "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for wrong password, got %d", rec.Code)
	}

	// Unknown accounts get the same response as bad passwords
	rec = env.doJSON(t, http.MethodPost, "/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "hunter2",
	}, "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for unknown account, got %d", rec.Code)
	}
}

func TestLoginValidatesPayload(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodPost, "/auth/login", map[string]string{
		"email":    "not-an-email",
		"password": "hunter2",
	}, "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid email, got %d", rec.Code)
	}

	rec = env.doJSON(t, http.MethodPost, "/auth/login", map[string]string{
		"email": "admin@example.com",
	}, "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing password, got %d", rec.Code)
	}
}
