package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/anand7670/portfolio-backend/models"
)

func submitContact(t *testing.T, env *testEnv, remoteAddr string, payload map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshaling contact payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = remoteAddr
	return env.do(t, req)
}

func validContact() map[string]string {
	return map[string]string{
		"name":    "Jane Visitor",
		"email":   "jane@example.com",
		"subject": "Hiring inquiry",
		"message": "I would like to discuss a contract role.",
	}
}

func TestSubmitContactStoresMessage(t *testing.T) {
	env := newTestEnv(t)

	rec := submitContact(t, env, "203.0.113.7:4000", validContact())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody[map[string]any](t, rec)
	if body["success"] != true {
		t.Errorf("expected success true, got %v", body["success"])
	}

	messages, total, err := env.database.ContactRepo().FindPage(1, 10)
	if err != nil {
		t.Fatalf("FindPage returned error: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 stored message, got %d", total)
	}
	stored := messages[0]
	if stored.Status != models.ContactStatusNew {
		t.Errorf("expected status new, got %q", stored.Status)
	}
	if stored.IPAddress != "203.0.113.7" {
		t.Errorf("expected captured source IP, got %q", stored.IPAddress)
	}
}

func TestSubmitContactValidationBounds(t *testing.T) {
	env := newTestEnv(t)

	// One character below the minimum message length
	// The limiter counts every request on the route; distinct IPs keep these
	// sub-cases out of each other's budget.
	payload := validContact()
	payload["message"] = strings.Repeat("x", 9)
	rec := submitContact(t, env, "203.0.113.10:4000", payload)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a 9 character message, got %d", rec.Code)
	}

	payload = validContact()
	payload["message"] = strings.Repeat("x", 10)
	rec = submitContact(t, env, "203.0.113.11:4000", payload)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for a 10 character message, got %d: %s", rec.Code, rec.Body.String())
	}

	payload = validContact()
	payload["name"] = "J"
	rec = submitContact(t, env, "203.0.113.12:4000", payload)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a 1 character name, got %d", rec.Code)
	}

	payload = validContact()
	payload["subject"] = "Hey"
	rec = submitContact(t, env, "203.0.113.13:4000", payload)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a 3 character subject, got %d", rec.Code)
	}

	payload = validContact()
	payload["email"] = "not-an-email"
	rec = submitContact(t, env, "203.0.113.14:4000", payload)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an invalid email, got %d", rec.Code)
	}
}

func TestSubmitContactRateLimitPerIP(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < 3; i++ {
		rec := submitContact(t, env, "203.0.113.7:4000", validContact())
		if rec.Code != http.StatusOK {
			t.Fatalf("submission %d: expected 200, got %d: %s", i+1, rec.Code, rec.Body.String())
		}
	}

	rec := submitContact(t, env, "203.0.113.7:4000", validContact())
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429 on the fourth submission, got %d", rec.Code)
	}

	// The limit is keyed per source IP
	rec = submitContact(t, env, "203.0.113.8:4000", validContact())
	if rec.Code != http.StatusOK {
		t.Errorf("expected a different IP to be unaffected, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGetAllContactsPagination(t *testing.T) {
	env := newTestEnv(t)
	token := adminToken(t)

	for i := 0; i < 15; i++ {
		err := env.database.ContactRepo().Add(&models.ContactMessage{
			Name:    fmt.Sprintf("Sender %02d", i),
			Email:   fmt.Sprintf("sender%02d@example.com", i),
			Subject: "Hello there",
			Message: "This is a long enough message body.",
		})
		if err != nil {
			t.Fatalf("seeding message: %v", err)
		}
	}

	// Listing is admin-only
	rec := env.doJSON(t, http.MethodGet, "/contact", nil, "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", rec.Code)
	}

	rec = env.doJSON(t, http.MethodGet, "/contact?page=2&limit=10", nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	type listResponse struct {
		Contacts   []models.ContactMessage `json:"contacts"`
		Pagination paginationMeta          `json:"pagination"`
	}
	body := decodeBody[listResponse](t, rec)
	if len(body.Contacts) != 5 {
		t.Errorf("expected 5 messages on page 2, got %d", len(body.Contacts))
	}
	if body.Pagination.Current != 2 || body.Pagination.Pages != 2 || body.Pagination.Total != 15 {
		t.Errorf("unexpected pagination metadata: %+v", body.Pagination)
	}

	// Nonsense query values fall back to defaults
	rec = env.doJSON(t, http.MethodGet, "/contact?page=abc&limit=-1", nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body = decodeBody[listResponse](t, rec)
	if body.Pagination.Current != 1 || len(body.Contacts) != 10 {
		t.Errorf("expected default pagination, got %+v with %d contacts", body.Pagination, len(body.Contacts))
	}
}

func TestUpdateContactStatusEndpoint(t *testing.T) {
	env := newTestEnv(t)
	token := adminToken(t)

	message := &models.ContactMessage{
		Name:    "Jane Visitor",
		Email:   "jane@example.com",
		Subject: "Hiring inquiry",
		Message: "I would like to discuss a contract role.",
	}
	if err := env.database.ContactRepo().Add(message); err != nil {
		t.Fatalf("seeding message: %v", err)
	}

	for _, status := range []string{"read", "replied", "new"} {
		rec := env.doJSON(t, http.MethodPut, "/contact/"+message.ID.String()+"/status",
			map[string]string{"status": status}, token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 setting status %q, got %d: %s", status, rec.Code, rec.Body.String())
		}
		body := decodeBody[models.ContactMessage](t, rec)
		if body.Status != status {
			t.Errorf("expected response status %q, got %q", status, body.Status)
		}
	}

	rec := env.doJSON(t, http.MethodPut, "/contact/"+message.ID.String()+"/status",
		map[string]string{"status": "archived"}, token)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unrecognized status, got %d", rec.Code)
	}

	rec = env.doJSON(t, http.MethodPut, "/contact/"+uuid.NewString()+"/status",
		map[string]string{"status": "read"}, token)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown message, got %d", rec.Code)
	}
}

func TestDeleteContactEndpoint(t *testing.T) {
	env := newTestEnv(t)
	token := adminToken(t)

	message := &models.ContactMessage{
		Name:    "Jane Visitor",
		Email:   "jane@example.com",
		Subject: "Hiring inquiry",
		Message: "I would like to discuss a contract role.",
	}
	if err := env.database.ContactRepo().Add(message); err != nil {
		t.Fatalf("seeding message: %v", err)
	}

	rec := env.doJSON(t, http.MethodDelete, "/contact/"+message.ID.String(), nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = env.doJSON(t, http.MethodDelete, "/contact/"+message.ID.String(), nil, token)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 deleting twice, got %d", rec.Code)
	}
}
