package hires

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"hirehand-backend/internal/candidates"
	"hirehand-backend/internal/shared/storage/kv/memory"
)

func newHireRouter(t *testing.T, repo Repo, profiles ProfileGetter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	NewHandler(repo, profiles).RegisterRoutes(api)
	return r
}

func seedProfile(t *testing.T, repo *candidates.Repo, id string) {
	t.Helper()
	err := repo.Create(context.Background(), candidates.Profile{
		ID:                 id,
		Name:               "Ramesh Kumar",
		VerificationStatus: candidates.StatusVerified,
	})
	if err != nil {
		t.Fatalf("seed profile: %v", err)
	}
}

func TestCreateHireIntent(t *testing.T) {
	profiles := &candidates.Repo{KV: memory.New()}
	seedProfile(t, profiles, "profile-1")
	repo := NewMemoryRepo()
	router := newHireRouter(t, repo, profiles)

	body, _ := json.Marshal(map[string]any{
		"employerName":  "Sunita Sharma",
		"employerPhone": "+919812345678",
		"profileId":     "profile-1",
		"message":       "Need a cook from next week",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hire-intents", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created Intent
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == "" || created.ProfileID != "profile-1" {
		t.Fatalf("created = %+v", created)
	}

	stored, err := repo.ListByProfile(context.Background(), "profile-1")
	if err != nil {
		t.Fatalf("ListByProfile: %v", err)
	}
	if len(stored) != 1 || stored[0].EmployerName != "Sunita Sharma" {
		t.Fatalf("stored = %+v", stored)
	}
}

func TestCreateHireIntentUnknownProfile(t *testing.T) {
	profiles := &candidates.Repo{KV: memory.New()}
	router := newHireRouter(t, NewMemoryRepo(), profiles)

	body, _ := json.Marshal(map[string]any{
		"employerName":  "Sunita Sharma",
		"employerPhone": "+919812345678",
		"profileId":     "missing",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hire-intents", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestCreateHireIntentValidation(t *testing.T) {
	profiles := &candidates.Repo{KV: memory.New()}
	seedProfile(t, profiles, "profile-1")
	router := newHireRouter(t, NewMemoryRepo(), profiles)

	cases := []map[string]any{
		{"employerPhone": "+91981", "profileId": "profile-1"}, // no name
		{"employerName": "Sunita", "profileId": "profile-1"},  // no phone
		{"employerName": "Sunita", "employerPhone": "+91981"}, // no profile
	}
	for i, payload := range cases {
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/hire-intents", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if resp.Code != http.StatusBadRequest {
			t.Errorf("case %d: expected 400, got %d", i, resp.Code)
		}
	}
}
