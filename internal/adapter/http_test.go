// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter builds an httpServerAdapter pointed at the test server
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/login", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "admin@example.com", creds.Email)

		writeJSON(t, w, http.StatusOK, models.AuthResponse{
			Success: true,
			Message: "Admin login successful",
			User:    &models.UserInfo{ID: 7, Email: creds.Email, Role: models.RoleAdmin},
			Token:   "signed.jwt.token",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.Credentials{Email: "admin@example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", got.Token)
	assert.Equal(t, int64(7), got.User.ID)
	assert.Equal(t, models.RoleAdmin, got.User.Role)
}

func TestLogin_TokenFromHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Authorization", "Bearer header.jwt.token")
		writeJSON(t, w, http.StatusOK, models.AuthResponse{
			Success: true,
			User:    &models.UserInfo{ID: 1, Email: "a@x.com", Role: models.RoleAdmin},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.Credentials{Email: "a@x.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "header.jwt.token", got.Token)
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.Response{Message: "Invalid Credentials"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Email: "a@x.com", Password: "nope"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid Credentials")
}

func TestLogin_TooManyRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusTooManyRequests, models.Response{Message: "slow down"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Email: "a@x.com", Password: "x"})

	assert.ErrorIs(t, err, ErrTooManyRequests)
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/register", r.URL.Path)
		writeJSON(t, w, http.StatusCreated, models.AuthResponse{
			Success: true,
			User:    &models.UserInfo{ID: 2, Email: "a@x.com", Role: models.RoleUser},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.User{Email: "a@x.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ID)
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, models.Response{Message: "This email is already registered."})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.User{Email: "a@x.com", Password: "secret1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

// ── CheckRole ───────────────────────────────────────────────────────────────

func TestCheckRole(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/check-role/admin@example.com":
			writeJSON(t, w, http.StatusOK, models.RoleResponse{Success: true, IsAdmin: true})
		case "/check-role/user@example.com":
			writeJSON(t, w, http.StatusOK, models.RoleResponse{Success: true, IsAdmin: false})
		default:
			writeJSON(t, w, http.StatusNotFound, models.RoleResponse{Message: "User not found."})
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	isAdmin, err := a.CheckRole(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = a.CheckRole(context.Background(), "user@example.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	isAdmin, err = a.CheckRole(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

// ── Sections ────────────────────────────────────────────────────────────────

func TestGetSection_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/hero", r.URL.Path)
		w.Header().Set("ETag", `"4"`)
		writeJSON(t, w, http.StatusOK, map[string]any{"title": "Software Engineer"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	section, err := a.GetSection(context.Background(), "hero")

	require.NoError(t, err)
	assert.Equal(t, "hero", section.Name)
	assert.Equal(t, int64(4), section.Version)
	assert.Equal(t, "Software Engineer", section.Data["title"])
}

func TestGetSection_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.Response{Message: "Section not found."})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetSection(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetSection_CancelledContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	a := newTestAdapter(t, srv.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.GetSection(ctx, "hero")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPutSection_SendsTokenAndIfMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/about", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, `"2"`, r.Header.Get("If-Match"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "new", body["bio"])

		writeJSON(t, w, http.StatusOK, models.SectionSaveResponse{Success: true, Version: 3})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	version, err := a.PutSection(context.Background(), "tok", models.Section{
		Name:    "about",
		Data:    models.SectionData{"bio": "new"},
		Version: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), version)
}

func TestPutSection_NoIfMatchForVersionZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("If-Match"))
		writeJSON(t, w, http.StatusOK, models.SectionSaveResponse{Success: true, Version: 1})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.PutSection(context.Background(), "tok", models.Section{Name: "hero", Data: models.SectionData{}})
	require.NoError(t, err)
}

func TestPutSection_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, models.Response{Message: "stale"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.PutSection(context.Background(), "tok", models.Section{Name: "hero", Data: models.SectionData{}, Version: 1})

	assert.ErrorIs(t, err, ErrConflict)
}

// ── Projects ────────────────────────────────────────────────────────────────

func TestListProjects_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.ProjectsResponse{
			Success:  true,
			Projects: []models.Project{{ID: "1", Title: "Foo"}},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	projects, err := a.ListProjects(context.Background())

	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Foo", projects[0].Title)
}

func TestCreateProject_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		var p models.Project
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		p.ID = "new-id"
		writeJSON(t, w, http.StatusCreated, models.ProjectResponse{Success: true, Project: &p})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	created, err := a.CreateProject(context.Background(), "tok", models.Project{Title: "Foo", Description: "Bar", Technologies: []string{"React"}})

	require.NoError(t, err)
	assert.Equal(t, "new-id", created.ID)
	assert.Equal(t, []string{"React"}, created.Technologies)
}

func TestUpdateProject_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/projects/bad-id", r.URL.Path)
		writeJSON(t, w, http.StatusNotFound, models.Response{Message: "Project not found."})
	}))
	defer srv.Close()

	title := "x"
	a := newTestAdapter(t, srv.URL)
	_, err := a.UpdateProject(context.Background(), "tok", "bad-id", models.ProjectUpdate{Title: &title})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Project not found.")
}

func TestDeleteProject_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		writeJSON(t, w, http.StatusForbidden, models.Response{Message: "Access denied. You are not an administrator."})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.DeleteProject(context.Background(), "tok", "id")

	assert.ErrorIs(t, err, ErrForbidden)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:3000", "http://localhost:3000", false},
		{"no scheme", "localhost:3000", "http://localhost:3000", false},
		{"trailing slash", "http://localhost:3000/", "http://localhost:3000", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestVersionStamp(t *testing.T) {
	assert.Equal(t, `"12"`, FormatVersionStamp(12))

	for in, want := range map[string]int64{`"3"`: 3, `W/"5"`: 5, "7": 7, ` "0" `: 0} {
		got, err := ParseVersionStamp(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", `"abc"`, `"-1"`} {
		_, err := ParseVersionStamp(bad)
		assert.ErrorIs(t, err, ErrInvalidVersionStamp, bad)
	}
}

func TestResponseMessage(t *testing.T) {
	assert.Equal(t, "Project not found.", responseMessage([]byte(`{"success":false,"message":"Project not found."}`)))
	assert.Equal(t, "plain text", responseMessage([]byte("  plain text \n")))
}
