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

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.Adapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestNewHTTPServerAdapter_Address(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantURL string
		wantErr error
	}{
		{name: "full url", address: "http://localhost:8080/", wantURL: "http://localhost:8080"},
		{name: "host and port", address: "localhost:8080", wantURL: "http://localhost:8080"},
		{name: "https kept", address: "https://keeper.example.com", wantURL: "https://keeper.example.com"},
		{name: "empty", address: "  ", wantErr: ErrEmptyServerAddress},
		{name: "no host", address: "http://", wantErr: ErrServerAddressHasNoScheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewHTTPServerAdapter(config.Adapter{HTTPAddress: tt.address}, logger.Nop())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, a.(*httpServerAdapter).client.BaseURL)
		})
	}
}

func TestSetToken_TrimsWhitespace(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:8080")
	a.SetToken("  abc \n")
	assert.Equal(t, "abc", a.Token())
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice@example.com", req.Handle)
		assert.Equal(t, "Secret123", req.Password)

		w.Header().Set("Authorization", "Bearer header-token")
		writeJSON(t, w, http.StatusOK, models.LoginResponse{
			Message: "Login successful",
			Token:   "body-token",
			User:    models.User{ID: "u-1", Username: "alice", Email: "alice@example.com"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.LoginRequest{Handle: "alice@example.com", Password: "Secret123"})

	require.NoError(t, err)
	assert.Equal(t, "body-token", got.Token)
	assert.Equal(t, "u-1", got.User.ID)
	assert.Equal(t, "body-token", a.Token())
}

func TestLogin_TokenFromHeaderOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Authorization", "Bearer header-token")
		writeJSON(t, w, http.StatusOK, models.LoginResponse{Message: "Login successful"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.LoginRequest{Handle: "alice", Password: "x"})

	require.NoError(t, err)
	assert.Equal(t, "header-token", got.Token)
	assert.Equal(t, "header-token", a.Token())
}

func TestLogin_NoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.LoginResponse{Message: "Login successful"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Handle: "alice", Password: "x"})

	require.ErrorIs(t, err, ErrNoToken)
	assert.Empty(t, a.Token())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.MessageResponse{Message: "Invalid credentials"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Handle: "alice", Password: "wrong"})

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid credentials")
	assert.Empty(t, a.Token())
}

func TestLogin_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.Login(context.Background(), models.LoginRequest{Handle: "alice", Password: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "login request")
}

func TestChangePassword(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		message string
		wantErr error
	}{
		{name: "success", status: http.StatusOK, message: "Password updated successfully!"},
		{name: "wrong current password", status: http.StatusBadRequest, message: "Current password is incorrect.", wantErr: ErrBadRequest},
		{name: "expired token", status: http.StatusUnauthorized, message: "Token is expired or invalid.", wantErr: ErrUnauthorized},
		{name: "account gone", status: http.StatusNotFound, message: "User not found.", wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/auth/change-password", r.URL.Path)
				assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

				var req models.PasswordChangeRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "Secret123", req.CurrentPassword)
				assert.Equal(t, "NewPass456", req.NewPassword)

				writeJSON(t, w, tt.status, models.MessageResponse{Message: tt.message})
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			a.SetToken("tok")
			err := a.ChangePassword(context.Background(), models.PasswordChangeRequest{
				CurrentPassword: "Secret123",
				NewPassword:     "NewPass456",
			})

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestListUsers_Success(t *testing.T) {
	users := []models.User{
		{ID: "u-1", Username: "alice", Email: "alice@example.com", Role: models.RoleStandard, IsActive: true},
		{ID: "u-2", Username: "root", Email: "root@example.com", Role: models.RoleAdmin, IsActive: true},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/users", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, users)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")
	got, err := a.ListUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "alice", got[0].Username)
	assert.Equal(t, models.RoleAdmin, got[1].Role)
}

func TestListUsers_WithoutTokenSendsNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusUnauthorized, models.MessageResponse{Message: "User not authenticated."})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ListUsers(context.Background())

	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version/", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("v1.2.3\n"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", got)
}
