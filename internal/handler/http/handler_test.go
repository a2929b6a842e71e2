// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/service"
	"github.com/MKhiriev/go-user-keeper/models"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

type mockAuthService struct {
	authenticateFn func(ctx context.Context, handle, secret string) (models.User, bool)
	issueFn        func(ctx context.Context, handle string) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Authenticate(ctx context.Context, handle, secret string) (models.User, bool) {
	return m.authenticateFn(ctx, handle, secret)
}

func (m *mockAuthService) IssueSessionToken(ctx context.Context, handle string) (models.Token, error) {
	return m.issueFn(ctx, handle)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return parseTestToken(tokenString)
}

type mockAccountService struct {
	service.AccountService // unexpected calls panic on the nil interface

	listAllFn        func(ctx context.Context) ([]models.User, error)
	getByIDFn        func(ctx context.Context, id string) (models.User, error)
	createFn         func(ctx context.Context, data models.UserCreateUpdate) (models.User, error)
	updateFn         func(ctx context.Context, id string, data models.UserCreateUpdate) (models.User, error)
	deleteFn         func(ctx context.Context, id string) error
	changePasswordFn func(ctx context.Context, callerID, current, newSecret string) error
	updateProfileFn  func(ctx context.Context, callerID string, data models.ProfileUpdate) (models.User, error)
}

func (m *mockAccountService) ListAll(ctx context.Context) ([]models.User, error) {
	return m.listAllFn(ctx)
}

func (m *mockAccountService) GetByID(ctx context.Context, id string) (models.User, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockAccountService) Create(ctx context.Context, data models.UserCreateUpdate) (models.User, error) {
	return m.createFn(ctx, data)
}

func (m *mockAccountService) Update(ctx context.Context, id string, data models.UserCreateUpdate) (models.User, error) {
	return m.updateFn(ctx, id, data)
}

func (m *mockAccountService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func (m *mockAccountService) ChangePassword(ctx context.Context, callerID, current, newSecret string) error {
	return m.changePasswordFn(ctx, callerID, current, newSecret)
}

func (m *mockAccountService) UpdateOwnProfile(ctx context.Context, callerID string, data models.ProfileUpdate) (models.User, error) {
	return m.updateProfileFn(ctx, callerID, data)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	adminToken    = "admin-token"
	standardToken = "standard-token"

	adminID    = "0192f1a4-7c4e-7b1a-9d2e-00000000a0a0"
	standardID = "0192f1a4-7c4e-7b1a-9d2e-3f4a5b6c7d8e"
)

// parseTestToken accepts the two fixed test tokens.
func parseTestToken(tokenString string) (models.Token, error) {
	var claims models.Claims
	switch tokenString {
	case adminToken:
		claims.Subject, claims.UserID, claims.Role = "root@x.com", adminID, models.RoleAdmin
	case standardToken:
		claims.Subject, claims.UserID, claims.Role = "a@x.com", standardID, models.RoleStandard
	default:
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

var aliceUser = models.User{
	ID:           standardID,
	Username:     "alice",
	Email:        "a@x.com",
	PasswordHash: "$2a$10$never-serialized",
	Role:         models.RoleStandard,
	IsActive:     true,
	CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	UpdatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
}

func newTestHandler(auth service.AuthService, accounts service.AccountService) *Handler {
	if auth == nil {
		auth = &mockAuthService{}
	}
	if accounts == nil {
		accounts = &mockAccountService{}
	}
	return NewHandler(&service.Services{
		AuthService:    auth,
		AccountService: accounts,
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())
}

// doRequest sends a request through the full router.
func doRequest(t *testing.T, h *Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var msg models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	return msg.Message
}

func toJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
