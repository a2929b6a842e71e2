// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-keeper/internal/app"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/service"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/models"
)

// login authenticates the posted handle/password pair and answers with a
// session token. Every authentication failure gets the same 401 body.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		log.Warn().Err(err).Msg("invalid login request")
		utils.WriteMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	user, ok := h.services.AuthService.Authenticate(ctx, request.LoginHandle(), request.Password)
	if !ok {
		utils.WriteMessage(w, app.MsgInvalidCredentials, http.StatusUnauthorized)
		return
	}

	token, err := h.services.AuthService.IssueSessionToken(ctx, user.Handle())
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", user.ID).Msg("user logged in")

	w.Header().Set("Authorization", "Bearer "+token.String())
	utils.WriteJSON(w, models.LoginResponse{
		Message: app.MsgLoginSuccessful,
		Token:   token.String(),
		User:    user,
	}, http.StatusOK)
}

// changePassword rotates the caller's password after re-verifying the
// current one. The caller is the token's user id, never the body, and never
// the handle, which goes stale when the account's email changes.
func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, ok := utils.GetTokenFromContext(ctx)
	if !ok {
		utils.WriteMessage(w, app.MsgNotAuthenticated, http.StatusUnauthorized)
		return
	}

	var request models.PasswordChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	err := h.services.AccountService.ChangePassword(ctx, token.UserID(), request.CurrentPassword, request.NewPassword)
	if errors.Is(err, service.ErrNotFound) {
		// the token outlived its account: a bad request, not a missing resource
		log.Warn().Str("user_id", token.UserID()).Msg("password change for unknown account")
		utils.WriteMessage(w, app.MsgUserNotFound, http.StatusBadRequest)
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgPasswordUpdated, http.StatusOK)
}
