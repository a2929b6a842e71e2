// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-user-keeper/internal/app"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/models"
)

const userIDParam = "id"

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.AccountService.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AccountService.GetByID(r.Context(), chi.URLParam(r, userIDParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var data models.UserCreateUpdate
	if !decodeBody(w, r, &data) {
		return
	}

	user, err := h.services.AccountService.Create(r.Context(), data)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var data models.UserCreateUpdate
	if !decodeBody(w, r, &data) {
		return
	}

	user, err := h.services.AccountService.Update(r.Context(), chi.URLParam(r, userIDParam), data)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AccountService.Delete(r.Context(), chi.URLParam(r, userIDParam)); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// updateProfile edits the caller's own username and email. The target id is
// taken from the token, so there is no way to address another account here.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.WriteMessage(w, app.MsgNotAuthenticated, http.StatusUnauthorized)
		return
	}

	var data models.ProfileUpdate
	if !decodeBody(w, r, &data) {
		return
	}

	user, err := h.services.AccountService.UpdateOwnProfile(r.Context(), token.UserID(), data)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// decodeBody decodes the JSON request body into dst and answers 400 itself
// when that fails.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}
	return true
}
