// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	ErrNoToken                  = errors.New("no bearer token in response")
	ErrEmptyServerAddress       = errors.New("empty server address")
	ErrServerAddressHasNoScheme = errors.New("server address must include scheme and host")
)
