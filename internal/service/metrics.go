// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Login outcomes used as the "outcome" label of loginAttempts.
const (
	outcomeSuccess       = "success"
	outcomeUnknownHandle = "unknown_handle"
	outcomeWrongPassword = "wrong_password"
	outcomeInactive      = "inactive"
	outcomeError         = "error"
)

var loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "auth_login_attempts_total",
	Help: "Login attempts partitioned by outcome.",
}, []string{"outcome"})

func loginOutcome(err error) string {
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.Is(err, ErrUnknownHandle):
		return outcomeUnknownHandle
	case errors.Is(err, ErrWrongPassword):
		return outcomeWrongPassword
	case errors.Is(err, ErrInactiveUser):
		return outcomeInactive
	default:
		return outcomeError
	}
}
