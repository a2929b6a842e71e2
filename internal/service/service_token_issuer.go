// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/models"
)

// jwtTokenIssuer issues HS256 tokens with the process-wide signing
// parameters. It holds no mutable state and is safe for concurrent use.
type jwtTokenIssuer struct {
	// signKey is the HMAC secret used to sign and verify tokens.
	signKey string

	// issuer is the "iss" claim. Tokens with another issuer are rejected.
	issuer string

	duration time.Duration
}

func NewTokenIssuer(cfg config.App) TokenIssuer {
	return &jwtTokenIssuer{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
	}
}

func (i *jwtTokenIssuer) Issue(user models.User) (models.Token, error) {
	return utils.GenerateJWTToken(i.issuer, user, i.duration, i.signKey)
}

func (i *jwtTokenIssuer) Parse(tokenString string) (models.Token, error) {
	return utils.ValidateAndParseJWTToken(tokenString, i.signKey, i.issuer)
}
