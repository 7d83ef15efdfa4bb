// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/poem-catalog/internal/config"
	"github.com/MKhiriev/poem-catalog/internal/logger"
	"github.com/MKhiriev/poem-catalog/internal/utils"
	"github.com/MKhiriev/poem-catalog/models"
	"github.com/golang-jwt/jwt/v5"
)

type authService struct {
	cfg    config.App
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] that signs and validates tokens
// with the application's HMAC key.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	logger.Debug().Msg("creating auth service")
	return &authService{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateToken issues a signed session token carrying the user's id in its
// subject claim.
func (s *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.cfg.TokenIssuer, user.ID, s.cfg.TokenDuration, s.cfg.TokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "authService.CreateToken").
			Int64("user_id", user.ID).
			Msg("failed to sign session token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates the signature, issuer and expiry of tokenString and
// returns the carried identity. Expiry is reported distinctly so handlers can
// tell the client to re-authenticate.
func (s *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.cfg.TokenSignKey, s.cfg.TokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		logger.FromContext(ctx).Debug().Err(err).
			Str("func", "authService.ParseToken").
			Msg("token validation failed")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
