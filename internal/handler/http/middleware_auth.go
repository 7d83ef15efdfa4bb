package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/poem-catalog/internal/logger"
	"github.com/MKhiriev/poem-catalog/internal/service"
	"github.com/MKhiriev/poem-catalog/internal/utils"
)

// auth guards the authenticated route group. It pulls the bearer token from
// the Authorization header, validates it through
// [service.AuthService.ParseToken], and stores the user's ID under
// [utils.UserIDCtxKey] for downstream handlers.
//
// Rejections are all 401: missing header, unparsable header, expired token
// (reported with the expiry message so the client can re-login), or any
// other validation failure. Each rejection is logged with the request-scoped
// logger.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.Auth.ParseToken(ctx, tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenIsExpired) {
				log.Err(err).Msg("token expired")
				http.Error(w, service.ErrTokenIsExpired.Error(), http.StatusUnauthorized)
				return
			}
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader splits a "<scheme> <token>" Authorization value and
// returns the token part. [ErrInvalidAuthorizationHeader] when there are
// fewer than two space-separated parts, [ErrEmptyToken] when the token part
// is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
