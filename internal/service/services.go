// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the business layer of the poem catalog: catalog
// reads and writes, favorites, accounts and profiles, and JWT session tokens.
//
// The layer sits between the HTTP handlers and the store repositories and is
// where the two error policies of the application live. Poem reads degrade to
// empty on store failure, poem writes propagate errors, and every favorite and
// user operation converts failure into a tagged result.
package service

import (
	"github.com/MKhiriev/poem-catalog/internal/config"
	"github.com/MKhiriev/poem-catalog/internal/logger"
	"github.com/MKhiriev/poem-catalog/internal/store"
)

// Services bundles every service the handlers are constructed from.
type Services struct {
	Poem     PoemService
	Favorite FavoriteService
	User     UserService
	Auth     AuthService
}

// NewServices wires all services to the given repositories.
func NewServices(repos *store.Repositories, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		Poem:     NewPoemService(repos.PoemRepository, logger),
		Favorite: NewFavoriteService(repos.FavoriteRepository, repos.PoemRepository, logger),
		User:     NewUserService(repos.UserRepository, logger),
		Auth:     NewAuthService(cfg, logger),
	}
}
