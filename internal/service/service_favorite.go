// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/poem-catalog/internal/app"
	"github.com/MKhiriev/poem-catalog/internal/logger"
	"github.com/MKhiriev/poem-catalog/internal/store"
	"github.com/MKhiriev/poem-catalog/models"
)

type favoriteService struct {
	favorites store.FavoriteRepository
	poems     store.PoemRepository
	logger    *logger.Logger
}

// NewFavoriteService constructs a [FavoriteService]. It needs the poem
// repository too: the joined favorite-poem listing is a two-step fetch.
func NewFavoriteService(favorites store.FavoriteRepository, poems store.PoemRepository, logger *logger.Logger) FavoriteService {
	logger.Debug().Msg("creating favorite service")
	return &favoriteService{
		favorites: favorites,
		poems:     poems,
		logger:    logger,
	}
}

// GetUserFavorites lists the poem ids the user has favorited. The Favorites
// slice is non-nil even when empty.
func (s *favoriteService) GetUserFavorites(ctx context.Context, userID int64) models.FavoriteIDsResult {
	ids, err := s.favorites.GetPoemIDs(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "favoriteService.GetUserFavorites").
			Int64("user_id", userID).
			Msg("failed to list favorite poem ids")
		return models.FavoriteIDsResult{Message: app.MsgGetFavoritesFailed, Favorites: []int64{}}
	}
	if ids == nil {
		ids = []int64{}
	}

	return models.FavoriteIDsResult{Success: true, Favorites: ids}
}

// AddFavorite inserts one (user, poem) join row. Duplicates are rejected by
// the store's uniqueness constraint and surface as a failure result.
func (s *favoriteService) AddFavorite(ctx context.Context, userID, poemID int64) models.FavoriteResult {
	if userID == 0 || poemID == 0 {
		return models.FavoriteResult{Message: app.MsgInvalidDataProvided}
	}

	if err := s.favorites.Add(ctx, userID, poemID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "favoriteService.AddFavorite").
			Int64("user_id", userID).
			Int64("poem_id", poemID).
			Msg("failed to add favorite")
		return models.FavoriteResult{Message: app.MsgAddFavoriteFailed}
	}

	return models.FavoriteResult{Success: true, Message: app.MsgFavoriteAdded}
}

// RemoveFavorite deletes the (user, poem) join row. Removing a favorite that
// does not exist succeeds.
func (s *favoriteService) RemoveFavorite(ctx context.Context, userID, poemID int64) models.FavoriteResult {
	if userID == 0 || poemID == 0 {
		return models.FavoriteResult{Message: app.MsgInvalidDataProvided}
	}

	if err := s.favorites.Remove(ctx, userID, poemID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "favoriteService.RemoveFavorite").
			Int64("user_id", userID).
			Int64("poem_id", poemID).
			Msg("failed to remove favorite")
		return models.FavoriteResult{Message: app.MsgRemoveFavoriteFailed}
	}

	return models.FavoriteResult{Success: true, Message: app.MsgFavoriteRemoved}
}

// IsFavorite reports whether the user has favorited the poem. A missing row
// is a normal negative answer, distinct from a store failure.
func (s *favoriteService) IsFavorite(ctx context.Context, userID, poemID int64) models.FavoriteStatusResult {
	exists, err := s.favorites.Exists(ctx, userID, poemID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "favoriteService.IsFavorite").
			Int64("user_id", userID).
			Int64("poem_id", poemID).
			Msg("failed to check favorite status")
		return models.FavoriteStatusResult{Message: app.MsgFavoriteStatusFailed}
	}

	return models.FavoriteStatusResult{Success: true, IsFavorite: exists}
}

// GetFavoritePoems returns the full poem rows the user has favorited: join
// rows first, then poems by the resulting id set. An empty favorite set
// short-circuits without a second store round-trip.
func (s *favoriteService) GetFavoritePoems(ctx context.Context, userID int64) models.FavoritePoemsResult {
	ids, err := s.favorites.GetPoemIDs(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "favoriteService.GetFavoritePoems").
			Int64("user_id", userID).
			Msg("failed to list favorite poem ids")
		return models.FavoritePoemsResult{Message: app.MsgGetFavoritePoemsFailed, Poems: []models.Poem{}}
	}
	if len(ids) == 0 {
		return models.FavoritePoemsResult{Success: true, Poems: []models.Poem{}}
	}

	poems, err := s.poems.GetByIDs(ctx, ids)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "favoriteService.GetFavoritePoems").
			Int64("user_id", userID).
			Msg("failed to fetch favorited poems")
		return models.FavoritePoemsResult{Message: app.MsgGetFavoritePoemsFailed, Poems: []models.Poem{}}
	}
	if poems == nil {
		poems = []models.Poem{}
	}

	return models.FavoritePoemsResult{Success: true, Poems: poems}
}
