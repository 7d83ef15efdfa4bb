package service

import (
	"context"

	"github.com/MKhiriev/poem-catalog/models"
)

// PoemService exposes the poem catalog operations.
//
// Read methods follow the degrade-to-empty policy: a store failure is logged
// and an empty slice is returned, so callers cannot distinguish "no matches"
// from "store unreachable". Write methods fail loudly and propagate the
// store error. Both policies are part of the contract, not an accident.
type PoemService interface {
	GetAllPoems(ctx context.Context) []models.Poem
	GetPoemsByTag(ctx context.Context, tag string) []models.Poem
	GetPoemsByDynasty(ctx context.Context, dynasty string) []models.Poem
	GetPoemsByAuthor(ctx context.Context, author string) []models.Poem
	SearchPoems(ctx context.Context, keyword string) []models.Poem

	GetAllTags(ctx context.Context) []string
	GetAllDynasties(ctx context.Context) []string
	GetAllAuthors(ctx context.Context) []string

	AddPoem(ctx context.Context, poem models.Poem) (models.Poem, error)
	UpdatePoem(ctx context.Context, poem models.Poem) (models.Poem, error)
	DeletePoem(ctx context.Context, id int64) error
}

// FavoriteService manages the user↔poem favorite relation. Every method
// returns a tagged result; callers must branch on the Success field and
// never assume success.
type FavoriteService interface {
	GetUserFavorites(ctx context.Context, userID int64) models.FavoriteIDsResult
	AddFavorite(ctx context.Context, userID, poemID int64) models.FavoriteResult
	RemoveFavorite(ctx context.Context, userID, poemID int64) models.FavoriteResult
	IsFavorite(ctx context.Context, userID, poemID int64) models.FavoriteStatusResult
	GetFavoritePoems(ctx context.Context, userID int64) models.FavoritePoemsResult
}

// UserService manages account and profile records. Every method returns a
// tagged result; no error crosses the service boundary.
type UserService interface {
	Register(ctx context.Context, username, password string) models.AuthResult
	Login(ctx context.Context, username, password string) models.AuthResult
	CheckUserExists(ctx context.Context, username string) models.UserExistsResult

	// GetUserInfo fetches the profile owned by userID, lazily creating a
	// default one on first access. fallbackUsername seeds the default
	// nickname and avatar; when empty, a generic placeholder is used.
	GetUserInfo(ctx context.Context, userID int64, fallbackUsername string) models.UserInfoResult
	UpdateUserInfo(ctx context.Context, userID int64, update models.UserInfoUpdate) models.UserInfoResult

	GetAllUsers(ctx context.Context) models.UsersResult
}

// AuthService issues and validates JWT session tokens. Token handling is
// orthogonal to the legacy password checksum: the checksum authenticates,
// the token merely carries the authenticated identity between requests.
type AuthService interface {
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
