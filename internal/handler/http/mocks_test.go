package http

import (
	"context"

	"github.com/MKhiriev/poem-catalog/models"
)

// Hand-written service mocks. Each method delegates to an optional function
// field; tests set only the fields they exercise.

type poemServiceMock struct {
	getAllPoemsFunc       func(ctx context.Context) []models.Poem
	getPoemsByTagFunc     func(ctx context.Context, tag string) []models.Poem
	getPoemsByDynastyFunc func(ctx context.Context, dynasty string) []models.Poem
	getPoemsByAuthorFunc  func(ctx context.Context, author string) []models.Poem
	searchPoemsFunc       func(ctx context.Context, keyword string) []models.Poem
	getAllTagsFunc        func(ctx context.Context) []string
	getAllDynastiesFunc   func(ctx context.Context) []string
	getAllAuthorsFunc     func(ctx context.Context) []string
	addPoemFunc           func(ctx context.Context, poem models.Poem) (models.Poem, error)
	updatePoemFunc        func(ctx context.Context, poem models.Poem) (models.Poem, error)
	deletePoemFunc        func(ctx context.Context, id int64) error
}

func (m *poemServiceMock) GetAllPoems(ctx context.Context) []models.Poem {
	return m.getAllPoemsFunc(ctx)
}

func (m *poemServiceMock) GetPoemsByTag(ctx context.Context, tag string) []models.Poem {
	return m.getPoemsByTagFunc(ctx, tag)
}

func (m *poemServiceMock) GetPoemsByDynasty(ctx context.Context, dynasty string) []models.Poem {
	return m.getPoemsByDynastyFunc(ctx, dynasty)
}

func (m *poemServiceMock) GetPoemsByAuthor(ctx context.Context, author string) []models.Poem {
	return m.getPoemsByAuthorFunc(ctx, author)
}

func (m *poemServiceMock) SearchPoems(ctx context.Context, keyword string) []models.Poem {
	return m.searchPoemsFunc(ctx, keyword)
}

func (m *poemServiceMock) GetAllTags(ctx context.Context) []string {
	return m.getAllTagsFunc(ctx)
}

func (m *poemServiceMock) GetAllDynasties(ctx context.Context) []string {
	return m.getAllDynastiesFunc(ctx)
}

func (m *poemServiceMock) GetAllAuthors(ctx context.Context) []string {
	return m.getAllAuthorsFunc(ctx)
}

func (m *poemServiceMock) AddPoem(ctx context.Context, poem models.Poem) (models.Poem, error) {
	return m.addPoemFunc(ctx, poem)
}

func (m *poemServiceMock) UpdatePoem(ctx context.Context, poem models.Poem) (models.Poem, error) {
	return m.updatePoemFunc(ctx, poem)
}

func (m *poemServiceMock) DeletePoem(ctx context.Context, id int64) error {
	return m.deletePoemFunc(ctx, id)
}

type favoriteServiceMock struct {
	getUserFavoritesFunc func(ctx context.Context, userID int64) models.FavoriteIDsResult
	addFavoriteFunc      func(ctx context.Context, userID, poemID int64) models.FavoriteResult
	removeFavoriteFunc   func(ctx context.Context, userID, poemID int64) models.FavoriteResult
	isFavoriteFunc       func(ctx context.Context, userID, poemID int64) models.FavoriteStatusResult
	getFavoritePoemsFunc func(ctx context.Context, userID int64) models.FavoritePoemsResult
}

func (m *favoriteServiceMock) GetUserFavorites(ctx context.Context, userID int64) models.FavoriteIDsResult {
	return m.getUserFavoritesFunc(ctx, userID)
}

func (m *favoriteServiceMock) AddFavorite(ctx context.Context, userID, poemID int64) models.FavoriteResult {
	return m.addFavoriteFunc(ctx, userID, poemID)
}

func (m *favoriteServiceMock) RemoveFavorite(ctx context.Context, userID, poemID int64) models.FavoriteResult {
	return m.removeFavoriteFunc(ctx, userID, poemID)
}

func (m *favoriteServiceMock) IsFavorite(ctx context.Context, userID, poemID int64) models.FavoriteStatusResult {
	return m.isFavoriteFunc(ctx, userID, poemID)
}

func (m *favoriteServiceMock) GetFavoritePoems(ctx context.Context, userID int64) models.FavoritePoemsResult {
	return m.getFavoritePoemsFunc(ctx, userID)
}

type userServiceMock struct {
	registerFunc        func(ctx context.Context, username, password string) models.AuthResult
	loginFunc           func(ctx context.Context, username, password string) models.AuthResult
	checkUserExistsFunc func(ctx context.Context, username string) models.UserExistsResult
	getUserInfoFunc     func(ctx context.Context, userID int64, fallbackUsername string) models.UserInfoResult
	updateUserInfoFunc  func(ctx context.Context, userID int64, update models.UserInfoUpdate) models.UserInfoResult
	getAllUsersFunc     func(ctx context.Context) models.UsersResult
}

func (m *userServiceMock) Register(ctx context.Context, username, password string) models.AuthResult {
	return m.registerFunc(ctx, username, password)
}

func (m *userServiceMock) Login(ctx context.Context, username, password string) models.AuthResult {
	return m.loginFunc(ctx, username, password)
}

func (m *userServiceMock) CheckUserExists(ctx context.Context, username string) models.UserExistsResult {
	return m.checkUserExistsFunc(ctx, username)
}

func (m *userServiceMock) GetUserInfo(ctx context.Context, userID int64, fallbackUsername string) models.UserInfoResult {
	return m.getUserInfoFunc(ctx, userID, fallbackUsername)
}

func (m *userServiceMock) UpdateUserInfo(ctx context.Context, userID int64, update models.UserInfoUpdate) models.UserInfoResult {
	return m.updateUserInfoFunc(ctx, userID, update)
}

func (m *userServiceMock) GetAllUsers(ctx context.Context) models.UsersResult {
	return m.getAllUsersFunc(ctx)
}

type authServiceMock struct {
	createTokenFunc func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFunc  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *authServiceMock) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFunc(ctx, user)
}

func (m *authServiceMock) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFunc(ctx, tokenString)
}
