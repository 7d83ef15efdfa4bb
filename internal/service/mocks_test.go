package service

import (
	"context"
	"time"

	"github.com/MKhiriev/poem-catalog/models"
)

// Hand-written repository mocks. Each method delegates to an optional
// function field; tests set only the fields they exercise.

type poemRepoMock struct {
	getAllFunc          func(ctx context.Context) ([]models.Poem, error)
	getByTagFunc        func(ctx context.Context, tag string) ([]models.Poem, error)
	getByDynastyFunc    func(ctx context.Context, dynasty string) ([]models.Poem, error)
	getByAuthorFunc     func(ctx context.Context, author string) ([]models.Poem, error)
	searchFunc          func(ctx context.Context, keyword string) ([]models.Poem, error)
	getByIDsFunc        func(ctx context.Context, ids []int64) ([]models.Poem, error)
	getAllTagsFunc      func(ctx context.Context) ([]models.TagList, error)
	getAllDynastiesFunc func(ctx context.Context) ([]string, error)
	getAllAuthorsFunc   func(ctx context.Context) ([]string, error)
	createFunc          func(ctx context.Context, poem models.Poem) (models.Poem, error)
	updateFunc          func(ctx context.Context, poem models.Poem) (models.Poem, error)
	deleteFunc          func(ctx context.Context, id int64) error
}

func (m *poemRepoMock) GetAll(ctx context.Context) ([]models.Poem, error) {
	return m.getAllFunc(ctx)
}

func (m *poemRepoMock) GetByTag(ctx context.Context, tag string) ([]models.Poem, error) {
	return m.getByTagFunc(ctx, tag)
}

func (m *poemRepoMock) GetByDynasty(ctx context.Context, dynasty string) ([]models.Poem, error) {
	return m.getByDynastyFunc(ctx, dynasty)
}

func (m *poemRepoMock) GetByAuthor(ctx context.Context, author string) ([]models.Poem, error) {
	return m.getByAuthorFunc(ctx, author)
}

func (m *poemRepoMock) Search(ctx context.Context, keyword string) ([]models.Poem, error) {
	return m.searchFunc(ctx, keyword)
}

func (m *poemRepoMock) GetByIDs(ctx context.Context, ids []int64) ([]models.Poem, error) {
	return m.getByIDsFunc(ctx, ids)
}

func (m *poemRepoMock) GetAllTags(ctx context.Context) ([]models.TagList, error) {
	return m.getAllTagsFunc(ctx)
}

func (m *poemRepoMock) GetAllDynasties(ctx context.Context) ([]string, error) {
	return m.getAllDynastiesFunc(ctx)
}

func (m *poemRepoMock) GetAllAuthors(ctx context.Context) ([]string, error) {
	return m.getAllAuthorsFunc(ctx)
}

func (m *poemRepoMock) Create(ctx context.Context, poem models.Poem) (models.Poem, error) {
	return m.createFunc(ctx, poem)
}

func (m *poemRepoMock) Update(ctx context.Context, poem models.Poem) (models.Poem, error) {
	return m.updateFunc(ctx, poem)
}

func (m *poemRepoMock) Delete(ctx context.Context, id int64) error {
	return m.deleteFunc(ctx, id)
}

type userRepoMock struct {
	createUserFunc        func(ctx context.Context, user models.User) (models.User, error)
	findByUsernameFunc    func(ctx context.Context, username string) (models.User, error)
	findByCredentialsFunc func(ctx context.Context, username, passwordChecksum string) (models.User, error)
	getAllUsersFunc       func(ctx context.Context) ([]models.User, error)
	updatePasswordFunc    func(ctx context.Context, username, passwordChecksum string) error
	getUserInfoFunc       func(ctx context.Context, userID int64) (models.UserInfo, error)
	createUserInfoFunc    func(ctx context.Context, info models.UserInfo) (models.UserInfo, error)
	updateUserInfoFunc    func(ctx context.Context, userID int64, update models.UserInfoUpdate, updatedAt time.Time) (models.UserInfo, error)
}

func (m *userRepoMock) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFunc(ctx, user)
}

func (m *userRepoMock) FindByUsername(ctx context.Context, username string) (models.User, error) {
	return m.findByUsernameFunc(ctx, username)
}

func (m *userRepoMock) FindByCredentials(ctx context.Context, username, passwordChecksum string) (models.User, error) {
	return m.findByCredentialsFunc(ctx, username, passwordChecksum)
}

func (m *userRepoMock) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return m.getAllUsersFunc(ctx)
}

func (m *userRepoMock) UpdatePassword(ctx context.Context, username, passwordChecksum string) error {
	return m.updatePasswordFunc(ctx, username, passwordChecksum)
}

func (m *userRepoMock) GetUserInfo(ctx context.Context, userID int64) (models.UserInfo, error) {
	return m.getUserInfoFunc(ctx, userID)
}

func (m *userRepoMock) CreateUserInfo(ctx context.Context, info models.UserInfo) (models.UserInfo, error) {
	return m.createUserInfoFunc(ctx, info)
}

func (m *userRepoMock) UpdateUserInfo(ctx context.Context, userID int64, update models.UserInfoUpdate, updatedAt time.Time) (models.UserInfo, error) {
	return m.updateUserInfoFunc(ctx, userID, update, updatedAt)
}

type favoriteRepoMock struct {
	getPoemIDsFunc func(ctx context.Context, userID int64) ([]int64, error)
	addFunc        func(ctx context.Context, userID, poemID int64) error
	removeFunc     func(ctx context.Context, userID, poemID int64) error
	existsFunc     func(ctx context.Context, userID, poemID int64) (bool, error)
}

func (m *favoriteRepoMock) GetPoemIDs(ctx context.Context, userID int64) ([]int64, error) {
	return m.getPoemIDsFunc(ctx, userID)
}

func (m *favoriteRepoMock) Add(ctx context.Context, userID, poemID int64) error {
	return m.addFunc(ctx, userID, poemID)
}

func (m *favoriteRepoMock) Remove(ctx context.Context, userID, poemID int64) error {
	return m.removeFunc(ctx, userID, poemID)
}

func (m *favoriteRepoMock) Exists(ctx context.Context, userID, poemID int64) (bool, error) {
	return m.existsFunc(ctx, userID, poemID)
}
