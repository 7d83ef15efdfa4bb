package store

import (
	"context"
	"time"

	"github.com/MKhiriev/poem-catalog/models"
)

// PoemRepository provides read/write access to the poems table.
//
// Read methods return plain errors; the degrade-to-empty policy documented
// for catalog reads is applied by the poem service, not here.
type PoemRepository interface {
	GetAll(ctx context.Context) ([]models.Poem, error)
	GetByTag(ctx context.Context, tag string) ([]models.Poem, error)
	GetByDynasty(ctx context.Context, dynasty string) ([]models.Poem, error)
	GetByAuthor(ctx context.Context, author string) ([]models.Poem, error)
	Search(ctx context.Context, keyword string) ([]models.Poem, error)
	GetByIDs(ctx context.Context, ids []int64) ([]models.Poem, error)

	GetAllTags(ctx context.Context) ([]models.TagList, error)
	GetAllDynasties(ctx context.Context) ([]string, error)
	GetAllAuthors(ctx context.Context) ([]string, error)

	Create(ctx context.Context, poem models.Poem) (models.Poem, error)
	Update(ctx context.Context, poem models.Poem) (models.Poem, error)
	Delete(ctx context.Context, id int64) error
}

// UserRepository provides access to account records (users) and profile
// records (user_info).
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
	FindByCredentials(ctx context.Context, username, passwordChecksum string) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdatePassword(ctx context.Context, username, passwordChecksum string) error

	GetUserInfo(ctx context.Context, userID int64) (models.UserInfo, error)
	CreateUserInfo(ctx context.Context, info models.UserInfo) (models.UserInfo, error)
	UpdateUserInfo(ctx context.Context, userID int64, update models.UserInfoUpdate, updatedAt time.Time) (models.UserInfo, error)
}

// FavoriteRepository manages the user↔poem many-to-many join table.
type FavoriteRepository interface {
	GetPoemIDs(ctx context.Context, userID int64) ([]int64, error)
	Add(ctx context.Context, userID, poemID int64) error
	Remove(ctx context.Context, userID, poemID int64) error
	Exists(ctx context.Context, userID, poemID int64) (bool, error)
}

// ErrorClassificator decides whether a failed database operation was caused
// by a transient condition. Used only to annotate logs; no repository
// retries automatically.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
