// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/poem-catalog/internal/app"
	"github.com/MKhiriev/poem-catalog/internal/logger"
	"github.com/MKhiriev/poem-catalog/internal/store"
	"github.com/MKhiriev/poem-catalog/internal/utils"
	"github.com/MKhiriev/poem-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserService(repo *userRepoMock) UserService {
	return NewUserService(repo, logger.Nop())
}

func TestRegister_Success(t *testing.T) {
	var createdUser models.User
	var createdInfo models.UserInfo

	svc := newTestUserService(&userRepoMock{
		findByUsernameFunc: func(ctx context.Context, username string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
		createUserFunc: func(ctx context.Context, user models.User) (models.User, error) {
			createdUser = user
			user.ID = 42
			return user, nil
		},
		createUserInfoFunc: func(ctx context.Context, info models.UserInfo) (models.UserInfo, error) {
			createdInfo = info
			return info, nil
		},
	})

	result := svc.Register(context.Background(), "dufu", "2358688")
	require.True(t, result.Success)
	require.NotNil(t, result.User)
	assert.EqualValues(t, 42, result.User.ID)

	// the stored credential is the legacy checksum, never the plaintext
	assert.Equal(t, "-1358700910", createdUser.Password)

	// the default profile is seeded from the username
	assert.EqualValues(t, 42, createdInfo.UserID)
	assert.Equal(t, "dufu", createdInfo.Nickname)
	assert.Equal(t, app.DefaultGender, createdInfo.Gender)
	assert.Contains(t, createdInfo.AvatarURL, "seed=dufu")
}

func TestRegister_UsernameTakenByPreCheck(t *testing.T) {
	svc := newTestUserService(&userRepoMock{
		findByUsernameFunc: func(ctx context.Context, username string) (models.User, error) {
			return models.User{ID: 1, Username: username}, nil
		},
	})

	result := svc.Register(context.Background(), "dufu", "pw")
	assert.False(t, result.Success)
	assert.Equal(t, app.MsgUsernameAlreadyExists, result.Message)
}

func TestRegister_UsernameTakenByConstraintRace(t *testing.T) {
	svc := newTestUserService(&userRepoMock{
		findByUsernameFunc: func(ctx context.Context, username string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
		createUserFunc: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrUsernameAlreadyExists
		},
	})

	result := svc.Register(context.Background(), "dufu", "pw")
	assert.False(t, result.Success)
	assert.Equal(t, app.MsgUsernameAlreadyExists, result.Message)
}

func TestRegister_ProfileFailureTolerated(t *testing.T) {
	svc := newTestUserService(&userRepoMock{
		findByUsernameFunc: func(ctx context.Context, username string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
		createUserFunc: func(ctx context.Context, user models.User) (models.User, error) {
			user.ID = 42
			return user, nil
		},
		createUserInfoFunc: func(ctx context.Context, info models.UserInfo) (models.UserInfo, error) {
			return models.UserInfo{}, errStoreDown
		},
	})

	// profile insert failure does not fail registration
	result := svc.Register(context.Background(), "dufu", "pw")
	assert.True(t, result.Success)
}

func TestRegister_EmptyCredentials(t *testing.T) {
	svc := newTestUserService(&userRepoMock{})

	result := svc.Register(context.Background(), "", "pw")
	assert.False(t, result.Success)
	assert.Equal(t, app.MsgInvalidDataProvided, result.Message)
}

func TestLogin_Success(t *testing.T) {
	var lookedUpChecksum string
	svc := newTestUserService(&userRepoMock{
		findByCredentialsFunc: func(ctx context.Context, username, passwordChecksum string) (models.User, error) {
			lookedUpChecksum = passwordChecksum
			return models.User{ID: 42, Username: username}, nil
		},
	})

	result := svc.Login(context.Background(), "dufu", "2358688")
	require.True(t, result.Success)
	require.NotNil(t, result.User)
	assert.Equal(t, "-1358700910", lookedUpChecksum)
}

func TestLogin_UnknownUserAndWrongPasswordIndistinguishable(t *testing.T) {
	svc := newTestUserService(&userRepoMock{
		findByCredentialsFunc: func(ctx context.Context, username, passwordChecksum string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	})

	result := svc.Login(context.Background(), "nobody", "whatever")
	assert.False(t, result.Success)
	assert.Equal(t, app.MsgInvalidUsernamePassword, result.Message)
}

func TestLogin_StoreFailureTagged(t *testing.T) {
	svc := newTestUserService(&userRepoMock{
		findByCredentialsFunc: func(ctx context.Context, username, passwordChecksum string) (models.User, error) {
			return models.User{}, errStoreDown
		},
	})

	result := svc.Login(context.Background(), "dufu", "pw")
	assert.False(t, result.Success)
	assert.Equal(t, app.MsgLoginFailed, result.Message)
}

func TestCheckUserExists(t *testing.T) {
	t.Run("taken", func(t *testing.T) {
		svc := newTestUserService(&userRepoMock{
			findByUsernameFunc: func(ctx context.Context, username string) (models.User, error) {
				return models.User{ID: 1}, nil
			},
		})
		assert.True(t, svc.CheckUserExists(context.Background(), "dufu").Exists)
	})

	t.Run("free", func(t *testing.T) {
		svc := newTestUserService(&userRepoMock{
			findByUsernameFunc: func(ctx context.Context, username string) (models.User, error) {
				return models.User{}, store.ErrUserNotFound
			},
		})
		assert.False(t, svc.CheckUserExists(context.Background(), "libai").Exists)
	})

	t.Run("store failure", func(t *testing.T) {
		svc := newTestUserService(&userRepoMock{
			findByUsernameFunc: func(ctx context.Context, username string) (models.User, error) {
				return models.User{}, errStoreDown
			},
		})
		result := svc.CheckUserExists(context.Background(), "dufu")
		assert.False(t, result.Exists)
		assert.Equal(t, app.MsgInternalServerError, result.Error)
	})
}

func TestGetUserInfo_ExistingProfile(t *testing.T) {
	svc := newTestUserService(&userRepoMock{
		getUserInfoFunc: func(ctx context.Context, userID int64) (models.UserInfo, error) {
			return models.UserInfo{ID: 5, UserID: userID, Nickname: "青莲居士"}, nil
		},
	})

	result := svc.GetUserInfo(context.Background(), 42, "libai")
	require.True(t, result.Success)
	assert.Equal(t, "青莲居士", result.UserInfo.Nickname)
}

func TestGetUserInfo_LazyCreationSeedsFromFallbackUsername(t *testing.T) {
	var created models.UserInfo
	svc := newTestUserService(&userRepoMock{
		getUserInfoFunc: func(ctx context.Context, userID int64) (models.UserInfo, error) {
			return models.UserInfo{}, store.ErrUserInfoNotFound
		},
		createUserInfoFunc: func(ctx context.Context, info models.UserInfo) (models.UserInfo, error) {
			created = info
			info.ID = 5
			return info, nil
		},
	})

	result := svc.GetUserInfo(context.Background(), 42, "libai")
	require.True(t, result.Success)
	assert.EqualValues(t, 5, result.UserInfo.ID)

	assert.Equal(t, "libai", created.Nickname)
	assert.Equal(t, app.DefaultGender, created.Gender)
	assert.Contains(t, created.AvatarURL, "seed=libai")
	assert.False(t, created.CreatedAt.IsZero())
}

func TestGetUserInfo_LazyCreationPlaceholderNickname(t *testing.T) {
	var created models.UserInfo
	svc := newTestUserService(&userRepoMock{
		getUserInfoFunc: func(ctx context.Context, userID int64) (models.UserInfo, error) {
			return models.UserInfo{}, store.ErrUserInfoNotFound
		},
		createUserInfoFunc: func(ctx context.Context, info models.UserInfo) (models.UserInfo, error) {
			created = info
			return info, nil
		},
	})

	result := svc.GetUserInfo(context.Background(), 42, "")
	require.True(t, result.Success)
	assert.Equal(t, app.DefaultNickname, created.Nickname)

	// the avatar seed follows the resolved nickname, not the empty username
	assert.Equal(t, utils.DefaultAvatarURL(app.DefaultNickname), created.AvatarURL)
}

func TestGetUserInfo_FetchFailureTagged(t *testing.T) {
	svc := newTestUserService(&userRepoMock{
		getUserInfoFunc: func(ctx context.Context, userID int64) (models.UserInfo, error) {
			return models.UserInfo{}, errStoreDown
		},
	})

	result := svc.GetUserInfo(context.Background(), 42, "libai")
	assert.False(t, result.Success)
	assert.Equal(t, app.MsgGetUserInfoFailed, result.Message)
}

func TestUpdateUserInfo_StampsUpdatedAt(t *testing.T) {
	var stamped time.Time
	nickname := "青莲居士"

	svc := newTestUserService(&userRepoMock{
		updateUserInfoFunc: func(ctx context.Context, userID int64, update models.UserInfoUpdate, updatedAt time.Time) (models.UserInfo, error) {
			stamped = updatedAt
			return models.UserInfo{UserID: userID, Nickname: *update.Nickname, UpdatedAt: updatedAt}, nil
		},
	})

	result := svc.UpdateUserInfo(context.Background(), 42, models.UserInfoUpdate{Nickname: &nickname})
	require.True(t, result.Success)
	assert.Equal(t, nickname, result.UserInfo.Nickname)
	assert.WithinDuration(t, time.Now(), stamped, time.Minute)
}

func TestUpdateUserInfo_StoreFailureTagged(t *testing.T) {
	svc := newTestUserService(&userRepoMock{
		updateUserInfoFunc: func(ctx context.Context, userID int64, update models.UserInfoUpdate, updatedAt time.Time) (models.UserInfo, error) {
			return models.UserInfo{}, errStoreDown
		},
	})

	result := svc.UpdateUserInfo(context.Background(), 42, models.UserInfoUpdate{})
	assert.False(t, result.Success)
	assert.Equal(t, app.MsgUpdateUserInfoFailed, result.Message)
}

func TestGetAllUsers(t *testing.T) {
	svc := newTestUserService(&userRepoMock{
		getAllUsersFunc: func(ctx context.Context) ([]models.User, error) {
			return []models.User{{ID: 1, Username: "dufu"}}, nil
		},
	})

	result := svc.GetAllUsers(context.Background())
	assert.True(t, result.Success)
	assert.Len(t, result.Users, 1)
}
