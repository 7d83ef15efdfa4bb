// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/poem-catalog/internal/app"
	"github.com/MKhiriev/poem-catalog/internal/logger"
	"github.com/MKhiriev/poem-catalog/internal/store"
	"github.com/MKhiriev/poem-catalog/internal/utils"
	"github.com/MKhiriev/poem-catalog/models"
)

type userService struct {
	repo   store.UserRepository
	logger *logger.Logger
}

// NewUserService constructs a [UserService] backed by the given repository.
func NewUserService(repo store.UserRepository, logger *logger.Logger) UserService {
	logger.Debug().Msg("creating user service")
	return &userService{
		repo:   repo,
		logger: logger,
	}
}

// Register creates an account and, best-effort, its default profile.
//
// The flow is: pre-check username, checksum the password, insert the account,
// then insert the profile. The pre-check and the insert are not transactional;
// a concurrent registration racing past the pre-check is rejected by the
// store's uniqueness constraint and reported as the same "username already
// exists" failure. A profile insert failure does not fail the registration:
// the profile is lazily created on first fetch.
func (s *userService) Register(ctx context.Context, username, password string) models.AuthResult {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.AuthResult{Message: app.MsgInvalidDataProvided}
	}

	_, err := s.repo.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return models.AuthResult{Message: app.MsgUsernameAlreadyExists}
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("func", "userService.Register").Str("username", username).Msg("username pre-check failed")
		return models.AuthResult{Message: app.MsgRegistrationFailed}
	}

	user, err := s.repo.CreateUser(ctx, models.User{
		Username:  username,
		Password:  utils.LegacyPasswordChecksum(password),
		CreatedAt: time.Now(),
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			// lost the race to a concurrent registration
			return models.AuthResult{Message: app.MsgUsernameAlreadyExists}
		}
		log.Err(err).Str("func", "userService.Register").Str("username", username).Msg("failed to create account")
		return models.AuthResult{Message: app.MsgRegistrationFailed}
	}

	if _, err := s.repo.CreateUserInfo(ctx, defaultUserInfo(user.ID, username)); err != nil {
		// tolerated: the profile is lazily created on first fetch
		log.Warn().Err(err).
			Str("func", "userService.Register").
			Int64("user_id", user.ID).
			Msg("default profile creation failed, deferring to lazy creation")
	}

	return models.AuthResult{Success: true, User: &user}
}

// Login verifies the credentials by compound (username, checksum) lookup.
// An unknown username and a wrong password are indistinguishable to the
// caller; both yield the same generic message.
func (s *userService) Login(ctx context.Context, username, password string) models.AuthResult {
	if username == "" || password == "" {
		return models.AuthResult{Message: app.MsgInvalidDataProvided}
	}

	user, err := s.repo.FindByCredentials(ctx, username, utils.LegacyPasswordChecksum(password))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.AuthResult{Message: app.MsgInvalidUsernamePassword}
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "userService.Login").
			Str("username", username).
			Msg("credentials lookup failed")
		return models.AuthResult{Message: app.MsgLoginFailed}
	}

	return models.AuthResult{Success: true, User: &user}
}

// CheckUserExists reports whether the username is taken.
func (s *userService) CheckUserExists(ctx context.Context, username string) models.UserExistsResult {
	_, err := s.repo.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return models.UserExistsResult{Exists: true}
	case errors.Is(err, store.ErrUserNotFound):
		return models.UserExistsResult{Exists: false}
	default:
		logger.FromContext(ctx).Err(err).
			Str("func", "userService.CheckUserExists").
			Str("username", username).
			Msg("username lookup failed")
		return models.UserExistsResult{Error: app.MsgInternalServerError}
	}
}

// GetUserInfo fetches the profile owned by userID, lazily creating a default
// one if the account has no profile row yet.
func (s *userService) GetUserInfo(ctx context.Context, userID int64, fallbackUsername string) models.UserInfoResult {
	log := logger.FromContext(ctx)

	info, err := s.repo.GetUserInfo(ctx, userID)
	if err == nil {
		return models.UserInfoResult{Success: true, UserInfo: &info}
	}
	if !errors.Is(err, store.ErrUserInfoNotFound) {
		log.Err(err).Str("func", "userService.GetUserInfo").Int64("user_id", userID).Msg("profile fetch failed")
		return models.UserInfoResult{Message: app.MsgGetUserInfoFailed}
	}

	created, err := s.repo.CreateUserInfo(ctx, defaultUserInfo(userID, fallbackUsername))
	if err != nil {
		log.Err(err).Str("func", "userService.GetUserInfo").Int64("user_id", userID).Msg("lazy profile creation failed")
		return models.UserInfoResult{Message: app.MsgGetUserInfoFailed}
	}

	return models.UserInfoResult{Success: true, UserInfo: &created}
}

// UpdateUserInfo merges the supplied fields into the profile owned by userID
// and stamps updated_at.
func (s *userService) UpdateUserInfo(ctx context.Context, userID int64, update models.UserInfoUpdate) models.UserInfoResult {
	updated, err := s.repo.UpdateUserInfo(ctx, userID, update, time.Now())
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "userService.UpdateUserInfo").
			Int64("user_id", userID).
			Msg("profile update failed")
		return models.UserInfoResult{Message: app.MsgUpdateUserInfoFailed}
	}

	return models.UserInfoResult{Success: true, UserInfo: &updated}
}

// GetAllUsers lists every account. Maintenance listing, not exposed to the SPA.
func (s *userService) GetAllUsers(ctx context.Context) models.UsersResult {
	users, err := s.repo.GetAllUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "userService.GetAllUsers").
			Msg("user listing failed")
		return models.UsersResult{Message: app.MsgGetUsersFailed}
	}

	return models.UsersResult{Success: true, Users: users}
}

// defaultUserInfo synthesizes the profile inserted at registration or lazily
// on first fetch. The nickname and avatar seed fall back to a generic
// placeholder when no username is available.
func defaultUserInfo(userID int64, username string) models.UserInfo {
	nickname := username
	if nickname == "" {
		nickname = app.DefaultNickname
	}

	now := time.Now()
	return models.UserInfo{
		UserID:    userID,
		Nickname:  nickname,
		Gender:    app.DefaultGender,
		AvatarURL: utils.DefaultAvatarURL(nickname),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
