// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// poem-catalog services and handlers.
//
// All Msg* constants are human-readable message strings that are written into
// tagged operation results or HTTP response bodies to describe the outcome of
// an operation. Keeping them in one place ensures consistent wording
// throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgUsernameAlreadyExists is returned when a registration attempt is
	// rejected because the requested username is already in use — either by
	// the defensive pre-check or by the schema's uniqueness constraint.
	MsgUsernameAlreadyExists = "username already exists"

	// MsgInvalidUsernamePassword is the single generic login failure
	// message. An unknown username and a wrong password intentionally
	// surface as the same text so the response never reveals which field
	// was wrong.
	MsgInvalidUsernamePassword = "username or password incorrect"

	// MsgRegistrationFailed is returned when registration encounters an
	// unexpected store error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when login encounters an unexpected store
	// error unrelated to the supplied credentials.
	MsgLoginFailed = "login failed"

	// MsgGetUserInfoFailed is returned when a profile fetch (or the lazy
	// creation of a default profile) fails.
	MsgGetUserInfoFailed = "failed to get user info"

	// MsgUpdateUserInfoFailed is returned when a profile update fails.
	MsgUpdateUserInfoFailed = "failed to update user info"

	// MsgGetFavoritesFailed is returned when the favorite poem-id listing
	// cannot be fetched.
	MsgGetFavoritesFailed = "failed to get favorites"

	// MsgAddFavoriteFailed is returned when inserting a favorite join row
	// fails.
	MsgAddFavoriteFailed = "failed to add favorite"

	// MsgRemoveFavoriteFailed is returned when deleting a favorite join row
	// fails. Deleting a row that does not exist is NOT a failure.
	MsgRemoveFavoriteFailed = "failed to remove favorite"

	// MsgFavoriteStatusFailed is returned when the favorite existence
	// lookup fails with a genuine store error.
	MsgFavoriteStatusFailed = "failed to check favorite status"

	// MsgGetFavoritePoemsFailed is returned when the joined favorite-poem
	// listing fails on either of its two fetch steps.
	MsgGetFavoritePoemsFailed = "failed to get favorite poems"

	// MsgGetUsersFailed is returned when the debug user listing fails.
	MsgGetUsersFailed = "failed to get users"

	// MsgFavoriteAdded and MsgFavoriteRemoved confirm successful favorite
	// mutations.
	MsgFavoriteAdded   = "favorite added"
	MsgFavoriteRemoved = "favorite removed"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)

// DefaultNickname is the generic placeholder nickname used when a default
// profile must be synthesized and no username is available to seed it. The
// value is kept verbatim from the original application for data parity.
const DefaultNickname = "诗词爱好者"

// DefaultGender is the profile gender default applied at lazy creation,
// kept verbatim from the original application.
const DefaultGender = "male"
