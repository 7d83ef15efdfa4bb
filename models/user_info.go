package models

import "time"

// UserInfo is the one-to-one profile record attached to a [User] account.
//
// Profiles are created lazily: an account may legitimately exist without a
// profile row until the first fetch synthesizes a default one. All fields
// besides UserID are free-form and editable by the owner.
type UserInfo struct {
	ID int64 `json:"id"`

	// UserID references the owning account.
	UserID int64 `json:"user_id"`

	Nickname string `json:"nickname"`
	Gender   string `json:"gender"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`

	// AvatarURL defaults to a generated placeholder-avatar URL seeded by
	// the username.
	AvatarURL string `json:"avatar_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the UserInfo model.
func (u UserInfo) TableName() string {
	return "user_info"
}

// UserInfoUpdate carries the profile fields a user may change.
// Nil fields are left untouched by the update.
type UserInfoUpdate struct {
	Nickname  *string `json:"nickname,omitempty"`
	Gender    *string `json:"gender,omitempty"`
	Email     *string `json:"email,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}
