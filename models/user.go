package models

import "time"

// User represents an account record used for authentication.
//
// Password holds the legacy 32-bit rolling checksum of the user's password
// encoded as a decimal string — NOT a cryptographic hash. It exists only for
// compatibility with values already stored by earlier versions of the
// application (see utils.LegacyPasswordChecksum) and must never be exposed
// outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique login identifier.
	// Uniqueness is enforced by the database schema and additionally
	// checked defensively before insert.
	Username string `json:"username"`

	// Password is the stored legacy checksum, compared by exact string
	// equality. Excluded from JSON serialization.
	Password string `json:"-"`

	// CreatedAt is stamped by the application at registration time.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
