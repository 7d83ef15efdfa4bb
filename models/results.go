package models

// Tagged operation results returned by the favorite and user services.
//
// These mirror the JSON shape the SPA consumes: a Success tag that callers
// must branch on, an optional human-readable Message on failure, and an
// operation-specific payload. Service methods returning one of these types
// never return a Go error past the service boundary — a failed store call
// surfaces as Success=false.

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	User    *User  `json:"user,omitempty"`
}

// UserExistsResult is returned by CheckUserExists.
type UserExistsResult struct {
	Exists bool   `json:"exists"`
	Error  string `json:"error,omitempty"`
}

// UserInfoResult is returned by GetUserInfo and UpdateUserInfo.
type UserInfoResult struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message,omitempty"`
	UserInfo *UserInfo `json:"userInfo,omitempty"`
}

// UsersResult is returned by GetAllUsers (debug/maintenance listing).
type UsersResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Users   []User `json:"users,omitempty"`
}

// FavoriteIDsResult is returned by GetUserFavorites. Favorites is always
// non-nil so the SPA can iterate it without a presence check.
type FavoriteIDsResult struct {
	Success   bool    `json:"success"`
	Message   string  `json:"message,omitempty"`
	Favorites []int64 `json:"favorites"`
}

// FavoriteResult is returned by AddFavorite and RemoveFavorite.
type FavoriteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// FavoriteStatusResult is returned by IsFavorite. A missing row is a normal
// negative result (Success=true, IsFavorite=false), distinct from a store
// failure (Success=false).
type FavoriteStatusResult struct {
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	IsFavorite bool   `json:"isFavorite"`
}

// FavoritePoemsResult is returned by GetFavoritePoems.
type FavoritePoemsResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Poems   []Poem `json:"poems"`
}
