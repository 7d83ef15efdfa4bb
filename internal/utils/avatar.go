package utils

import "net/url"

// defaultAvatarBaseURL is the placeholder-avatar generator the SPA expects.
// The seed query parameter makes the generated image stable per username.
const defaultAvatarBaseURL = "https://api.dicebear.com/7.x/avataaars/svg"

// DefaultAvatarURL builds the placeholder-avatar URL for a freshly created
// profile, seeded by the given username so every account gets a stable,
// distinct image.
func DefaultAvatarURL(username string) string {
	return defaultAvatarBaseURL + "?seed=" + url.QueryEscape(username)
}
