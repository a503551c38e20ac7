package storage

// Global keys.
const (
	KeyUsers        = "users"
	KeyCommunityArt = "community-art"
)

// CurrentUserKey is the session key of one browser profile.
func CurrentUserKey(profile string) string {
	return "browser/" + profile + "/current-user"
}

// LikedArtKey is the like-set key of one account.
func LikedArtKey(userID string) string {
	return "user/" + userID + "/liked-art"
}
