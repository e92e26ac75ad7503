package models

import (
	"strings"
	"time"
)

// ConnectedAccount is a client's destination on a social platform. Tokens stay
// with the publishing provider; only its account id is stored here.
type ConnectedAccount struct {
	ID             string    `db:"id" json:"id"`
	ClientID       string    `db:"client_id" json:"client_id"`
	LateAccountID  string    `db:"late_account_id" json:"late_account_id"`
	Platform       string    `db:"platform" json:"platform"`
	Username       string    `db:"username" json:"username"`
	DisplayName    string    `db:"display_name" json:"display_name"`
	ProfilePicture string    `db:"profile_picture" json:"profile_picture,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

const (
	PlatformFacebook  = "facebook"
	PlatformInstagram = "instagram"
	PlatformTwitter   = "twitter"
	PlatformLinkedIn  = "linkedin"
	PlatformTikTok    = "tiktok"
	PlatformYouTube   = "youtube"
	PlatformThreads   = "threads"
)

// NormalizePlatform maps provider spellings onto the fixed platform set.
// It returns "" for unknown platforms.
func NormalizePlatform(p string) string {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "facebook":
		return PlatformFacebook
	case "instagram":
		return PlatformInstagram
	case "twitter", "x":
		return PlatformTwitter
	case "linkedin":
		return PlatformLinkedIn
	case "tiktok":
		return PlatformTikTok
	case "youtube":
		return PlatformYouTube
	case "threads":
		return PlatformThreads
	}
	return ""
}

type PostingHistory struct {
	ID              string    `db:"id" json:"id"`
	ScheduledPostID string    `db:"scheduled_post_id" json:"scheduled_post_id"`
	AccountID       string    `db:"account_id" json:"account_id"`
	LatePostID      string    `db:"late_post_id" json:"late_post_id,omitempty"`
	ErrorMessage    string    `db:"error_message" json:"error_message"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
