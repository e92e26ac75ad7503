package models

import "time"

// Post is an unscheduled queue item.
type Post struct {
	ID        string    `db:"id" json:"id"`
	ClientID  string    `db:"client_id" json:"client_id"`
	ProjectID string    `db:"project_id" json:"project_id"`
	Caption   string    `db:"caption" json:"caption"`
	ImageURL  string    `db:"image_url" json:"image_url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ScheduledPost is a post bound to a calendar date and destination accounts.
// ScheduledDate is YYYY-MM-DD and ScheduledTime is HH:MM or empty.
type ScheduledPost struct {
	ID             string    `db:"id" json:"id"`
	PostID         string    `db:"post_id" json:"post_id,omitempty"`
	ClientID       string    `db:"client_id" json:"client_id"`
	ProjectID      string    `db:"project_id" json:"project_id"`
	Caption        string    `db:"caption" json:"caption"`
	ImageURL       string    `db:"image_url" json:"image_url"`
	ScheduledDate  string    `db:"scheduled_date" json:"scheduled_date"`
	ScheduledTime  string    `db:"scheduled_time" json:"scheduled_time,omitempty"`
	AccountIDs     []string  `db:"account_ids" json:"account_ids"`
	Status         string    `db:"status" json:"status"` // pending, scheduled, published, failed
	LatePostID     string    `db:"late_post_id" json:"late_post_id,omitempty"`
	ApprovalStatus string    `db:"approval_status" json:"approval_status"`
	ClientFeedback string    `db:"client_feedback" json:"client_feedback,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// Clone returns a deep copy, including the account slice.
func (p *ScheduledPost) Clone() *ScheduledPost {
	if p == nil {
		return nil
	}
	c := *p
	if p.AccountIDs != nil {
		c.AccountIDs = append([]string(nil), p.AccountIDs...)
	}
	return &c
}

const (
	PostStatusPending   = "pending"
	PostStatusScheduled = "scheduled"
	PostStatusPublished = "published"
	PostStatusFailed    = "failed"
)

const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

func IsValidPostStatus(s string) bool {
	switch s {
	case PostStatusPending, PostStatusScheduled, PostStatusPublished, PostStatusFailed:
		return true
	}
	return false
}

type MediaAsset struct {
	ID        string    `db:"id" json:"id"`
	ClientID  string    `db:"client_id" json:"client_id"`
	FileName  string    `db:"file_name" json:"file_name"`
	FileType  string    `db:"file_type" json:"file_type"`
	FileSize  int64     `db:"file_size" json:"file_size"`
	FileURL   string    `db:"file_url" json:"file_url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
