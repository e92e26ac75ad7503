package models

import "time"

type Client struct {
	ID                 string    `db:"id" json:"id"`
	UserID             string    `db:"user_id" json:"user_id"`
	Name               string    `db:"name" json:"name"`
	LateProfileID      string    `db:"late_profile_id" json:"late_profile_id,omitempty"`
	DefaultPostingTime string    `db:"default_posting_time" json:"default_posting_time"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}

type Project struct {
	ID          string    `db:"id" json:"id"`
	ClientID    string    `db:"client_id" json:"client_id"`
	Name        string    `db:"name" json:"name"`
	PortalToken string    `db:"portal_token" json:"portal_token"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type Tag struct {
	ID        string    `db:"id" json:"id"`
	ClientID  string    `db:"client_id" json:"client_id,omitempty"`
	Name      string    `db:"name" json:"name"`
	Color     string    `db:"color" json:"color"`
	CreatedAt time.Time `db:"created_at" json:"created_at,omitempty"`
}

type PostTag struct {
	ID        string    `db:"id" json:"id"`
	PostID    string    `db:"post_id" json:"post_id"`
	TagID     string    `db:"tag_id" json:"tag_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type PortalUpload struct {
	ID        string    `db:"id" json:"id"`
	ProjectID string    `db:"project_id" json:"project_id"`
	FileName  string    `db:"file_name" json:"file_name"`
	FileType  string    `db:"file_type" json:"file_type"`
	FileSize  int64     `db:"file_size" json:"file_size"`
	FileURL   string    `db:"file_url" json:"file_url"`
	Notes     string    `db:"notes" json:"notes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
