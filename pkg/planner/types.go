// Package planner holds client-side scheduling state: the post queue, the
// scheduled-post store, the calendar board with optimistic moves, and the
// account and time selections that gate scheduling.
package planner

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidDragKey = errors.New("invalid drag key")
	ErrPostNotFound   = errors.New("post not found")
	ErrDragDisabled   = errors.New("select at least one account before scheduling")
	ErrOverrideActive = errors.New("global time is applied")
	ErrNoGlobalTime   = errors.New("no global time selected")
	ErrInvalidTime    = errors.New("time must be HH:MM")
	ErrInvalidDate    = errors.New("date must be YYYY-MM-DD")
)

const (
	StatusPending   = "pending"
	StatusScheduled = "scheduled"
	StatusPublished = "published"
	StatusFailed    = "failed"
)

// Key partitions state by client and project.
type Key struct {
	ClientID  string
	ProjectID string
}

// Post is a queue item waiting for a calendar slot.
type Post struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	ProjectID string    `json:"project_id"`
	Caption   string    `json:"caption"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *Post) Key() Key {
	return Key{ClientID: p.ClientID, ProjectID: p.ProjectID}
}

type ScheduledPost struct {
	ID             string    `json:"id"`
	PostID         string    `json:"post_id,omitempty"`
	ClientID       string    `json:"client_id"`
	ProjectID      string    `json:"project_id"`
	Caption        string    `json:"caption"`
	ImageURL       string    `json:"image_url"`
	ScheduledDate  string    `json:"scheduled_date"`
	ScheduledTime  string    `json:"scheduled_time,omitempty"`
	AccountIDs     []string  `json:"account_ids"`
	Status         string    `json:"status"`
	LatePostID     string    `json:"late_post_id,omitempty"`
	ApprovalStatus string    `json:"approval_status,omitempty"`
	ClientFeedback string    `json:"client_feedback,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (p *ScheduledPost) Key() Key {
	return Key{ClientID: p.ClientID, ProjectID: p.ProjectID}
}

// Clone returns a deep copy.
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

// Update is a partial change to a scheduled post. Nil fields are untouched.
type Update struct {
	ScheduledDate *string   `json:"scheduled_date,omitempty"`
	ScheduledTime *string   `json:"scheduled_time,omitempty"`
	Caption       *string   `json:"caption,omitempty"`
	AccountIDs    *[]string `json:"account_ids,omitempty"`
	Status        *string   `json:"status,omitempty"`
}

func (u Update) apply(p *ScheduledPost) {
	if u.ScheduledDate != nil {
		p.ScheduledDate = *u.ScheduledDate
	}
	if u.ScheduledTime != nil {
		p.ScheduledTime = *u.ScheduledTime
	}
	if u.Caption != nil {
		p.Caption = *u.Caption
	}
	if u.AccountIDs != nil {
		p.AccountIDs = append([]string{}, (*u.AccountIDs)...)
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
}

// Backend persists scheduled posts. pkg/client.Client implements it.
type Backend interface {
	ListScheduled(ctx context.Context, key Key) ([]*ScheduledPost, error)
	CreateScheduled(ctx context.Context, sp *ScheduledPost) (*ScheduledPost, error)
	UpdateScheduled(ctx context.Context, id string, u Update) (*ScheduledPost, error)
	DeleteScheduled(ctx context.Context, id string) error
}

// Notifier surfaces failures to the user.
type Notifier interface {
	Alert(msg string)
}

type NotifierFunc func(msg string)

func (f NotifierFunc) Alert(msg string) { f(msg) }

type nopNotifier struct{}

func (nopNotifier) Alert(string) {}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func validClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

func cloneList(in []*ScheduledPost) []*ScheduledPost {
	out := make([]*ScheduledPost, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}
