package transfer

// ScheduledUpdates lists the fields a calendar PATCH may change. Nil means
// "leave as is".
type ScheduledUpdates struct {
	ScheduledDate *string   `json:"scheduled_date,omitempty"`
	ScheduledTime *string   `json:"scheduled_time,omitempty"`
	Caption       *string   `json:"caption,omitempty"`
	AccountIDs    *[]string `json:"account_ids,omitempty"`
	Status        *string   `json:"status,omitempty"`
}

func (u ScheduledUpdates) IsEmpty() bool {
	return u.ScheduledDate == nil && u.ScheduledTime == nil && u.Caption == nil &&
		u.AccountIDs == nil && u.Status == nil
}

type UpdateScheduledRequest struct {
	PostID  string           `json:"postId"`
	Updates ScheduledUpdates `json:"updates"`
}

type CreateScheduledRequest struct {
	ID            string   `json:"id,omitempty"`
	PostID        string   `json:"post_id"`
	ClientID      string   `json:"client_id"`
	ProjectID     string   `json:"project_id"`
	Caption       string   `json:"caption"`
	ImageURL      string   `json:"image_url"`
	ScheduledDate string   `json:"scheduled_date"`
	ScheduledTime string   `json:"scheduled_time,omitempty"`
	AccountIDs    []string `json:"account_ids"`
}

type ScheduledFilter struct {
	ClientID  string
	ProjectID string
	From      string
	To        string
	Status    string
}

type CaptionRequest struct {
	PostID   string `json:"post_id,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	Platform string `json:"platform,omitempty"`
	Tone     string `json:"tone,omitempty"`
	Context  string `json:"context,omitempty"`
}

type UpdatePostRequest struct {
	Caption string `json:"caption"`
}

type CreateClientRequest struct {
	Name               string `json:"name"`
	LateProfileID      string `json:"late_profile_id"`
	DefaultPostingTime string `json:"default_posting_time"`
}

type CreateProjectRequest struct {
	Name string `json:"name"`
}

type CreateTagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type AddTagRequest struct {
	TagID string `json:"tag_id"`
}
