package transfer

type UploadNotesRequest struct {
	UploadID string `json:"upload_id"`
	Notes    string `json:"notes"`
}

type ApprovalDecision struct {
	PostID   string `json:"post_id"`
	Approved bool   `json:"approved"`
	Feedback string `json:"feedback,omitempty"`
}

type ApprovalBatchRequest struct {
	Decisions []ApprovalDecision `json:"decisions"`
}

type ApprovalResult struct {
	PostID string `json:"post_id"`
	Status string `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`
}
