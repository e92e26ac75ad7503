package queue

import (
	"github.com/maheshrc27/contentflow/internal/service"
)

type Queue struct {
	cs service.CalendarService
}

func NewQueue(cs service.CalendarService) *Queue {
	return &Queue{
		cs: cs,
	}
}

const TaskTypePublishPost = "calendar:publish"

const publishQueue = "publishing"

// PublishPostPayload carries the instant the task was scheduled for so the
// worker can drop tasks made stale by a later move.
type PublishPostPayload struct {
	ScheduledPostID string `json:"scheduled_post_id"`
	ScheduledFor    int64  `json:"scheduled_for"`
}
