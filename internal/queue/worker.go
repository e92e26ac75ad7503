package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/contentflow/pkg/apperror"
)

func (q *Queue) HandlePublishPostTask(ctx context.Context, task *asynq.Task) error {
	var payload PublishPostPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
	}

	err := q.cs.PublishDue(ctx, payload.ScheduledPostID, time.Unix(payload.ScheduledFor, 0), lastAttempt(ctx))
	if err != nil && (apperror.IsBadRequest(err) || apperror.IsNotFound(err)) {
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}
	return err
}

// lastAttempt reports whether asynq will not retry the running task again.
// Outside a worker context every attempt is the last.
func lastAttempt(ctx context.Context) bool {
	retried, ok := asynq.GetRetryCount(ctx)
	if !ok {
		return true
	}
	maxRetry, ok := asynq.GetMaxRetry(ctx)
	if !ok {
		return true
	}
	return retried >= maxRetry
}

func (q *Queue) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TaskTypePublishPost, q.HandlePublishPostTask)
}

// Queues lists the asynq queues with their priorities.
func Queues() map[string]int {
	return map[string]int{
		publishQueue: 6,
		"default":    1,
	}
}
