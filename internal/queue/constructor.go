package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
)

func NewPublishPostTask(payload PublishPostPayload) (*asynq.Task, error) {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypePublishPost, taskPayload,
		asynq.MaxRetry(3),
		asynq.Timeout(2*time.Minute),
		asynq.Queue(publishQueue),
	), nil
}

// Scheduler enqueues publish tasks on asynq.
type Scheduler struct {
	client *asynq.Client
}

func NewScheduler(client *asynq.Client) *Scheduler {
	return &Scheduler{client: client}
}

func (s *Scheduler) SchedulePublish(ctx context.Context, scheduledPostID string, at time.Time) error {
	task, err := NewPublishPostTask(PublishPostPayload{
		ScheduledPostID: scheduledPostID,
		ScheduledFor:    at.Unix(),
	})
	if err != nil {
		return err
	}

	info, err := s.client.EnqueueContext(ctx, task, asynq.ProcessAt(at))
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	slog.Info("task scheduled", "task_id", info.ID, "scheduled_post_id", scheduledPostID, "process_at", at)
	return nil
}
