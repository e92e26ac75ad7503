package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/contentflow/internal/service"
	"github.com/maheshrc27/contentflow/pkg/apperror"
)

type publishCall struct {
	id    string
	at    time.Time
	final bool
}

type fakeCalendar struct {
	service.CalendarService
	err   error
	calls []publishCall
}

func (f *fakeCalendar) PublishDue(ctx context.Context, id string, scheduledFor time.Time, final bool) error {
	f.calls = append(f.calls, publishCall{id: id, at: scheduledFor, final: final})
	return f.err
}

func TestHandlePublishPostTask(t *testing.T) {
	at := time.Date(2025, time.March, 12, 9, 0, 0, 0, time.UTC)
	task, err := NewPublishPostTask(PublishPostPayload{ScheduledPostID: "sp-1", ScheduledFor: at.Unix()})
	if err != nil {
		t.Fatal(err)
	}
	if task.Type() != TaskTypePublishPost {
		t.Fatalf("type = %s", task.Type())
	}

	cal := &fakeCalendar{}
	if err := NewQueue(cal).HandlePublishPostTask(context.Background(), task); err != nil {
		t.Fatal(err)
	}
	if len(cal.calls) != 1 || cal.calls[0].id != "sp-1" || !cal.calls[0].at.Equal(at) || !cal.calls[0].final {
		t.Fatalf("calls = %+v", cal.calls)
	}
}

func TestHandlePublishPostTaskRetryPolicy(t *testing.T) {
	task, _ := NewPublishPostTask(PublishPostPayload{ScheduledPostID: "sp-1", ScheduledFor: 1})

	tests := []struct {
		name      string
		task      *asynq.Task
		err       error
		skipRetry bool
	}{
		{"bad payload", asynq.NewTask(TaskTypePublishPost, []byte("{")), nil, true},
		{"not found", task, apperror.NotFound("Scheduled post not found"), true},
		{"invalid schedule", task, apperror.BadRequest("Invalid schedule"), true},
		{"provider down", task, apperror.WrapWithCode(errors.New("503"), "unavailable", "Publishing provider is unavailable"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewQueue(&fakeCalendar{err: tt.err}).HandlePublishPostTask(context.Background(), tt.task)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, asynq.SkipRetry); got != tt.skipRetry {
				t.Fatalf("skip retry = %v, want %v (%v)", got, tt.skipRetry, err)
			}
		})
	}
}
