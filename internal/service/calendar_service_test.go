package service

import (
	"context"
	"testing"
	"time"

	"github.com/maheshrc27/contentflow/internal/late"
	latemocks "github.com/maheshrc27/contentflow/internal/late/mocks"
	"github.com/maheshrc27/contentflow/internal/models"
	"github.com/maheshrc27/contentflow/internal/repository/mocks"
	"github.com/maheshrc27/contentflow/internal/transfer"
	"github.com/maheshrc27/contentflow/pkg/apperror"
	"go.uber.org/mock/gomock"
)

const (
	testProjectID   = "2b3c4d5e-6f70-4a8b-9c0d-1e2f3a4b5c6d"
	testScheduledID = "3c4d5e6f-7a8b-4c9d-8e0f-1a2b3c4d5e6f"
)

// fakeAccounts accepts the ids listed in owned and rejects anything else.
type fakeAccounts struct {
	owned map[string]*models.ConnectedAccount
}

func (f *fakeAccounts) ListAccounts(ctx context.Context, userID, clientID string) ([]*models.ConnectedAccount, error) {
	return nil, nil
}

func (f *fakeAccounts) SyncForUser(ctx context.Context, userID, clientID string) ([]*models.ConnectedAccount, error) {
	return nil, nil
}

func (f *fakeAccounts) Sync(ctx context.Context, client *models.Client) ([]*models.ConnectedAccount, error) {
	return nil, nil
}

func (f *fakeAccounts) ValidateSubset(ctx context.Context, clientID string, ids []string) ([]*models.ConnectedAccount, error) {
	out := make([]*models.ConnectedAccount, 0, len(ids))
	for _, id := range ids {
		acc, ok := f.owned[id]
		if !ok {
			return nil, apperror.BadRequest("Account does not belong to this client")
		}
		out = append(out, acc)
	}
	return out, nil
}

type scheduledCall struct {
	id string
	at time.Time
}

type fakeScheduler struct {
	calls []scheduledCall
	err   error
}

func (f *fakeScheduler) SchedulePublish(ctx context.Context, id string, at time.Time) error {
	f.calls = append(f.calls, scheduledCall{id: id, at: at})
	return f.err
}

type calendarFixture struct {
	posts     *mocks.MockCalendarPostRepository
	queue     *mocks.MockPostRepository
	clients   *mocks.MockClientRepository
	history   *mocks.MockPostingHistoryRepository
	tags      *mocks.MockPostTagRepository
	late      *latemocks.MockClient
	scheduler *fakeScheduler
	svc       CalendarService
}

func newCalendarFixture(t *testing.T) *calendarFixture {
	ctrl := gomock.NewController(t)
	f := &calendarFixture{
		posts:     mocks.NewMockCalendarPostRepository(ctrl),
		queue:     mocks.NewMockPostRepository(ctrl),
		clients:   mocks.NewMockClientRepository(ctrl),
		history:   mocks.NewMockPostingHistoryRepository(ctrl),
		tags:      mocks.NewMockPostTagRepository(ctrl),
		late:      latemocks.NewMockClient(ctrl),
		scheduler: &fakeScheduler{},
	}
	accounts := &fakeAccounts{owned: map[string]*models.ConnectedAccount{
		"acc-ig": {ID: "acc-ig", ClientID: testClientID, LateAccountID: "late-ig", Platform: models.PlatformInstagram},
		"acc-li": {ID: "acc-li", ClientID: testClientID, LateAccountID: "late-li", Platform: models.PlatformLinkedIn},
	}}
	f.svc = NewCalendarService(f.posts, f.queue, f.clients, f.history, f.tags, accounts, f.late, f.scheduler, time.UTC)
	return f
}

func (f *calendarFixture) client(defaultTime string) {
	f.clients.EXPECT().GetByID(gomock.Any(), testClientID).
		Return(&models.Client{ID: testClientID, UserID: testUserID, DefaultPostingTime: defaultTime}, nil).AnyTimes()
}

func scheduledPost(status string, accounts ...string) *models.ScheduledPost {
	return &models.ScheduledPost{
		ID:            testScheduledID,
		ClientID:      testClientID,
		ProjectID:     testProjectID,
		Caption:       "Spring drop",
		ImageURL:      "https://media.example.com/a.png",
		ScheduledDate: "2025-03-12",
		AccountIDs:    accounts,
		Status:        status,
	}
}

func TestSubmitRequiresAccounts(t *testing.T) {
	f := newCalendarFixture(t)
	f.client("")
	f.posts.EXPECT().GetByID(gomock.Any(), testScheduledID).Return(scheduledPost(models.PostStatusPending), nil)
	f.posts.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := f.svc.Submit(context.Background(), testUserID, testScheduledID)
	if !apperror.IsBadRequest(err) {
		t.Fatalf("err = %v", err)
	}
	if len(f.scheduler.calls) != 0 {
		t.Fatal("nothing should be queued")
	}
}

func TestSubmitUsesClientDefaultTime(t *testing.T) {
	f := newCalendarFixture(t)
	f.client("10:30")
	f.posts.EXPECT().GetByID(gomock.Any(), testScheduledID).Return(scheduledPost(models.PostStatusPending, "acc-ig"), nil)
	f.posts.EXPECT().Update(gomock.Any(), testScheduledID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, u transfer.ScheduledUpdates) error {
			if u.Status == nil || *u.Status != models.PostStatusScheduled {
				t.Errorf("status update = %v", u.Status)
			}
			if u.ScheduledTime == nil || *u.ScheduledTime != "10:30" {
				t.Errorf("time update = %v", u.ScheduledTime)
			}
			return nil
		})

	sp, err := f.svc.Submit(context.Background(), testUserID, testScheduledID)
	if err != nil {
		t.Fatal(err)
	}
	if sp.Status != models.PostStatusScheduled || sp.ScheduledTime != "10:30" {
		t.Fatalf("post = %+v", sp)
	}
	want := time.Date(2025, time.March, 12, 10, 30, 0, 0, time.UTC)
	if len(f.scheduler.calls) != 1 || !f.scheduler.calls[0].at.Equal(want) {
		t.Fatalf("scheduler calls = %+v", f.scheduler.calls)
	}
}

func TestSubmitPublishedConflicts(t *testing.T) {
	f := newCalendarFixture(t)
	f.client("")
	f.posts.EXPECT().GetByID(gomock.Any(), testScheduledID).Return(scheduledPost(models.PostStatusPublished, "acc-ig"), nil)

	if _, err := f.svc.Submit(context.Background(), testUserID, testScheduledID); !apperror.IsConflict(err) {
		t.Fatalf("err = %v", err)
	}
}

func TestCreateRejectsForeignAccount(t *testing.T) {
	f := newCalendarFixture(t)
	f.client("")
	f.posts.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := f.svc.Create(context.Background(), testUserID, &transfer.CreateScheduledRequest{
		ClientID:      testClientID,
		ProjectID:     testProjectID,
		ScheduledDate: "2025-03-12",
		AccountIDs:    []string{"acc-ig", "acc-other"},
	})
	if !apperror.IsBadRequest(err) {
		t.Fatalf("err = %v", err)
	}
}

func TestCreateAllowsEmptyAccountsWhilePending(t *testing.T) {
	f := newCalendarFixture(t)
	f.client("")
	f.posts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	sp, err := f.svc.Create(context.Background(), testUserID, &transfer.CreateScheduledRequest{
		ID:            testScheduledID,
		ClientID:      testClientID,
		ProjectID:     testProjectID,
		ScheduledDate: "2025-03-12",
	})
	if err != nil {
		t.Fatal(err)
	}
	if sp.ID != testScheduledID || sp.Status != models.PostStatusPending || sp.AccountIDs == nil {
		t.Fatalf("post = %+v", sp)
	}
}

func TestUpdateTrimsISODateAndRequeues(t *testing.T) {
	f := newCalendarFixture(t)
	f.client("")
	sp := scheduledPost(models.PostStatusScheduled, "acc-ig")
	sp.ScheduledTime = "08:15"
	f.posts.EXPECT().GetByID(gomock.Any(), testScheduledID).Return(sp, nil)
	f.posts.EXPECT().Update(gomock.Any(), testScheduledID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, u transfer.ScheduledUpdates) error {
			if *u.ScheduledDate != "2025-03-14" {
				t.Errorf("date = %s", *u.ScheduledDate)
			}
			return nil
		})

	date := "2025-03-14T00:00:00.000Z"
	updated, err := f.svc.Update(context.Background(), testUserID, &transfer.UpdateScheduledRequest{
		PostID:  testScheduledID,
		Updates: transfer.ScheduledUpdates{ScheduledDate: &date},
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated.ScheduledDate != "2025-03-14" {
		t.Fatalf("date = %s", updated.ScheduledDate)
	}
	want := time.Date(2025, time.March, 14, 8, 15, 0, 0, time.UTC)
	if len(f.scheduler.calls) != 1 || !f.scheduler.calls[0].at.Equal(want) {
		t.Fatalf("scheduler calls = %+v", f.scheduler.calls)
	}
}

func TestPublishDueSkipsStaleTask(t *testing.T) {
	f := newCalendarFixture(t)
	f.client("")
	sp := scheduledPost(models.PostStatusScheduled, "acc-ig")
	sp.ScheduledTime = "12:00"
	f.posts.EXPECT().GetByID(gomock.Any(), testScheduledID).Return(sp, nil)
	f.late.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Times(0)

	// the post was moved to noon after the task for 09:00 was queued
	old := time.Date(2025, time.March, 12, 9, 0, 0, 0, time.UTC)
	if err := f.svc.PublishDue(context.Background(), testScheduledID, old, true); err != nil {
		t.Fatal(err)
	}
}

func TestPublishDueSkipsUnscheduled(t *testing.T) {
	f := newCalendarFixture(t)
	f.posts.EXPECT().GetByID(gomock.Any(), testScheduledID).Return(scheduledPost(models.PostStatusPending, "acc-ig"), nil)
	f.late.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Times(0)

	if err := f.svc.PublishDue(context.Background(), testScheduledID, time.Now(), true); err != nil {
		t.Fatal(err)
	}
}

func TestPublishDuePublishes(t *testing.T) {
	f := newCalendarFixture(t)
	f.client("")
	sp := scheduledPost(models.PostStatusScheduled, "acc-ig", "acc-li")
	sp.ScheduledTime = "09:00"
	f.posts.EXPECT().GetByID(gomock.Any(), testScheduledID).Return(sp, nil)
	f.late.EXPECT().CreatePost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *late.CreatePostRequest) (*late.Post, error) {
			if len(req.Platforms) != 2 || req.Platforms[0].AccountID != "late-ig" || !req.PublishNow {
				t.Errorf("request = %+v", req)
			}
			if len(req.MediaItems) != 1 || req.MediaItems[0].URL != sp.ImageURL {
				t.Errorf("media = %+v", req.MediaItems)
			}
			return &late.Post{ID: "late-post-1"}, nil
		})
	f.history.EXPECT().Create(gomock.Any(), gomock.Any()).Return("h", nil).Times(2)
	f.posts.EXPECT().UpdateStatus(gomock.Any(), testScheduledID, models.PostStatusPublished, "late-post-1").Return(nil)

	at := time.Date(2025, time.March, 12, 9, 0, 0, 0, time.UTC)
	if err := f.svc.PublishDue(context.Background(), testScheduledID, at, true); err != nil {
		t.Fatal(err)
	}
}

func TestPublishNowProviderUnavailable(t *testing.T) {
	f := newCalendarFixture(t)
	f.client("")
	f.posts.EXPECT().GetByID(gomock.Any(), testScheduledID).Return(scheduledPost(models.PostStatusPending, "acc-ig"), nil)
	f.late.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(nil, late.ErrUnavailable)
	f.history.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ph *models.PostingHistory) (string, error) {
			if ph.ErrorMessage == "" {
				t.Error("history should carry the provider error")
			}
			return "h", nil
		})
	f.posts.EXPECT().UpdateStatus(gomock.Any(), testScheduledID, models.PostStatusFailed, "").Return(nil)

	_, err := f.svc.PublishNow(context.Background(), testUserID, testScheduledID)
	if apperror.GetCode(err) != "unavailable" {
		t.Fatalf("err = %v", err)
	}
}

func TestPublishDueRetryAfterOutagePublishes(t *testing.T) {
	f := newCalendarFixture(t)
	f.client("")
	sp := scheduledPost(models.PostStatusScheduled, "acc-ig")
	sp.ScheduledTime = "09:00"
	f.posts.EXPECT().GetByID(gomock.Any(), testScheduledID).
		DoAndReturn(func(context.Context, string) (*models.ScheduledPost, error) {
			return sp.Clone(), nil
		}).Times(2)
	gomock.InOrder(
		f.late.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(nil, late.ErrUnavailable),
		f.late.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(&late.Post{ID: "late-post-1"}, nil),
	)
	f.history.EXPECT().Create(gomock.Any(), gomock.Any()).Return("h", nil).Times(2)
	f.posts.EXPECT().UpdateStatus(gomock.Any(), testScheduledID, models.PostStatusFailed, "").Times(0)
	f.posts.EXPECT().UpdateStatus(gomock.Any(), testScheduledID, models.PostStatusPublished, "late-post-1").Return(nil)

	at := time.Date(2025, time.March, 12, 9, 0, 0, 0, time.UTC)
	err := f.svc.PublishDue(context.Background(), testScheduledID, at, false)
	if apperror.GetCode(err) != "unavailable" {
		t.Fatalf("first attempt err = %v", err)
	}
	if err := f.svc.PublishDue(context.Background(), testScheduledID, at, true); err != nil {
		t.Fatalf("retry: %v", err)
	}
}

func TestPublishDueMarksFailed(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		final  bool
		status string
	}{
		{"transient with retries left", late.ErrUnavailable, false, ""},
		{"transient on last attempt", late.ErrUnavailable, true, models.PostStatusFailed},
		{"server error with retries left", &late.APIError{StatusCode: 502, Message: "bad gateway"}, false, ""},
		{"rejected by provider", &late.APIError{StatusCode: 400, Message: "caption too long"}, false, models.PostStatusFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCalendarFixture(t)
			f.client("")
			sp := scheduledPost(models.PostStatusScheduled, "acc-ig")
			sp.ScheduledTime = "09:00"
			f.posts.EXPECT().GetByID(gomock.Any(), testScheduledID).Return(sp, nil)
			f.late.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(nil, tt.err)
			f.history.EXPECT().Create(gomock.Any(), gomock.Any()).Return("h", nil)
			if tt.status != "" {
				f.posts.EXPECT().UpdateStatus(gomock.Any(), testScheduledID, tt.status, "").Return(nil)
			}

			at := time.Date(2025, time.March, 12, 9, 0, 0, 0, time.UTC)
			if err := f.svc.PublishDue(context.Background(), testScheduledID, at, tt.final); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestSubmitQueueFailureKeepsPostPending(t *testing.T) {
	f := newCalendarFixture(t)
	f.client("")
	f.scheduler.err = context.DeadlineExceeded
	f.posts.EXPECT().GetByID(gomock.Any(), testScheduledID).Return(scheduledPost(models.PostStatusPending, "acc-ig"), nil)
	f.posts.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := f.svc.Submit(context.Background(), testUserID, testScheduledID)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(f.scheduler.calls) != 1 {
		t.Fatalf("scheduler calls = %d", len(f.scheduler.calls))
	}
}

func TestUpdateQueueFailureKeepsSchedule(t *testing.T) {
	f := newCalendarFixture(t)
	f.client("")
	f.scheduler.err = context.DeadlineExceeded
	sp := scheduledPost(models.PostStatusScheduled, "acc-ig")
	sp.ScheduledTime = "08:15"
	f.posts.EXPECT().GetByID(gomock.Any(), testScheduledID).Return(sp, nil)
	f.posts.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	date := "2025-03-14"
	_, err := f.svc.Update(context.Background(), testUserID, &transfer.UpdateScheduledRequest{
		PostID:  testScheduledID,
		Updates: transfer.ScheduledUpdates{ScheduledDate: &date},
	})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestRemoveDropsTags(t *testing.T) {
	f := newCalendarFixture(t)
	f.client("")
	f.posts.EXPECT().GetByID(gomock.Any(), testScheduledID).Return(scheduledPost(models.PostStatusPending), nil)
	gomock.InOrder(
		f.tags.EXPECT().RemoveByPost(gomock.Any(), testScheduledID).Return(nil),
		f.posts.EXPECT().Remove(gomock.Any(), testScheduledID).Return(nil),
	)

	if err := f.svc.Remove(context.Background(), testUserID, testScheduledID); err != nil {
		t.Fatal(err)
	}
}
