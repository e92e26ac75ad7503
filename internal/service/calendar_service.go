package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maheshrc27/contentflow/internal/late"
	"github.com/maheshrc27/contentflow/internal/models"
	"github.com/maheshrc27/contentflow/internal/repository"
	"github.com/maheshrc27/contentflow/internal/transfer"
	"github.com/maheshrc27/contentflow/pkg/apperror"
)

// PublishScheduler defers publishing of a scheduled post until at.
type PublishScheduler interface {
	SchedulePublish(ctx context.Context, scheduledPostID string, at time.Time) error
}

type CalendarService interface {
	List(ctx context.Context, userID string, filter transfer.ScheduledFilter) ([]*models.ScheduledPost, error)
	Create(ctx context.Context, userID string, req *transfer.CreateScheduledRequest) (*models.ScheduledPost, error)
	Update(ctx context.Context, userID string, req *transfer.UpdateScheduledRequest) (*models.ScheduledPost, error)
	Remove(ctx context.Context, userID, id string) error
	Submit(ctx context.Context, userID, id string) (*models.ScheduledPost, error)
	PublishNow(ctx context.Context, userID, id string) (*models.ScheduledPost, error)
	// PublishDue publishes a post whose deferred task fired. The task is
	// dropped when the post was moved, unscheduled or removed meanwhile.
	// Unless final is set, a transient provider failure leaves the post
	// scheduled so a retry of the task can still publish it.
	PublishDue(ctx context.Context, id string, scheduledFor time.Time, final bool) error
}

type calendarService struct {
	sp        repository.CalendarPostRepository
	p         repository.PostRepository
	c         repository.ClientRepository
	ph        repository.PostingHistoryRepository
	pt        repository.PostTagRepository
	accounts  AccountService
	lc        late.Client
	scheduler PublishScheduler
	loc       *time.Location
}

func NewCalendarService(
	sp repository.CalendarPostRepository,
	p repository.PostRepository,
	c repository.ClientRepository,
	ph repository.PostingHistoryRepository,
	pt repository.PostTagRepository,
	accounts AccountService,
	lc late.Client,
	scheduler PublishScheduler,
	loc *time.Location) CalendarService {
	if loc == nil {
		loc = time.UTC
	}
	return &calendarService{
		sp:        sp,
		p:         p,
		c:         c,
		ph:        ph,
		pt:        pt,
		accounts:  accounts,
		lc:        lc,
		scheduler: scheduler,
		loc:       loc,
	}
}

func (s *calendarService) List(ctx context.Context, userID string, filter transfer.ScheduledFilter) ([]*models.ScheduledPost, error) {
	if _, err := ownedClient(ctx, s.c, userID, filter.ClientID); err != nil {
		return nil, err
	}
	if filter.ProjectID != "" {
		if err := requireUUID(filter.ProjectID, "project_id"); err != nil {
			return nil, err
		}
	}
	if (filter.From != "" && !validDate(filter.From)) || (filter.To != "" && !validDate(filter.To)) {
		return nil, apperror.BadRequest("from and to must be YYYY-MM-DD")
	}
	if filter.Status != "" && !models.IsValidPostStatus(filter.Status) {
		return nil, apperror.BadRequest("Invalid status")
	}

	posts, err := s.sp.List(ctx, filter)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to fetch scheduled posts")
	}
	if posts == nil {
		posts = []*models.ScheduledPost{}
	}
	return posts, nil
}

func (s *calendarService) Create(ctx context.Context, userID string, req *transfer.CreateScheduledRequest) (*models.ScheduledPost, error) {
	if _, err := ownedClient(ctx, s.c, userID, req.ClientID); err != nil {
		return nil, err
	}
	if err := requireUUID(req.ProjectID, "project_id"); err != nil {
		return nil, err
	}
	if !validDate(req.ScheduledDate) {
		return nil, apperror.BadRequest("scheduled_date must be YYYY-MM-DD")
	}
	if req.ScheduledTime != "" && !validClock(req.ScheduledTime) {
		return nil, apperror.BadRequest("scheduled_time must be HH:MM")
	}

	sp := &models.ScheduledPost{
		ID:             req.ID,
		ClientID:       req.ClientID,
		ProjectID:      req.ProjectID,
		Caption:        req.Caption,
		ImageURL:       req.ImageURL,
		ScheduledDate:  req.ScheduledDate,
		ScheduledTime:  req.ScheduledTime,
		AccountIDs:     req.AccountIDs,
		Status:         models.PostStatusPending,
		ApprovalStatus: models.ApprovalPending,
	}
	if sp.ID == "" {
		sp.ID = uuid.NewString()
	} else if err := requireUUID(sp.ID, "id"); err != nil {
		return nil, err
	}
	if sp.AccountIDs == nil {
		sp.AccountIDs = []string{}
	}

	if req.PostID != "" {
		if err := requireUUID(req.PostID, "post_id"); err != nil {
			return nil, err
		}
		post, err := s.p.GetByID(ctx, req.PostID)
		if err != nil {
			return nil, apperror.Wrap(err, "Failed to load post")
		}
		if post == nil {
			return nil, apperror.NotFound("Post not found")
		}
		if post.ClientID != req.ClientID || post.ProjectID != req.ProjectID {
			return nil, apperror.BadRequest("Post belongs to another client or project")
		}
		sp.PostID = post.ID
		if sp.Caption == "" {
			sp.Caption = post.Caption
		}
		if sp.ImageURL == "" {
			sp.ImageURL = post.ImageURL
		}
	}

	if _, err := s.accounts.ValidateSubset(ctx, sp.ClientID, sp.AccountIDs); err != nil {
		return nil, err
	}

	if err := s.sp.Create(ctx, sp); err != nil {
		return nil, apperror.Wrap(err, "Failed to create scheduled post")
	}
	return sp, nil
}

// load fetches a scheduled post and checks the caller owns its client.
func (s *calendarService) load(ctx context.Context, userID, id string) (*models.ScheduledPost, *models.Client, error) {
	if err := requireUUID(id, "post id"); err != nil {
		return nil, nil, err
	}

	sp, err := s.sp.GetByID(ctx, id)
	if err != nil {
		return nil, nil, apperror.Wrap(err, "Failed to load scheduled post")
	}
	if sp == nil {
		return nil, nil, apperror.NotFound("Scheduled post not found")
	}

	client, err := ownedClient(ctx, s.c, userID, sp.ClientID)
	if err != nil {
		return nil, nil, err
	}
	return sp, client, nil
}

func (s *calendarService) Update(ctx context.Context, userID string, req *transfer.UpdateScheduledRequest) (*models.ScheduledPost, error) {
	if req.PostID == "" {
		return nil, apperror.BadRequest("postId is required")
	}
	updates := req.Updates
	if updates.IsEmpty() {
		return nil, apperror.BadRequest("No updates provided")
	}

	sp, client, err := s.load(ctx, userID, req.PostID)
	if err != nil {
		return nil, err
	}

	if updates.ScheduledDate != nil {
		// accept full ISO timestamps from the calendar, keep the date part
		date := *updates.ScheduledDate
		if len(date) > len(dateLayout) {
			date = date[:len(dateLayout)]
		}
		if !validDate(date) {
			return nil, apperror.BadRequest("scheduled_date must be YYYY-MM-DD")
		}
		updates.ScheduledDate = &date
	}
	if updates.ScheduledTime != nil && *updates.ScheduledTime != "" && !validClock(*updates.ScheduledTime) {
		return nil, apperror.BadRequest("scheduled_time must be HH:MM")
	}
	if updates.Status != nil && !models.IsValidPostStatus(*updates.Status) {
		return nil, apperror.BadRequest("Invalid status")
	}
	if updates.AccountIDs != nil {
		if _, err := s.accounts.ValidateSubset(ctx, sp.ClientID, *updates.AccountIDs); err != nil {
			return nil, err
		}
	}

	updated := applyUpdates(sp, updates)

	// Queue before persisting. A task left behind by a failed write finds
	// the old schedule and skips itself.
	timingChanged := updates.ScheduledDate != nil || updates.ScheduledTime != nil || updates.Status != nil
	if updated.Status == models.PostStatusScheduled && timingChanged {
		if err := s.enqueue(ctx, updated, client); err != nil {
			return nil, err
		}
	}

	if err := s.sp.Update(ctx, sp.ID, updates); err != nil {
		return nil, apperror.Wrap(err, "Failed to update scheduled post")
	}
	return updated, nil
}

func applyUpdates(sp *models.ScheduledPost, u transfer.ScheduledUpdates) *models.ScheduledPost {
	out := sp.Clone()
	if u.ScheduledDate != nil {
		out.ScheduledDate = *u.ScheduledDate
	}
	if u.ScheduledTime != nil {
		out.ScheduledTime = *u.ScheduledTime
	}
	if u.Caption != nil {
		out.Caption = *u.Caption
	}
	if u.AccountIDs != nil {
		out.AccountIDs = append([]string{}, (*u.AccountIDs)...)
	}
	if u.Status != nil {
		out.Status = *u.Status
	}
	out.UpdatedAt = time.Now()
	return out
}

func (s *calendarService) Remove(ctx context.Context, userID, id string) error {
	if _, _, err := s.load(ctx, userID, id); err != nil {
		return err
	}
	if err := s.pt.RemoveByPost(ctx, id); err != nil {
		return apperror.Wrap(err, "Failed to delete scheduled post")
	}
	if err := s.sp.Remove(ctx, id); err != nil {
		return apperror.Wrap(err, "Failed to delete scheduled post")
	}
	return nil
}

func (s *calendarService) Submit(ctx context.Context, userID, id string) (*models.ScheduledPost, error) {
	sp, client, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if sp.Status == models.PostStatusPublished {
		return nil, apperror.Conflict("Post is already published")
	}
	if len(sp.AccountIDs) == 0 {
		return nil, apperror.BadRequest("Select at least one account before scheduling")
	}

	updates := transfer.ScheduledUpdates{}
	status := models.PostStatusScheduled
	updates.Status = &status
	if sp.ScheduledTime == "" {
		clock := s.defaultTime(client)
		updates.ScheduledTime = &clock
	}

	updated := applyUpdates(sp, updates)
	if err := s.enqueue(ctx, updated, client); err != nil {
		return nil, err
	}
	if err := s.sp.Update(ctx, sp.ID, updates); err != nil {
		return nil, apperror.Wrap(err, "Failed to schedule post")
	}
	return updated, nil
}

func (s *calendarService) defaultTime(client *models.Client) string {
	if client != nil && validClock(client.DefaultPostingTime) {
		return client.DefaultPostingTime
	}
	return defaultPostingTime
}

func (s *calendarService) publishAt(sp *models.ScheduledPost, client *models.Client) (time.Time, error) {
	clock := sp.ScheduledTime
	if clock == "" {
		clock = s.defaultTime(client)
	}
	at, err := scheduleInstant(sp.ScheduledDate, clock, s.loc)
	if err != nil {
		return time.Time{}, apperror.BadRequest("Invalid schedule")
	}
	return at, nil
}

func (s *calendarService) enqueue(ctx context.Context, sp *models.ScheduledPost, client *models.Client) error {
	at, err := s.publishAt(sp, client)
	if err != nil {
		return err
	}
	if err := s.scheduler.SchedulePublish(ctx, sp.ID, at); err != nil {
		return apperror.Wrap(err, "Failed to queue post for publishing")
	}
	slog.Info("post queued for publishing", "scheduled_post_id", sp.ID, "at", at)
	return nil
}

func (s *calendarService) PublishNow(ctx context.Context, userID, id string) (*models.ScheduledPost, error) {
	sp, _, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if sp.Status == models.PostStatusPublished {
		return nil, apperror.Conflict("Post is already published")
	}
	if len(sp.AccountIDs) == 0 {
		return nil, apperror.BadRequest("Select at least one account before publishing")
	}

	if err := s.publish(ctx, sp, true); err != nil {
		return nil, err
	}
	return sp, nil
}

func (s *calendarService) PublishDue(ctx context.Context, id string, scheduledFor time.Time, final bool) error {
	sp, err := s.sp.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sp == nil {
		slog.Info("scheduled post removed before publishing", "scheduled_post_id", id)
		return nil
	}
	if sp.Status != models.PostStatusScheduled {
		slog.Info("skipping publish task, post no longer scheduled", "scheduled_post_id", id, "status", sp.Status)
		return nil
	}

	client, err := s.c.GetByID(ctx, sp.ClientID)
	if err != nil {
		return err
	}
	at, err := s.publishAt(sp, client)
	if err != nil {
		return err
	}
	if !at.Equal(scheduledFor) {
		slog.Info("skipping stale publish task", "scheduled_post_id", id, "task_at", scheduledFor, "current_at", at)
		return nil
	}

	return s.publish(ctx, sp, final)
}

// publish sends the post to the provider, records one history row per
// destination and updates the post status. A transient failure marks the
// post failed only on the final attempt.
func (s *calendarService) publish(ctx context.Context, sp *models.ScheduledPost, final bool) error {
	accounts, err := s.accounts.ValidateSubset(ctx, sp.ClientID, sp.AccountIDs)
	if err != nil {
		s.markFailed(ctx, sp, err)
		return err
	}

	req := &late.CreatePostRequest{
		Content:    sp.Caption,
		PublishNow: true,
	}
	for _, acc := range accounts {
		req.Platforms = append(req.Platforms, late.PlatformTarget{
			Platform:  acc.Platform,
			AccountID: acc.LateAccountID,
		})
	}
	if sp.ImageURL != "" {
		req.MediaItems = []late.MediaItem{{Type: "image", URL: sp.ImageURL}}
	}

	res, pubErr := s.lc.CreatePost(ctx, req)

	latePostID := ""
	errMsg := ""
	if pubErr != nil {
		errMsg = pubErr.Error()
	} else {
		latePostID = res.ID
	}
	for _, acc := range accounts {
		_, err := s.ph.Create(ctx, &models.PostingHistory{
			ScheduledPostID: sp.ID,
			AccountID:       acc.ID,
			LatePostID:      latePostID,
			ErrorMessage:    errMsg,
		})
		if err != nil {
			slog.Info("failed to save posting history", "scheduled_post_id", sp.ID, "error", err.Error())
		}
	}

	if pubErr != nil {
		if final || !transientPublishError(pubErr) {
			s.markFailed(ctx, sp, pubErr)
		} else {
			slog.Warn("publishing failed, will retry", "scheduled_post_id", sp.ID, "error", pubErr.Error())
		}
		if errors.Is(pubErr, late.ErrUnavailable) {
			return apperror.WrapWithCode(pubErr, "unavailable", "Publishing provider is unavailable")
		}
		return apperror.Wrap(pubErr, "Failed to publish post")
	}

	if err := s.sp.UpdateStatus(ctx, sp.ID, models.PostStatusPublished, latePostID); err != nil {
		return apperror.Wrap(err, "Failed to update post status")
	}
	sp.Status = models.PostStatusPublished
	sp.LatePostID = latePostID
	return nil
}

// transientPublishError reports whether another attempt may succeed. Only
// a 4xx answer from the provider is a rejection of the post itself.
func transientPublishError(err error) bool {
	var apiErr *late.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	return true
}

func (s *calendarService) markFailed(ctx context.Context, sp *models.ScheduledPost, cause error) {
	slog.Error("publishing failed", "scheduled_post_id", sp.ID, "error", strings.TrimSpace(cause.Error()))
	if err := s.sp.UpdateStatus(ctx, sp.ID, models.PostStatusFailed, ""); err != nil {
		slog.Info(err.Error())
	}
	sp.Status = models.PostStatusFailed
}

// BucketByDate groups posts by the date part of scheduled_date.
func BucketByDate(posts []*models.ScheduledPost) map[string][]*models.ScheduledPost {
	out := make(map[string][]*models.ScheduledPost)
	for _, p := range posts {
		key := p.ScheduledDate
		if len(key) > len(dateLayout) {
			key = key[:len(dateLayout)]
		}
		out[key] = append(out[key], p)
	}
	return out
}
