package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/maheshrc27/contentflow/internal/models"
	"github.com/maheshrc27/contentflow/internal/transfer"
)

//go:generate go run go.uber.org/mock/mockgen -source=calendar_post_repository.go -destination=mocks/calendar_post_repository.go -package=mocks
type CalendarPostRepository interface {
	Create(ctx context.Context, sp *models.ScheduledPost) error
	GetByID(ctx context.Context, id string) (*models.ScheduledPost, error)
	List(ctx context.Context, filter transfer.ScheduledFilter) ([]*models.ScheduledPost, error)
	Update(ctx context.Context, id string, updates transfer.ScheduledUpdates) error
	UpdateStatus(ctx context.Context, id, status, latePostID string) error
	UpdateApproval(ctx context.Context, id, approval, feedback string) error
	Remove(ctx context.Context, id string) error
}

type calendarPostRepository struct {
	db *sql.DB
}

func NewCalendarPostRepository(db *sql.DB) CalendarPostRepository {
	return &calendarPostRepository{db: db}
}

var scheduledColumns = []string{
	"id", "COALESCE(post_id::text, '')", "client_id", "project_id", "caption", "image_url",
	"scheduled_date", "scheduled_time", "account_ids", "status", "late_post_id",
	"approval_status", "client_feedback", "created_at", "updated_at",
}

func scanScheduled(row interface{ Scan(...any) error }) (*models.ScheduledPost, error) {
	var sp models.ScheduledPost
	err := row.Scan(&sp.ID, &sp.PostID, &sp.ClientID, &sp.ProjectID, &sp.Caption, &sp.ImageURL,
		&sp.ScheduledDate, &sp.ScheduledTime, pq.Array(&sp.AccountIDs), &sp.Status, &sp.LatePostID,
		&sp.ApprovalStatus, &sp.ClientFeedback, &sp.CreatedAt, &sp.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &sp, nil
}

func nullableUUID(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func (r *calendarPostRepository) Create(ctx context.Context, sp *models.ScheduledPost) error {
	query := `
		INSERT INTO calendar_scheduled_posts (
			id, post_id, client_id, project_id, caption, image_url,
			scheduled_date, scheduled_time, account_ids, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at, approval_status
	`
	err := r.db.QueryRowContext(ctx, query,
		sp.ID,
		nullableUUID(sp.PostID),
		sp.ClientID,
		sp.ProjectID,
		sp.Caption,
		sp.ImageURL,
		sp.ScheduledDate,
		sp.ScheduledTime,
		pq.Array(sp.AccountIDs),
		sp.Status,
	).Scan(&sp.CreatedAt, &sp.UpdatedAt, &sp.ApprovalStatus)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *calendarPostRepository) GetByID(ctx context.Context, id string) (*models.ScheduledPost, error) {
	query, args, err := SqBuilder.Select(scheduledColumns...).
		From("calendar_scheduled_posts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, ErrBadQuery
	}

	sp, err := scanScheduled(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return sp, nil
}

func (r *calendarPostRepository) List(ctx context.Context, filter transfer.ScheduledFilter) ([]*models.ScheduledPost, error) {
	b := SqBuilder.Select(scheduledColumns...).
		From("calendar_scheduled_posts").
		Where(sq.Eq{"client_id": filter.ClientID}).
		OrderBy("scheduled_date", "scheduled_time", "created_at")
	if filter.ProjectID != "" {
		b = b.Where(sq.Eq{"project_id": filter.ProjectID})
	}
	if filter.From != "" {
		b = b.Where(sq.GtOrEq{"scheduled_date": filter.From})
	}
	if filter.To != "" {
		b = b.Where(sq.LtOrEq{"scheduled_date": filter.To})
	}
	if filter.Status != "" {
		b = b.Where(sq.Eq{"status": filter.Status})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, ErrBadQuery
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var posts []*models.ScheduledPost
	for rows.Next() {
		sp, err := scanScheduled(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, sp)
	}
	return posts, rows.Err()
}

func (r *calendarPostRepository) Update(ctx context.Context, id string, updates transfer.ScheduledUpdates) error {
	b := SqBuilder.Update("calendar_scheduled_posts").
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id})
	if updates.ScheduledDate != nil {
		b = b.Set("scheduled_date", *updates.ScheduledDate)
	}
	if updates.ScheduledTime != nil {
		b = b.Set("scheduled_time", *updates.ScheduledTime)
	}
	if updates.Caption != nil {
		b = b.Set("caption", *updates.Caption)
	}
	if updates.AccountIDs != nil {
		b = b.Set("account_ids", pq.Array(*updates.AccountIDs))
	}
	if updates.Status != nil {
		b = b.Set("status", *updates.Status)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return ErrBadQuery
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *calendarPostRepository) UpdateStatus(ctx context.Context, id, status, latePostID string) error {
	query := `
		UPDATE calendar_scheduled_posts
		SET status = $1,
			late_post_id = COALESCE(NULLIF($2, ''), late_post_id),
			updated_at = $3
		WHERE id = $4
	`
	_, err := r.db.ExecContext(ctx, query, status, latePostID, time.Now(), id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *calendarPostRepository) UpdateApproval(ctx context.Context, id, approval, feedback string) error {
	query := `
		UPDATE calendar_scheduled_posts
		SET approval_status = $1,
			client_feedback = $2,
			updated_at = $3
		WHERE id = $4
	`
	res, err := r.db.ExecContext(ctx, query, approval, feedback, time.Now(), id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *calendarPostRepository) Remove(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM calendar_scheduled_posts WHERE id = $1`, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
