package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/maheshrc27/contentflow/internal/models"
)

//go:generate go run go.uber.org/mock/mockgen -source=posting_history_repository.go -destination=mocks/posting_history_repository.go -package=mocks
type PostingHistoryRepository interface {
	Create(ctx context.Context, ph *models.PostingHistory) (string, error)
	ListByScheduledPost(ctx context.Context, scheduledPostID string) ([]*models.PostingHistory, error)
}

type postingHistoryRepository struct {
	db *sql.DB
}

func NewPostingHistoryRepository(db *sql.DB) PostingHistoryRepository {
	return &postingHistoryRepository{db: db}
}

func (r *postingHistoryRepository) Create(ctx context.Context, ph *models.PostingHistory) (string, error) {
	query := `
		INSERT INTO posting_history (scheduled_post_id, account_id, late_post_id, error_message)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id string
	err := r.db.QueryRowContext(ctx, query, ph.ScheduledPostID, ph.AccountID, ph.LatePostID, ph.ErrorMessage).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	return id, nil
}

func (r *postingHistoryRepository) ListByScheduledPost(ctx context.Context, scheduledPostID string) ([]*models.PostingHistory, error) {
	query := `
		SELECT id, scheduled_post_id, account_id, late_post_id, error_message, created_at
		FROM posting_history
		WHERE scheduled_post_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, scheduledPostID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var phs []*models.PostingHistory
	for rows.Next() {
		var ph models.PostingHistory
		if err := rows.Scan(&ph.ID, &ph.ScheduledPostID, &ph.AccountID, &ph.LatePostID, &ph.ErrorMessage, &ph.CreatedAt); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		phs = append(phs, &ph)
	}
	return phs, rows.Err()
}
