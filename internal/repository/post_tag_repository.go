package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/maheshrc27/contentflow/internal/models"
)

//go:generate go run go.uber.org/mock/mockgen -source=post_tag_repository.go -destination=mocks/post_tag_repository.go -package=mocks
type PostTagRepository interface {
	Exists(ctx context.Context, postID, tagID string) (bool, error)
	Create(ctx context.Context, postID, tagID string) (string, error)
	ListTags(ctx context.Context, postID string) ([]*models.Tag, error)
	Remove(ctx context.Context, postID, tagID string) error
	// RemoveByPost drops every tag of postID and of the scheduled posts
	// created from it.
	RemoveByPost(ctx context.Context, postID string) error
}

type postTagRepository struct {
	db *sql.DB
}

func NewPostTagRepository(db *sql.DB) PostTagRepository {
	return &postTagRepository{db: db}
}

func (r *postTagRepository) Exists(ctx context.Context, postID, tagID string) (bool, error) {
	var result int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM post_tags WHERE post_id = $1 AND tag_id = $2 LIMIT 1", postID, tagID).Scan(&result)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		slog.Info(err.Error())
		return false, err
	}
	return result == 1, nil
}

func (r *postTagRepository) Create(ctx context.Context, postID, tagID string) (string, error) {
	var id string
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO post_tags (post_id, tag_id) VALUES ($1, $2) RETURNING id`, postID, tagID).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	return id, nil
}

func (r *postTagRepository) ListTags(ctx context.Context, postID string) ([]*models.Tag, error) {
	query := `
		SELECT t.id, t.name, t.color
		FROM post_tags pt
		JOIN tags t ON t.id = pt.tag_id
		WHERE pt.post_id = $1
		ORDER BY pt.created_at
	`
	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	tags := []*models.Tag{}
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Color); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		tags = append(tags, &tag)
	}
	return tags, rows.Err()
}

func (r *postTagRepository) Remove(ctx context.Context, postID, tagID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM post_tags WHERE post_id = $1 AND tag_id = $2`, postID, tagID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *postTagRepository) RemoveByPost(ctx context.Context, postID string) error {
	query := `
		DELETE FROM post_tags
		WHERE post_id = $1
		   OR post_id IN (SELECT id FROM calendar_scheduled_posts WHERE post_id = $1)
	`
	_, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
