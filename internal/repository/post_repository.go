package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/maheshrc27/contentflow/internal/models"
)

//go:generate go run go.uber.org/mock/mockgen -source=post_repository.go -destination=mocks/post_repository.go -package=mocks
type PostRepository interface {
	Create(ctx context.Context, tx *sql.Tx, post *models.Post) (string, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	List(ctx context.Context, clientID, projectID string) ([]*models.Post, error)
	UpdateCaption(ctx context.Context, id, caption string) error
	Remove(ctx context.Context, id string) error
}

type postRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, tx *sql.Tx, post *models.Post) (string, error) {
	query := `
		INSERT INTO posts (client_id, project_id, caption, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id string
	var err error

	if tx != nil {
		err = tx.QueryRowContext(ctx, query, post.ClientID, post.ProjectID, post.Caption, post.ImageURL).Scan(&id)
	} else {
		err = r.db.QueryRowContext(ctx, query, post.ClientID, post.ProjectID, post.Caption, post.ImageURL).Scan(&id)
	}
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	return id, nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	query := `SELECT id, client_id, project_id, caption, image_url, created_at, updated_at FROM posts WHERE id = $1`

	var post models.Post
	err := r.db.QueryRowContext(ctx, query, id).Scan(&post.ID, &post.ClientID, &post.ProjectID, &post.Caption, &post.ImageURL, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return &post, nil
}

func (r *postRepository) List(ctx context.Context, clientID, projectID string) ([]*models.Post, error) {
	query := `
		SELECT id, client_id, project_id, caption, image_url, created_at, updated_at
		FROM posts
		WHERE client_id = $1 AND project_id = $2
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, clientID, projectID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.ClientID, &post.ProjectID, &post.Caption, &post.ImageURL, &post.CreatedAt, &post.UpdatedAt); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, &post)
	}
	return posts, rows.Err()
}

func (r *postRepository) UpdateCaption(ctx context.Context, id, caption string) error {
	query := `
		UPDATE posts
		SET caption = $1,
			updated_at = $2
		WHERE id = $3
	`
	_, err := r.db.ExecContext(ctx, query, caption, time.Now(), id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

// Remove deletes the post; its calendar entries go with it through the
// post_id foreign key.
func (r *postRepository) Remove(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
