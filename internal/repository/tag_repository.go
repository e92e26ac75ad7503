package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/maheshrc27/contentflow/internal/models"
)

//go:generate go run go.uber.org/mock/mockgen -source=tag_repository.go -destination=mocks/tag_repository.go -package=mocks
type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) (string, error)
	GetByID(ctx context.Context, id string) (*models.Tag, error)
	ListByClientID(ctx context.Context, clientID string) ([]*models.Tag, error)
}

type tagRepository struct {
	db *sql.DB
}

func NewTagRepository(db *sql.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) (string, error) {
	var id string
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO tags (client_id, name, color) VALUES ($1, $2, $3) RETURNING id`,
		tag.ClientID, tag.Name, tag.Color).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	return id, nil
}

func (r *tagRepository) GetByID(ctx context.Context, id string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.QueryRowContext(ctx,
		`SELECT id, client_id, name, color, created_at FROM tags WHERE id = $1`, id).
		Scan(&tag.ID, &tag.ClientID, &tag.Name, &tag.Color, &tag.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) ListByClientID(ctx context.Context, clientID string) ([]*models.Tag, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, client_id, name, color, created_at FROM tags WHERE client_id = $1 ORDER BY name`, clientID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var tags []*models.Tag
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.ClientID, &tag.Name, &tag.Color, &tag.CreatedAt); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		tags = append(tags, &tag)
	}
	return tags, rows.Err()
}
