package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/maheshrc27/contentflow/internal/models"
)

//go:generate go run go.uber.org/mock/mockgen -source=client_repository.go -destination=mocks/client_repository.go -package=mocks
type ClientRepository interface {
	Create(ctx context.Context, c *models.Client) (string, error)
	GetByID(ctx context.Context, id string) (*models.Client, error)
	ListByUserID(ctx context.Context, userID string) ([]*models.Client, error)
	ListAll(ctx context.Context) ([]*models.Client, error)
}

type clientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) ClientRepository {
	return &clientRepository{db: db}
}

const clientColumns = `id, user_id, name, late_profile_id, default_posting_time, created_at, updated_at`

func scanClient(row interface{ Scan(...any) error }) (*models.Client, error) {
	var c models.Client
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.LateProfileID, &c.DefaultPostingTime, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clientRepository) Create(ctx context.Context, c *models.Client) (string, error) {
	query := `
		INSERT INTO clients (user_id, name, late_profile_id, default_posting_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id string
	err := r.db.QueryRowContext(ctx, query, c.UserID, c.Name, c.LateProfileID, c.DefaultPostingTime).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	return id, nil
}

func (r *clientRepository) GetByID(ctx context.Context, id string) (*models.Client, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)
	c, err := scanClient(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return c, nil
}

func (r *clientRepository) ListByUserID(ctx context.Context, userID string) ([]*models.Client, error) {
	return r.list(ctx, `SELECT `+clientColumns+` FROM clients WHERE user_id = $1 ORDER BY name`, userID)
}

func (r *clientRepository) ListAll(ctx context.Context) ([]*models.Client, error) {
	return r.list(ctx, `SELECT `+clientColumns+` FROM clients WHERE late_profile_id <> '' ORDER BY created_at`)
}

func (r *clientRepository) list(ctx context.Context, query string, args ...any) ([]*models.Client, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var clients []*models.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}
