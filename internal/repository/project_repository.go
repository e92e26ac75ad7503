package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/maheshrc27/contentflow/internal/models"
)

//go:generate go run go.uber.org/mock/mockgen -source=project_repository.go -destination=mocks/project_repository.go -package=mocks
type ProjectRepository interface {
	Create(ctx context.Context, p *models.Project) (string, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	GetByPortalToken(ctx context.Context, token string) (*models.Project, error)
	ListByClientID(ctx context.Context, clientID string) ([]*models.Project, error)
}

type projectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, p *models.Project) (string, error) {
	query := `INSERT INTO projects (client_id, name, portal_token) VALUES ($1, $2, $3) RETURNING id`
	var id string
	if err := r.db.QueryRowContext(ctx, query, p.ClientID, p.Name, p.PortalToken).Scan(&id); err != nil {
		slog.Info(err.Error())
		return "", err
	}
	return id, nil
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	return r.get(ctx, `SELECT id, client_id, name, portal_token, created_at FROM projects WHERE id = $1`, id)
}

func (r *projectRepository) GetByPortalToken(ctx context.Context, token string) (*models.Project, error) {
	return r.get(ctx, `SELECT id, client_id, name, portal_token, created_at FROM projects WHERE portal_token = $1`, token)
}

func (r *projectRepository) get(ctx context.Context, query string, arg string) (*models.Project, error) {
	var p models.Project
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&p.ID, &p.ClientID, &p.Name, &p.PortalToken, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return &p, nil
}

func (r *projectRepository) ListByClientID(ctx context.Context, clientID string) ([]*models.Project, error) {
	query := `SELECT id, client_id, name, portal_token, created_at FROM projects WHERE client_id = $1 ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, clientID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.ClientID, &p.Name, &p.PortalToken, &p.CreatedAt); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}
