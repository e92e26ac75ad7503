package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/maheshrc27/contentflow/internal/models"
)

//go:generate go run go.uber.org/mock/mockgen -source=portal_upload_repository.go -destination=mocks/portal_upload_repository.go -package=mocks
type PortalUploadRepository interface {
	Create(ctx context.Context, u *models.PortalUpload) (string, error)
	GetByID(ctx context.Context, id string) (*models.PortalUpload, error)
	ListByProjectID(ctx context.Context, projectID string) ([]*models.PortalUpload, error)
	UpdateNotes(ctx context.Context, id, notes string) error
	Remove(ctx context.Context, id string) error
}

type portalUploadRepository struct {
	db *sql.DB
}

func NewPortalUploadRepository(db *sql.DB) PortalUploadRepository {
	return &portalUploadRepository{db: db}
}

func (r *portalUploadRepository) Create(ctx context.Context, u *models.PortalUpload) (string, error) {
	query := `
		INSERT INTO portal_uploads (project_id, file_name, file_type, file_size, file_url, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	var id string
	err := r.db.QueryRowContext(ctx, query, u.ProjectID, u.FileName, u.FileType, u.FileSize, u.FileURL, u.Notes).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	return id, nil
}

func (r *portalUploadRepository) GetByID(ctx context.Context, id string) (*models.PortalUpload, error) {
	query := `
		SELECT id, project_id, file_name, file_type, file_size, file_url, notes, created_at, updated_at
		FROM portal_uploads
		WHERE id = $1
	`
	var u models.PortalUpload
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.ProjectID, &u.FileName, &u.FileType,
		&u.FileSize, &u.FileURL, &u.Notes, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return &u, nil
}

func (r *portalUploadRepository) ListByProjectID(ctx context.Context, projectID string) ([]*models.PortalUpload, error) {
	query := `
		SELECT id, project_id, file_name, file_type, file_size, file_url, notes, created_at, updated_at
		FROM portal_uploads
		WHERE project_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var uploads []*models.PortalUpload
	for rows.Next() {
		var u models.PortalUpload
		if err := rows.Scan(&u.ID, &u.ProjectID, &u.FileName, &u.FileType, &u.FileSize, &u.FileURL,
			&u.Notes, &u.CreatedAt, &u.UpdatedAt); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		uploads = append(uploads, &u)
	}
	return uploads, rows.Err()
}

func (r *portalUploadRepository) UpdateNotes(ctx context.Context, id, notes string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE portal_uploads SET notes = $1, updated_at = $2 WHERE id = $3`, notes, time.Now(), id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *portalUploadRepository) Remove(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM portal_uploads WHERE id = $1`, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
