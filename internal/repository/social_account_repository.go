package repository

import (
	"context"
	"database/sql"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/maheshrc27/contentflow/internal/models"
)

//go:generate go run go.uber.org/mock/mockgen -source=social_account_repository.go -destination=mocks/social_account_repository.go -package=mocks
type AccountRepository interface {
	Upsert(ctx context.Context, tx *sql.Tx, acc *models.ConnectedAccount) (string, error)
	ListByClientID(ctx context.Context, clientID string) ([]*models.ConnectedAccount, error)
	ListByIDs(ctx context.Context, ids []string) ([]*models.ConnectedAccount, error)
	RemoveMissing(ctx context.Context, tx *sql.Tx, clientID string, keepLateIDs []string) (int64, error)
	BeginTx(ctx context.Context) (*sql.Tx, error)
}

type accountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) AccountRepository {
	return &accountRepository{db: db}
}

var accountColumns = []string{
	"id", "client_id", "late_account_id", "platform", "username", "display_name",
	"profile_picture", "created_at", "updated_at",
}

func scanAccount(row interface{ Scan(...any) error }) (*models.ConnectedAccount, error) {
	var a models.ConnectedAccount
	err := row.Scan(&a.ID, &a.ClientID, &a.LateAccountID, &a.Platform, &a.Username, &a.DisplayName,
		&a.ProfilePicture, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *accountRepository) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return r.db.BeginTx(ctx, &sql.TxOptions{})
}

func (r *accountRepository) Upsert(ctx context.Context, tx *sql.Tx, acc *models.ConnectedAccount) (string, error) {
	query := `
		INSERT INTO connected_accounts (client_id, late_account_id, platform, username, display_name, profile_picture)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (client_id, late_account_id) DO UPDATE SET
			platform = EXCLUDED.platform,
			username = EXCLUDED.username,
			display_name = EXCLUDED.display_name,
			profile_picture = EXCLUDED.profile_picture,
			updated_at = now()
		RETURNING id
	`
	args := []any{acc.ClientID, acc.LateAccountID, acc.Platform, acc.Username, acc.DisplayName, acc.ProfilePicture}

	var id string
	var err error
	if tx != nil {
		err = tx.QueryRowContext(ctx, query, args...).Scan(&id)
	} else {
		err = r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	}
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	return id, nil
}

func (r *accountRepository) ListByClientID(ctx context.Context, clientID string) ([]*models.ConnectedAccount, error) {
	return r.list(ctx, SqBuilder.Select(accountColumns...).
		From("connected_accounts").
		Where(sq.Eq{"client_id": clientID}).
		OrderBy("platform", "username"))
}

func (r *accountRepository) ListByIDs(ctx context.Context, ids []string) ([]*models.ConnectedAccount, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.list(ctx, SqBuilder.Select(accountColumns...).
		From("connected_accounts").
		Where(sq.Eq{"id": ids}))
}

func (r *accountRepository) list(ctx context.Context, b sq.SelectBuilder) ([]*models.ConnectedAccount, error) {
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

	var accounts []*models.ConnectedAccount
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// RemoveMissing deletes the client's accounts whose provider id is not in
// keepLateIDs.
func (r *accountRepository) RemoveMissing(ctx context.Context, tx *sql.Tx, clientID string, keepLateIDs []string) (int64, error) {
	b := SqBuilder.Delete("connected_accounts").Where(sq.Eq{"client_id": clientID})
	if len(keepLateIDs) > 0 {
		b = b.Where(sq.NotEq{"late_account_id": keepLateIDs})
	}
	query, args, err := b.ToSql()
	if err != nil {
		return 0, ErrBadQuery
	}

	var res sql.Result
	if tx != nil {
		res, err = tx.ExecContext(ctx, query, args...)
	} else {
		res, err = r.db.ExecContext(ctx, query, args...)
	}
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return res.RowsAffected()
}
