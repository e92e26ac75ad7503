package repository

import (
	"context"
	"database/sql"
	"log/slog"
)

// PostKind tells which table a resolved post lives in.
type PostKind string

const (
	PostKindCalendar PostKind = "calendar"
	PostKindRegular  PostKind = "regular"
)

// ResolvedPost is the ownership-relevant view of a post from either table.
type ResolvedPost struct {
	Kind      PostKind
	ID        string
	ClientID  string
	ProjectID string
}

//go:generate go run go.uber.org/mock/mockgen -source=post_resolver.go -destination=mocks/post_resolver.go -package=mocks
type PostResolver interface {
	// Resolve looks the id up in calendar_scheduled_posts first and falls back
	// to posts. It returns nil, nil when neither table has it.
	Resolve(ctx context.Context, id string) (*ResolvedPost, error)
}

type postResolver struct {
	db *sql.DB
}

func NewPostResolver(db *sql.DB) PostResolver {
	return &postResolver{db: db}
}

func (r *postResolver) Resolve(ctx context.Context, id string) (*ResolvedPost, error) {
	sources := []struct {
		kind  PostKind
		query string
	}{
		{PostKindCalendar, `SELECT id, client_id, project_id FROM calendar_scheduled_posts WHERE id = $1`},
		{PostKindRegular, `SELECT id, client_id, project_id FROM posts WHERE id = $1`},
	}

	for _, src := range sources {
		rp := ResolvedPost{Kind: src.kind}
		err := r.db.QueryRowContext(ctx, src.query, id).Scan(&rp.ID, &rp.ClientID, &rp.ProjectID)
		if err == nil {
			return &rp, nil
		}
		if err != sql.ErrNoRows {
			slog.Info(err.Error())
			return nil, err
		}
	}
	return nil, nil
}
