package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upInit, downInit)
}

func upInit(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE EXTENSION IF NOT EXISTS pgcrypto;

	CREATE TABLE users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		google_id TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL DEFAULT '',
		profile_picture TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE api_keys (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		api_key TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE clients (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		late_profile_id TEXT NOT NULL DEFAULT '',
		default_posting_time TEXT NOT NULL DEFAULT '09:00',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE projects (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		client_id UUID NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		portal_token TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE media_assets (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		client_id UUID NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		file_name TEXT NOT NULL,
		file_type TEXT NOT NULL,
		file_size BIGINT NOT NULL DEFAULT 0,
		file_url TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE posts (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		client_id UUID NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		caption TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX posts_partition_idx ON posts (client_id, project_id);

	CREATE TABLE calendar_scheduled_posts (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		post_id UUID REFERENCES posts(id) ON DELETE CASCADE,
		client_id UUID NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		caption TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		scheduled_date TEXT NOT NULL,
		scheduled_time TEXT NOT NULL DEFAULT '',
		account_ids TEXT[] NOT NULL DEFAULT '{}',
		status TEXT NOT NULL DEFAULT 'pending',
		late_post_id TEXT NOT NULL DEFAULT '',
		approval_status TEXT NOT NULL DEFAULT 'pending',
		client_feedback TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX calendar_scheduled_posts_partition_idx
		ON calendar_scheduled_posts (client_id, project_id, scheduled_date);

	CREATE TABLE tags (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		client_id UUID NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		color TEXT NOT NULL DEFAULT '#6b7280',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	-- post_id may point at posts or calendar_scheduled_posts, so no foreign key.
	-- Rows are deleted together with their post by the post and calendar services.
	CREATE TABLE post_tags (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		post_id UUID NOT NULL,
		tag_id UUID NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX post_tags_post_idx ON post_tags (post_id);

	CREATE TABLE connected_accounts (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		client_id UUID NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		late_account_id TEXT NOT NULL,
		platform TEXT NOT NULL,
		username TEXT NOT NULL DEFAULT '',
		display_name TEXT NOT NULL DEFAULT '',
		profile_picture TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (client_id, late_account_id)
	);

	CREATE TABLE posting_history (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		scheduled_post_id UUID NOT NULL REFERENCES calendar_scheduled_posts(id) ON DELETE CASCADE,
		account_id UUID NOT NULL,
		late_post_id TEXT NOT NULL DEFAULT '',
		error_message TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE portal_uploads (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		file_name TEXT NOT NULL,
		file_type TEXT NOT NULL,
		file_size BIGINT NOT NULL DEFAULT 0,
		file_url TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`)
	return err
}

func downInit(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	DROP TABLE IF EXISTS portal_uploads;
	DROP TABLE IF EXISTS posting_history;
	DROP TABLE IF EXISTS connected_accounts;
	DROP TABLE IF EXISTS post_tags;
	DROP TABLE IF EXISTS tags;
	DROP TABLE IF EXISTS calendar_scheduled_posts;
	DROP TABLE IF EXISTS posts;
	DROP TABLE IF EXISTS media_assets;
	DROP TABLE IF EXISTS projects;
	DROP TABLE IF EXISTS clients;
	DROP TABLE IF EXISTS api_keys;
	DROP TABLE IF EXISTS users;
	`)
	return err
}
