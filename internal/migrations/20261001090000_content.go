package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upContent, downContent)
}

// The content subsystem owns these tables; they are created here so a local
// database has something to schedule.
func upContent(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS social_media_accounts (
		id            TEXT PRIMARY KEY,
		company_id    TEXT NOT NULL,
		platform_name TEXT NOT NULL DEFAULT 'instagram',
		platform_icon TEXT NOT NULL DEFAULT '',
		username      TEXT NOT NULL,
		profile_url   TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS posts (
		id         TEXT PRIMARY KEY,
		company_id TEXT NOT NULL,
		title      TEXT NOT NULL DEFAULT '',
		body       TEXT NOT NULL DEFAULT '',
		hashtags   TEXT NOT NULL DEFAULT '',
		media      JSONB NOT NULL DEFAULT '[]'::jsonb
	);

	CREATE TABLE IF NOT EXISTS reels (LIKE posts INCLUDING ALL);
	CREATE TABLE IF NOT EXISTS stories (LIKE posts INCLUDING ALL);
	`)
	return err
}

func downContent(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	DROP TABLE IF EXISTS stories;
	DROP TABLE IF EXISTS reels;
	DROP TABLE IF EXISTS posts;
	DROP TABLE IF EXISTS social_media_accounts;
	`)
	return err
}
