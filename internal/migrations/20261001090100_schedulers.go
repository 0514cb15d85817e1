package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upSchedulers, downSchedulers)
}

func upSchedulers(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE schedulers (
		id             UUID PRIMARY KEY,
		company_id     TEXT NOT NULL,
		content_kind   TEXT NOT NULL CHECK (content_kind IN ('post', 'reel', 'story')),
		content_id     TEXT NOT NULL,
		scheduled_date DATE NOT NULL,
		scheduled_time TIME NOT NULL,
		active         BOOLEAN NOT NULL DEFAULT TRUE,
		created_at     TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
		updated_at     TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	);
	CREATE INDEX schedulers_company_slot_idx ON schedulers (company_id, scheduled_date, scheduled_time);

	CREATE TABLE scheduler_accounts (
		scheduler_id UUID NOT NULL REFERENCES schedulers (id) ON DELETE CASCADE,
		account_id   TEXT NOT NULL REFERENCES social_media_accounts (id),
		PRIMARY KEY (scheduler_id, account_id)
	);
	`)
	return err
}

func downSchedulers(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	DROP TABLE IF EXISTS scheduler_accounts;
	DROP TABLE IF EXISTS schedulers;
	`)
	return err
}
