// Package migrations holds the goose schema for the scheduler tables. The
// migrations are Go functions compiled into the binary.
package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

// Dir is where goose looks for migration files. Compiled migrations are found
// regardless, so any existing directory works.
const Dir = "."

func Up(ctx context.Context, db *sql.DB) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, Dir)
}
