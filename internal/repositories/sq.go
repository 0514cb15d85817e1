package repositories

import (
	"errors"

	"github.com/Masterminds/squirrel"
)

var SqBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var ErrBadQuery = errors.New("bad query")

// Postgres error codes the repositories translate.
const (
	PgUniqueViolation     = "23505"
	PgForeignKeyViolation = "23503"
)
