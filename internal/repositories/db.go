package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/SidorenkoTatiana/foodgram-st/internal/logger"
)

// ErrUniqueViolation is returned when a write hits a unique constraint.
var ErrUniqueViolation = errors.New("unique constraint violation")

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// TxGetter returns the transaction bound to the request context, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor picks the request transaction when there is one.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// inTx runs fn inside the request transaction, or inside a fresh one
// that is committed when fn succeeds.
func inTx(ctx context.Context, db *sqlx.DB, txGetter TxGetter, fn func(ex sqlx.ExtContext) error) error {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return fn(tx)
		}
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Log.Errorw("failed to rollback transaction", "error", rbErr)
		}
		return err
	}
	return tx.Commit()
}

// translateError maps driver errors onto repository sentinels.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", ErrUniqueViolation, pgErr.ConstraintName)
	}
	return err
}

// logQuery logs the query on a single line together with its outcome.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// nullableLimit turns a non-positive limit into SQL NULL (no limit).
func nullableLimit(limit int) any {
	if limit <= 0 {
		return nil
	}
	return limit
}
