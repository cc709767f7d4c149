package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
)

// membershipClause renders an EXISTS test of rel between the subject bound
// at param and the object expression.
func membershipClause(rel models.Relation, param, object string) string {
	return fmt.Sprintf(
		"EXISTS (SELECT 1 FROM %s m WHERE m.%s = %s AND m.%s = %s)",
		rel.Table(), rel.SubjectColumn(), param, rel.ObjectColumn(), object,
	)
}

// RelationRepository answers and toggles membership in the join tables
// (favorites, shopping carts, subscriptions).
type RelationRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewRelationRepository(db *sqlx.DB, txGetter TxGetter) *RelationRepository {
	return &RelationRepository{db: db, txGetter: txGetter}
}

// Exists reports whether subject is related to object.
func (r *RelationRepository) Exists(ctx context.Context, rel models.Relation, subjectID, objectID int64) (bool, error) {
	query := "SELECT " + membershipClause(rel, "$1", "$2")
	args := []any{subjectID, objectID}

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, args...)
	logQuery(query, args, exists, err)

	return exists, err
}

// Add inserts the relation row. A duplicate yields ErrUniqueViolation.
func (r *RelationRepository) Add(ctx context.Context, rel models.Relation, subjectID, objectID int64) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (%s, %s) VALUES ($1, $2)",
		rel.Table(), rel.SubjectColumn(), rel.ObjectColumn(),
	)
	args := []any{subjectID, objectID}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args, nil, err)

	return translateError(err)
}

// Remove deletes the relation row and reports whether one existed.
func (r *RelationRepository) Remove(ctx context.Context, rel models.Relation, subjectID, objectID int64) (bool, error) {
	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = $1 AND %s = $2",
		rel.Table(), rel.SubjectColumn(), rel.ObjectColumn(),
	)
	args := []any{subjectID, objectID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
