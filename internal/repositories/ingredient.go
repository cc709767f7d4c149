package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// IngredientRepository reads and imports the ingredient catalog.
type IngredientRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewIngredientRepository(db *sqlx.DB, txGetter TxGetter) *IngredientRepository {
	return &IngredientRepository{db: db, txGetter: txGetter}
}

// List returns ingredients whose name starts with prefix, case-insensitively.
func (r *IngredientRepository) List(ctx context.Context, prefix string) ([]models.Ingredient, error) {
	const query = `
		SELECT id, name, measurement_unit
		FROM ingredients
		WHERE LOWER(name) LIKE $1
		ORDER BY id
	`
	pattern := strings.ToLower(likeEscaper.Replace(prefix)) + "%"

	ingredients := []models.Ingredient{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &ingredients, query, pattern)
	logQuery(query, []any{pattern}, len(ingredients), err)

	return ingredients, err
}

// GetByID returns nil when the ingredient does not exist.
func (r *IngredientRepository) GetByID(ctx context.Context, id int64) (*models.Ingredient, error) {
	const query = `SELECT id, name, measurement_unit FROM ingredients WHERE id = $1`

	var ingredient models.Ingredient
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &ingredient, query, id)
	logQuery(query, []any{id}, ingredient.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// ExistingIDs returns which of ids are present in the catalog.
func (r *IngredientRepository) ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error) {
	existing := make(map[int64]bool, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}

	query, args, err := sqlx.In(`SELECT id FROM ingredients WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}

	ex := executor(ctx, r.db, r.txGetter)
	query = ex.Rebind(query)

	var found []int64
	err = sqlx.SelectContext(ctx, ex, &found, query, args...)
	logQuery(query, args, len(found), err)
	if err != nil {
		return nil, err
	}

	for _, id := range found {
		existing[id] = true
	}
	return existing, nil
}

// Import inserts the ingredients that are not in the catalog yet and
// returns how many rows were added.
func (r *IngredientRepository) Import(ctx context.Context, ingredients []models.Ingredient) (int64, error) {
	const query = `
		INSERT INTO ingredients (name, measurement_unit)
		VALUES ($1, $2)
		ON CONFLICT (name, measurement_unit) DO NOTHING
	`

	var added int64
	err := inTx(ctx, r.db, r.txGetter, func(ex sqlx.ExtContext) error {
		for _, ingredient := range ingredients {
			res, err := ex.ExecContext(ctx, query, ingredient.Name, ingredient.MeasurementUnit)
			if err != nil {
				logQuery(query, []any{ingredient.Name, ingredient.MeasurementUnit}, nil, err)
				return err
			}
			n, _ := res.RowsAffected()
			added += n
		}
		return nil
	})
	logQuery(query, []any{len(ingredients)}, added, err)

	if err != nil {
		return 0, err
	}
	return added, nil
}
