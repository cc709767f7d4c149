package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
)

// recipeRowSelect selects a recipe with its author and the flags of the viewer bound at $1.
var recipeRowSelect = `
	SELECT r.id, r.author_id, r.name, r.image, r.text, r.cooking_time, r.created_at,
		u.id AS "author.id", u.email AS "author.email", u.username AS "author.username",
		u.first_name AS "author.first_name", u.last_name AS "author.last_name",
		u.password_hash AS "author.password_hash", u.avatar AS "author.avatar",
		u.created_at AS "author.created_at",
		` + membershipClause(models.RelationSubscription, "$1", "u.id") + ` AS "author.is_subscribed",
		` + membershipClause(models.RelationFavorite, "$1", "r.id") + ` AS is_favorited,
		` + membershipClause(models.RelationShoppingCart, "$1", "r.id") + ` AS is_in_shopping_cart
	FROM recipes r
	JOIN users u ON u.id = r.author_id`

// recipeFilterWhere applies models.RecipeFilter bound at $2..$4.
var recipeFilterWhere = `
	WHERE ($2::BIGINT IS NULL OR r.author_id = $2)
	  AND ($3::BOOLEAN IS NULL OR ` + membershipClause(models.RelationFavorite, "$1", "r.id") + ` = $3)
	  AND ($4::BOOLEAN IS NULL OR ` + membershipClause(models.RelationShoppingCart, "$1", "r.id") + ` = $4)`

// recipeIngredientInsert is a row of the bulk ingredient insert.
type recipeIngredientInsert struct {
	RecipeID     int64 `db:"recipe_id"`
	IngredientID int64 `db:"ingredient_id"`
	Amount       int   `db:"amount"`
}

// RecipeRepository reads and writes recipes together with their ingredient lines.
type RecipeRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewRecipeRepository(db *sqlx.DB, txGetter TxGetter) *RecipeRepository {
	return &RecipeRepository{db: db, txGetter: txGetter}
}

// Create inserts the recipe and its ingredient lines atomically.
// The generated id and timestamp are written back to recipe.
func (r *RecipeRepository) Create(ctx context.Context, recipe *models.RecipeDB, items []models.IngredientAmount) error {
	const query = `
		INSERT INTO recipes (author_id, name, image, text, cooking_time, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`
	args := []any{recipe.AuthorID, recipe.Name, recipe.Image, recipe.Text, recipe.CookingTime}

	return inTx(ctx, r.db, r.txGetter, func(ex sqlx.ExtContext) error {
		err := ex.QueryRowxContext(ctx, query, args...).Scan(&recipe.ID, &recipe.CreatedAt)
		logQuery(query, args, recipe.ID, err)
		if err != nil {
			return translateError(err)
		}
		return insertRecipeIngredients(ctx, ex, recipe.ID, items)
	})
}

// Update rewrites the recipe fields and replaces its whole ingredient set.
func (r *RecipeRepository) Update(ctx context.Context, recipe *models.RecipeDB, items []models.IngredientAmount) error {
	const updateQuery = `
		UPDATE recipes
		SET name = $1, image = $2, text = $3, cooking_time = $4
		WHERE id = $5
	`
	const clearQuery = `DELETE FROM recipe_ingredients WHERE recipe_id = $1`

	updateArgs := []any{recipe.Name, recipe.Image, recipe.Text, recipe.CookingTime, recipe.ID}

	return inTx(ctx, r.db, r.txGetter, func(ex sqlx.ExtContext) error {
		_, err := ex.ExecContext(ctx, updateQuery, updateArgs...)
		logQuery(updateQuery, updateArgs, nil, err)
		if err != nil {
			return err
		}

		res, err := ex.ExecContext(ctx, clearQuery, recipe.ID)
		var rowsAffected int64
		if res != nil {
			rowsAffected, _ = res.RowsAffected()
		}
		logQuery(clearQuery, []any{recipe.ID}, rowsAffected, err)
		if err != nil {
			return err
		}

		return insertRecipeIngredients(ctx, ex, recipe.ID, items)
	})
}

func insertRecipeIngredients(ctx context.Context, ex sqlx.ExtContext, recipeID int64, items []models.IngredientAmount) error {
	if len(items) == 0 {
		return nil
	}

	const query = `
		INSERT INTO recipe_ingredients (recipe_id, ingredient_id, amount)
		VALUES (:recipe_id, :ingredient_id, :amount)
	`

	rows := make([]recipeIngredientInsert, 0, len(items))
	for _, item := range items {
		rows = append(rows, recipeIngredientInsert{
			RecipeID:     recipeID,
			IngredientID: item.ID,
			Amount:       item.Amount,
		})
	}

	_, err := sqlx.NamedExecContext(ctx, ex, query, rows)
	logQuery(query, []any{recipeID}, len(rows), err)

	return translateError(err)
}

// Delete removes the recipe and reports whether it existed.
func (r *RecipeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM recipes WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// GetByID returns the bare recipe row, or nil.
func (r *RecipeRepository) GetByID(ctx context.Context, id int64) (*models.RecipeDB, error) {
	const query = `
		SELECT id, author_id, name, image, text, cooking_time, created_at
		FROM recipes
		WHERE id = $1
	`

	var recipe models.RecipeDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &recipe, query, id)
	logQuery(query, []any{id}, recipe.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Get returns the recipe with author and viewer flags, or nil.
func (r *RecipeRepository) Get(ctx context.Context, viewerID, id int64) (*models.RecipeRow, error) {
	query := recipeRowSelect + ` WHERE r.id = $2`
	args := []any{viewerID, id}

	var recipe models.RecipeRow
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &recipe, query, args...)
	logQuery(query, args, recipe.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// List returns a page of recipes matching filter, ordered by name.
func (r *RecipeRepository) List(ctx context.Context, viewerID int64, filter models.RecipeFilter) ([]models.RecipeRow, error) {
	query := recipeRowSelect + recipeFilterWhere + `
		ORDER BY r.name, r.id
		LIMIT $5 OFFSET $6`
	args := []any{
		viewerID, filter.AuthorID, filter.IsFavorited, filter.IsInShoppingCart,
		nullableLimit(filter.Limit), filter.Offset,
	}

	recipes := []models.RecipeRow{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &recipes, query, args...)
	logQuery(query, args, len(recipes), err)

	return recipes, err
}

// Count returns the number of recipes matching filter, ignoring paging.
func (r *RecipeRepository) Count(ctx context.Context, viewerID int64, filter models.RecipeFilter) (int, error) {
	query := `SELECT COUNT(*) FROM recipes r` + recipeFilterWhere
	args := []any{viewerID, filter.AuthorID, filter.IsFavorited, filter.IsInShoppingCart}

	var count int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &count, query, args...)
	logQuery(query, args, count, err)

	return count, err
}

// Ingredients returns the ingredient lines of the given recipes.
func (r *RecipeRepository) Ingredients(ctx context.Context, recipeIDs []int64) ([]models.RecipeIngredientRow, error) {
	rows := []models.RecipeIngredientRow{}
	if len(recipeIDs) == 0 {
		return rows, nil
	}

	query, args, err := sqlx.In(`
		SELECT ri.recipe_id, i.id, i.name, i.measurement_unit, ri.amount
		FROM recipe_ingredients ri
		JOIN ingredients i ON i.id = ri.ingredient_id
		WHERE ri.recipe_id IN (?)
		ORDER BY ri.recipe_id, ri.id
	`, recipeIDs)
	if err != nil {
		return nil, err
	}

	ex := executor(ctx, r.db, r.txGetter)
	query = ex.Rebind(query)

	err = sqlx.SelectContext(ctx, ex, &rows, query, args...)
	logQuery(query, args, len(rows), err)

	return rows, err
}

// ListByAuthor returns the author's newest recipes; limit <= 0 means all.
func (r *RecipeRepository) ListByAuthor(ctx context.Context, authorID int64, limit int) ([]models.RecipeDB, error) {
	const query = `
		SELECT id, author_id, name, image, text, cooking_time, created_at
		FROM recipes
		WHERE author_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	args := []any{authorID, nullableLimit(limit)}

	recipes := []models.RecipeDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &recipes, query, args...)
	logQuery(query, args, len(recipes), err)

	return recipes, err
}

func (r *RecipeRepository) CountByAuthor(ctx context.Context, authorID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM recipes WHERE author_id = $1`

	var count int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &count, query, authorID)
	logQuery(query, []any{authorID}, count, err)

	return count, err
}
