package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
)

// ShoppingListRepository reads the ingredient lines behind a user's cart.
type ShoppingListRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewShoppingListRepository(db *sqlx.DB, txGetter TxGetter) *ShoppingListRepository {
	return &ShoppingListRepository{db: db, txGetter: txGetter}
}

// Rows returns one row per ingredient line of every recipe in the cart,
// in cart order and then recipe ingredient order.
func (r *ShoppingListRepository) Rows(ctx context.Context, userID int64) ([]models.ShoppingListRow, error) {
	const query = `
		SELECT i.name, i.measurement_unit, ri.amount
		FROM shopping_carts sc
		JOIN recipe_ingredients ri ON ri.recipe_id = sc.recipe_id
		JOIN ingredients i ON i.id = ri.ingredient_id
		WHERE sc.user_id = $1
		ORDER BY sc.id, ri.id
	`

	rows := []models.ShoppingListRow{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query, userID)
	logQuery(query, []any{userID}, len(rows), err)

	return rows, err
}

// Recipes returns the recipes in the cart with their author usernames.
func (r *ShoppingListRepository) Recipes(ctx context.Context, userID int64) ([]models.ShoppingListRecipe, error) {
	const query = `
		SELECT r.name, u.username AS author
		FROM shopping_carts sc
		JOIN recipes r ON r.id = sc.recipe_id
		JOIN users u ON u.id = r.author_id
		WHERE sc.user_id = $1
		ORDER BY sc.id
	`

	recipes := []models.ShoppingListRecipe{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &recipes, query, userID)
	logQuery(query, []any{userID}, len(recipes), err)

	return recipes, err
}
