package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	rawDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { rawDB.Close() })
	return sqlx.NewDb(rawDB, "pgx"), mock
}

func TestTranslateError(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "unique_favorite_recipe"}
	err := translateError(unique)
	assert.True(t, errors.Is(err, ErrUniqueViolation))
	assert.Contains(t, err.Error(), "unique_favorite_recipe")

	fk := &pgconn.PgError{Code: "23503"}
	assert.Equal(t, fk, translateError(fk))

	assert.NoError(t, translateError(nil))
}

func TestNullableLimit(t *testing.T) {
	assert.Nil(t, nullableLimit(0))
	assert.Nil(t, nullableLimit(-1))
	assert.Equal(t, 6, nullableLimit(6))
}

func TestExecutor_PrefersRequestTx(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()

	tx, err := db.Beginx()
	require.NoError(t, err)

	withTx := func(context.Context) *sqlx.Tx { return tx }
	withoutTx := func(context.Context) *sqlx.Tx { return nil }

	assert.Same(t, tx, executor(context.Background(), db, withTx))
	assert.Same(t, db, executor(context.Background(), db, withoutTx))
	assert.Same(t, db, executor(context.Background(), db, nil))
}

func TestInTx(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		err := inTx(context.Background(), db, nil, func(sqlx.ExtContext) error { return nil })
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("boom")
		err := inTx(context.Background(), db, nil, func(sqlx.ExtContext) error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("joins the request tx", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		tx, err := db.Beginx()
		require.NoError(t, err)

		var got sqlx.ExtContext
		err = inTx(context.Background(), db, func(context.Context) *sqlx.Tx { return tx }, func(ex sqlx.ExtContext) error {
			got = ex
			return nil
		})
		assert.NoError(t, err)
		assert.Same(t, tx, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRelationRepository_Add_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`INSERT INTO favorite_recipes \(user_id, recipe_id\)`).
		WithArgs(int64(1), int64(2)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "unique_favorite_recipe"})

	err := NewRelationRepository(db, nil).Add(context.Background(), models.RelationFavorite, 1, 2)
	assert.ErrorIs(t, err, ErrUniqueViolation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRelationRepository_Remove(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`DELETE FROM subscribers WHERE user_id = \$1 AND author_id = \$2`).
		WithArgs(int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM shopping_carts`).
		WithArgs(int64(1), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewRelationRepository(db, nil)

	removed, err := repo.Remove(context.Background(), models.RelationSubscription, 1, 2)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Remove(context.Background(), models.RelationShoppingCart, 1, 3)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_Create_RollsBackOnIngredientError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO recipes`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(5, time.Now()))
	mock.ExpectExec(`INSERT INTO recipe_ingredients`).
		WillReturnError(errors.New("fk violation"))
	mock.ExpectRollback()

	recipe := &models.RecipeDB{AuthorID: 1, Name: "Soup", Image: "recipes/a.png", Text: "t", CookingTime: 5}
	err := NewRecipeRepository(db, nil).Create(context.Background(), recipe, []models.IngredientAmount{{ID: 1, Amount: 2}})

	assert.EqualError(t, err, "fk violation")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_Ingredients_Empty(t *testing.T) {
	db, mock := newMockDB(t)

	rows, err := NewRecipeRepository(db, nil).Ingredients(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`FROM users u\s+WHERE u.id = \$2`).
		WithArgs(int64(0), int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := NewUserRepository(db, nil).GetByID(context.Background(), 0, 42)
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}
