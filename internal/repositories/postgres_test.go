package repositories

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping PostgreSQL container in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := sqlx.Connect("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	migration, err := os.ReadFile(filepath.Join("..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)
	_, err = db.Exec(string(migration))
	require.NoError(t, err)

	return db
}

// --- Helpers ---
func createUser(t *testing.T, repo *UserRepository, username string) *models.UserDB {
	t.Helper()
	user := &models.UserDB{
		Email:        username + "@example.com",
		Username:     username,
		FirstName:    "First",
		LastName:     "Last",
		PasswordHash: "hash",
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func createIngredient(t *testing.T, db *sqlx.DB, name, unit string) int64 {
	t.Helper()
	var id int64
	err := db.Get(&id, `INSERT INTO ingredients (name, measurement_unit) VALUES ($1, $2) RETURNING id`, name, unit)
	require.NoError(t, err)
	return id
}

func createRecipe(t *testing.T, repo *RecipeRepository, authorID int64, name string, items ...models.IngredientAmount) *models.RecipeDB {
	t.Helper()
	recipe := &models.RecipeDB{
		AuthorID:    authorID,
		Name:        name,
		Image:       "recipes/" + name + ".png",
		Text:        "text",
		CookingTime: 10,
	}
	require.NoError(t, repo.Create(context.Background(), recipe, items))
	return recipe
}
