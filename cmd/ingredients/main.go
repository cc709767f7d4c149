// Command ingredients loads the ingredient catalog from a JSON file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/SidorenkoTatiana/foodgram-st/internal/config"
	"github.com/SidorenkoTatiana/foodgram-st/internal/logger"
	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
	"github.com/SidorenkoTatiana/foodgram-st/internal/repositories"
	"github.com/SidorenkoTatiana/foodgram-st/internal/services"
)

// Importer adds catalog entries.
type Importer interface {
	Import(ctx context.Context, ingredients []models.Ingredient) (int64, error)
}

func main() {
	configPath, dataPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg, dataPath); err != nil {
		log.Fatalf("ingredient import failed: %v", err)
	}
}

// parseFlags returns the config file path and the ingredients file path.
func parseFlags() (string, string) {
	c := flag.String("c", "config.env", "Path to configuration file")
	f := flag.String("f", "data/ingredients.json", "Path to ingredients JSON file")
	flag.Parse()
	return *c, *f
}

func run(ctx context.Context, cfg *config.Config, dataPath string) error {
	if err := logger.Initialize(cfg.App.LogLevel, cfg.App.Debug); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	file, err := os.Open(dataPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", dataPath, err)
	}
	defer file.Close()

	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()

	svc := services.NewIngredientService(repositories.NewIngredientRepository(db, nil))
	added, err := load(ctx, file, svc)
	if err != nil {
		return err
	}

	logger.Log.Infof("Loaded %d new ingredients from %s", added, dataPath)
	return nil
}

// load decodes a JSON array of {name, measurement_unit} objects and imports it.
func load(ctx context.Context, r io.Reader, importer Importer) (int64, error) {
	var ingredients []models.Ingredient
	if err := json.NewDecoder(r).Decode(&ingredients); err != nil {
		return 0, fmt.Errorf("decode ingredients: %w", err)
	}
	return importer.Import(ctx, ingredients)
}
