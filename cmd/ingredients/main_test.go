package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
)

type importerFunc func(ctx context.Context, ingredients []models.Ingredient) (int64, error)

func (f importerFunc) Import(ctx context.Context, ingredients []models.Ingredient) (int64, error) {
	return f(ctx, ingredients)
}

func TestParseFlags(t *testing.T) {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-f", "catalog.json"}
	configPath, dataPath := parseFlags()

	assert.Equal(t, "config.env", configPath)
	assert.Equal(t, "catalog.json", dataPath)
}

func TestLoad(t *testing.T) {
	data := `[{"name": "Salt", "measurement_unit": "g"}, {"name": "Milk", "measurement_unit": "ml"}]`

	var got []models.Ingredient
	added, err := load(context.Background(), strings.NewReader(data),
		importerFunc(func(_ context.Context, ingredients []models.Ingredient) (int64, error) {
			got = ingredients
			return int64(len(ingredients)), nil
		}))

	require.NoError(t, err)
	assert.Equal(t, int64(2), added)
	assert.Equal(t, []models.Ingredient{
		{Name: "Salt", MeasurementUnit: "g"},
		{Name: "Milk", MeasurementUnit: "ml"},
	}, got)
}

func TestLoad_InvalidJSON(t *testing.T) {
	_, err := load(context.Background(), strings.NewReader(`{"name":`),
		importerFunc(func(context.Context, []models.Ingredient) (int64, error) {
			t.Fatal("importer must not be called")
			return 0, nil
		}))

	assert.ErrorContains(t, err, "decode ingredients")
}

func TestLoad_ImportError(t *testing.T) {
	_, err := load(context.Background(), strings.NewReader(`[]`),
		importerFunc(func(context.Context, []models.Ingredient) (int64, error) {
			return 0, errors.New("db down")
		}))

	assert.EqualError(t, err, "db down")
}
