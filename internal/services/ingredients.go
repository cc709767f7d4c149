package services

import (
	"context"
	"strings"

	"github.com/SidorenkoTatiana/foodgram-st/internal/apperror"
	"github.com/SidorenkoTatiana/foodgram-st/internal/logger"
	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
)

//go:generate mockgen -source=ingredients.go -destination=ingredients_mock.go -package=services

// IngredientRepository reads and imports the ingredient catalog.
type IngredientRepository interface {
	List(ctx context.Context, prefix string) ([]models.Ingredient, error)
	GetByID(ctx context.Context, id int64) (*models.Ingredient, error)
	Import(ctx context.Context, ingredients []models.Ingredient) (int64, error)
}

type IngredientService struct {
	repo IngredientRepository
}

func NewIngredientService(repo IngredientRepository) *IngredientService {
	return &IngredientService{repo: repo}
}

// List returns ingredients whose name starts with prefix, ignoring case.
func (s *IngredientService) List(ctx context.Context, prefix string) ([]models.Ingredient, error) {
	ingredients, err := s.repo.List(ctx, strings.TrimSpace(prefix))
	if err != nil {
		logger.Log.Errorw("failed to list ingredients", "prefix", prefix, "error", err)
		return nil, err
	}
	return ingredients, nil
}

func (s *IngredientService) Get(ctx context.Context, id int64) (*models.Ingredient, error) {
	ingredient, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get ingredient", "id", id, "error", err)
		return nil, err
	}
	if ingredient == nil {
		return nil, apperror.NotFound("ingredient", id)
	}
	return ingredient, nil
}

// Import inserts the ingredients missing from the catalog and returns how many were added.
func (s *IngredientService) Import(ctx context.Context, ingredients []models.Ingredient) (int64, error) {
	valid := make([]models.Ingredient, 0, len(ingredients))
	for _, in := range ingredients {
		in.Name = strings.TrimSpace(in.Name)
		in.MeasurementUnit = strings.TrimSpace(in.MeasurementUnit)
		if in.Name == "" || in.MeasurementUnit == "" {
			logger.Log.Warnw("skipping incomplete ingredient", "name", in.Name, "unit", in.MeasurementUnit)
			continue
		}
		valid = append(valid, in)
	}
	if len(valid) == 0 {
		return 0, nil
	}

	added, err := s.repo.Import(ctx, valid)
	if err != nil {
		logger.Log.Errorw("failed to import ingredients", "count", len(valid), "error", err)
		return 0, err
	}
	logger.Log.Infow("ingredients imported", "received", len(ingredients), "added", added)
	return added, nil
}
