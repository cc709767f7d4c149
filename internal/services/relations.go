package services

import (
	"context"
	"fmt"

	"github.com/SidorenkoTatiana/foodgram-st/internal/apperror"
	"github.com/SidorenkoTatiana/foodgram-st/internal/logger"
	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
)

//go:generate mockgen -source=relations.go -destination=relations_mock.go -package=services

// RecipeGetter loads bare recipe rows.
type RecipeGetter interface {
	GetByID(ctx context.Context, id int64) (*models.RecipeDB, error)
}

// RecipeRelationService puts recipes into and out of favorites and shopping carts.
type RecipeRelationService struct {
	membership
	recipes RecipeGetter
	images  ImageStorage
}

func NewRecipeRelationService(
	relations RelationRepository,
	recipes RecipeGetter,
	images ImageStorage,
	events EventPublisher,
) *RecipeRelationService {
	return &RecipeRelationService{
		membership: membership{relations: relations, events: events},
		recipes:    recipes,
		images:     images,
	}
}

func (s *RecipeRelationService) recipe(ctx context.Context, recipeID int64) (*models.RecipeDB, error) {
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		logger.Log.Errorw("failed to get recipe", "recipeID", recipeID, "error", err)
		return nil, err
	}
	if recipe == nil {
		return nil, apperror.NotFound("recipe", recipeID)
	}
	return recipe, nil
}

// Add relates userID to the recipe and returns the minified recipe.
func (s *RecipeRelationService) Add(ctx context.Context, rel models.Relation, userID, recipeID int64) (*models.RecipeMinified, error) {
	recipe, err := s.recipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	if err := s.add(ctx, rel, userID, recipeID); err != nil {
		return nil, fmt.Errorf("add %s: %w", rel, err)
	}

	return &models.RecipeMinified{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       s.images.URL(recipe.Image),
		CookingTime: recipe.CookingTime,
	}, nil
}

// Remove drops the relation between userID and the recipe.
func (s *RecipeRelationService) Remove(ctx context.Context, rel models.Relation, userID, recipeID int64) error {
	if _, err := s.recipe(ctx, recipeID); err != nil {
		return err
	}
	if err := s.remove(ctx, rel, userID, recipeID); err != nil {
		return fmt.Errorf("remove %s: %w", rel, err)
	}
	return nil
}
