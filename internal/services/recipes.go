package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/SidorenkoTatiana/foodgram-st/internal/apperror"
	"github.com/SidorenkoTatiana/foodgram-st/internal/logger"
	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
)

//go:generate mockgen -source=recipes.go -destination=recipes_mock.go -package=services

const (
	MaxRecipeNameLength = 256
	recipeImageFolder   = "recipes"
)

// RecipeRepository persists recipes and their ingredient lines.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.RecipeDB, items []models.IngredientAmount) error
	Update(ctx context.Context, recipe *models.RecipeDB, items []models.IngredientAmount) error
	Delete(ctx context.Context, id int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*models.RecipeDB, error)
	Get(ctx context.Context, viewerID, id int64) (*models.RecipeRow, error)
	List(ctx context.Context, viewerID int64, filter models.RecipeFilter) ([]models.RecipeRow, error)
	Count(ctx context.Context, viewerID int64, filter models.RecipeFilter) (int, error)
	Ingredients(ctx context.Context, recipeIDs []int64) ([]models.RecipeIngredientRow, error)
}

// IngredientChecker tells which ingredient ids exist in the catalog.
type IngredientChecker interface {
	ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error)
}

// RecipeService validates and persists recipes and assembles their
// representation for a given viewer.
type RecipeService struct {
	recipes     RecipeRepository
	ingredients IngredientChecker
	images      ImageStorage
	events      EventPublisher
}

func NewRecipeService(
	recipes RecipeRepository,
	ingredients IngredientChecker,
	images ImageStorage,
	events EventPublisher,
) *RecipeService {
	return &RecipeService{
		recipes:     recipes,
		ingredients: ingredients,
		images:      images,
		events:      events,
	}
}

// ValidateRecipe checks the input rules that need no storage access.
func ValidateRecipe(in models.RecipeInput) error {
	if len(in.Ingredients) == 0 {
		return apperror.ValidationFailed("ingredients", "at least one ingredient is required")
	}

	seen := make(map[int64]struct{}, len(in.Ingredients))
	for _, item := range in.Ingredients {
		if _, dup := seen[item.ID]; dup {
			return apperror.ValidationFailed("ingredients", "ingredients must not repeat")
		}
		seen[item.ID] = struct{}{}

		if item.Amount < 1 {
			return apperror.ValidationFailed("ingredients", "ingredient amount must be at least 1")
		}
	}

	if strings.TrimSpace(in.Image) == "" {
		return apperror.ValidationFailed("image", "image is required")
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return apperror.ValidationFailed("name", "name is required")
	}
	if utf8.RuneCountInString(name) > MaxRecipeNameLength {
		return apperror.ValidationFailed("name", fmt.Sprintf("name must be at most %d characters", MaxRecipeNameLength))
	}
	if strings.TrimSpace(in.Text) == "" {
		return apperror.ValidationFailed("text", "text is required")
	}
	if in.CookingTime < 1 {
		return apperror.ValidationFailed("cooking_time", "cooking time must be at least 1 minute")
	}
	return nil
}

func (s *RecipeService) validate(ctx context.Context, in models.RecipeInput) error {
	if err := ValidateRecipe(in); err != nil {
		return err
	}

	ids := make([]int64, 0, len(in.Ingredients))
	for _, item := range in.Ingredients {
		ids = append(ids, item.ID)
	}
	existing, err := s.ingredients.ExistingIDs(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to check ingredients", "ids", ids, "error", err)
		return err
	}
	for _, id := range ids {
		if !existing[id] {
			return apperror.ValidationFailed("ingredients", fmt.Sprintf("ingredient with id %d does not exist", id))
		}
	}
	return nil
}

// Create validates the input and stores the recipe with its ingredients.
func (s *RecipeService) Create(ctx context.Context, authorID int64, in models.RecipeInput) (*models.Recipe, error) {
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}

	image, err := saveImage(ctx, s.images, recipeImageFolder, "image", in.Image)
	if err != nil {
		return nil, err
	}

	recipe := &models.RecipeDB{
		AuthorID:    authorID,
		Name:        strings.TrimSpace(in.Name),
		Image:       image,
		Text:        in.Text,
		CookingTime: in.CookingTime,
	}
	if err := s.recipes.Create(ctx, recipe, in.Ingredients); err != nil {
		logger.Log.Errorw("failed to create recipe", "authorID", authorID, "error", err)
		discardImage(ctx, s.images, image)
		return nil, err
	}

	created, err := s.Get(ctx, authorID, recipe.ID)
	if err != nil {
		return nil, err
	}

	publish(ctx, s.events, models.EventRecipeCreated, authorID, recipe.ID)
	return created, nil
}

// owned loads the recipe and checks that actorID wrote it.
func (s *RecipeService) owned(ctx context.Context, actorID, recipeID int64) (*models.RecipeDB, error) {
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		logger.Log.Errorw("failed to get recipe", "recipeID", recipeID, "error", err)
		return nil, err
	}
	if recipe == nil {
		return nil, apperror.NotFound("recipe", recipeID)
	}
	if recipe.AuthorID != actorID {
		return nil, apperror.Forbidden("only the author can change a recipe")
	}
	return recipe, nil
}

// Update rewrites the recipe and replaces its whole ingredient list.
func (s *RecipeService) Update(ctx context.Context, actorID, recipeID int64, in models.RecipeInput) (*models.Recipe, error) {
	existing, err := s.owned(ctx, actorID, recipeID)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}

	image, err := saveImage(ctx, s.images, recipeImageFolder, "image", in.Image)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.Name = strings.TrimSpace(in.Name)
	updated.Image = image
	updated.Text = in.Text
	updated.CookingTime = in.CookingTime

	if err := s.recipes.Update(ctx, &updated, in.Ingredients); err != nil {
		logger.Log.Errorw("failed to update recipe", "recipeID", recipeID, "error", err)
		discardImage(ctx, s.images, image)
		return nil, err
	}

	recipe, err := s.Get(ctx, actorID, recipeID)
	if err != nil {
		return nil, err
	}

	retireImage(ctx, s.images, existing.Image)
	publish(ctx, s.events, models.EventRecipeUpdated, actorID, recipeID)
	return recipe, nil
}

// Delete removes the recipe; only its author may do so.
func (s *RecipeService) Delete(ctx context.Context, actorID, recipeID int64) error {
	existing, err := s.owned(ctx, actorID, recipeID)
	if err != nil {
		return err
	}

	deleted, err := s.recipes.Delete(ctx, recipeID)
	if err != nil {
		logger.Log.Errorw("failed to delete recipe", "recipeID", recipeID, "error", err)
		return err
	}
	if !deleted {
		return apperror.NotFound("recipe", recipeID)
	}

	retireImage(ctx, s.images, existing.Image)
	publish(ctx, s.events, models.EventRecipeDeleted, actorID, recipeID)
	return nil
}

// Get returns the full recipe as seen by viewerID (0 for anonymous).
func (s *RecipeService) Get(ctx context.Context, viewerID, recipeID int64) (*models.Recipe, error) {
	row, err := s.recipes.Get(ctx, viewerID, recipeID)
	if err != nil {
		logger.Log.Errorw("failed to get recipe", "recipeID", recipeID, "error", err)
		return nil, err
	}
	if row == nil {
		return nil, apperror.NotFound("recipe", recipeID)
	}

	recipes, err := s.assemble(ctx, []models.RecipeRow{*row})
	if err != nil {
		return nil, err
	}
	return &recipes[0], nil
}

// List returns a page of recipes and the total number matching filter.
// Relation filters only apply to authenticated viewers.
func (s *RecipeService) List(ctx context.Context, viewerID int64, filter models.RecipeFilter) ([]models.Recipe, int, error) {
	if viewerID == 0 {
		filter.IsFavorited = nil
		filter.IsInShoppingCart = nil
	}

	count, err := s.recipes.Count(ctx, viewerID, filter)
	if err != nil {
		logger.Log.Errorw("failed to count recipes", "error", err)
		return nil, 0, err
	}

	rows, err := s.recipes.List(ctx, viewerID, filter)
	if err != nil {
		logger.Log.Errorw("failed to list recipes", "error", err)
		return nil, 0, err
	}

	recipes, err := s.assemble(ctx, rows)
	if err != nil {
		return nil, 0, err
	}
	return recipes, count, nil
}

// assemble attaches ingredient lines and resolves image URLs.
func (s *RecipeService) assemble(ctx context.Context, rows []models.RecipeRow) ([]models.Recipe, error) {
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	lines, err := s.recipes.Ingredients(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to get recipe ingredients", "ids", ids, "error", err)
		return nil, err
	}

	byRecipe := make(map[int64][]models.RecipeIngredient, len(rows))
	for _, line := range lines {
		byRecipe[line.RecipeID] = append(byRecipe[line.RecipeID], models.RecipeIngredient{
			ID:              line.ID,
			Name:            line.Name,
			MeasurementUnit: line.MeasurementUnit,
			Amount:          line.Amount,
		})
	}

	recipes := make([]models.Recipe, 0, len(rows))
	for _, row := range rows {
		ingredients := byRecipe[row.ID]
		if ingredients == nil {
			ingredients = []models.RecipeIngredient{}
		}
		recipes = append(recipes, models.Recipe{
			ID:               row.ID,
			Author:           toUser(row.Author, s.images),
			Ingredients:      ingredients,
			IsFavorited:      row.IsFavorited,
			IsInShoppingCart: row.IsInShoppingCart,
			Name:             row.Name,
			Image:            s.images.URL(row.Image),
			Text:             row.Text,
			CookingTime:      row.CookingTime,
		})
	}
	return recipes, nil
}
