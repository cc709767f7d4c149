package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/SidorenkoTatiana/foodgram-st/internal/apperror"
	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
)

func validRecipeInput() models.RecipeInput {
	return models.RecipeInput{
		Name:        "Soup",
		Image:       "data:image/png;base64,iVBORw0KGgo=",
		Text:        "Boil everything",
		CookingTime: 30,
		Ingredients: []models.IngredientAmount{{ID: 1, Amount: 10}, {ID: 2, Amount: 5}},
	}
}

func TestValidateRecipe(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(in *models.RecipeInput)
		wantField string
	}{
		{name: "valid", mutate: func(in *models.RecipeInput) {}},
		{
			name:      "empty ingredients",
			mutate:    func(in *models.RecipeInput) { in.Ingredients = nil },
			wantField: "ingredients",
		},
		{
			name: "duplicate ingredient ids",
			mutate: func(in *models.RecipeInput) {
				in.Ingredients = []models.IngredientAmount{{ID: 1, Amount: 1}, {ID: 1, Amount: 2}}
			},
			wantField: "ingredients",
		},
		{
			name:      "zero amount",
			mutate:    func(in *models.RecipeInput) { in.Ingredients[1].Amount = 0 },
			wantField: "ingredients",
		},
		{
			name:      "missing image",
			mutate:    func(in *models.RecipeInput) { in.Image = "" },
			wantField: "image",
		},
		{
			name:      "blank name",
			mutate:    func(in *models.RecipeInput) { in.Name = "   " },
			wantField: "name",
		},
		{
			name:      "name too long",
			mutate:    func(in *models.RecipeInput) { in.Name = strings.Repeat("a", MaxRecipeNameLength+1) },
			wantField: "name",
		},
		{
			name:      "empty text",
			mutate:    func(in *models.RecipeInput) { in.Text = "" },
			wantField: "text",
		},
		{
			name:      "cooking time below one",
			mutate:    func(in *models.RecipeInput) { in.CookingTime = 0 },
			wantField: "cooking_time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRecipeInput()
			tt.mutate(&in)

			err := ValidateRecipe(in)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, apperror.ErrValidation)
			var appErr *apperror.AppError
			if assert.ErrorAs(t, err, &appErr) {
				assert.Equal(t, tt.wantField, appErr.Field)
			}
		})
	}
}

type recipeMocks struct {
	recipes     *MockRecipeRepository
	ingredients *MockIngredientChecker
	images      *MockImageStorage
	events      *MockEventPublisher
}

func newRecipeService(ctrl *gomock.Controller) (*RecipeService, recipeMocks) {
	m := recipeMocks{
		recipes:     NewMockRecipeRepository(ctrl),
		ingredients: NewMockIngredientChecker(ctrl),
		images:      NewMockImageStorage(ctrl),
		events:      NewMockEventPublisher(ctrl),
	}
	m.images.EXPECT().URL(gomock.Any()).DoAndReturn(func(path string) string {
		return "http://localhost/media/" + path
	}).AnyTimes()
	return NewRecipeService(m.recipes, m.ingredients, m.images, m.events), m
}

func recipeRow(id, authorID int64, name string) *models.RecipeRow {
	return &models.RecipeRow{
		RecipeDB: models.RecipeDB{
			ID:          id,
			AuthorID:    authorID,
			Name:        name,
			Image:       "recipes/new.png",
			Text:        "Boil everything",
			CookingTime: 30,
		},
		Author: models.UserRow{UserDB: models.UserDB{ID: authorID, Username: "alice"}},
	}
}

func TestRecipeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newRecipeService(ctrl)
		in := validRecipeInput()

		m.ingredients.EXPECT().ExistingIDs(ctx, []int64{1, 2}).Return(map[int64]bool{1: true, 2: true}, nil)
		m.images.EXPECT().Save(ctx, "recipes", in.Image).Return("recipes/new.png", nil)
		m.recipes.EXPECT().Create(ctx, gomock.Any(), in.Ingredients).
			DoAndReturn(func(_ context.Context, r *models.RecipeDB, _ []models.IngredientAmount) error {
				assert.Equal(t, int64(5), r.AuthorID)
				assert.Equal(t, "recipes/new.png", r.Image)
				r.ID = 7
				return nil
			})
		m.events.EXPECT().Publish(ctx, gomock.Any()).Do(func(_ context.Context, e models.Event) {
			assert.Equal(t, models.EventRecipeCreated, e.Type)
			assert.Equal(t, int64(7), e.ObjectID)
		})
		m.recipes.EXPECT().Get(ctx, int64(5), int64(7)).Return(recipeRow(7, 5, "Soup"), nil)
		m.recipes.EXPECT().Ingredients(ctx, []int64{7}).Return([]models.RecipeIngredientRow{
			{RecipeID: 7, ID: 1, Name: "salt", MeasurementUnit: "g", Amount: 10},
			{RecipeID: 7, ID: 2, Name: "water", MeasurementUnit: "ml", Amount: 5},
		}, nil)

		recipe, err := svc.Create(ctx, 5, in)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), recipe.ID)
		assert.Equal(t, "http://localhost/media/recipes/new.png", recipe.Image)
		assert.Len(t, recipe.Ingredients, 2)
		assert.Equal(t, "alice", recipe.Author.Username)
	})

	t.Run("empty ingredients", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _ := newRecipeService(ctrl)
		in := validRecipeInput()
		in.Ingredients = []models.IngredientAmount{}

		_, err := svc.Create(ctx, 5, in)
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("unknown ingredient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newRecipeService(ctrl)

		m.ingredients.EXPECT().ExistingIDs(ctx, []int64{1, 2}).Return(map[int64]bool{1: true}, nil)

		_, err := svc.Create(ctx, 5, validRecipeInput())
		assert.ErrorIs(t, err, apperror.ErrValidation)
		assert.Contains(t, err.Error(), "ingredient with id 2")
	})

	t.Run("storage failure discards image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newRecipeService(ctrl)
		dbErr := errors.New("db down")

		m.ingredients.EXPECT().ExistingIDs(ctx, gomock.Any()).Return(map[int64]bool{1: true, 2: true}, nil)
		m.images.EXPECT().Save(ctx, "recipes", gomock.Any()).Return("recipes/new.png", nil)
		m.recipes.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(dbErr)
		m.images.EXPECT().Delete(ctx, "recipes/new.png").Return(nil)

		_, err := svc.Create(ctx, 5, validRecipeInput())
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestRecipeService_Update(t *testing.T) {
	ctx := context.Background()
	existing := &models.RecipeDB{ID: 7, AuthorID: 5, Name: "Soup", Image: "recipes/old.png", Text: "old", CookingTime: 10}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newRecipeService(ctrl)

		m.recipes.EXPECT().GetByID(ctx, int64(7)).Return(nil, nil)

		_, err := svc.Update(ctx, 5, 7, validRecipeInput())
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("not the author", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newRecipeService(ctrl)

		m.recipes.EXPECT().GetByID(ctx, int64(7)).Return(existing, nil)

		_, err := svc.Update(ctx, 6, 7, validRecipeInput())
		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("duplicate ingredients", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newRecipeService(ctrl)
		in := validRecipeInput()
		in.Ingredients = []models.IngredientAmount{{ID: 3, Amount: 1}, {ID: 3, Amount: 1}}

		m.recipes.EXPECT().GetByID(ctx, int64(7)).Return(existing, nil)

		_, err := svc.Update(ctx, 5, 7, in)
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("replaces ingredients", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newRecipeService(ctrl)
		in := validRecipeInput()
		in.Ingredients = []models.IngredientAmount{{ID: 9, Amount: 3}}

		m.recipes.EXPECT().GetByID(ctx, int64(7)).Return(existing, nil)
		m.ingredients.EXPECT().ExistingIDs(ctx, []int64{9}).Return(map[int64]bool{9: true}, nil)
		m.images.EXPECT().Save(ctx, "recipes", in.Image).Return("recipes/new.png", nil)
		m.recipes.EXPECT().Update(ctx, gomock.Any(), in.Ingredients).
			DoAndReturn(func(_ context.Context, r *models.RecipeDB, _ []models.IngredientAmount) error {
				assert.Equal(t, int64(7), r.ID)
				assert.Equal(t, "recipes/new.png", r.Image)
				return nil
			})
		m.images.EXPECT().Delete(ctx, "recipes/old.png").Return(nil)
		m.events.EXPECT().Publish(ctx, gomock.Any())
		m.recipes.EXPECT().Get(ctx, int64(5), int64(7)).Return(recipeRow(7, 5, "Soup"), nil)
		m.recipes.EXPECT().Ingredients(ctx, []int64{7}).Return([]models.RecipeIngredientRow{
			{RecipeID: 7, ID: 9, Name: "pepper", MeasurementUnit: "g", Amount: 3},
		}, nil)

		recipe, err := svc.Update(ctx, 5, 7, in)
		assert.NoError(t, err)
		assert.Equal(t, []models.RecipeIngredient{{ID: 9, Name: "pepper", MeasurementUnit: "g", Amount: 3}}, recipe.Ingredients)
	})

	t.Run("failed reload keeps old image and publishes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newRecipeService(ctrl)
		in := validRecipeInput()
		in.Ingredients = []models.IngredientAmount{{ID: 9, Amount: 3}}

		m.recipes.EXPECT().GetByID(ctx, int64(7)).Return(existing, nil)
		m.ingredients.EXPECT().ExistingIDs(ctx, []int64{9}).Return(map[int64]bool{9: true}, nil)
		m.images.EXPECT().Save(ctx, "recipes", in.Image).Return("recipes/new.png", nil)
		m.recipes.EXPECT().Update(ctx, gomock.Any(), in.Ingredients).Return(nil)
		m.recipes.EXPECT().Get(ctx, int64(5), int64(7)).Return(nil, errors.New("connection reset"))
		m.images.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)
		m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Update(ctx, 5, 7, in)
		assert.EqualError(t, err, "connection reset")
	})
}

func TestRecipeService_Delete(t *testing.T) {
	ctx := context.Background()
	existing := &models.RecipeDB{ID: 7, AuthorID: 5, Image: "recipes/old.png"}

	tests := []struct {
		name    string
		actorID int64
		setup   func(m recipeMocks)
		wantErr error
	}{
		{
			name:    "success",
			actorID: 5,
			setup: func(m recipeMocks) {
				m.recipes.EXPECT().GetByID(ctx, int64(7)).Return(existing, nil)
				m.recipes.EXPECT().Delete(ctx, int64(7)).Return(true, nil)
				m.images.EXPECT().Delete(ctx, "recipes/old.png").Return(nil)
				m.events.EXPECT().Publish(ctx, gomock.Any())
			},
		},
		{
			name:    "forbidden",
			actorID: 6,
			setup: func(m recipeMocks) {
				m.recipes.EXPECT().GetByID(ctx, int64(7)).Return(existing, nil)
			},
			wantErr: apperror.ErrForbidden,
		},
		{
			name:    "deleted concurrently",
			actorID: 5,
			setup: func(m recipeMocks) {
				m.recipes.EXPECT().GetByID(ctx, int64(7)).Return(existing, nil)
				m.recipes.EXPECT().Delete(ctx, int64(7)).Return(false, nil)
			},
			wantErr: apperror.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newRecipeService(ctrl)
			tt.setup(m)

			err := svc.Delete(ctx, tt.actorID, 7)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRecipeService_List(t *testing.T) {
	ctx := context.Background()
	yes := true

	t.Run("anonymous viewer ignores relation filters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newRecipeService(ctrl)

		filter := models.RecipeFilter{IsFavorited: &yes, IsInShoppingCart: &yes, Limit: 6}
		want := models.RecipeFilter{Limit: 6}

		m.recipes.EXPECT().Count(ctx, int64(0), want).Return(1, nil)
		m.recipes.EXPECT().List(ctx, int64(0), want).Return([]models.RecipeRow{*recipeRow(7, 5, "Soup")}, nil)
		m.recipes.EXPECT().Ingredients(ctx, []int64{7}).Return(nil, nil)

		recipes, count, err := svc.List(ctx, 0, filter)
		assert.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.False(t, recipes[0].IsFavorited)
		assert.False(t, recipes[0].IsInShoppingCart)
		assert.Equal(t, []models.RecipeIngredient{}, recipes[0].Ingredients)
	})

	t.Run("authenticated viewer keeps filters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newRecipeService(ctrl)

		filter := models.RecipeFilter{IsFavorited: &yes, Limit: 6}
		row := recipeRow(7, 5, "Soup")
		row.IsFavorited = true

		m.recipes.EXPECT().Count(ctx, int64(3), filter).Return(1, nil)
		m.recipes.EXPECT().List(ctx, int64(3), filter).Return([]models.RecipeRow{*row}, nil)
		m.recipes.EXPECT().Ingredients(ctx, []int64{7}).Return(nil, nil)

		recipes, _, err := svc.List(ctx, 3, filter)
		assert.NoError(t, err)
		assert.True(t, recipes[0].IsFavorited)
	})
}
