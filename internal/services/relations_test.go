package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/SidorenkoTatiana/foodgram-st/internal/apperror"
	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
	"github.com/SidorenkoTatiana/foodgram-st/internal/repositories"
)

func TestRecipeRelationService_Add(t *testing.T) {
	ctx := context.Background()
	recipe := &models.RecipeDB{ID: 7, Name: "Soup", Image: "recipes/soup.png", CookingTime: 30}

	tests := []struct {
		name    string
		rel     models.Relation
		setup   func(relations *MockRelationRepository, recipes *MockRecipeGetter, events *MockEventPublisher)
		wantErr error
	}{
		{
			name: "favorite added",
			rel:  models.RelationFavorite,
			setup: func(relations *MockRelationRepository, recipes *MockRecipeGetter, events *MockEventPublisher) {
				recipes.EXPECT().GetByID(ctx, int64(7)).Return(recipe, nil)
				relations.EXPECT().Exists(ctx, models.RelationFavorite, int64(1), int64(7)).Return(false, nil)
				relations.EXPECT().Add(ctx, models.RelationFavorite, int64(1), int64(7)).Return(nil)
				events.EXPECT().Publish(ctx, gomock.Any()).Do(func(_ context.Context, e models.Event) {
					assert.Equal(t, models.EventFavoriteAdded, e.Type)
					assert.Equal(t, int64(1), e.UserID)
					assert.NotEmpty(t, e.EventID)
				})
			},
		},
		{
			name: "favorite twice",
			rel:  models.RelationFavorite,
			setup: func(relations *MockRelationRepository, recipes *MockRecipeGetter, events *MockEventPublisher) {
				recipes.EXPECT().GetByID(ctx, int64(7)).Return(recipe, nil)
				relations.EXPECT().Exists(ctx, models.RelationFavorite, int64(1), int64(7)).Return(true, nil)
			},
			wantErr: apperror.ErrConflict,
		},
		{
			name: "racing insert hits unique constraint",
			rel:  models.RelationShoppingCart,
			setup: func(relations *MockRelationRepository, recipes *MockRecipeGetter, events *MockEventPublisher) {
				recipes.EXPECT().GetByID(ctx, int64(7)).Return(recipe, nil)
				relations.EXPECT().Exists(ctx, models.RelationShoppingCart, int64(1), int64(7)).Return(false, nil)
				relations.EXPECT().Add(ctx, models.RelationShoppingCart, int64(1), int64(7)).
					Return(fmt.Errorf("insert: %w", repositories.ErrUniqueViolation))
			},
			wantErr: apperror.ErrConflict,
		},
		{
			name: "missing recipe",
			rel:  models.RelationShoppingCart,
			setup: func(relations *MockRelationRepository, recipes *MockRecipeGetter, events *MockEventPublisher) {
				recipes.EXPECT().GetByID(ctx, int64(7)).Return(nil, nil)
			},
			wantErr: apperror.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			relations := NewMockRelationRepository(ctrl)
			recipes := NewMockRecipeGetter(ctrl)
			images := NewMockImageStorage(ctrl)
			events := NewMockEventPublisher(ctrl)
			images.EXPECT().URL("recipes/soup.png").Return("/media/recipes/soup.png").AnyTimes()
			tt.setup(relations, recipes, events)

			svc := NewRecipeRelationService(relations, recipes, images, events)
			got, err := svc.Add(ctx, tt.rel, 1, 7)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, &models.RecipeMinified{ID: 7, Name: "Soup", Image: "/media/recipes/soup.png", CookingTime: 30}, got)
		})
	}
}

func TestRecipeRelationService_Remove(t *testing.T) {
	ctx := context.Background()
	recipe := &models.RecipeDB{ID: 7}

	t.Run("removed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		relations := NewMockRelationRepository(ctrl)
		recipes := NewMockRecipeGetter(ctrl)

		recipes.EXPECT().GetByID(ctx, int64(7)).Return(recipe, nil)
		relations.EXPECT().Remove(ctx, models.RelationShoppingCart, int64(1), int64(7)).Return(true, nil)

		// no publisher configured
		svc := NewRecipeRelationService(relations, recipes, NewMockImageStorage(ctrl), nil)
		assert.NoError(t, svc.Remove(ctx, models.RelationShoppingCart, 1, 7))
	})

	t.Run("unfavorite a recipe that is not favorited", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		relations := NewMockRelationRepository(ctrl)
		recipes := NewMockRecipeGetter(ctrl)

		recipes.EXPECT().GetByID(ctx, int64(7)).Return(recipe, nil)
		relations.EXPECT().Remove(ctx, models.RelationFavorite, int64(1), int64(7)).Return(false, nil)

		svc := NewRecipeRelationService(relations, recipes, NewMockImageStorage(ctrl), nil)
		err := svc.Remove(ctx, models.RelationFavorite, 1, 7)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
		assert.Contains(t, err.Error(), "recipe is not in favorites")
	})
}
