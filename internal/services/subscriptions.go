package services

import (
	"context"
	"fmt"

	"github.com/SidorenkoTatiana/foodgram-st/internal/apperror"
	"github.com/SidorenkoTatiana/foodgram-st/internal/logger"
	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
)

//go:generate mockgen -source=subscriptions.go -destination=subscriptions_mock.go -package=services

// SubscriptionUserRepository reads authors and the subscriptions of a user.
type SubscriptionUserRepository interface {
	GetByID(ctx context.Context, viewerID, id int64) (*models.UserRow, error)
	ListSubscriptions(ctx context.Context, userID int64, limit, offset int) ([]models.UserRow, error)
	CountSubscriptions(ctx context.Context, userID int64) (int, error)
}

// AuthorRecipeRepository reads the recipes of an author.
type AuthorRecipeRepository interface {
	ListByAuthor(ctx context.Context, authorID int64, limit int) ([]models.RecipeDB, error)
	CountByAuthor(ctx context.Context, authorID int64) (int, error)
}

// SubscriptionService manages who follows which author.
type SubscriptionService struct {
	membership
	users   SubscriptionUserRepository
	recipes AuthorRecipeRepository
	images  ImageStorage
}

func NewSubscriptionService(
	relations RelationRepository,
	users SubscriptionUserRepository,
	recipes AuthorRecipeRepository,
	images ImageStorage,
	events EventPublisher,
) *SubscriptionService {
	return &SubscriptionService{
		membership: membership{relations: relations, events: events},
		users:      users,
		recipes:    recipes,
		images:     images,
	}
}

func (s *SubscriptionService) author(ctx context.Context, userID, authorID int64) (*models.UserRow, error) {
	author, err := s.users.GetByID(ctx, userID, authorID)
	if err != nil {
		logger.Log.Errorw("failed to get author", "authorID", authorID, "error", err)
		return nil, err
	}
	if author == nil {
		return nil, apperror.NotFound("user", authorID)
	}
	return author, nil
}

// Subscribe makes userID follow authorID. Following oneself is rejected.
// recipesLimit caps the recipe preview; <= 0 means all recipes.
func (s *SubscriptionService) Subscribe(ctx context.Context, userID, authorID int64, recipesLimit int) (*models.Subscription, error) {
	author, err := s.author(ctx, userID, authorID)
	if err != nil {
		return nil, err
	}
	if userID == authorID {
		return nil, apperror.ValidationFailed("author", "you cannot subscribe to yourself")
	}

	if err := s.add(ctx, models.RelationSubscription, userID, authorID); err != nil {
		return nil, fmt.Errorf("subscribe: %w", err)
	}

	author.IsSubscribed = true
	return s.subscription(ctx, *author, recipesLimit)
}

// Unsubscribe stops userID from following authorID.
func (s *SubscriptionService) Unsubscribe(ctx context.Context, userID, authorID int64) error {
	if _, err := s.author(ctx, userID, authorID); err != nil {
		return err
	}
	if err := s.remove(ctx, models.RelationSubscription, userID, authorID); err != nil {
		return fmt.Errorf("unsubscribe: %w", err)
	}
	return nil
}

// Subscriptions returns a page of authors userID follows and their total number.
func (s *SubscriptionService) Subscriptions(ctx context.Context, userID int64, limit, offset, recipesLimit int) ([]models.Subscription, int, error) {
	count, err := s.users.CountSubscriptions(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count subscriptions", "userID", userID, "error", err)
		return nil, 0, err
	}

	authors, err := s.users.ListSubscriptions(ctx, userID, limit, offset)
	if err != nil {
		logger.Log.Errorw("failed to list subscriptions", "userID", userID, "error", err)
		return nil, 0, err
	}

	subscriptions := make([]models.Subscription, 0, len(authors))
	for _, author := range authors {
		sub, err := s.subscription(ctx, author, recipesLimit)
		if err != nil {
			return nil, 0, err
		}
		subscriptions = append(subscriptions, *sub)
	}
	return subscriptions, count, nil
}

func (s *SubscriptionService) subscription(ctx context.Context, author models.UserRow, recipesLimit int) (*models.Subscription, error) {
	recipes, err := s.recipes.ListByAuthor(ctx, author.ID, recipesLimit)
	if err != nil {
		logger.Log.Errorw("failed to list author recipes", "authorID", author.ID, "error", err)
		return nil, err
	}
	count, err := s.recipes.CountByAuthor(ctx, author.ID)
	if err != nil {
		logger.Log.Errorw("failed to count author recipes", "authorID", author.ID, "error", err)
		return nil, err
	}

	minified := make([]models.RecipeMinified, 0, len(recipes))
	for _, recipe := range recipes {
		minified = append(minified, models.RecipeMinified{
			ID:          recipe.ID,
			Name:        recipe.Name,
			Image:       s.images.URL(recipe.Image),
			CookingTime: recipe.CookingTime,
		})
	}

	return &models.Subscription{
		User:         toUser(author, s.images),
		Recipes:      minified,
		RecipesCount: count,
	}, nil
}
