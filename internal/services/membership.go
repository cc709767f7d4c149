package services

import (
	"context"
	"errors"

	"github.com/SidorenkoTatiana/foodgram-st/internal/apperror"
	"github.com/SidorenkoTatiana/foodgram-st/internal/logger"
	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
	"github.com/SidorenkoTatiana/foodgram-st/internal/repositories"
)

//go:generate mockgen -source=membership.go -destination=membership_mock.go -package=services

// RelationRepository checks and toggles rows of a membership join table.
type RelationRepository interface {
	Exists(ctx context.Context, rel models.Relation, subjectID, objectID int64) (bool, error)
	Add(ctx context.Context, rel models.Relation, subjectID, objectID int64) error
	Remove(ctx context.Context, rel models.Relation, subjectID, objectID int64) (bool, error)
}

var (
	alreadyAddedMessages = map[models.Relation]string{
		models.RelationFavorite:     "recipe is already in favorites",
		models.RelationShoppingCart: "recipe is already in the shopping cart",
		models.RelationSubscription: "already subscribed to this author",
	}
	notFoundMessages = map[models.Relation]string{
		models.RelationFavorite:     "recipe is not in favorites",
		models.RelationShoppingCart: "recipe is not in the shopping cart",
		models.RelationSubscription: "not subscribed to this author",
	}
)

// membership implements the add/remove toggle shared by favorites,
// shopping carts and subscriptions.
type membership struct {
	relations RelationRepository
	events    EventPublisher
}

// add inserts the relation, failing with Conflict when it already exists.
func (m *membership) add(ctx context.Context, rel models.Relation, subjectID, objectID int64) error {
	exists, err := m.relations.Exists(ctx, rel, subjectID, objectID)
	if err != nil {
		logger.Log.Errorw("failed to check relation", "relation", rel, "subject", subjectID, "object", objectID, "error", err)
		return err
	}
	if exists {
		return apperror.Conflict(alreadyAddedMessages[rel])
	}

	if err := m.relations.Add(ctx, rel, subjectID, objectID); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			// lost a race with a concurrent insert
			return apperror.Conflict(alreadyAddedMessages[rel])
		}
		logger.Log.Errorw("failed to add relation", "relation", rel, "subject", subjectID, "object", objectID, "error", err)
		return err
	}

	added, _ := rel.Events()
	publish(ctx, m.events, added, subjectID, objectID)
	return nil
}

// remove deletes the relation, failing with NotFound when it is absent.
func (m *membership) remove(ctx context.Context, rel models.Relation, subjectID, objectID int64) error {
	removed, err := m.relations.Remove(ctx, rel, subjectID, objectID)
	if err != nil {
		logger.Log.Errorw("failed to remove relation", "relation", rel, "subject", subjectID, "object", objectID, "error", err)
		return err
	}
	if !removed {
		return apperror.NotFoundMessage(notFoundMessages[rel])
	}

	_, event := rel.Events()
	publish(ctx, m.events, event, subjectID, objectID)
	return nil
}
