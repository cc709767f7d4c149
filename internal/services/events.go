package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/SidorenkoTatiana/foodgram-st/internal/middlewares"
	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

// EventPublisher publishes domain events. Publishing is best effort.
type EventPublisher interface {
	Publish(ctx context.Context, event models.Event)
}

// publish emits an event once the request transaction has committed.
func publish(ctx context.Context, p EventPublisher, eventType string, userID, objectID int64) {
	if p == nil {
		return
	}
	event := models.Event{
		EventID:   uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		ObjectID:  objectID,
		Timestamp: time.Now().Unix(),
	}
	middlewares.AfterCommit(ctx, func(ctx context.Context) {
		p.Publish(ctx, event)
	})
}
