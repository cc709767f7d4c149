package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/SidorenkoTatiana/foodgram-st/internal/middlewares"
	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
)

//go:generate mockgen -source=subscriptions.go -destination=subscriptions_mock.go -package=handlers

// Subscriber manages the caller's subscriptions.
type Subscriber interface {
	Subscribe(ctx context.Context, userID, authorID int64, recipesLimit int) (*models.Subscription, error)
	Unsubscribe(ctx context.Context, userID, authorID int64) error
	Subscriptions(ctx context.Context, userID int64, limit, offset, recipesLimit int) ([]models.Subscription, int, error)
}

// recipesLimit reads recipes_limit; missing or malformed values mean no limit.
func recipesLimit(r *http.Request) int {
	v, err := strconv.Atoi(r.URL.Query().Get("recipes_limit"))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// NewListSubscriptionsHandler returns an HTTP handler listing the authors the caller follows.
// @Summary My subscriptions
// @Tags users
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param recipes_limit query int false "Recipes per author"
// @Success 200 {object} models.Page[models.Subscription]
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users/subscriptions [get]
// @Security BearerAuth
func NewListSubscriptionsHandler(svc Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		p := parsePagination(r)

		subs, count, err := svc.Subscriptions(ctx, middlewares.UserIDFromContext(ctx), p.limit, p.offset(), recipesLimit(r))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newPage(r, p, count, subs))
	}
}

// NewSubscribeHandler returns an HTTP handler subscribing the caller to an author.
// @Summary Subscribe
// @Tags users
// @Produce json
// @Param id path int true "Author ID"
// @Param recipes_limit query int false "Recipes in the response"
// @Success 201 {object} models.Subscription
// @Failure 400 {object} handlers.ErrorResponse "Subscribing to yourself"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Author not found"
// @Failure 409 {object} handlers.ErrorResponse "Already subscribed"
// @Router /users/{id}/subscribe [post]
// @Security BearerAuth
func NewSubscribeHandler(svc Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		authorID, err := pathID(r, "user")
		if err != nil {
			writeError(w, err)
			return
		}

		sub, err := svc.Subscribe(ctx, middlewares.UserIDFromContext(ctx), authorID, recipesLimit(r))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, sub)
	}
}

// NewUnsubscribeHandler returns an HTTP handler removing a subscription.
// @Summary Unsubscribe
// @Tags users
// @Param id path int true "Author ID"
// @Success 204
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not subscribed"
// @Router /users/{id}/subscribe [delete]
// @Security BearerAuth
func NewUnsubscribeHandler(svc Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		authorID, err := pathID(r, "user")
		if err != nil {
			writeError(w, err)
			return
		}

		if err := svc.Unsubscribe(ctx, middlewares.UserIDFromContext(ctx), authorID); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
