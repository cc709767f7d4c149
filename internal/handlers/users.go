package handlers

import (
	"context"
	"net/http"

	"github.com/SidorenkoTatiana/foodgram-st/internal/middlewares"
	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

// UserReader reads user profiles as seen by a viewer.
type UserReader interface {
	Get(ctx context.Context, viewerID, id int64) (*models.User, error)
	List(ctx context.Context, viewerID int64, limit, offset int) ([]models.User, int, error)
}

// AvatarManager sets and clears user avatars.
type AvatarManager interface {
	SetAvatar(ctx context.Context, userID int64, payload string) (string, error)
	DeleteAvatar(ctx context.Context, userID int64) error
}

// AvatarRequest carries a base64 encoded image.
// swagger:model AvatarRequest
type AvatarRequest struct {
	// required: true
	// default: data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABAgMAAABieywaAAAACVBMVEUAAAD///9fX1/S0ecCAAAACXBIWXMAAA7EAAAOxAGVKw4bAAAACklEQVQImWNoAAAAggCByxOyYQAAAABJRU5ErkJggg==
	Avatar string `json:"avatar"`
}

// AvatarResponse holds the URL of the stored avatar.
// swagger:model AvatarResponse
type AvatarResponse struct {
	Avatar string `json:"avatar"`
}

// NewListUsersHandler returns an HTTP handler listing users.
// @Summary List users
// @Tags users
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} models.Page[models.User]
// @Router /users [get]
func NewListUsersHandler(svc UserReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		p := parsePagination(r)

		users, count, err := svc.List(ctx, middlewares.UserIDFromContext(ctx), p.limit, p.offset())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newPage(r, p, count, users))
	}
}

// NewGetUserHandler returns an HTTP handler for a single profile.
// @Summary Get user profile
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := pathID(r, "user")
		if err != nil {
			writeError(w, err)
			return
		}

		user, err := svc.Get(ctx, middlewares.UserIDFromContext(ctx), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewMeHandler returns an HTTP handler for the caller's own profile.
// @Summary Current user
// @Tags users
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users/me [get]
// @Security BearerAuth
func NewMeHandler(svc UserReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := middlewares.UserIDFromContext(ctx)

		user, err := svc.Get(ctx, userID, userID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewSetAvatarHandler returns an HTTP handler that uploads the caller's avatar.
// @Summary Set avatar
// @Tags users
// @Accept json
// @Produce json
// @Param avatarRequest body handlers.AvatarRequest true "Base64 encoded image"
// @Success 200 {object} handlers.AvatarResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing or invalid image"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users/me/avatar [put]
// @Security BearerAuth
func NewSetAvatarHandler(svc AvatarManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AvatarRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}

		url, err := svc.SetAvatar(r.Context(), middlewares.UserIDFromContext(r.Context()), req.Avatar)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, AvatarResponse{Avatar: url})
	}
}

// NewDeleteAvatarHandler returns an HTTP handler that removes the caller's avatar.
// @Summary Delete avatar
// @Tags users
// @Success 204
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users/me/avatar [delete]
// @Security BearerAuth
func NewDeleteAvatarHandler(svc AvatarManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteAvatar(r.Context(), middlewares.UserIDFromContext(r.Context())); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
