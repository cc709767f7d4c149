package services

import (
	"context"
	"strings"

	"github.com/SidorenkoTatiana/foodgram-st/internal/apperror"
	"github.com/SidorenkoTatiana/foodgram-st/internal/logger"
	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=services

const avatarImageFolder = "users"

// UserRepository reads user profiles and updates avatars.
type UserRepository interface {
	GetByID(ctx context.Context, viewerID, id int64) (*models.UserRow, error)
	List(ctx context.Context, viewerID int64, limit, offset int) ([]models.UserRow, error)
	Count(ctx context.Context) (int, error)
	UpdateAvatar(ctx context.Context, id int64, avatar *string) error
}

// toUser converts a stored user into its public profile.
func toUser(row models.UserRow, images ImageStorage) models.User {
	user := models.User{
		Email:        row.Email,
		ID:           row.ID,
		Username:     row.Username,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		IsSubscribed: row.IsSubscribed,
	}
	if row.Avatar != nil && *row.Avatar != "" {
		url := images.URL(*row.Avatar)
		user.Avatar = &url
	}
	return user
}

// UserService serves user profiles and avatars.
type UserService struct {
	users  UserRepository
	images ImageStorage
}

func NewUserService(users UserRepository, images ImageStorage) *UserService {
	return &UserService{users: users, images: images}
}

// Get returns the profile of id as seen by viewerID.
func (s *UserService) Get(ctx context.Context, viewerID, id int64) (*models.User, error) {
	row, err := s.users.GetByID(ctx, viewerID, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", id, "error", err)
		return nil, err
	}
	if row == nil {
		return nil, apperror.NotFound("user", id)
	}

	user := toUser(*row, s.images)
	return &user, nil
}

// List returns a page of profiles and the total number of users.
func (s *UserService) List(ctx context.Context, viewerID int64, limit, offset int) ([]models.User, int, error) {
	count, err := s.users.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count users", "error", err)
		return nil, 0, err
	}

	rows, err := s.users.List(ctx, viewerID, limit, offset)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, 0, err
	}

	users := make([]models.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, toUser(row, s.images))
	}
	return users, count, nil
}

// SetAvatar stores a new avatar for userID and returns its URL.
func (s *UserService) SetAvatar(ctx context.Context, userID int64, payload string) (string, error) {
	if strings.TrimSpace(payload) == "" {
		return "", apperror.ValidationFailed("avatar", "avatar is required")
	}

	current, err := s.users.GetByID(ctx, userID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return "", err
	}
	if current == nil {
		return "", apperror.NotFound("user", userID)
	}

	path, err := saveImage(ctx, s.images, avatarImageFolder, "avatar", payload)
	if err != nil {
		return "", err
	}

	if err := s.users.UpdateAvatar(ctx, userID, &path); err != nil {
		logger.Log.Errorw("failed to update avatar", "userID", userID, "error", err)
		discardImage(ctx, s.images, path)
		return "", err
	}
	if current.Avatar != nil {
		retireImage(ctx, s.images, *current.Avatar)
	}

	return s.images.URL(path), nil
}

// DeleteAvatar clears the avatar of userID.
func (s *UserService) DeleteAvatar(ctx context.Context, userID int64) error {
	current, err := s.users.GetByID(ctx, userID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return err
	}
	if current == nil {
		return apperror.NotFound("user", userID)
	}

	if err := s.users.UpdateAvatar(ctx, userID, nil); err != nil {
		logger.Log.Errorw("failed to clear avatar", "userID", userID, "error", err)
		return err
	}
	if current.Avatar != nil {
		retireImage(ctx, s.images, *current.Avatar)
	}
	return nil
}
