package services

import (
	"context"
	"errors"

	"github.com/SidorenkoTatiana/foodgram-st/internal/apperror"
	"github.com/SidorenkoTatiana/foodgram-st/internal/logger"
	"github.com/SidorenkoTatiana/foodgram-st/internal/media"
	"github.com/SidorenkoTatiana/foodgram-st/internal/middlewares"
)

//go:generate mockgen -source=images.go -destination=images_mock.go -package=services

// ImageStorage stores base64 encoded images and resolves their URLs.
type ImageStorage interface {
	Save(ctx context.Context, folder, payload string) (string, error)
	Delete(ctx context.Context, path string) error
	URL(path string) string
}

// saveImage stores payload, reporting undecodable payloads as a validation error on field.
func saveImage(ctx context.Context, images ImageStorage, folder, field, payload string) (string, error) {
	path, err := images.Save(ctx, folder, payload)
	if errors.Is(err, media.ErrInvalidImage) {
		return "", apperror.ValidationFailed(field, field+" must be a base64 encoded image")
	}
	if err != nil {
		logger.Log.Errorw("failed to store image", "folder", folder, "error", err)
		return "", err
	}
	return path, nil
}

// discardImage removes a stored image, logging failures.
func discardImage(ctx context.Context, images ImageStorage, path string) {
	if path == "" {
		return
	}
	if err := images.Delete(ctx, path); err != nil {
		logger.Log.Warnw("failed to delete image", "path", path, "error", err)
	}
}

// retireImage removes an image that the committed state no longer references.
func retireImage(ctx context.Context, images ImageStorage, path string) {
	if path == "" {
		return
	}
	middlewares.AfterCommit(ctx, func(ctx context.Context) {
		discardImage(ctx, images, path)
	})
}
