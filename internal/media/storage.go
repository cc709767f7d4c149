// Package media stores uploaded images on the local filesystem.
package media

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/SidorenkoTatiana/foodgram-st/internal/logger"
)

// ErrInvalidImage is returned when the payload is not a base64 encoded image.
var ErrInvalidImage = errors.New("invalid base64 image")

var extensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
}

// LocalStorage writes images under root and serves them below baseURL.
type LocalStorage struct {
	root    string
	baseURL string
}

func NewLocalStorage(root, baseURL string) *LocalStorage {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &LocalStorage{root: root, baseURL: baseURL}
}

// Decode accepts a data URI ("data:image/png;base64,...") or bare base64
// and returns the image bytes with the file extension of their content type.
func Decode(payload string) ([]byte, string, error) {
	encoded := strings.TrimSpace(payload)
	if strings.HasPrefix(encoded, "data:") {
		comma := strings.IndexByte(encoded, ',')
		if comma < 0 || !strings.HasSuffix(encoded[:comma], ";base64") {
			return nil, "", ErrInvalidImage
		}
		encoded = encoded[comma+1:]
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	ext, ok := extensions[http.DetectContentType(data)]
	if !ok {
		return nil, "", ErrInvalidImage
	}
	return data, ext, nil
}

// Save decodes payload and writes it to folder, returning the stored
// path relative to the media root.
func (s *LocalStorage) Save(ctx context.Context, folder, payload string) (string, error) {
	data, ext, err := Decode(payload)
	if err != nil {
		return "", err
	}

	rel := path.Join(folder, uuid.NewString()+ext)
	full := filepath.Join(s.root, filepath.FromSlash(rel))

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", err
	}

	logger.Log.Infow("image stored", "path", rel, "size", len(data))
	return rel, nil
}

// Delete removes a stored file. Missing files are not an error.
func (s *LocalStorage) Delete(ctx context.Context, rel string) error {
	if rel == "" {
		return nil
	}
	full := filepath.Join(s.root, filepath.FromSlash(path.Clean("/"+rel)))
	if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	logger.Log.Infow("image deleted", "path", rel)
	return nil
}

// URL returns the public address of a stored file.
func (s *LocalStorage) URL(rel string) string {
	if rel == "" {
		return ""
	}
	return s.baseURL + strings.TrimPrefix(rel, "/")
}

// Root is the directory files are stored under.
func (s *LocalStorage) Root() string {
	return s.root
}
