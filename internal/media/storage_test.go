package media

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// onePixelPNG is a valid 1x1 transparent PNG.
const onePixelPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		ext     string
		wantErr bool
	}{
		{"data uri", "data:image/png;base64," + onePixelPNG, ".png", false},
		{"bare base64", onePixelPNG, ".png", false},
		{"not base64", "data:image/png;base64,@@@", "", true},
		{"missing base64 marker", "data:image/png," + onePixelPNG, "", true},
		{"not an image", base64.StdEncoding.EncodeToString([]byte("plain text")), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, ext, err := Decode(tt.payload)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidImage)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.ext, ext)
			assert.NotEmpty(t, data)
		})
	}
}

func TestLocalStorage_SaveURLDelete(t *testing.T) {
	root := t.TempDir()
	storage := NewLocalStorage(root, "/media")
	ctx := context.Background()

	rel, err := storage.Save(ctx, "recipes", "data:image/png;base64,"+onePixelPNG)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(rel, "recipes/"))
	assert.True(t, strings.HasSuffix(rel, ".png"))

	_, err = os.Stat(filepath.Join(root, rel))
	assert.NoError(t, err)

	assert.Equal(t, "/media/"+rel, storage.URL(rel))
	assert.Equal(t, "", storage.URL(""))

	assert.NoError(t, storage.Delete(ctx, rel))
	_, err = os.Stat(filepath.Join(root, rel))
	assert.True(t, os.IsNotExist(err))

	// deleting twice is fine
	assert.NoError(t, storage.Delete(ctx, rel))
}

func TestLocalStorage_SaveInvalid(t *testing.T) {
	storage := NewLocalStorage(t.TempDir(), "/media/")

	_, err := storage.Save(context.Background(), "users", "not-an-image")
	assert.ErrorIs(t, err, ErrInvalidImage)
}
