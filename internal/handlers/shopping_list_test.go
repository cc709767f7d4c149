package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestDownloadShoppingCartHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSvc := NewMockShoppingListDownloader(ctrl)

	report := "Shopping list for 2026-10-19 12:00:00:\nProducts:\nSalt - 15 (g)\nRecipes:\nSoup by alice"
	mockSvc.EXPECT().Download(gomock.Any(), int64(1)).Return(report, nil)

	rr := serve(t, http.MethodGet, "/recipes/download_shopping_cart", "/recipes/download_shopping_cart",
		NewDownloadShoppingCartHandler(mockSvc), nil, 1)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="shopping_list.txt"`, rr.Header().Get("Content-Disposition"))
	assert.Equal(t, report, rr.Body.String())

	mockSvc.EXPECT().Download(gomock.Any(), int64(1)).Return("", errors.New("db down"))
	rr = serve(t, http.MethodGet, "/recipes/download_shopping_cart", "/recipes/download_shopping_cart",
		NewDownloadShoppingCartHandler(mockSvc), nil, 1)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
