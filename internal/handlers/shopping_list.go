package handlers

import (
	"context"
	"net/http"

	"github.com/SidorenkoTatiana/foodgram-st/internal/logger"
	"github.com/SidorenkoTatiana/foodgram-st/internal/middlewares"
)

//go:generate mockgen -source=shopping_list.go -destination=shopping_list_mock.go -package=handlers

// ShoppingListDownloader renders the caller's shopping list.
type ShoppingListDownloader interface {
	Download(ctx context.Context, userID int64) (string, error)
}

// NewDownloadShoppingCartHandler returns an HTTP handler serving the
// aggregated shopping list as a text file.
// @Summary Download shopping list
// @Tags recipes
// @Produce plain
// @Success 200 {string} string "Shopping list"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /recipes/download_shopping_cart [get]
// @Security BearerAuth
func NewDownloadShoppingCartHandler(svc ShoppingListDownloader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.Download(r.Context(), middlewares.UserIDFromContext(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="shopping_list.txt"`)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(report)); err != nil {
			logger.Log.Errorw("failed to write shopping list", "error", err)
		}
	}
}
