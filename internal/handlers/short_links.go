package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=short_links.go -destination=short_links_mock.go -package=handlers

// ShortLinker hands out and resolves recipe short links.
type ShortLinker interface {
	ShortLink(ctx context.Context, recipeID int64) (string, error)
	Resolve(ctx context.Context, code string) (int64, error)
}

// ShortLinkResponse holds a recipe short link.
// swagger:model ShortLinkResponse
type ShortLinkResponse struct {
	// default: http://localhost/s/3d0
	ShortLink string `json:"short-link"`
}

// NewGetLinkHandler returns an HTTP handler that gives the recipe's short link.
// @Summary Recipe short link
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} handlers.ShortLinkResponse
// @Failure 404 {object} handlers.ErrorResponse "Recipe not found"
// @Router /recipes/{id}/get-link [get]
func NewGetLinkHandler(svc ShortLinker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "recipe")
		if err != nil {
			writeError(w, err)
			return
		}

		link, err := svc.ShortLink(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ShortLinkResponse{ShortLink: link})
	}
}

// NewShortLinkRedirectHandler returns an HTTP handler that redirects a short
// code to its recipe page.
func NewShortLinkRedirectHandler(svc ShortLinker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := svc.Resolve(r.Context(), chi.URLParam(r, "code"))
		if err != nil {
			writeError(w, err)
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/recipes/%d", recipeID), http.StatusFound)
	}
}
