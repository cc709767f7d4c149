package handlers

import (
	"context"
	"net/http"

	"github.com/SidorenkoTatiana/foodgram-st/internal/middlewares"
	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
)

//go:generate mockgen -source=recipe_relations.go -destination=recipe_relations_mock.go -package=handlers

// RecipeRelator puts recipes into and out of favorites and shopping carts.
type RecipeRelator interface {
	Add(ctx context.Context, rel models.Relation, userID, recipeID int64) (*models.RecipeMinified, error)
	Remove(ctx context.Context, rel models.Relation, userID, recipeID int64) error
}

// NewAddRecipeRelationHandler returns an HTTP handler adding the recipe to
// the caller's favorites or shopping cart, depending on rel.
// @Summary Add to favorites / shopping cart
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 201 {object} models.RecipeMinified
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Recipe not found"
// @Failure 409 {object} handlers.ErrorResponse "Already added"
// @Router /recipes/{id}/favorite [post]
// @Router /recipes/{id}/shopping_cart [post]
// @Security BearerAuth
func NewAddRecipeRelationHandler(svc RecipeRelator, rel models.Relation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "recipe")
		if err != nil {
			writeError(w, err)
			return
		}

		recipe, err := svc.Add(r.Context(), rel, middlewares.UserIDFromContext(r.Context()), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, recipe)
	}
}

// NewRemoveRecipeRelationHandler returns an HTTP handler removing the recipe
// from the caller's favorites or shopping cart, depending on rel.
// @Summary Remove from favorites / shopping cart
// @Tags recipes
// @Param id path int true "Recipe ID"
// @Success 204
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Recipe not found or not added"
// @Router /recipes/{id}/favorite [delete]
// @Router /recipes/{id}/shopping_cart [delete]
// @Security BearerAuth
func NewRemoveRecipeRelationHandler(svc RecipeRelator, rel models.Relation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "recipe")
		if err != nil {
			writeError(w, err)
			return
		}

		if err := svc.Remove(r.Context(), rel, middlewares.UserIDFromContext(r.Context()), id); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
