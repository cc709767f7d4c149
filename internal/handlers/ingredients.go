package handlers

import (
	"context"
	"net/http"

	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
)

//go:generate mockgen -source=ingredients.go -destination=ingredients_mock.go -package=handlers

// IngredientReader reads the ingredient catalog.
type IngredientReader interface {
	List(ctx context.Context, prefix string) ([]models.Ingredient, error)
	Get(ctx context.Context, id int64) (*models.Ingredient, error)
}

// NewListIngredientsHandler returns an HTTP handler listing ingredients.
// @Summary List ingredients
// @Description Ingredients whose name starts with the given prefix, case-insensitive
// @Tags ingredients
// @Produce json
// @Param name query string false "Name prefix"
// @Success 200 {array} models.Ingredient
// @Router /ingredients [get]
func NewListIngredientsHandler(svc IngredientReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ingredients, err := svc.List(r.Context(), r.URL.Query().Get("name"))
		if err != nil {
			writeError(w, err)
			return
		}
		if ingredients == nil {
			ingredients = []models.Ingredient{}
		}

		writeJSON(w, http.StatusOK, ingredients)
	}
}

// NewGetIngredientHandler returns an HTTP handler for a single ingredient.
// @Summary Get ingredient
// @Tags ingredients
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} models.Ingredient
// @Failure 404 {object} handlers.ErrorResponse "Ingredient not found"
// @Router /ingredients/{id} [get]
func NewGetIngredientHandler(svc IngredientReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "ingredient")
		if err != nil {
			writeError(w, err)
			return
		}

		ingredient, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ingredient)
	}
}
