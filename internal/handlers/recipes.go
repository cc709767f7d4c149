package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/SidorenkoTatiana/foodgram-st/internal/middlewares"
	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
)

//go:generate mockgen -source=recipes.go -destination=recipes_mock.go -package=handlers

// RecipeManager creates, changes and reads recipes.
type RecipeManager interface {
	Create(ctx context.Context, authorID int64, in models.RecipeInput) (*models.Recipe, error)
	Update(ctx context.Context, actorID, recipeID int64, in models.RecipeInput) (*models.Recipe, error)
	Delete(ctx context.Context, actorID, recipeID int64) error
	Get(ctx context.Context, viewerID, recipeID int64) (*models.Recipe, error)
	List(ctx context.Context, viewerID int64, filter models.RecipeFilter) ([]models.Recipe, int, error)
}

// RecipeRequest represents the JSON body for recipe writes
// swagger:model RecipeRequest
type RecipeRequest struct {
	// required: true
	Ingredients []models.IngredientAmount `json:"ingredients"`
	// Base64 encoded image
	// required: true
	Image string `json:"image"`
	// required: true
	// default: Нечто съедобное (это не точно)
	Name string `json:"name"`
	// required: true
	// default: Приготовьте как нибудь эти ингредиеты
	Text string `json:"text"`
	// Cooking time in minutes
	// required: true
	// default: 5
	CookingTime int `json:"cooking_time"`
}

func (req RecipeRequest) input() models.RecipeInput {
	return models.RecipeInput{
		Name:        req.Name,
		Image:       req.Image,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Ingredients: req.Ingredients,
	}
}

// flagFilter reads a 0/1 query flag; any other value disables the filter.
func flagFilter(r *http.Request, name string) *bool {
	var v bool
	switch r.URL.Query().Get(name) {
	case "1":
		v = true
	case "0":
		v = false
	default:
		return nil
	}
	return &v
}

func parseRecipeFilter(r *http.Request, p pagination) models.RecipeFilter {
	filter := models.RecipeFilter{
		IsFavorited:      flagFilter(r, "is_favorited"),
		IsInShoppingCart: flagFilter(r, "is_in_shopping_cart"),
		Limit:            p.limit,
		Offset:           p.offset(),
	}
	if author, err := strconv.ParseInt(r.URL.Query().Get("author"), 10, 64); err == nil {
		filter.AuthorID = &author
	}
	return filter
}

// NewListRecipesHandler returns an HTTP handler listing recipes.
// @Summary List recipes
// @Tags recipes
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param author query int false "Author ID"
// @Param is_favorited query int false "Only favorites (1) or non-favorites (0)"
// @Param is_in_shopping_cart query int false "Only recipes in (1) or out of (0) the shopping cart"
// @Success 200 {object} models.Page[models.Recipe]
// @Router /recipes [get]
func NewListRecipesHandler(svc RecipeManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		p := parsePagination(r)

		recipes, count, err := svc.List(ctx, middlewares.UserIDFromContext(ctx), parseRecipeFilter(r, p))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newPage(r, p, count, recipes))
	}
}

// NewGetRecipeHandler returns an HTTP handler for a single recipe.
// @Summary Get recipe
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} models.Recipe
// @Failure 404 {object} handlers.ErrorResponse "Recipe not found"
// @Router /recipes/{id} [get]
func NewGetRecipeHandler(svc RecipeManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := pathID(r, "recipe")
		if err != nil {
			writeError(w, err)
			return
		}

		recipe, err := svc.Get(ctx, middlewares.UserIDFromContext(ctx), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, recipe)
	}
}

// NewCreateRecipeHandler returns an HTTP handler creating a recipe.
// @Summary Create recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param recipeRequest body handlers.RecipeRequest true "Recipe"
// @Success 201 {object} models.Recipe
// @Failure 400 {object} handlers.ErrorResponse "Validation error"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /recipes [post]
// @Security BearerAuth
func NewCreateRecipeHandler(svc RecipeManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecipeRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}

		recipe, err := svc.Create(r.Context(), middlewares.UserIDFromContext(r.Context()), req.input())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, recipe)
	}
}

// NewUpdateRecipeHandler returns an HTTP handler updating a recipe.
// The ingredient list in the request replaces the stored one.
// @Summary Update recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param recipeRequest body handlers.RecipeRequest true "Recipe"
// @Success 200 {object} models.Recipe
// @Failure 400 {object} handlers.ErrorResponse "Validation error"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not the author"
// @Failure 404 {object} handlers.ErrorResponse "Recipe not found"
// @Router /recipes/{id} [patch]
// @Security BearerAuth
func NewUpdateRecipeHandler(svc RecipeManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "recipe")
		if err != nil {
			writeError(w, err)
			return
		}

		var req RecipeRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}

		recipe, err := svc.Update(r.Context(), middlewares.UserIDFromContext(r.Context()), id, req.input())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, recipe)
	}
}

// NewDeleteRecipeHandler returns an HTTP handler deleting a recipe.
// @Summary Delete recipe
// @Tags recipes
// @Param id path int true "Recipe ID"
// @Success 204
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not the author"
// @Failure 404 {object} handlers.ErrorResponse "Recipe not found"
// @Router /recipes/{id} [delete]
// @Security BearerAuth
func NewDeleteRecipeHandler(svc RecipeManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "recipe")
		if err != nil {
			writeError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), middlewares.UserIDFromContext(r.Context()), id); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
