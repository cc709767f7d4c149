package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/SidorenkoTatiana/foodgram-st/internal/logger"
	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
)

//go:generate mockgen -source=shopping_list.go -destination=shopping_list_mock.go -package=services

const shoppingListTimeLayout = "2006-01-02 15:04:05"

// ShoppingListRepository reads the contents of a user's cart.
type ShoppingListRepository interface {
	Rows(ctx context.Context, userID int64) ([]models.ShoppingListRow, error)
	Recipes(ctx context.Context, userID int64) ([]models.ShoppingListRecipe, error)
}

// ShoppingListService aggregates a user's cart into a shopping list.
type ShoppingListService struct {
	repo ShoppingListRepository
	now  func() time.Time
}

// NewShoppingListService creates a ShoppingListService. A nil clock uses time.Now.
func NewShoppingListService(repo ShoppingListRepository, now func() time.Time) *ShoppingListService {
	if now == nil {
		now = time.Now
	}
	return &ShoppingListService{repo: repo, now: now}
}

// Build aggregates the cart of userID.
func (s *ShoppingListService) Build(ctx context.Context, userID int64) (*models.ShoppingList, error) {
	rows, err := s.repo.Rows(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to read shopping cart rows", "userID", userID, "error", err)
		return nil, err
	}
	recipes, err := s.repo.Recipes(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to read shopping cart recipes", "userID", userID, "error", err)
		return nil, err
	}

	return &models.ShoppingList{
		GeneratedAt: s.now().UTC(),
		Products:    AggregateProducts(rows),
		Recipes:     distinctRecipes(recipes),
	}, nil
}

// Download renders the shopping list of userID as plain text.
func (s *ShoppingListService) Download(ctx context.Context, userID int64) (string, error) {
	list, err := s.Build(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("build shopping list: %w", err)
	}
	return RenderShoppingList(*list), nil
}

// AggregateProducts sums amounts per ingredient name in first-seen order.
// The unit of a line is the last unit seen for that name.
func AggregateProducts(rows []models.ShoppingListRow) []models.ShoppingListProduct {
	products := []models.ShoppingListProduct{}
	index := make(map[string]int)

	for _, row := range rows {
		i, ok := index[row.Name]
		if !ok {
			index[row.Name] = len(products)
			products = append(products, models.ShoppingListProduct{
				Name:   row.Name,
				Amount: row.Amount,
				Unit:   row.MeasurementUnit,
			})
			continue
		}
		products[i].Amount += row.Amount
		products[i].Unit = row.MeasurementUnit
	}
	return products
}

func distinctRecipes(recipes []models.ShoppingListRecipe) []models.ShoppingListRecipe {
	seen := make(map[models.ShoppingListRecipe]bool, len(recipes))
	out := make([]models.ShoppingListRecipe, 0, len(recipes))
	for _, r := range recipes {
		if seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// RenderShoppingList formats a shopping list as the downloadable text report.
func RenderShoppingList(list models.ShoppingList) string {
	lines := make([]string, 0, len(list.Products)+len(list.Recipes)+3)
	lines = append(lines, fmt.Sprintf("Shopping list for %s:", list.GeneratedAt.Format(shoppingListTimeLayout)))

	lines = append(lines, "Products:")
	for _, p := range list.Products {
		lines = append(lines, fmt.Sprintf("%s - %d (%s)", capitalize(p.Name), p.Amount, p.Unit))
	}

	lines = append(lines, "Recipes:")
	for _, r := range list.Recipes {
		lines = append(lines, fmt.Sprintf("%s by %s", r.Name, r.Author))
	}

	return strings.Join(lines, "\n")
}
