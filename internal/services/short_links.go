package services

import (
	"context"
	"strings"

	"github.com/rs/xid"

	"github.com/SidorenkoTatiana/foodgram-st/internal/apperror"
	"github.com/SidorenkoTatiana/foodgram-st/internal/logger"
)

//go:generate mockgen -source=short_links.go -destination=short_links_mock.go -package=services

// ShortLinkRepository stores recipe short codes.
type ShortLinkRepository interface {
	Save(ctx context.Context, recipeID int64, code string) (string, error)
	CodeFor(ctx context.Context, recipeID int64) (string, error)
	RecipeFor(ctx context.Context, code string) (int64, error)
}

// ShortLinkService hands out short links for recipes.
type ShortLinkService struct {
	links   ShortLinkRepository
	recipes RecipeGetter
	baseURL string
}

func NewShortLinkService(links ShortLinkRepository, recipes RecipeGetter, baseURL string) *ShortLinkService {
	return &ShortLinkService{
		links:   links,
		recipes: recipes,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// ShortLink returns the short URL of the recipe, creating a code on first use.
func (s *ShortLinkService) ShortLink(ctx context.Context, recipeID int64) (string, error) {
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		logger.Log.Errorw("failed to get recipe", "recipeID", recipeID, "error", err)
		return "", err
	}
	if recipe == nil {
		return "", apperror.NotFound("recipe", recipeID)
	}

	code, err := s.links.CodeFor(ctx, recipeID)
	if err != nil {
		logger.Log.Errorw("failed to read short link", "recipeID", recipeID, "error", err)
		return "", err
	}
	if code == "" {
		code, err = s.links.Save(ctx, recipeID, xid.New().String())
		if err != nil {
			logger.Log.Errorw("failed to save short link", "recipeID", recipeID, "error", err)
			return "", err
		}
	}

	return s.baseURL + "/s/" + code, nil
}

// Resolve returns the recipe id bound to code.
func (s *ShortLinkService) Resolve(ctx context.Context, code string) (int64, error) {
	recipeID, err := s.links.RecipeFor(ctx, code)
	if err != nil {
		logger.Log.Errorw("failed to resolve short link", "code", code, "error", err)
		return 0, err
	}
	if recipeID == 0 {
		return 0, apperror.NotFound("short link", code)
	}
	return recipeID, nil
}
