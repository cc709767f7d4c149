package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/SidorenkoTatiana/foodgram-st/internal/logger"
)

// ShortLinkRepository stores recipe short codes in Redis, in both directions.
type ShortLinkRepository struct {
	client *redis.Client
	exp    time.Duration // zero keeps links forever
}

func NewShortLinkRepository(client *redis.Client, expiration time.Duration) *ShortLinkRepository {
	return &ShortLinkRepository{
		client: client,
		exp:    expiration,
	}
}

func recipeKey(recipeID int64) string {
	return fmt.Sprintf("short_link:recipe:%d", recipeID)
}

func codeKey(code string) string {
	return "short_link:code:" + code
}

// Save binds code to recipeID unless the recipe already has a code, and
// returns the code that is bound after the call.
func (r *ShortLinkRepository) Save(ctx context.Context, recipeID int64, code string) (string, error) {
	key := recipeKey(recipeID)

	ok, err := r.client.SetNX(ctx, key, code, r.exp).Result()
	logger.Log.Infow("redis setnx", "key", key, "value", code, "result", ok, "error", err)
	if err != nil {
		return "", err
	}
	if !ok {
		existing, err := r.client.Get(ctx, key).Result()
		if err != nil {
			return "", err
		}
		code = existing
	}

	err = r.client.Set(ctx, codeKey(code), recipeID, r.exp).Err()
	logger.Log.Infow("redis set", "key", codeKey(code), "value", recipeID, "error", err)
	if err != nil {
		return "", err
	}
	return code, nil
}

// CodeFor returns the code of the recipe, or "" when it has none.
func (r *ShortLinkRepository) CodeFor(ctx context.Context, recipeID int64) (string, error) {
	key := recipeKey(recipeID)

	code, err := r.client.Get(ctx, key).Result()
	logger.Log.Infow("redis get", "key", key, "result", code, "error", err)
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return code, err
}

// RecipeFor returns the recipe bound to code, or 0 when the code is unknown.
func (r *ShortLinkRepository) RecipeFor(ctx context.Context, code string) (int64, error) {
	key := codeKey(code)

	val, err := r.client.Get(ctx, key).Result()
	logger.Log.Infow("redis get", "key", key, "result", val, "error", err)
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	recipeID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt short link %q: %w", code, err)
	}
	return recipeID, nil
}
