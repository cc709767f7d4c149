package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/SidorenkoTatiana/foodgram-st/internal/jwt"
	"github.com/SidorenkoTatiana/foodgram-st/internal/logger"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type userIDKey struct{}

// WithUserID stores the authenticated user id in the context.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the authenticated user id, or 0 for anonymous requests.
func UserIDFromContext(ctx context.Context) int64 {
	id, _ := ctx.Value(userIDKey{}).(int64)
	return id
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   "unauthorized",
		"message": "Authentication credentials were not provided or are invalid",
	})
}

func authenticate(tokener Tokener, w http.ResponseWriter, r *http.Request, next http.Handler) {
	ctx := r.Context()

	tokenString, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("authorization failed", "err", err)
		unauthorized(w)
		return
	}

	claims, err := tokener.GetClaims(ctx, tokenString)
	if err != nil {
		logger.Log.Errorw("authorization failed", "err", err)
		unauthorized(w)
		return
	}

	next.ServeHTTP(w, r.WithContext(WithUserID(ctx, claims.UserID)))
}

// AuthMiddleware rejects requests without a valid token and puts the
// caller's user id into the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authenticate(tokener, w, r, next)
		})
	}
}

// OptionalAuthMiddleware lets anonymous requests through. A request that
// does carry credentials must carry valid ones.
func OptionalAuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				next.ServeHTTP(w, r)
				return
			}
			authenticate(tokener, w, r, next)
		})
	}
}
