package handlers

import (
	"context"
	"net/http"

	"github.com/SidorenkoTatiana/foodgram-st/internal/middlewares"
)

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// PasswordSetter changes the password of a user.
type PasswordSetter interface {
	SetPassword(ctx context.Context, userID int64, current, next string) error
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: vpupkin@yandex.ru
	Email string `json:"email"`

	// Password
	// required: true
	// default: Qwerty123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT token
	// default: JWT_TOKEN
	AuthToken string `json:"auth_token"`
}

// SetPasswordRequest represents the JSON body for a password change
// swagger:model SetPasswordRequest
type SetPasswordRequest struct {
	// required: true
	NewPassword string `json:"new_password"`
	// required: true
	CurrentPassword string `json:"current_password"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user by email and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "JWT token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email or password"
// @Router /auth/token/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}

		token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{AuthToken: token})
	}
}

// NewLogoutHandler returns an HTTP handler for logging out. Tokens are
// stateless, so the client simply drops its token.
// @Summary User logout
// @Tags auth
// @Success 204
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /auth/token/logout [post]
// @Security BearerAuth
func NewLogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewSetPasswordHandler returns an HTTP handler that changes the caller's password.
// @Summary Change password
// @Tags users
// @Accept json
// @Param setPasswordRequest body handlers.SetPasswordRequest true "Current and new password"
// @Success 204
// @Failure 400 {object} handlers.ErrorResponse "Current password is incorrect"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users/set_password [post]
// @Security BearerAuth
func NewSetPasswordHandler(svc PasswordSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetPasswordRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}

		userID := middlewares.UserIDFromContext(r.Context())
		if err := svc.SetPassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
