package services

import (
	"context"
	"errors"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/SidorenkoTatiana/foodgram-st/internal/apperror"
	"github.com/SidorenkoTatiana/foodgram-st/internal/logger"
	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
	"github.com/SidorenkoTatiana/foodgram-st/internal/repositories"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

const (
	MaxEmailLength = 254
	MaxNameLength  = 150
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// Error variables
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthUserRepository defines the user operations needed for authentication.
type AuthUserRepository interface {
	Create(ctx context.Context, user *models.UserDB) error
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, viewerID, id int64) (*models.UserRow, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// AuthService handles registration, login and password changes.
type AuthService struct {
	users AuthUserRepository
	jwt   JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users AuthUserRepository, jwt JWTGenerator) *AuthService {
	return &AuthService{
		users: users,
		jwt:   jwt,
	}
}

func checkName(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperror.ValidationFailed(field, field+" is required")
	}
	if utf8.RuneCountInString(value) > MaxNameLength {
		return apperror.ValidationFailed(field, field+" is too long")
	}
	return nil
}

// ValidateRegistration checks the sign up fields.
func ValidateRegistration(in models.RegisterUser) error {
	if in.Email == "" {
		return apperror.ValidationFailed("email", "email is required")
	}
	if len(in.Email) > MaxEmailLength {
		return apperror.ValidationFailed("email", "email is too long")
	}
	if addr, err := mail.ParseAddress(in.Email); err != nil || addr.Address != in.Email {
		return apperror.ValidationFailed("email", "enter a valid email address")
	}
	if err := checkName("username", in.Username); err != nil {
		return err
	}
	if !usernamePattern.MatchString(in.Username) {
		return apperror.ValidationFailed("username", "username may contain only letters, digits and @/./+/-/_")
	}
	if err := checkName("first_name", in.FirstName); err != nil {
		return err
	}
	if err := checkName("last_name", in.LastName); err != nil {
		return err
	}
	if in.Password == "" {
		return apperror.ValidationFailed("password", "password is required")
	}
	return nil
}

// Register creates a new user and returns its public profile.
func (svc *AuthService) Register(ctx context.Context, in models.RegisterUser) (*models.User, error) {
	if err := ValidateRegistration(in); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := &models.UserDB{
		Email:        in.Email,
		Username:     in.Username,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: string(hashedPassword),
	}
	if err := svc.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, apperror.Conflict("user with this email or username already exists")
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return &models.User{
		Email:     user.Email,
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

// Login authenticates a user by email and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Infow("user does not exist", "email", email)
		return "", apperror.Unauthorized(ErrInvalidCredentials.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "email", email)
		return "", apperror.Unauthorized(ErrInvalidCredentials.Error())
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// SetPassword replaces the password of userID after checking the current one.
func (svc *AuthService) SetPassword(ctx context.Context, userID int64, current, next string) error {
	if next == "" {
		return apperror.ValidationFailed("new_password", "new_password is required")
	}

	row, err := svc.users.GetByID(ctx, userID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if row == nil {
		return apperror.NotFound("user", userID)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(current)); err != nil {
		return apperror.ValidationFailed("current_password", "current password is incorrect")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.users.UpdatePassword(ctx, userID, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to update password", "err", err)
		return err
	}
	return nil
}
