package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/SidorenkoTatiana/foodgram-st/internal/apperror"
	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
	"github.com/SidorenkoTatiana/foodgram-st/internal/repositories"
	"github.com/SidorenkoTatiana/foodgram-st/internal/services"
)

func validRegistration() models.RegisterUser {
	return models.RegisterUser{
		Email:     "alice@example.com",
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Smith",
		Password:  "pass123",
	}
}

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *models.RegisterUser)
		valid  bool
	}{
		{name: "valid", mutate: func(in *models.RegisterUser) {}, valid: true},
		{name: "bad email", mutate: func(in *models.RegisterUser) { in.Email = "alice" }},
		{name: "email with display name", mutate: func(in *models.RegisterUser) { in.Email = "Alice <alice@example.com>" }},
		{name: "username with spaces", mutate: func(in *models.RegisterUser) { in.Username = "al ice" }},
		{name: "username with allowed symbols", mutate: func(in *models.RegisterUser) { in.Username = "a.l@i+c-e_1" }, valid: true},
		{name: "missing first name", mutate: func(in *models.RegisterUser) { in.FirstName = "" }},
		{name: "missing password", mutate: func(in *models.RegisterUser) { in.Password = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRegistration()
			tt.mutate(&in)
			err := services.ValidateRegistration(in)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperror.ErrValidation)
			}
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockAuthUserRepository(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockUsers, mockJWT)

	tests := []struct {
		name      string
		createErr error
		wantErr   error
	}{
		{
			name: "successful registration",
		},
		{
			name:      "user already exists",
			createErr: fmt.Errorf("insert user: %w", repositories.ErrUniqueViolation),
			wantErr:   apperror.ErrConflict,
		},
		{
			name:      "writer error",
			createErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRegistration()
			mockUsers.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, u *models.UserDB) error {
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)))
					u.ID = 42
					return tt.createErr
				})

			user, err := svc.Register(context.Background(), in)
			switch {
			case errors.Is(tt.wantErr, apperror.ErrConflict):
				assert.ErrorIs(t, err, apperror.ErrConflict)
			case tt.wantErr != nil:
				assert.EqualError(t, err, tt.wantErr.Error())
			default:
				assert.NoError(t, err)
				assert.Equal(t, int64(42), user.ID)
				assert.Equal(t, "alice", user.Username)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockAuthUserRepository(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	svc := services.NewAuthService(mockUsers, mockJWT)

	hash, _ := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.MinCost)
	user := &models.UserDB{ID: 42, Email: "alice@example.com", PasswordHash: string(hash)}

	tests := []struct {
		name      string
		password  string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		wantToken string
		wantErr   error
	}{
		{name: "successful login", password: "pass123", user: user, wantToken: "token123"},
		{name: "unknown email", password: "pass123", user: nil, wantErr: apperror.ErrUnauthorized},
		{name: "wrong password", password: "nope", user: user, wantErr: apperror.ErrUnauthorized},
		{name: "reader error", password: "pass123", readerErr: errors.New("db error"), wantErr: errors.New("db error")},
		{name: "jwt error", password: "pass123", user: user, jwtErr: errors.New("jwt error"), wantErr: errors.New("jwt error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.password == "pass123" {
				mockJWT.EXPECT().Generate(gomock.Any(), int64(42)).Return(tt.wantToken, tt.jwtErr)
			}

			token, err := svc.Login(context.Background(), "alice@example.com", tt.password)
			switch {
			case errors.Is(tt.wantErr, apperror.ErrUnauthorized):
				assert.ErrorIs(t, err, apperror.ErrUnauthorized)
			case tt.wantErr != nil:
				assert.EqualError(t, err, tt.wantErr.Error())
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

func TestAuthService_SetPassword(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockAuthUserRepository(ctrl)
	svc := services.NewAuthService(mockUsers, services.NewMockJWTGenerator(ctrl))

	hash, _ := bcrypt.GenerateFromPassword([]byte("old"), bcrypt.MinCost)
	row := &models.UserRow{UserDB: models.UserDB{ID: 42, PasswordHash: string(hash)}}

	mockUsers.EXPECT().GetByID(ctx, int64(42), int64(42)).Return(row, nil)
	err := svc.SetPassword(ctx, 42, "wrong", "new")
	assert.ErrorIs(t, err, apperror.ErrValidation)

	mockUsers.EXPECT().GetByID(ctx, int64(42), int64(42)).Return(row, nil)
	mockUsers.EXPECT().UpdatePassword(ctx, int64(42), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, h string) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(h), []byte("new")))
			return nil
		})
	assert.NoError(t, svc.SetPassword(ctx, 42, "old", "new"))

	err = svc.SetPassword(ctx, 42, "old", "")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}
