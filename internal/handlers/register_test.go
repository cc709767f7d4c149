package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/SidorenkoTatiana/foodgram-st/internal/apperror"
	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := RegisterRequest{
		Email:     "john@example.com",
		Username:  "john",
		FirstName: "John",
		LastName:  "Doe",
		Password:  "secret",
	}
	in := models.RegisterUser{
		Email:     "john@example.com",
		Username:  "john",
		FirstName: "John",
		LastName:  "Doe",
		Password:  "secret",
	}

	tests := []struct {
		name         string
		body         any
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: req,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), in).
					Return(&models.User{ID: 1, Email: in.Email, Username: in.Username, FirstName: in.FirstName, LastName: in.LastName}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"username":"john"`,
		},
		{
			name: "user already exists",
			body: req,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), in).
					Return(nil, apperror.Conflict("user with this email or username already exists"))
			},
			expectedCode: http.StatusConflict,
			expectedBody: `"error":"conflict"`,
		},
		{
			name: "internal server error",
			body: req,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), in).Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `"error":"internal_error"`,
		},
		{
			name:         "invalid json",
			body:         "{invalid json}",
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `"error":"validation_error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			tt.mockSetup(mockSvc)

			rr := serve(t, http.MethodPost, "/users", "/users", NewRegisterHandler(mockSvc), tt.body, 0)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			assert.NotContains(t, rr.Body.String(), "password")
		})
	}
}
