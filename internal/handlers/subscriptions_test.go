package handlers

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/SidorenkoTatiana/foodgram-st/internal/apperror"
	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
)

func TestSubscribeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockSubscriber)
		expectedCode int
	}{
		{
			name:   "success with recipes limit",
			target: "/users/2/subscribe?recipes_limit=3",
			mockSetup: func(m *MockSubscriber) {
				m.EXPECT().Subscribe(gomock.Any(), int64(1), int64(2), 3).
					Return(&models.Subscription{User: models.User{ID: 2, IsSubscribed: true}}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:   "malformed recipes limit is ignored",
			target: "/users/2/subscribe?recipes_limit=abc",
			mockSetup: func(m *MockSubscriber) {
				m.EXPECT().Subscribe(gomock.Any(), int64(1), int64(2), 0).
					Return(&models.Subscription{User: models.User{ID: 2}}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:   "self subscription",
			target: "/users/1/subscribe",
			mockSetup: func(m *MockSubscriber) {
				m.EXPECT().Subscribe(gomock.Any(), int64(1), int64(1), 0).
					Return(nil, apperror.ValidationFailed("author", "you cannot subscribe to yourself"))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "already subscribed",
			target: "/users/2/subscribe",
			mockSetup: func(m *MockSubscriber) {
				m.EXPECT().Subscribe(gomock.Any(), int64(1), int64(2), 0).
					Return(nil, apperror.Conflict("already subscribed to this author"))
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockSubscriber(ctrl)
			tt.mockSetup(mockSvc)

			rr := serve(t, http.MethodPost, "/users/{id}/subscribe", tt.target, NewSubscribeHandler(mockSvc), nil, 1)
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestUnsubscribeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSvc := NewMockSubscriber(ctrl)

	mockSvc.EXPECT().Unsubscribe(gomock.Any(), int64(1), int64(2)).Return(nil)
	rr := serve(t, http.MethodDelete, "/users/{id}/subscribe", "/users/2/subscribe", NewUnsubscribeHandler(mockSvc), nil, 1)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	mockSvc.EXPECT().Unsubscribe(gomock.Any(), int64(1), int64(3)).
		Return(&apperror.AppError{Err: apperror.ErrNotFound, Message: "not subscribed to this author"})
	rr = serve(t, http.MethodDelete, "/users/{id}/subscribe", "/users/3/subscribe", NewUnsubscribeHandler(mockSvc), nil, 1)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListSubscriptionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSvc := NewMockSubscriber(ctrl)

	mockSvc.EXPECT().Subscriptions(gomock.Any(), int64(1), DefaultPageLimit, 0, 2).Return(nil, 0, nil)
	rr := serve(t, http.MethodGet, "/users/subscriptions", "/users/subscriptions?recipes_limit=2",
		NewListSubscriptionsHandler(mockSvc), nil, 1)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"count":0,"next":null,"previous":null,"results":[]}`, rr.Body.String())
}
