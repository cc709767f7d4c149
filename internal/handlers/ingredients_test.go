package handlers

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/SidorenkoTatiana/foodgram-st/internal/apperror"
	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
)

func TestListIngredientsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSvc := NewMockIngredientReader(ctrl)

	mockSvc.EXPECT().List(gomock.Any(), "сол").Return([]models.Ingredient{{ID: 1, Name: "соль", MeasurementUnit: "г"}}, nil)
	rr := serve(t, http.MethodGet, "/ingredients", "/ingredients?name=%D1%81%D0%BE%D0%BB", NewListIngredientsHandler(mockSvc), nil, 0)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":1,"name":"соль","measurement_unit":"г"}]`, rr.Body.String())

	mockSvc.EXPECT().List(gomock.Any(), "zzz").Return(nil, nil)
	rr = serve(t, http.MethodGet, "/ingredients", "/ingredients?name=zzz", NewListIngredientsHandler(mockSvc), nil, 0)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestGetIngredientHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSvc := NewMockIngredientReader(ctrl)

	mockSvc.EXPECT().Get(gomock.Any(), int64(1)).Return(&models.Ingredient{ID: 1, Name: "соль", MeasurementUnit: "г"}, nil)
	rr := serve(t, http.MethodGet, "/ingredients/{id}", "/ingredients/1", NewGetIngredientHandler(mockSvc), nil, 0)
	assert.Equal(t, http.StatusOK, rr.Code)

	mockSvc.EXPECT().Get(gomock.Any(), int64(2)).Return(nil, apperror.NotFound("ingredient", 2))
	rr = serve(t, http.MethodGet, "/ingredients/{id}", "/ingredients/2", NewGetIngredientHandler(mockSvc), nil, 0)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
