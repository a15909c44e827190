package handlers

import (
	"errors"
	"net/http"

	request "merenda_escolar/internal/adapter/http/dto/request"
	response "merenda_escolar/internal/adapter/http/dto/response"
	"merenda_escolar/internal/usecase"
	"merenda_escolar/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidFoodPayload = pkg.NewDomainErrorSimple("INVALID_FOOD_INPUT", "Invalid food payload", http.StatusBadRequest)

// FoodHandler handles catalog maintenance requests.

type FoodHandler struct {
	usecase usecase.IFoodUseCase
}

func NewFoodHandler(uc usecase.IFoodUseCase) *FoodHandler {
	return &FoodHandler{usecase: uc}
}

func (h *FoodHandler) CreateFood(c *gin.Context) {
	var payload request.FoodRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFoodPayload.HTTPStatus, errInvalidFoodPayload.ToHTTPError())
		return
	}

	food, err := h.usecase.CreateFood(c.Request.Context(), payload.ToRawFood())
	if err != nil {
		appErr := mapFoodError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRawFood(food))
}

func (h *FoodHandler) ListFoods(c *gin.Context) {
	foods, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapFoodError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRawFoods(foods))
}

func mapFoodError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFoodName), errors.Is(err, usecase.ErrIncompleteStages), errors.Is(err, usecase.ErrUnsupportedUnit):
		return pkg.NewDomainErrorSimple("INVALID_FOOD_INPUT", "Invalid food payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFoodAlreadyExists):
		return pkg.NewDomainErrorSimple("FOOD_ALREADY_EXISTS", "A food with this name already exists", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
