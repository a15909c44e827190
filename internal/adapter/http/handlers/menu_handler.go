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

var errInvalidMenuPayload = pkg.NewDomainErrorSimple("INVALID_MENU_INPUT", "Invalid menu payload", http.StatusBadRequest)

type MenuHandler struct {
	usecase usecase.IMenuUseCase
}

func NewMenuHandler(uc usecase.IMenuUseCase) *MenuHandler {
	return &MenuHandler{usecase: uc}
}

func (h *MenuHandler) CreateMenu(c *gin.Context) {
	var payload request.MenuRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMenuPayload.HTTPStatus, errInvalidMenuPayload.ToHTTPError())
		return
	}

	menu, err := h.usecase.CreateMenu(c.Request.Context(), payload.ToMenu())
	if err != nil {
		appErr := mapMenuError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMenu(menu))
}

func (h *MenuHandler) ListMenus(c *gin.Context) {
	menus, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapMenuError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMenus(menus))
}

func (h *MenuHandler) GetMenu(c *gin.Context) {
	menu, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapMenuError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMenu(menu))
}

func mapMenuError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMenuName), errors.Is(err, usecase.ErrInvalidMenuID):
		return pkg.NewDomainErrorSimple("INVALID_MENU_INPUT", "Invalid menu payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMenuNotFound):
		return pkg.NewDomainErrorSimple("MENU_NOT_FOUND", "Menu not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
