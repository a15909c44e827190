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

var errInvalidInstitutionPayload = pkg.NewDomainErrorSimple("INVALID_INSTITUTION_INPUT", "Invalid institution payload", http.StatusBadRequest)

type InstitutionHandler struct {
	usecase usecase.IInstitutionUseCase
}

func NewInstitutionHandler(uc usecase.IInstitutionUseCase) *InstitutionHandler {
	return &InstitutionHandler{usecase: uc}
}

func (h *InstitutionHandler) CreateInstitution(c *gin.Context) {
	var payload request.InstitutionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInstitutionPayload.HTTPStatus, errInvalidInstitutionPayload.ToHTTPError())
		return
	}

	institution, err := h.usecase.CreateInstitution(c.Request.Context(), payload.ToInstitution())
	if err != nil {
		appErr := mapInstitutionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInstitution(institution))
}

func (h *InstitutionHandler) ListInstitutions(c *gin.Context) {
	institutions, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapInstitutionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInstitutions(institutions))
}

func (h *InstitutionHandler) GetInstitution(c *gin.Context) {
	institution, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInstitutionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInstitution(institution))
}

func mapInstitutionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInstitutionName),
		errors.Is(err, usecase.ErrInvalidInstitutionID),
		errors.Is(err, usecase.ErrNegativeStudentCount),
		errors.Is(err, usecase.ErrUnknownInstitutionStage):
		return pkg.NewDomainErrorSimple("INVALID_INSTITUTION_INPUT", "Invalid institution payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInstitutionNotFound):
		return pkg.NewDomainErrorSimple("INSTITUTION_NOT_FOUND", "Institution not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
