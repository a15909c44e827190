package handlers

import (
	"context"
	"errors"
	"net/http"

	request "merenda_escolar/internal/adapter/http/dto/request"
	response "merenda_escolar/internal/adapter/http/dto/response"
	"merenda_escolar/internal/domain/entities"
	"merenda_escolar/internal/usecase"
	"merenda_escolar/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidGuidePayload = pkg.NewDomainErrorSimple("INVALID_GUIDE_INPUT", "Invalid guide payload", http.StatusBadRequest)

// GuideHandler handles supply guide lifecycle requests.

type GuideHandler struct {
	usecase usecase.IGuideUseCase
}

func NewGuideHandler(uc usecase.IGuideUseCase) *GuideHandler {
	return &GuideHandler{usecase: uc}
}

func (h *GuideHandler) CreateGuide(c *gin.Context) {
	var payload request.GuideRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidGuidePayload.HTTPStatus, errInvalidGuidePayload.ToHTTPError())
		return
	}

	start, end, err := payload.ResolvePeriod()
	if err != nil {
		c.JSON(errInvalidGuidePayload.HTTPStatus, errInvalidGuidePayload.ToHTTPError())
		return
	}
	dailyMenus, err := payload.ResolveDailyMenus()
	if err != nil {
		c.JSON(errInvalidGuidePayload.HTTPStatus, errInvalidGuidePayload.ToHTTPError())
		return
	}

	guide, err := h.usecase.CreateGuide(c.Request.Context(), usecase.CreateGuideInput{
		InstitutionID: payload.InstitutionID,
		DateStart:     start,
		DateEnd:       end,
		DailyMenus:    dailyMenus,
		Distribution:  payload.ResolveDistribution(),
		Notes:         payload.Notes,
		GeneratedBy:   payload.GeneratedBy,
	})
	if err != nil {
		appErr := mapGuideError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromGuide(guide))
}

func (h *GuideHandler) ListGuides(c *gin.Context) {
	guides, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapGuideError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGuides(guides))
}

func (h *GuideHandler) GetGuide(c *gin.Context) {
	guide, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapGuideError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGuide(guide))
}

func (h *GuideHandler) FinalizeGuide(c *gin.Context) {
	h.patchGuideStatus(c, h.usecase.FinalizeByID)
}

func (h *GuideHandler) DistributeGuide(c *gin.Context) {
	h.patchGuideStatus(c, h.usecase.DistributeByID)
}

func (h *GuideHandler) patchGuideStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.SupplyGuide, error),
) {
	guide, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapGuideError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGuide(guide))
}

func mapGuideError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidGuideID),
		errors.Is(err, usecase.ErrInvalidGuideInstitution),
		errors.Is(err, usecase.ErrInvalidGuidePeriod),
		errors.Is(err, usecase.ErrGuideMissingMenus),
		errors.Is(err, usecase.ErrInvalidGuideUser):
		return pkg.NewDomainErrorSimple("INVALID_GUIDE_INPUT", "Invalid guide payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInstitutionNotFound):
		return pkg.NewDomainErrorSimple("INSTITUTION_NOT_FOUND", "Institution not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDuplicateSubmission):
		return pkg.NewDomainErrorSimple("DUPLICATE_SUBMISSION", "Duplicate submission, wait a few seconds", http.StatusTooManyRequests)
	case errors.Is(err, usecase.ErrGuidePeriodConflict):
		return pkg.NewDomainErrorSimple("GUIDE_PERIOD_CONFLICT", "A finalized guide already exists for this institution and period", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidGuideTransition):
		return pkg.NewDomainErrorSimple("INVALID_GUIDE_TRANSITION", "Guide status does not allow this transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrGuideNotFound):
		return pkg.NewDomainErrorSimple("GUIDE_NOT_FOUND", "Supply guide not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
