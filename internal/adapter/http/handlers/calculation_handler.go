package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "merenda_escolar/internal/adapter/http/dto/request"
	response "merenda_escolar/internal/adapter/http/dto/response"
	"merenda_escolar/internal/domain/entities"
	"merenda_escolar/internal/usecase"
	"merenda_escolar/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCalculationPayload = pkg.NewDomainErrorSimple("INVALID_CALCULATION_INPUT", "Invalid calculation payload", http.StatusBadRequest)
	errInvalidStage              = pkg.NewDomainErrorSimple("INVALID_STAGE", "Unknown educational stage", http.StatusBadRequest)
	errInvalidConversionInput    = pkg.NewDomainErrorSimple("INVALID_CONVERSION_INPUT", "value, from and to are required", http.StatusBadRequest)
)

// CalculationHandler handles per-capita calculation and unit conversion requests.

type CalculationHandler struct {
	usecase usecase.IPerCapitaUseCase
}

func NewCalculationHandler(uc usecase.IPerCapitaUseCase) *CalculationHandler {
	return &CalculationHandler{usecase: uc}
}

// CalculatePerCapita converts a food's per-capita table entry into purchase
// quantities for the requested stage and student count.
func (h *CalculationHandler) CalculatePerCapita(c *gin.Context) {
	var payload request.PerCapitaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCalculationPayload.HTTPStatus, errInvalidCalculationPayload.ToHTTPError())
		return
	}

	stage, ok := payload.ResolveStage()
	if !ok {
		c.JSON(errInvalidStage.HTTPStatus, errInvalidStage.ToHTTPError())
		return
	}

	result, err := h.usecase.Calculate(c.Request.Context(), payload.ResolveFood(), stage, payload.ResolveStudents())
	if err != nil {
		appErr := mapCalculationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCalculationResult(result))
}

// ConvertUnit converts a quantity between two units of the same category.
// GET /units/convert?value=1.5&from=kg&to=g
func (h *CalculationHandler) ConvertUnit(c *gin.Context) {
	value, err := strconv.ParseFloat(c.Query("value"), 64)
	if err != nil || c.Query("from") == "" || c.Query("to") == "" {
		c.JSON(errInvalidConversionInput.HTTPStatus, errInvalidConversionInput.ToHTTPError())
		return
	}

	from := entities.MeasurementUnit(c.Query("from"))
	to := entities.MeasurementUnit(c.Query("to"))

	result, err := usecase.ConvertUnit(value, from, to)
	if err != nil {
		appErr := mapCalculationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.UnitConversionResponse{
		Value:  value,
		From:   string(from),
		To:     string(to),
		Result: result,
	})
}

func mapCalculationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrFoodNotFound):
		return pkg.NewDomainErrorSimple("FOOD_NOT_FOUND", "Food or stage data not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStageRestricted):
		return pkg.NewDomainErrorSimple("STAGE_RESTRICTED", "Food not usable for this stage (nutritional restriction)", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidPerCapitaValue):
		return pkg.NewDomainErrorSimple("INVALID_PER_CAPITA", "Stored per-capita value is not a number", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidStudentCount):
		return pkg.NewDomainErrorSimple("INVALID_STUDENT_COUNT", "Student count must not be negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedUnit):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_UNIT", "Unknown measurement unit", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIncompatibleCategory):
		return pkg.NewDomainErrorSimple("INCOMPATIBLE_CATEGORY", "Units belong to different categories", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDuplicateFoodName):
		return pkg.NewDomainErrorSimple("DUPLICATE_FOOD_NAME", "Catalog has colliding food names", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
