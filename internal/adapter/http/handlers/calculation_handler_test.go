package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"merenda_escolar/internal/adapter/http/handlers/mocks"
	"merenda_escolar/internal/domain/entities"
	"merenda_escolar/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCalculationHandler_CalculatePerCapita(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPerCapitaUseCase(ctrl)
		h := NewCalculationHandler(uc)

		r := gin.New()
		r.POST("/v1/percapita", h.CalculatePerCapita)

		req := httptest.NewRequest(http.MethodPost, "/v1/percapita", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing students field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPerCapitaUseCase(ctrl)
		h := NewCalculationHandler(uc)

		r := gin.New()
		r.POST("/v1/percapita", h.CalculatePerCapita)

		req := httptest.NewRequest(http.MethodPost, "/v1/percapita", bytes.NewBufferString(`{"food":"arroz","stage":"fundamental"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("explicit zero students passes binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPerCapitaUseCase(ctrl)
		h := NewCalculationHandler(uc)

		r := gin.New()
		r.POST("/v1/percapita", h.CalculatePerCapita)

		uc.EXPECT().Calculate(gomock.Any(), "arroz", entities.StageFundamental, 0).Return(entities.CalculationResult{FoodName: "Arroz"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/percapita", bytes.NewBufferString(`{"food":"arroz","stage":"fundamental","students":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPerCapitaUseCase(ctrl)
		h := NewCalculationHandler(uc)

		r := gin.New()
		r.POST("/v1/percapita", h.CalculatePerCapita)

		req := httptest.NewRequest(http.MethodPost, "/v1/percapita", bytes.NewBufferString(`{"food":"arroz","stage":"universitario","students":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("restricted stage maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPerCapitaUseCase(ctrl)
		h := NewCalculationHandler(uc)

		r := gin.New()
		r.POST("/v1/percapita", h.CalculatePerCapita)

		uc.EXPECT().Calculate(gomock.Any(), "arroz", entities.StageCreche, 100).Return(entities.CalculationResult{}, usecase.ErrStageRestricted)

		req := httptest.NewRequest(http.MethodPost, "/v1/percapita", bytes.NewBufferString(`{"food":"arroz","stage":"creche","students":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPerCapitaUseCase(ctrl)
		h := NewCalculationHandler(uc)

		r := gin.New()
		r.POST("/v1/percapita", h.CalculatePerCapita)

		uc.EXPECT().Calculate(gomock.Any(), "arroz", entities.StageFundamental, 200).Return(entities.CalculationResult{
			FoodName:        "Arroz",
			Stage:           entities.StageFundamental,
			Students:        200,
			GrossPerStudent: 110,
			GrossTotal:      22000,
			FinalTotal:      23100,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/percapita", bytes.NewBufferString(`{"food":"arroz","stage":"fundamental","students":200}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["final_total"] != 23100.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestCalculationHandler_ConvertUnit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() *gin.Engine {
		h := NewCalculationHandler(nil)
		r := gin.New()
		r.GET("/v1/units/convert", h.ConvertUnit)
		return r
	}

	t.Run("success", func(t *testing.T) {
		r := newRouter()
		req := httptest.NewRequest(http.MethodGet, "/v1/units/convert?value=2.5&from=kg&to=g", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["result"] != 2500.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("missing params", func(t *testing.T) {
		r := newRouter()
		req := httptest.NewRequest(http.MethodGet, "/v1/units/convert?value=abc&from=kg&to=g", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("incompatible categories", func(t *testing.T) {
		r := newRouter()
		req := httptest.NewRequest(http.MethodGet, "/v1/units/convert?value=1&from=kg&to=l", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestMapCalculationError(t *testing.T) {
	if got := mapCalculationError(usecase.ErrFoodNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapCalculationError(usecase.ErrStageRestricted); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapCalculationError(usecase.ErrInvalidPerCapitaValue); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapCalculationError(usecase.ErrInvalidStudentCount); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCalculationError(usecase.ErrDuplicateFoodName); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapCalculationError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
