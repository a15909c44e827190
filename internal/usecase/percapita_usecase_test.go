package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"merenda_escolar/internal/domain/entities"
	mock_interfaces "merenda_escolar/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func testCatalog() entities.FoodCatalog {
	return entities.FoodCatalog{
		"arroz": {
			Name:             "Arroz",
			CorrectionFactor: 1.1,
			CookingFactor:    1.05,
			PerCapita: map[entities.Stage]string{
				entities.StageCreche:      "-",
				entities.StagePre:         "50",
				entities.StageFundamental: "100",
				entities.StageMedio:       "100",
			},
		},
	}
}

func TestCalculatePerCapita(t *testing.T) {
	t.Run("gross and final totals", func(t *testing.T) {
		res, err := CalculatePerCapita("Arroz", entities.StageFundamental, 200, testCatalog())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(res.GrossPerStudent-110) > 1e-9 {
			t.Fatalf("expected gross per student 110, got %v", res.GrossPerStudent)
		}
		if math.Abs(res.GrossTotal-22000) > 1e-9 {
			t.Fatalf("expected gross total 22000, got %v", res.GrossTotal)
		}
		if math.Abs(res.FinalTotal-23100) > 1e-6 {
			t.Fatalf("expected final total 23100, got %v", res.FinalTotal)
		}
		if res.FoodName != "Arroz" || res.Stage != entities.StageFundamental || res.Students != 200 {
			t.Fatalf("unexpected result metadata: %+v", res)
		}
	})

	t.Run("lookup is accent and case insensitive", func(t *testing.T) {
		res, err := CalculatePerCapita("ARROZ", entities.StageMedio, 10, testCatalog())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(res.FinalTotal-1155) > 1e-9 {
			t.Fatalf("expected 1155, got %v", res.FinalTotal)
		}
	})

	t.Run("restricted stage does not become zero", func(t *testing.T) {
		_, err := CalculatePerCapita("Arroz", entities.StageCreche, 200, testCatalog())
		if !errors.Is(err, ErrStageRestricted) {
			t.Fatalf("expected ErrStageRestricted, got %v", err)
		}

		// Same food, unrestricted stage still works.
		res, err := CalculatePerCapita("Arroz", entities.StagePre, 200, testCatalog())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.FinalTotal == 0 {
			t.Fatalf("expected non-zero total, got %+v", res)
		}
	})

	t.Run("all sentinel markers are restrictions", func(t *testing.T) {
		for _, marker := range []string{"-", "x", "*", " x "} {
			catalog := entities.FoodCatalog{
				"arroz": {
					Name:             "Arroz",
					CorrectionFactor: 1,
					CookingFactor:    1,
					PerCapita:        map[entities.Stage]string{entities.StageMedio: marker},
				},
			}
			_, err := CalculatePerCapita("arroz", entities.StageMedio, 1, catalog)
			if !errors.Is(err, ErrStageRestricted) {
				t.Fatalf("marker %q: expected ErrStageRestricted, got %v", marker, err)
			}
		}
	})

	t.Run("unknown food", func(t *testing.T) {
		_, err := CalculatePerCapita("quinoa", entities.StageMedio, 10, testCatalog())
		if !errors.Is(err, ErrFoodNotFound) {
			t.Fatalf("expected ErrFoodNotFound, got %v", err)
		}
	})

	t.Run("missing stage entry", func(t *testing.T) {
		catalog := entities.FoodCatalog{
			"arroz": {Name: "Arroz", CorrectionFactor: 1, CookingFactor: 1, PerCapita: map[entities.Stage]string{}},
		}
		_, err := CalculatePerCapita("arroz", entities.StageMedio, 10, catalog)
		if !errors.Is(err, ErrFoodNotFound) {
			t.Fatalf("expected ErrFoodNotFound, got %v", err)
		}
	})

	t.Run("unparseable per-capita value", func(t *testing.T) {
		catalog := entities.FoodCatalog{
			"arroz": {Name: "Arroz", CorrectionFactor: 1, CookingFactor: 1, PerCapita: map[entities.Stage]string{entities.StageMedio: "cem"}},
		}
		_, err := CalculatePerCapita("arroz", entities.StageMedio, 10, catalog)
		if !errors.Is(err, ErrInvalidPerCapitaValue) {
			t.Fatalf("expected ErrInvalidPerCapitaValue, got %v", err)
		}
	})

	t.Run("negative student count", func(t *testing.T) {
		_, err := CalculatePerCapita("arroz", entities.StageMedio, -1, testCatalog())
		if !errors.Is(err, ErrInvalidStudentCount) {
			t.Fatalf("expected ErrInvalidStudentCount, got %v", err)
		}
	})

	t.Run("zero students yields zero totals", func(t *testing.T) {
		res, err := CalculatePerCapita("arroz", entities.StageMedio, 0, testCatalog())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.GrossTotal != 0 || res.FinalTotal != 0 {
			t.Fatalf("expected zero totals, got %+v", res)
		}
		if math.Abs(res.GrossPerStudent-110) > 1e-9 {
			t.Fatalf("expected per-student value kept, got %v", res.GrossPerStudent)
		}
	})

	t.Run("NaN factor propagates", func(t *testing.T) {
		catalog := entities.FoodCatalog{
			"arroz": {Name: "Arroz", CorrectionFactor: math.NaN(), CookingFactor: 1, PerCapita: map[entities.Stage]string{entities.StageMedio: "100"}},
		}
		res, err := CalculatePerCapita("arroz", entities.StageMedio, 10, catalog)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !math.IsNaN(res.FinalTotal) {
			t.Fatalf("expected NaN total, got %v", res.FinalTotal)
		}
	})
}

func TestPerCapitaUseCase_Calculate(t *testing.T) {
	rawFoods := []entities.RawFood{
		{
			Name:             "Arroz",
			CorrectionFactor: "1.1",
			CookingFactor:    "1.05",
			PerCapita: map[entities.Stage]string{
				entities.StageCreche:      "-",
				entities.StagePre:         "50",
				entities.StageFundamental: "100",
				entities.StageMedio:       "100",
			},
		},
	}

	t.Run("empty food key", func(t *testing.T) {
		uc := NewPerCapitaUseCase(nil)
		_, err := uc.Calculate(context.Background(), "   ", entities.StageMedio, 10)
		if !errors.Is(err, ErrFoodNotFound) {
			t.Fatalf("expected ErrFoodNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFoodRepository(ctrl)
		uc := NewPerCapitaUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.Calculate(context.Background(), "arroz", entities.StageMedio, 10)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("catalog build error surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFoodRepository(ctrl)
		uc := NewPerCapitaUseCase(repo)

		dup := []entities.RawFood{
			{Name: "Feijão", PerCapita: map[entities.Stage]string{}},
			{Name: "feijao", PerCapita: map[entities.Stage]string{}},
		}
		repo.EXPECT().List(gomock.Any()).Return(dup, nil)

		_, err := uc.Calculate(context.Background(), "feijao", entities.StageMedio, 10)
		if !errors.Is(err, ErrDuplicateFoodName) {
			t.Fatalf("expected ErrDuplicateFoodName, got %v", err)
		}
	})

	t.Run("success over stored catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFoodRepository(ctrl)
		uc := NewPerCapitaUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(rawFoods, nil)

		res, err := uc.Calculate(context.Background(), " Arroz ", entities.StageFundamental, 200)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(res.FinalTotal-23100) > 1e-6 {
			t.Fatalf("expected 23100, got %v", res.FinalTotal)
		}
	})
}
