package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"merenda_escolar/internal/domain/entities"
	mock_interfaces "merenda_escolar/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validGuideInput() CreateGuideInput {
	start := day(2026, time.September, 1)
	return CreateGuideInput{
		InstitutionID: "inst-1",
		DateStart:     start,
		DateEnd:       start.AddDate(0, 0, 4),
		DailyMenus: []entities.DailyMenu{
			{Date: start, MenuID: "menu-1"},
			{Date: start.AddDate(0, 0, 1), MenuID: "menu-1"},
		},
		Distribution: []entities.DistributionCalculation{{FoodID: "rice", FoodName: "Arroz", TotalQuantity: 50, Unit: entities.UnitKilogram}},
		GeneratedBy:  "nutricionista",
	}
}

func TestGuideUseCase_CreateGuide(t *testing.T) {
	t.Run("missing institution", func(t *testing.T) {
		uc := NewGuideUseCase(nil, nil, nil)
		in := validGuideInput()
		in.InstitutionID = "  "
		_, err := uc.CreateGuide(context.Background(), in)
		if !errors.Is(err, ErrInvalidGuideInstitution) {
			t.Fatalf("expected ErrInvalidGuideInstitution, got %v", err)
		}
	})

	t.Run("invalid period", func(t *testing.T) {
		uc := NewGuideUseCase(nil, nil, nil)

		in := validGuideInput()
		in.DateEnd = in.DateStart.AddDate(0, 0, -1)
		if _, err := uc.CreateGuide(context.Background(), in); !errors.Is(err, ErrInvalidGuidePeriod) {
			t.Fatalf("expected ErrInvalidGuidePeriod for inverted range, got %v", err)
		}

		in = validGuideInput()
		in.DateStart = time.Time{}
		if _, err := uc.CreateGuide(context.Background(), in); !errors.Is(err, ErrInvalidGuidePeriod) {
			t.Fatalf("expected ErrInvalidGuidePeriod for zero start, got %v", err)
		}
	})

	t.Run("missing daily menus", func(t *testing.T) {
		uc := NewGuideUseCase(nil, nil, nil)

		in := validGuideInput()
		in.DailyMenus = nil
		if _, err := uc.CreateGuide(context.Background(), in); !errors.Is(err, ErrGuideMissingMenus) {
			t.Fatalf("expected ErrGuideMissingMenus, got %v", err)
		}

		in = validGuideInput()
		in.DailyMenus[1].MenuID = " "
		if _, err := uc.CreateGuide(context.Background(), in); !errors.Is(err, ErrGuideMissingMenus) {
			t.Fatalf("expected ErrGuideMissingMenus for blank menu id, got %v", err)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		uc := NewGuideUseCase(nil, nil, nil)
		in := validGuideInput()
		in.GeneratedBy = ""
		if _, err := uc.CreateGuide(context.Background(), in); !errors.Is(err, ErrInvalidGuideUser) {
			t.Fatalf("expected ErrInvalidGuideUser, got %v", err)
		}
	})

	t.Run("duplicate submission rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		deduper := mock_interfaces.NewMockIRequestDeduplicator(ctrl)
		uc := NewGuideUseCase(nil, nil, deduper)

		deduper.EXPECT().Reserve(gomock.Any()).Return(false)

		_, err := uc.CreateGuide(context.Background(), validGuideInput())
		if !errors.Is(err, ErrDuplicateSubmission) {
			t.Fatalf("expected ErrDuplicateSubmission, got %v", err)
		}
	})

	t.Run("unknown institution", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		institutionRepo := mock_interfaces.NewMockIInstitutionRepository(ctrl)
		deduper := mock_interfaces.NewMockIRequestDeduplicator(ctrl)
		uc := NewGuideUseCase(nil, institutionRepo, deduper)

		deduper.EXPECT().Reserve(gomock.Any()).Return(true)
		institutionRepo.EXPECT().GetByID(gomock.Any(), "inst-1").Return(entities.Institution{}, nil)

		_, err := uc.CreateGuide(context.Background(), validGuideInput())
		if !errors.Is(err, ErrInstitutionNotFound) {
			t.Fatalf("expected ErrInstitutionNotFound, got %v", err)
		}
	})

	t.Run("period conflict with finalized guide", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGuideRepository(ctrl)
		institutionRepo := mock_interfaces.NewMockIInstitutionRepository(ctrl)
		deduper := mock_interfaces.NewMockIRequestDeduplicator(ctrl)
		uc := NewGuideUseCase(repo, institutionRepo, deduper)

		in := validGuideInput()
		deduper.EXPECT().Reserve(gomock.Any()).Return(true)
		institutionRepo.EXPECT().GetByID(gomock.Any(), "inst-1").Return(entities.Institution{ID: "inst-1"}, nil)
		repo.EXPECT().List(gomock.Any()).Return([]entities.SupplyGuide{{
			ID:            "existing",
			InstitutionID: "inst-1",
			DateStart:     in.DateStart,
			DateEnd:       in.DateEnd,
			Status:        entities.GuideStatusFinalizado,
		}}, nil)

		_, err := uc.CreateGuide(context.Background(), in)
		if !errors.Is(err, ErrGuidePeriodConflict) {
			t.Fatalf("expected ErrGuidePeriodConflict, got %v", err)
		}
	})

	t.Run("existing draft does not conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGuideRepository(ctrl)
		institutionRepo := mock_interfaces.NewMockIInstitutionRepository(ctrl)
		deduper := mock_interfaces.NewMockIRequestDeduplicator(ctrl)
		uc := NewGuideUseCase(repo, institutionRepo, deduper)

		in := validGuideInput()
		deduper.EXPECT().Reserve(gomock.Any()).Return(true)
		institutionRepo.EXPECT().GetByID(gomock.Any(), "inst-1").Return(entities.Institution{ID: "inst-1"}, nil)
		repo.EXPECT().List(gomock.Any()).Return([]entities.SupplyGuide{{
			ID:            "existing",
			InstitutionID: "inst-1",
			DateStart:     in.DateStart,
			DateEnd:       in.DateEnd,
			Status:        entities.GuideStatusRascunho,
		}}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.SupplyGuide{})).DoAndReturn(
			func(_ context.Context, g entities.SupplyGuide) (entities.SupplyGuide, error) {
				return g, nil
			},
		)

		if _, err := uc.CreateGuide(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("create success starts as draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGuideRepository(ctrl)
		institutionRepo := mock_interfaces.NewMockIInstitutionRepository(ctrl)
		deduper := mock_interfaces.NewMockIRequestDeduplicator(ctrl)
		uc := NewGuideUseCase(repo, institutionRepo, deduper)

		deduper.EXPECT().Reserve(gomock.Any()).Return(true)
		institutionRepo.EXPECT().GetByID(gomock.Any(), "inst-1").Return(entities.Institution{ID: "inst-1"}, nil)
		repo.EXPECT().List(gomock.Any()).Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.SupplyGuide{})).DoAndReturn(
			func(_ context.Context, g entities.SupplyGuide) (entities.SupplyGuide, error) {
				if g.ID == "" || g.Status != entities.GuideStatusRascunho || g.Version != 1 {
					t.Fatalf("unexpected guide: %+v", g)
				}
				if g.GeneratedAt.IsZero() || g.GeneratedBy != "nutricionista" {
					t.Fatalf("expected generation metadata, got %+v", g)
				}
				return g, nil
			},
		)

		res, err := uc.CreateGuide(context.Background(), validGuideInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestGuideUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewGuideUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidGuideID) {
			t.Fatalf("expected ErrInvalidGuideID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGuideRepository(ctrl)
		uc := NewGuideUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "g-1").Return(entities.SupplyGuide{}, nil)

		_, err := uc.GetByID(context.Background(), "g-1")
		if !errors.Is(err, ErrGuideNotFound) {
			t.Fatalf("expected ErrGuideNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGuideRepository(ctrl)
		uc := NewGuideUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "g-1").Return(entities.SupplyGuide{ID: "g-1"}, nil)

		res, err := uc.GetByID(context.Background(), " g-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "g-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestGuideUseCase_StatusTransitions(t *testing.T) {
	cases := []struct {
		name string
		call func(uc *GuideUseCase, ctx context.Context, id string) (entities.SupplyGuide, error)
		from entities.GuideStatus
		to   entities.GuideStatus
	}{
		{name: "finalize", call: (*GuideUseCase).FinalizeByID, from: entities.GuideStatusRascunho, to: entities.GuideStatusFinalizado},
		{name: "distribute", call: (*GuideUseCase).DistributeByID, from: entities.GuideStatusFinalizado, to: entities.GuideStatusDistribuido},
	}

	for _, tc := range cases {
		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIGuideRepository(ctrl)
			uc := NewGuideUseCase(repo, nil, nil)

			repo.EXPECT().GetByID(gomock.Any(), "g-1").Return(entities.SupplyGuide{ID: "g-1", Status: tc.from}, nil)
			repo.EXPECT().UpdateStatusByID(gomock.Any(), "g-1", tc.to).Return(entities.SupplyGuide{ID: "g-1", Status: tc.to}, nil)

			res, err := tc.call(uc, context.Background(), "g-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.to {
				t.Fatalf("expected %s, got %s", tc.to, res.Status)
			}
		})

		t.Run(tc.name+" wrong current status", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIGuideRepository(ctrl)
			uc := NewGuideUseCase(repo, nil, nil)

			repo.EXPECT().GetByID(gomock.Any(), "g-1").Return(entities.SupplyGuide{ID: "g-1", Status: tc.to}, nil)

			_, err := tc.call(uc, context.Background(), "g-1")
			if !errors.Is(err, ErrInvalidGuideTransition) {
				t.Fatalf("expected ErrInvalidGuideTransition, got %v", err)
			}
		})
	}

	t.Run("draft cannot be distributed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGuideRepository(ctrl)
		uc := NewGuideUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "g-1").Return(entities.SupplyGuide{ID: "g-1", Status: entities.GuideStatusRascunho}, nil)

		_, err := uc.DistributeByID(context.Background(), "g-1")
		if !errors.Is(err, ErrInvalidGuideTransition) {
			t.Fatalf("expected ErrInvalidGuideTransition, got %v", err)
		}
	})

	t.Run("update vanishes into not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGuideRepository(ctrl)
		uc := NewGuideUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "g-1").Return(entities.SupplyGuide{ID: "g-1", Status: entities.GuideStatusRascunho}, nil)
		repo.EXPECT().UpdateStatusByID(gomock.Any(), "g-1", entities.GuideStatusFinalizado).Return(entities.SupplyGuide{}, nil)

		_, err := uc.FinalizeByID(context.Background(), "g-1")
		if !errors.Is(err, ErrGuideNotFound) {
			t.Fatalf("expected ErrGuideNotFound, got %v", err)
		}
	})
}
