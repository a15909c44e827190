package usecase

import (
	"context"
	"errors"
	"strings"

	"merenda_escolar/internal/domain/entities"
	"merenda_escolar/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidFoodName   = errors.New("food name is required")
	ErrIncompleteStages  = errors.New("per-capita table must carry all four stages")
	ErrFoodAlreadyExists = errors.New("a food with this name already exists")
)

// IFoodUseCase exposes catalog maintenance operations.
//
// Per-capita values stay textual on the record (numbers or the -, x, *
// restriction markers); they are only parsed when a calculation runs.

type IFoodUseCase interface {
	CreateFood(ctx context.Context, f entities.RawFood) (entities.RawFood, error)
	List(ctx context.Context) ([]entities.RawFood, error)
	Catalog(ctx context.Context) (entities.FoodCatalog, error)
}

type FoodUseCase struct {
	repo interfaces.IFoodRepository
}

var _ IFoodUseCase = (*FoodUseCase)(nil)

func NewFoodUseCase(repo interfaces.IFoodRepository) *FoodUseCase {
	return &FoodUseCase{repo: repo}
}

func (u *FoodUseCase) CreateFood(ctx context.Context, f entities.RawFood) (entities.RawFood, error) {
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		return entities.RawFood{}, ErrInvalidFoodName
	}
	for _, stage := range entities.AllStages() {
		if _, ok := f.PerCapita[stage]; !ok {
			return entities.RawFood{}, ErrIncompleteStages
		}
	}
	if f.Unit != "" {
		if _, err := UnitCategoryOf(f.Unit); err != nil {
			return entities.RawFood{}, err
		}
	}

	// Uniqueness is checked on the normalized name, the same key the catalog
	// indexes by, so a later BuildFoodCatalog cannot hit a collision.
	existing, err := u.repo.List(ctx)
	if err != nil {
		return entities.RawFood{}, err
	}
	key := NormalizeFoodName(f.Name)
	for _, e := range existing {
		if NormalizeFoodName(e.Name) == key {
			return entities.RawFood{}, ErrFoodAlreadyExists
		}
	}

	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return u.repo.Create(ctx, f)
}

func (u *FoodUseCase) List(ctx context.Context) ([]entities.RawFood, error) {
	return u.repo.List(ctx)
}

func (u *FoodUseCase) Catalog(ctx context.Context) (entities.FoodCatalog, error) {
	foods, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return BuildFoodCatalog(foods)
}
