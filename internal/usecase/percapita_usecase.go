package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"merenda_escolar/internal/domain/entities"
	"merenda_escolar/internal/usecase/interfaces"
)

var (
	ErrFoodNotFound          = errors.New("food or stage data not found")
	ErrStageRestricted       = errors.New("food restricted for this stage")
	ErrInvalidPerCapitaValue = errors.New("invalid per-capita value")
	ErrInvalidStudentCount   = errors.New("invalid student count")
)

// CalculatePerCapita converts a per-capita table entry into gross purchase
// quantities for studentCount students.
//
// The three factors compose in a fixed order: per-capita × correction factor
// gives the as-purchased weight per student, scaling by the student count gives
// the gross total, and the cooking factor is applied last. All-or-nothing: any
// failure returns a zero result.
//
// A sentinel marker in the stage entry means the food must not be served to
// that stage; it is surfaced as ErrStageRestricted, never as a zero quantity.
func CalculatePerCapita(foodKey string, stage entities.Stage, studentCount int, catalog entities.FoodCatalog) (entities.CalculationResult, error) {
	if studentCount < 0 {
		return entities.CalculationResult{}, ErrInvalidStudentCount
	}

	item, ok := catalog[NormalizeFoodName(foodKey)]
	if !ok {
		return entities.CalculationResult{}, ErrFoodNotFound
	}
	raw, ok := item.PerCapita[stage]
	if !ok || raw == "" {
		return entities.CalculationResult{}, ErrFoodNotFound
	}

	raw = strings.TrimSpace(raw)
	switch raw {
	case entities.PerCapitaNotApplicable, entities.PerCapitaRestricted, entities.PerCapitaConditional:
		return entities.CalculationResult{}, ErrStageRestricted
	}

	perCapita, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return entities.CalculationResult{}, ErrInvalidPerCapitaValue
	}

	grossPerStudent := perCapita * item.CorrectionFactor
	grossTotal := grossPerStudent * float64(studentCount)
	finalTotal := grossTotal * item.CookingFactor

	return entities.CalculationResult{
		FoodName:        item.Name,
		Stage:           stage,
		Students:        studentCount,
		GrossPerStudent: grossPerStudent,
		GrossTotal:      grossTotal,
		FinalTotal:      finalTotal,
	}, nil
}

// IPerCapitaUseCase exposes the per-capita calculation over the stored catalog.

type IPerCapitaUseCase interface {
	Calculate(ctx context.Context, foodKey string, stage entities.Stage, studentCount int) (entities.CalculationResult, error)
}

type PerCapitaUseCase struct {
	foodRepo interfaces.IFoodRepository
}

var _ IPerCapitaUseCase = (*PerCapitaUseCase)(nil)

func NewPerCapitaUseCase(foodRepo interfaces.IFoodRepository) *PerCapitaUseCase {
	return &PerCapitaUseCase{foodRepo: foodRepo}
}

func (u *PerCapitaUseCase) Calculate(ctx context.Context, foodKey string, stage entities.Stage, studentCount int) (entities.CalculationResult, error) {
	foodKey = strings.TrimSpace(foodKey)
	if foodKey == "" {
		return entities.CalculationResult{}, ErrFoodNotFound
	}

	foods, err := u.foodRepo.List(ctx)
	if err != nil {
		return entities.CalculationResult{}, err
	}
	catalog, err := BuildFoodCatalog(foods)
	if err != nil {
		return entities.CalculationResult{}, err
	}
	return CalculatePerCapita(foodKey, stage, studentCount, catalog)
}
