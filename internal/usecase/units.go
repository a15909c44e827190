package usecase

import (
	"errors"

	"merenda_escolar/internal/domain/entities"
)

var (
	ErrUnsupportedUnit      = errors.New("unsupported measurement unit")
	ErrIncompatibleCategory = errors.New("units belong to different categories")
)

// UnitCategory partitions measurement units by physical quantity.
type UnitCategory string

const (
	CategoryMass   UnitCategory = "mass"
	CategoryVolume UnitCategory = "volume"
)

// unitFactors expresses every unit in its category base: grams for mass,
// milliliters for volume. Factors are exact constants.
var unitFactors = map[entities.MeasurementUnit]float64{
	entities.UnitMilligram:  0.001,
	entities.UnitGram:       1,
	entities.UnitKilogram:   1000,
	entities.UnitTon:        1_000_000,

	entities.UnitMilliliter: 1,
	entities.UnitLiter:      1000,
	entities.UnitCubicMeter: 1_000_000,
}

var unitCategories = map[entities.MeasurementUnit]UnitCategory{
	entities.UnitMilligram:  CategoryMass,
	entities.UnitGram:       CategoryMass,
	entities.UnitKilogram:   CategoryMass,
	entities.UnitTon:        CategoryMass,
	entities.UnitMilliliter: CategoryVolume,
	entities.UnitLiter:      CategoryVolume,
	entities.UnitCubicMeter: CategoryVolume,
}

// UnitCategoryOf classifies a unit, rejecting anything outside the fixed table.
func UnitCategoryOf(unit entities.MeasurementUnit) (UnitCategory, error) {
	cat, ok := unitCategories[unit]
	if !ok {
		return "", ErrUnsupportedUnit
	}
	return cat, nil
}

// ConvertUnit converts value between two units of the same category.
//
// No mass<->volume conversion exists (that would need a density), and no
// rounding is applied here; display rounding belongs to the caller.
func ConvertUnit(value float64, from, to entities.MeasurementUnit) (float64, error) {
	fromCat, err := UnitCategoryOf(from)
	if err != nil {
		return 0, err
	}
	toCat, err := UnitCategoryOf(to)
	if err != nil {
		return 0, err
	}
	if fromCat != toCat {
		return 0, ErrIncompatibleCategory
	}
	return value * unitFactors[from] / unitFactors[to], nil
}
