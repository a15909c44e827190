package usecase

import (
	"errors"
	"math"
	"testing"

	"merenda_escolar/internal/domain/entities"
)

func TestConvertUnit(t *testing.T) {
	t.Run("mass conversions", func(t *testing.T) {
		cases := []struct {
			name     string
			value    float64
			from, to entities.MeasurementUnit
			want     float64
		}{
			{name: "kg to g", value: 2.5, from: entities.UnitKilogram, to: entities.UnitGram, want: 2500},
			{name: "g to kg", value: 500, from: entities.UnitGram, to: entities.UnitKilogram, want: 0.5},
			{name: "mg to g", value: 1500, from: entities.UnitMilligram, to: entities.UnitGram, want: 1.5},
			{name: "ton to kg", value: 0.25, from: entities.UnitTon, to: entities.UnitKilogram, want: 250},
			{name: "same unit", value: 42, from: entities.UnitGram, to: entities.UnitGram, want: 42},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got, err := ConvertUnit(tc.value, tc.from, tc.to)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if math.Abs(got-tc.want) > 1e-9 {
					t.Fatalf("expected %v, got %v", tc.want, got)
				}
			})
		}
	})

	t.Run("volume conversions", func(t *testing.T) {
		got, err := ConvertUnit(3, entities.UnitLiter, entities.UnitMilliliter)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 3000 {
			t.Fatalf("expected 3000, got %v", got)
		}

		got, err = ConvertUnit(500, entities.UnitMilliliter, entities.UnitCubicMeter)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(got-0.0005) > 1e-12 {
			t.Fatalf("expected 0.0005, got %v", got)
		}
	})

	t.Run("round trip preserves value", func(t *testing.T) {
		inKg, err := ConvertUnit(1234.5, entities.UnitGram, entities.UnitKilogram)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		back, err := ConvertUnit(inKg, entities.UnitKilogram, entities.UnitGram)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(back-1234.5) > 1e-9 {
			t.Fatalf("expected 1234.5 after round trip, got %v", back)
		}
	})

	t.Run("mass to volume is rejected", func(t *testing.T) {
		_, err := ConvertUnit(1, entities.UnitKilogram, entities.UnitLiter)
		if !errors.Is(err, ErrIncompatibleCategory) {
			t.Fatalf("expected ErrIncompatibleCategory, got %v", err)
		}
	})

	t.Run("unknown unit is rejected", func(t *testing.T) {
		_, err := ConvertUnit(1, "lb", entities.UnitGram)
		if !errors.Is(err, ErrUnsupportedUnit) {
			t.Fatalf("expected ErrUnsupportedUnit, got %v", err)
		}

		_, err = ConvertUnit(1, entities.UnitGram, "oz")
		if !errors.Is(err, ErrUnsupportedUnit) {
			t.Fatalf("expected ErrUnsupportedUnit, got %v", err)
		}
	})
}

func TestUnitCategoryOf(t *testing.T) {
	t.Run("known units", func(t *testing.T) {
		cat, err := UnitCategoryOf(entities.UnitTon)
		if err != nil || cat != CategoryMass {
			t.Fatalf("expected mass, got %v %v", cat, err)
		}
		cat, err = UnitCategoryOf(entities.UnitCubicMeter)
		if err != nil || cat != CategoryVolume {
			t.Fatalf("expected volume, got %v %v", cat, err)
		}
	})

	t.Run("unknown unit", func(t *testing.T) {
		_, err := UnitCategoryOf("cup")
		if !errors.Is(err, ErrUnsupportedUnit) {
			t.Fatalf("expected ErrUnsupportedUnit, got %v", err)
		}
	})
}
