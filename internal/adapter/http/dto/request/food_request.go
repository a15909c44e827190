package request

import (
	"strings"

	"merenda_escolar/internal/domain/entities"
)

// FoodRequest carries a raw catalog record. Correction/cooking factors and the
// per-capita table stay textual; the service parses them at calculation time.
type FoodRequest struct {
	Name             string            `json:"name" binding:"required"`
	Category         string            `json:"category"`
	Unit             string            `json:"unit"`
	CorrectionFactor string            `json:"correction_factor" binding:"required"`
	CookingFactor    string            `json:"cooking_factor" binding:"required"`
	PerCapita        map[string]string `json:"per_capita" binding:"required"`
}

func (r FoodRequest) ToRawFood() entities.RawFood {
	perCapita := make(map[entities.Stage]string, len(r.PerCapita))
	for stage, value := range r.PerCapita {
		perCapita[entities.Stage(stage)] = value
	}
	return entities.RawFood{
		Name:             strings.TrimSpace(r.Name),
		Category:         strings.TrimSpace(r.Category),
		Unit:             entities.MeasurementUnit(r.Unit),
		CorrectionFactor: r.CorrectionFactor,
		CookingFactor:    r.CookingFactor,
		PerCapita:        perCapita,
	}
}
