package response

import "merenda_escolar/internal/domain/entities"

type FoodResponse struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Category         string            `json:"category"`
	Unit             string            `json:"unit"`
	CorrectionFactor string            `json:"correction_factor"`
	CookingFactor    string            `json:"cooking_factor"`
	PerCapita        map[string]string `json:"per_capita"`
}

func FromRawFood(f entities.RawFood) FoodResponse {
	perCapita := make(map[string]string, len(f.PerCapita))
	for stage, value := range f.PerCapita {
		perCapita[string(stage)] = value
	}
	return FoodResponse{
		ID:               f.ID,
		Name:             f.Name,
		Category:         f.Category,
		Unit:             string(f.Unit),
		CorrectionFactor: f.CorrectionFactor,
		CookingFactor:    f.CookingFactor,
		PerCapita:        perCapita,
	}
}

func FromRawFoods(foods []entities.RawFood) []FoodResponse {
	out := make([]FoodResponse, 0, len(foods))
	for _, f := range foods {
		out = append(out, FromRawFood(f))
	}
	return out
}
