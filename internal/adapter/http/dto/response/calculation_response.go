package response

import "merenda_escolar/internal/domain/entities"

type CalculationResponse struct {
	FoodName        string  `json:"food_name"`
	Stage           string  `json:"stage"`
	Students        int     `json:"students"`
	GrossPerStudent float64 `json:"gross_per_student"`
	GrossTotal      float64 `json:"gross_total"`
	FinalTotal      float64 `json:"final_total"`
}

func FromCalculationResult(r entities.CalculationResult) CalculationResponse {
	return CalculationResponse{
		FoodName:        r.FoodName,
		Stage:           string(r.Stage),
		Students:        r.Students,
		GrossPerStudent: r.GrossPerStudent,
		GrossTotal:      r.GrossTotal,
		FinalTotal:      r.FinalTotal,
	}
}

type UnitConversionResponse struct {
	Value  float64 `json:"value"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Result float64 `json:"result"`
}
