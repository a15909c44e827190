package response

import "merenda_escolar/internal/domain/entities"

type CalendarDayResponse struct {
	Day            int             `json:"day"`
	InCurrentMonth bool            `json:"in_current_month"`
	Guides         []GuideResponse `json:"guides"`
}

func FromCalendarDays(days []entities.CalendarDay) []CalendarDayResponse {
	out := make([]CalendarDayResponse, 0, len(days))
	for _, d := range days {
		out = append(out, CalendarDayResponse{
			Day:            d.Day,
			InCurrentMonth: d.InCurrentMonth,
			Guides:         FromGuides(d.Guides),
		})
	}
	return out
}

type DistributionTotalResponse struct {
	FoodID             string  `json:"food_id"`
	AggregatedQuantity float64 `json:"aggregated_quantity"`
}

func FromDistributionTotals(totals []entities.DistributionTotal) []DistributionTotalResponse {
	out := make([]DistributionTotalResponse, 0, len(totals))
	for _, t := range totals {
		out = append(out, DistributionTotalResponse{
			FoodID:             t.FoodID,
			AggregatedQuantity: t.AggregatedQuantity,
		})
	}
	return out
}
