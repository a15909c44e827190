package entities

// CalendarDay is one slot of the 6-week month grid. Slots outside the reference
// month are rendered but never carry guides.
type CalendarDay struct {
	Day            int           `json:"day"`
	InCurrentMonth bool          `json:"in_current_month"`
	Guides         []SupplyGuide `json:"guides"`
}

// DistributionTotal is the trailing-week accumulator output: one aggregated
// quantity per food id. Other fields of the source distribution entries are
// deliberately dropped, they have no meaning once summed across guides.
type DistributionTotal struct {
	FoodID             string  `json:"food_id"`
	AggregatedQuantity float64 `json:"aggregated_quantity"`
}
