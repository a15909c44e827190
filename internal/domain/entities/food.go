package entities

// Stage represents an educational level segment (etapa de ensino).
//
// Domain notes:
//   - Each stage has its own nutritional per-capita table.
//   - The set is fixed and closed: the PNAE tables we consume only know these four.
//   - Values are case-sensitive and used as-is on the wire.

type Stage string

const (
	StageCreche      Stage = "creche"
	StagePre         Stage = "pre"
	StageFundamental Stage = "fundamental"
	StageMedio       Stage = "medio"
)

// AllStages returns the closed set of stages in table order.
func AllStages() []Stage {
	return []Stage{StageCreche, StagePre, StageFundamental, StageMedio}
}

func (s Stage) Valid() bool {
	switch s {
	case StageCreche, StagePre, StageFundamental, StageMedio:
		return true
	}
	return false
}

// Per-capita sentinel markers. A stage entry holding one of these means the food
// is not usable for that stage (nutritional restriction), which is a domain rule
// and not missing data.
const (
	PerCapitaNotApplicable = "-"
	PerCapitaRestricted    = "x"
	PerCapitaConditional   = "*"
)

// RawFood is the food record as supplied by the persistence layer.
//
// Numeric fields arrive as text because the source catalog is hand-maintained;
// parsing happens at catalog build time. PerCapita always carries exactly the
// four recognized stages, each holding a decimal string or a sentinel marker.
type RawFood struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Category         string           `json:"category"`
	Unit             MeasurementUnit  `json:"unit"`
	CorrectionFactor string           `json:"correction_factor"`
	CookingFactor    string           `json:"cooking_factor"`
	PerCapita        map[Stage]string `json:"per_capita"`
}

// FoodItem is the catalog entry consumed by the per-capita calculation.
//
// CorrectionFactor/CookingFactor may be NaN when the source record carried a
// malformed number; callers must guard before using them (see catalog build).
type FoodItem struct {
	Name             string           `json:"name"`
	CorrectionFactor float64          `json:"correction_factor"`
	CookingFactor    float64          `json:"cooking_factor"`
	PerCapita        map[Stage]string `json:"per_capita"`
}

// FoodCatalog indexes food items by normalized (accent-stripped, lowercased) name.
// Built once from the raw food list and treated as read-only afterwards.
type FoodCatalog map[string]FoodItem

// CalculationResult holds the three quantities produced by a per-capita
// calculation. All three are kept because the report surface shows the
// intermediate values, not only the final total.
type CalculationResult struct {
	FoodName        string  `json:"food_name"`
	Stage           Stage   `json:"stage"`
	Students        int     `json:"students"`
	GrossPerStudent float64 `json:"gross_per_student"`
	GrossTotal      float64 `json:"gross_total"`
	FinalTotal      float64 `json:"final_total"`
}
