package entities

import "time"

// GuideStatus represents the lifecycle of a supply guide.
//
// Domain notes:
//   - Rascunho    => draft being assembled, may coexist with other drafts.
//   - Finalizado  => closed for editing, quantities frozen.
//   - Distribuído => goods delivered; only these count for distribution reports.
//
// Values are the Portuguese labels the nutrition team works with; they are
// stored and exposed as-is.

type GuideStatus string

const (
	GuideStatusRascunho    GuideStatus = "Rascunho"
	GuideStatusFinalizado  GuideStatus = "Finalizado"
	GuideStatusDistribuido GuideStatus = "Distribuído"
)

func (s GuideStatus) Valid() bool {
	switch s {
	case GuideStatusRascunho, GuideStatusFinalizado, GuideStatusDistribuido:
		return true
	}
	return false
}

// DailyMenu assigns one menu to one calendar day inside a guide's span.
type DailyMenu struct {
	Date   time.Time `json:"date"`
	MenuID string    `json:"menu_id"`
}

// DistributionCalculation is one pre-computed food quantity for a guide's full
// span. It is produced when the guide is assembled and never recomputed by the
// aggregation queries.
type DistributionCalculation struct {
	FoodID        string          `json:"food_id"`
	FoodName      string          `json:"food_name"`
	TotalQuantity float64         `json:"total_quantity"`
	Unit          MeasurementUnit `json:"unit"`
}

// SupplyGuide is a time-bounded supply authorization for one institution.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The aggregation queries treat guides as read-only input.
type SupplyGuide struct {
	ID            string                    `json:"id"`
	InstitutionID string                    `json:"institution_id"`
	DateStart     time.Time                 `json:"date_start"`
	DateEnd       time.Time                 `json:"date_end"`
	DailyMenus    []DailyMenu               `json:"daily_menus"`
	Distribution  []DistributionCalculation `json:"distribution"`
	Notes         string                    `json:"notes"`
	Version       int                       `json:"version"`
	GeneratedAt   time.Time                 `json:"generated_at"`
	GeneratedBy   string                    `json:"generated_by"`
	Status        GuideStatus               `json:"status"`
}
