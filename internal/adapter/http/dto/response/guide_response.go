package response

import (
	"time"

	"merenda_escolar/internal/domain/entities"
)

type DailyMenuResponse struct {
	Date   string `json:"date"`
	MenuID string `json:"menu_id"`
}

type DistributionCalculationResponse struct {
	FoodID        string  `json:"food_id"`
	FoodName      string  `json:"food_name"`
	TotalQuantity float64 `json:"total_quantity"`
	Unit          string  `json:"unit"`
}

type GuideResponse struct {
	ID            string                            `json:"id"`
	InstitutionID string                            `json:"institution_id"`
	DateStart     string                            `json:"date_start"`
	DateEnd       string                            `json:"date_end"`
	DailyMenus    []DailyMenuResponse               `json:"daily_menus"`
	Distribution  []DistributionCalculationResponse `json:"distribution"`
	Notes         string                            `json:"notes"`
	Version       int                               `json:"version"`
	GeneratedAt   time.Time                         `json:"generated_at"`
	GeneratedBy   string                            `json:"generated_by"`
	Status        string                            `json:"status"`
}

const guideDateLayout = "2006-01-02"

func FromGuide(g entities.SupplyGuide) GuideResponse {
	dailyMenus := make([]DailyMenuResponse, 0, len(g.DailyMenus))
	for _, dm := range g.DailyMenus {
		dailyMenus = append(dailyMenus, DailyMenuResponse{
			Date:   dm.Date.Format(guideDateLayout),
			MenuID: dm.MenuID,
		})
	}
	distribution := make([]DistributionCalculationResponse, 0, len(g.Distribution))
	for _, dc := range g.Distribution {
		distribution = append(distribution, DistributionCalculationResponse{
			FoodID:        dc.FoodID,
			FoodName:      dc.FoodName,
			TotalQuantity: dc.TotalQuantity,
			Unit:          string(dc.Unit),
		})
	}
	return GuideResponse{
		ID:            g.ID,
		InstitutionID: g.InstitutionID,
		DateStart:     g.DateStart.Format(guideDateLayout),
		DateEnd:       g.DateEnd.Format(guideDateLayout),
		DailyMenus:    dailyMenus,
		Distribution:  distribution,
		Notes:         g.Notes,
		Version:       g.Version,
		GeneratedAt:   g.GeneratedAt,
		GeneratedBy:   g.GeneratedBy,
		Status:        string(g.Status),
	}
}

func FromGuides(guides []entities.SupplyGuide) []GuideResponse {
	out := make([]GuideResponse, 0, len(guides))
	for _, g := range guides {
		out = append(out, FromGuide(g))
	}
	return out
}
