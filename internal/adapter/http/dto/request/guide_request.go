package request

import (
	"errors"
	"time"

	"merenda_escolar/internal/domain/entities"
)

var ErrInvalidGuideDate = errors.New("invalid guide date")

// Guide payload dates use the plain calendar form; time-of-day carries no
// meaning for supply periods.
const guideDateLayout = "2006-01-02"

type DailyMenuRequest struct {
	Date   string `json:"date" binding:"required"`
	MenuID string `json:"menu_id" binding:"required"`
}

type DistributionRequest struct {
	FoodID        string  `json:"food_id" binding:"required"`
	FoodName      string  `json:"food_name"`
	TotalQuantity float64 `json:"total_quantity"`
	Unit          string  `json:"unit"`
}

type GuideRequest struct {
	InstitutionID string                `json:"institution_id" binding:"required"`
	DateStart     string                `json:"date_start" binding:"required"`
	DateEnd       string                `json:"date_end" binding:"required"`
	DailyMenus    []DailyMenuRequest    `json:"daily_menus"`
	Distribution  []DistributionRequest `json:"distribution"`
	Notes         string                `json:"notes"`
	GeneratedBy   string                `json:"generated_by" binding:"required"`
}

func (r GuideRequest) ResolvePeriod() (time.Time, time.Time, error) {
	start, err := time.Parse(guideDateLayout, r.DateStart)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidGuideDate
	}
	end, err := time.Parse(guideDateLayout, r.DateEnd)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidGuideDate
	}
	return start, end, nil
}

func (r GuideRequest) ResolveDailyMenus() ([]entities.DailyMenu, error) {
	menus := make([]entities.DailyMenu, 0, len(r.DailyMenus))
	for _, dm := range r.DailyMenus {
		date, err := time.Parse(guideDateLayout, dm.Date)
		if err != nil {
			return nil, ErrInvalidGuideDate
		}
		menus = append(menus, entities.DailyMenu{Date: date, MenuID: dm.MenuID})
	}
	return menus, nil
}

func (r GuideRequest) ResolveDistribution() []entities.DistributionCalculation {
	distribution := make([]entities.DistributionCalculation, 0, len(r.Distribution))
	for _, dc := range r.Distribution {
		distribution = append(distribution, entities.DistributionCalculation{
			FoodID:        dc.FoodID,
			FoodName:      dc.FoodName,
			TotalQuantity: dc.TotalQuantity,
			Unit:          entities.MeasurementUnit(dc.Unit),
		})
	}
	return distribution
}
