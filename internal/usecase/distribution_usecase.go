package usecase

import (
	"context"
	"errors"
	"time"

	"merenda_escolar/internal/domain/entities"
	"merenda_escolar/internal/usecase/interfaces"
)

var ErrInvalidDateRange = errors.New("guide date range start is after end")

// monthGridSize keeps the calendar a stable 6-row grid regardless of month length.
const monthGridSize = 42

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return startOfDay(a).Equal(startOfDay(b))
}

// guideCoversDay reports whether day falls inside the guide's inclusive range,
// comparing at day granularity.
func guideCoversDay(g entities.SupplyGuide, day time.Time) bool {
	day = startOfDay(day)
	return !day.Before(startOfDay(g.DateStart)) && !day.After(startOfDay(g.DateEnd))
}

// BuildMonthGrid lays out the month of refMonth as a 42-slot calendar.
//
// Leading slots carry real day numbers of the previous month and trailing slots
// count from 1 into the next month; both are outside the reference month and
// never hold guides. A current-month slot lists every guide whose inclusive
// range covers that day.
func BuildMonthGrid(refMonth time.Time, guides []entities.SupplyGuide) []entities.CalendarDay {
	year, month := refMonth.Year(), refMonth.Month()
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, refMonth.Location())
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, refMonth.Location()).Day()
	offset := int(firstDay.Weekday()) // 0 = Sunday

	days := make([]entities.CalendarDay, 0, monthGridSize)

	for i := offset - 1; i >= 0; i-- {
		prev := time.Date(year, month, -i, 0, 0, 0, 0, refMonth.Location())
		days = append(days, entities.CalendarDay{Day: prev.Day(), InCurrentMonth: false, Guides: []entities.SupplyGuide{}})
	}

	for day := 1; day <= daysInMonth; day++ {
		current := time.Date(year, month, day, 0, 0, 0, 0, refMonth.Location())
		active := []entities.SupplyGuide{}
		for _, g := range guides {
			if guideCoversDay(g, current) {
				active = append(active, g)
			}
		}
		days = append(days, entities.CalendarDay{Day: day, InCurrentMonth: true, Guides: active})
	}

	for day := 1; len(days) < monthGridSize; day++ {
		days = append(days, entities.CalendarDay{Day: day, InCurrentMonth: false, Guides: []entities.SupplyGuide{}})
	}

	return days
}

// GuidesInMonth returns the guides whose range overlaps the month of refMonth.
func GuidesInMonth(guides []entities.SupplyGuide, refMonth time.Time) []entities.SupplyGuide {
	year, month := refMonth.Year(), refMonth.Month()
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, refMonth.Location())
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, refMonth.Location())

	matched := []entities.SupplyGuide{}
	for _, g := range guides {
		start := startOfDay(g.DateStart)
		end := startOfDay(g.DateEnd)
		if !start.After(lastDay) && !end.Before(firstDay) {
			matched = append(matched, g)
		}
	}
	return matched
}

// AggregateTrailingWeek totals distributed quantities per food over the 7
// calendar days ending at now, inclusive.
//
// Only guides with status Distribuído participate. A guide contributes on a
// day only when it covers that day AND has a daily menu assigned to it; the
// contribution is totalQuantity / number of daily menus, an equal split across
// the guide's span. The split deliberately ignores per-day menu content:
// downstream consumers rely on this exact arithmetic.
//
// Output order is unspecified.
func AggregateTrailingWeek(guides []entities.SupplyGuide, now time.Time) ([]entities.DistributionTotal, error) {
	for _, g := range guides {
		if startOfDay(g.DateStart).After(startOfDay(g.DateEnd)) {
			return nil, ErrInvalidDateRange
		}
	}

	distributed := make([]entities.SupplyGuide, 0, len(guides))
	for _, g := range guides {
		if g.Status == entities.GuideStatusDistribuido {
			distributed = append(distributed, g)
		}
	}

	windowStart := startOfDay(now.AddDate(0, 0, -6))
	windowEnd := startOfDay(now)

	totals := make(map[string]float64)
	for day := windowStart; !day.After(windowEnd); day = day.AddDate(0, 0, 1) {
		for _, g := range distributed {
			if !guideCoversDay(g, day) {
				continue
			}
			if !guideHasMenuOn(g, day) {
				continue
			}
			daysTotal := float64(len(g.DailyMenus))
			for _, calc := range g.Distribution {
				totals[calc.FoodID] += calc.TotalQuantity / daysTotal
			}
		}
	}

	result := make([]entities.DistributionTotal, 0, len(totals))
	for foodID, quantity := range totals {
		result = append(result, entities.DistributionTotal{FoodID: foodID, AggregatedQuantity: quantity})
	}
	return result, nil
}

func guideHasMenuOn(g entities.SupplyGuide, day time.Time) bool {
	for _, dm := range g.DailyMenus {
		if sameDay(dm.Date, day) {
			return true
		}
	}
	return false
}

// IDashboardUseCase exposes the calendar and distribution report queries.

type IDashboardUseCase interface {
	MonthCalendar(ctx context.Context, refMonth time.Time) ([]entities.CalendarDay, error)
	MonthGuides(ctx context.Context, refMonth time.Time) ([]entities.SupplyGuide, error)
	WeeklyDistribution(ctx context.Context) ([]entities.DistributionTotal, error)
}

type DashboardUseCase struct {
	guideRepo interfaces.IGuideRepository
	now       func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(guideRepo interfaces.IGuideRepository) *DashboardUseCase {
	return &DashboardUseCase{guideRepo: guideRepo, now: time.Now}
}

func (u *DashboardUseCase) MonthCalendar(ctx context.Context, refMonth time.Time) ([]entities.CalendarDay, error) {
	guides, err := u.guideRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return BuildMonthGrid(refMonth, guides), nil
}

func (u *DashboardUseCase) MonthGuides(ctx context.Context, refMonth time.Time) ([]entities.SupplyGuide, error) {
	guides, err := u.guideRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return GuidesInMonth(guides, refMonth), nil
}

func (u *DashboardUseCase) WeeklyDistribution(ctx context.Context) ([]entities.DistributionTotal, error) {
	guides, err := u.guideRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return AggregateTrailingWeek(guides, u.now())
}
