package forecast

import (
	"sort"
	"time"

	"github.com/ougirez/dayrate/internal/domain"
	"github.com/shopspring/decimal"
)

// HolidayClassifier is the synchronous, cache-only lookup. The engine never
// blocks on network I/O: whoever calls Forecast is responsible for loading
// the relevant years first, and an unloaded year simply reads as
// "not a holiday".
type HolidayClassifier interface {
	IsHoliday(t time.Time) bool
}

type Service struct {
	classifier HolidayClassifier
}

func NewService(classifier HolidayClassifier) *Service {
	return &Service{classifier: classifier}
}

// Forecast predicts same-day demand for target from past day-use records.
//
// Selection order: holiday target → mean over past holiday days, falling
// back to Saturdays when history has none; otherwise mean over days sharing
// the target's weekday, falling back to all days when none match. Only an
// entirely empty history yields HasData=false — once there is any history,
// the fallback chain always produces numbers.
func (s *Service) Forecast(history []*domain.HistoricalRecord, target time.Time) *domain.Forecast {
	if len(history) == 0 {
		return &domain.Forecast{Basis: domain.BasisNoData}
	}

	days := aggregate(history)

	if s.classifier.IsHoliday(target) {
		holidayDays := make([]*domain.DailyAggregate, 0, len(days))
		for _, day := range days {
			if s.classifier.IsHoliday(day.Date) {
				holidayDays = append(holidayDays, day)
			}
		}

		if len(holidayDays) > 0 {
			return forecastFrom(holidayDays, domain.BasisHoliday)
		}

		return weekdayForecast(days, time.Saturday, domain.BasisHolidaySaturday)
	}

	return weekdayForecast(days, target.Weekday(), domain.BasisWeekday(target.Weekday()))
}

// WeekdayStats reports the historical average per weekday, for the
// dashboard's reference table. No holiday substitution and no overall
// fallback here: a weekday without history stays empty.
func (s *Service) WeekdayStats(history []*domain.HistoricalRecord) []domain.WeekdayStat {
	days := aggregate(history)

	stats := make([]domain.WeekdayStat, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		stats[wd] = domain.WeekdayStat{Weekday: wd}

		matching := filterWeekday(days, wd)
		if len(matching) == 0 {
			continue
		}

		count, revenue, price := average(matching)
		stats[wd].AvgCount = count
		stats[wd].AvgRevenue = revenue
		stats[wd].AvgPrice = price
		stats[wd].HasData = true
	}

	return stats
}

func weekdayForecast(days []*domain.DailyAggregate, wd time.Weekday, basis string) *domain.Forecast {
	matching := filterWeekday(days, wd)
	if len(matching) == 0 {
		return forecastFrom(days, domain.BasisOverallAverage)
	}
	return forecastFrom(matching, basis)
}

func forecastFrom(days []*domain.DailyAggregate, basis string) *domain.Forecast {
	count, revenue, price := average(days)
	return &domain.Forecast{
		Count:    count,
		Revenue:  revenue,
		AvgPrice: price,
		HasData:  true,
		Basis:    basis,
	}
}

// aggregate folds records into one bucket per calendar day. Duplicate-date
// records accumulate; output is date-ordered so averaging is deterministic.
func aggregate(history []*domain.HistoricalRecord) []*domain.DailyAggregate {
	byDay := make(map[domain.DateKey]*domain.DailyAggregate)
	for _, rec := range history {
		key := rec.DayKey()
		day, ok := byDay[key]
		if !ok {
			day = &domain.DailyAggregate{Date: rec.Date}
			byDay[key] = day
		}
		day.Count++
		day.Revenue += rec.Price
	}

	days := make([]*domain.DailyAggregate, 0, len(byDay))
	for _, day := range byDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })

	return days
}

func filterWeekday(days []*domain.DailyAggregate, wd time.Weekday) []*domain.DailyAggregate {
	matching := make([]*domain.DailyAggregate, 0, len(days))
	for _, day := range days {
		if day.Date.Weekday() == wd {
			matching = append(matching, day)
		}
	}
	return matching
}

// average applies the shared rounding rule: mean count and mean revenue are
// each rounded to the nearest integer, and the average price is derived from
// the rounded pair (0 when the rounded count is 0).
func average(days []*domain.DailyAggregate) (count, revenue, price int64) {
	if len(days) == 0 {
		return 0, 0, 0
	}

	var sumCount, sumRevenue int64
	for _, day := range days {
		sumCount += day.Count
		sumRevenue += day.Revenue
	}

	n := decimal.NewFromInt(int64(len(days)))
	count = decimal.NewFromInt(sumCount).Div(n).Round(0).IntPart()
	revenue = decimal.NewFromInt(sumRevenue).Div(n).Round(0).IntPart()
	if count > 0 {
		price = decimal.NewFromInt(revenue).Div(decimal.NewFromInt(count)).Round(0).IntPart()
	}

	return count, revenue, price
}
