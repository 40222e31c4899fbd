package forecast

import (
	"testing"
	"time"

	"github.com/ougirez/dayrate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClassifier struct {
	holidays map[string]bool
}

func (s *stubClassifier) IsHoliday(t time.Time) bool {
	return s.holidays[domain.DayKey(t)]
}

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func rec(id, date string, price int64) *domain.HistoricalRecord {
	return &domain.HistoricalRecord{ID: id, Date: day(date), Price: price}
}

func newService(holidays ...string) *Service {
	m := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		m[h] = true
	}
	return NewService(&stubClassifier{holidays: m})
}

func TestForecast_EmptyHistory(t *testing.T) {
	got := newService().Forecast(nil, day("2024-01-22"))

	assert.Equal(t, &domain.Forecast{
		Count:    0,
		Revenue:  0,
		AvgPrice: 0,
		HasData:  false,
		Basis:    domain.BasisNoData,
	}, got)
}

func TestForecast_WeekdayAverage(t *testing.T) {
	// two Mondays with two sales each: counts average to 2,
	// revenues (5000, 7000) to 6000, so the per-sale price is 3000
	history := []*domain.HistoricalRecord{
		rec("1", "2024-01-08", 2500),
		rec("2", "2024-01-08", 2500),
		rec("3", "2024-01-15", 3500),
		rec("4", "2024-01-15", 3500),
	}

	got := newService().Forecast(history, day("2024-01-22"))

	require.True(t, got.HasData)
	assert.Equal(t, int64(2), got.Count)
	assert.Equal(t, int64(6000), got.Revenue)
	assert.Equal(t, int64(3000), got.AvgPrice)
	assert.Equal(t, "Monday weekday historical average", got.Basis)
}

func TestForecast_DuplicateDatesAccumulate(t *testing.T) {
	// three records on one Monday fold into a single aggregate day
	history := []*domain.HistoricalRecord{
		rec("1", "2024-01-08", 4000),
		rec("2", "2024-01-08", 5000),
		rec("3", "2024-01-08", 6000),
	}

	got := newService().Forecast(history, day("2024-01-22"))

	require.True(t, got.HasData)
	assert.Equal(t, int64(3), got.Count)
	assert.Equal(t, int64(15000), got.Revenue)
	assert.Equal(t, int64(5000), got.AvgPrice)
}

func TestForecast_OverallFallback(t *testing.T) {
	// only Tuesday history, Monday target: every aggregate day feeds in
	history := []*domain.HistoricalRecord{
		rec("1", "2024-01-09", 4000),
		rec("2", "2024-01-16", 8000),
	}

	got := newService().Forecast(history, day("2024-01-22"))

	require.True(t, got.HasData)
	assert.Equal(t, int64(1), got.Count)
	assert.Equal(t, int64(6000), got.Revenue)
	assert.Equal(t, int64(6000), got.AvgPrice)
	assert.Equal(t, domain.BasisOverallAverage, got.Basis)
}

func TestForecast_HolidayAverage(t *testing.T) {
	svc := newService("2024-01-01", "2024-02-23")

	history := []*domain.HistoricalRecord{
		rec("1", "2024-01-01", 3000),
		rec("2", "2024-01-01", 5000),
		rec("3", "2024-01-15", 9000), // Monday, ignored for a holiday target
	}

	got := svc.Forecast(history, day("2024-02-23"))

	require.True(t, got.HasData)
	assert.Equal(t, int64(2), got.Count)
	assert.Equal(t, int64(8000), got.Revenue)
	assert.Equal(t, int64(4000), got.AvgPrice)
	assert.Equal(t, domain.BasisHoliday, got.Basis)
}

func TestForecast_HolidaySaturdaySubstitution(t *testing.T) {
	svc := newService("2024-02-23")

	history := []*domain.HistoricalRecord{
		rec("1", "2024-01-13", 9000), // Saturday
		rec("2", "2024-01-15", 5000), // Monday
	}

	got := svc.Forecast(history, day("2024-02-23"))

	require.True(t, got.HasData)
	assert.Equal(t, int64(1), got.Count)
	assert.Equal(t, int64(9000), got.Revenue)
	assert.Equal(t, int64(9000), got.AvgPrice)
	assert.Equal(t, domain.BasisHolidaySaturday, got.Basis)
}

func TestForecast_HolidayWithoutSaturdaysFallsBackToOverall(t *testing.T) {
	svc := newService("2024-02-23")

	history := []*domain.HistoricalRecord{
		rec("1", "2024-01-15", 5000), // Monday
		rec("2", "2024-01-16", 7000), // Tuesday
	}

	got := svc.Forecast(history, day("2024-02-23"))

	require.True(t, got.HasData)
	assert.Equal(t, domain.BasisOverallAverage, got.Basis)
	assert.Equal(t, int64(6000), got.Revenue)
}

func TestForecast_AvgPriceInvariant(t *testing.T) {
	histories := [][]*domain.HistoricalRecord{
		{rec("1", "2024-01-08", 0)},
		{rec("1", "2024-01-08", 5000), rec("2", "2024-01-15", 7000)},
		{rec("1", "2024-01-08", 100), rec("2", "2024-01-08", 200), rec("3", "2024-01-20", 30000)},
	}

	svc := newService()
	for _, history := range histories {
		got := svc.Forecast(history, day("2024-01-22"))
		require.True(t, got.HasData)
		if got.Count > 0 {
			want := (got.Revenue*2 + got.Count) / (got.Count * 2) // round half up
			assert.Equal(t, want, got.AvgPrice)
		} else {
			assert.Zero(t, got.AvgPrice)
		}
	}
}

func TestWeekdayStats(t *testing.T) {
	history := []*domain.HistoricalRecord{
		rec("1", "2024-01-08", 2500),
		rec("2", "2024-01-08", 2500),
		rec("3", "2024-01-15", 3500),
		rec("4", "2024-01-15", 3500),
		rec("5", "2024-01-13", 9000), // Saturday
	}

	stats := newService().WeekdayStats(history)
	require.Len(t, stats, 7)

	monday := stats[time.Monday]
	assert.True(t, monday.HasData)
	assert.Equal(t, int64(2), monday.AvgCount)
	assert.Equal(t, int64(6000), monday.AvgRevenue)
	assert.Equal(t, int64(3000), monday.AvgPrice)

	saturday := stats[time.Saturday]
	assert.True(t, saturday.HasData)
	assert.Equal(t, int64(9000), saturday.AvgRevenue)

	sunday := stats[time.Sunday]
	assert.False(t, sunday.HasData)
	assert.Zero(t, sunday.AvgCount)
	assert.Zero(t, sunday.AvgRevenue)
	assert.Zero(t, sunday.AvgPrice)
}
