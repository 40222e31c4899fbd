package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/dayrate/internal/domain"
)

type forecastResponse struct {
	Date        domain.DateKey   `json:"date"`
	IsHoliday   bool             `json:"is_holiday"`
	HolidayName string           `json:"holiday_name,omitempty"`
	Forecast    *domain.Forecast `json:"forecast"`
}

func (c *Controller) GetForecast(ctx echo.Context) error {
	date, err := targetDate(ctx)
	if err != nil {
		return err
	}

	records, err := c.store.ListRecords(ctx.Request().Context(), ctx.Param("property_id"))
	if err != nil {
		return err
	}

	// load every year the forecast might classify before the synchronous
	// lookups run; a failed load degrades to "no holidays" inside the
	// classifier
	c.classifier.Prefetch(ctx.Request().Context(), recordYears(records, date)...)

	name, isHoliday := c.classifier.HolidayName(date)

	return ctx.JSON(http.StatusOK, forecastResponse{
		Date:        domain.DayKey(date),
		IsHoliday:   isHoliday,
		HolidayName: name,
		Forecast:    c.forecastSvc.Forecast(records, date),
	})
}

func (c *Controller) GetWeekdayStats(ctx echo.Context) error {
	records, err := c.store.ListRecords(ctx.Request().Context(), ctx.Param("property_id"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, c.forecastSvc.WeekdayStats(records))
}

func recordYears(records []*domain.HistoricalRecord, target time.Time) []int {
	years := []int{target.Year()}
	seen := map[int]struct{}{target.Year(): {}}
	for _, rec := range records {
		year := rec.Date.Year()
		if _, ok := seen[year]; ok {
			continue
		}
		seen[year] = struct{}{}
		years = append(years, year)
	}
	return years
}
