package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/dayrate/internal/domain"
	"github.com/ougirez/dayrate/internal/service/pricing"
)

type quoteResponse struct {
	Date     domain.DateKey     `json:"date"`
	Forecast *domain.Forecast   `json:"forecast"`
	Actuals  *domain.DayActuals `json:"actuals"`
	Quote    *domain.Quote      `json:"quote"`
}

// GetQuote assembles the whole dashboard computation for one day: monthly
// target, entered actuals, history-based forecast, minimum room rate.
func (c *Controller) GetQuote(ctx echo.Context) error {
	date, err := targetDate(ctx)
	if err != nil {
		return err
	}

	reqCtx := ctx.Request().Context()
	propertyID := ctx.Param("property_id")

	property, err := c.store.GetProperty(reqCtx, propertyID)
	if err != nil {
		return err
	}

	monthlyTarget, err := c.store.GetMonthlyTarget(reqCtx, propertyID, domain.MonthKey(date))
	if err != nil {
		return err
	}

	actuals, err := c.store.GetDayActuals(reqCtx, propertyID, domain.DayKey(date))
	if err != nil {
		return err
	}

	records, err := c.store.ListRecords(reqCtx, propertyID)
	if err != nil {
		return err
	}

	c.classifier.Prefetch(reqCtx, recordYears(records, date)...)
	fc := c.forecastSvc.Forecast(records, date)

	quote := c.pricingSvc.MinimumPrice(pricing.Input{
		MonthlyTarget:        monthlyTarget,
		DaysInMonth:          daysInMonth(date),
		TotalRooms:           property.TotalRooms,
		BookedStayRooms:      actuals.BookedStayRooms,
		ManualDayuseCount:    actuals.DayuseCount,
		ManualDayuseAvgPrice: actuals.DayuseAvgPrice,
		Forecast:             fc,
	})

	return ctx.JSON(http.StatusOK, quoteResponse{
		Date:     domain.DayKey(date),
		Forecast: fc,
		Actuals:  actuals,
		Quote:    quote,
	})
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
