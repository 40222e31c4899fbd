package controller

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/dayrate/internal/pkg/constants"
	"github.com/ougirez/dayrate/internal/pkg/holiday"
	"github.com/ougirez/dayrate/internal/pkg/store"
	"github.com/ougirez/dayrate/internal/service/auth"
	"github.com/ougirez/dayrate/internal/service/forecast"
	"github.com/ougirez/dayrate/internal/service/pricing"
)

type Controller struct {
	store       store.Store
	forecastSvc *forecast.Service
	pricingSvc  *pricing.Service
	authSvc     *auth.Service
	classifier  *holiday.Classifier
}

func NewController(
	st store.Store,
	forecastSvc *forecast.Service,
	pricingSvc *pricing.Service,
	authSvc *auth.Service,
	classifier *holiday.Classifier,
) *Controller {
	return &Controller{
		store:       st,
		forecastSvc: forecastSvc,
		pricingSvc:  pricingSvc,
		authSvc:     authSvc,
		classifier:  classifier,
	}
}

// targetDate reads the optional ?date=YYYY-MM-DD query, defaulting to today.
func targetDate(ctx echo.Context) (time.Time, error) {
	raw := ctx.QueryParams().Get("date")
	if raw == "" {
		return time.Now(), nil
	}

	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, constants.ErrBadRequest
	}
	return t, nil
}
