package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/ougirez/dayrate/internal/api/controller"
	"github.com/ougirez/dayrate/internal/pkg/constants"
	"github.com/ougirez/dayrate/internal/pkg/holiday"
	"github.com/ougirez/dayrate/internal/pkg/logger"
	"github.com/ougirez/dayrate/internal/pkg/store"
	"github.com/ougirez/dayrate/internal/service/auth"
	"github.com/ougirez/dayrate/internal/service/forecast"
	"github.com/ougirez/dayrate/internal/service/pricing"
	"github.com/spf13/viper"
)

type APIService struct {
	router *echo.Echo
}

func (svc *APIService) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(st store.Store, classifier *holiday.Classifier) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.Use(middleware.Logger())
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{viper.GetString(constants.ViperCORSOrigin)},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	cntrl := controller.NewController(
		st,
		forecast.NewService(classifier),
		pricing.NewService(),
		auth.NewService(),
		classifier,
	)

	api := svc.router.Group("/api/v1")

	api.POST("/auth/login", cntrl.Login)
	api.GET("/properties", cntrl.ListProperties, svc.AuthMiddleware)

	prop := api.Group("/properties/:property_id", svc.AuthMiddleware)
	prop.POST("/history/import", cntrl.ImportHistory)
	prop.GET("/history", cntrl.ListHistory)
	prop.DELETE("/history", cntrl.DeleteHistory)
	prop.GET("/forecast", cntrl.GetForecast)
	prop.GET("/forecast/weekdays", cntrl.GetWeekdayStats)
	prop.GET("/quote", cntrl.GetQuote)
	prop.GET("/targets/:month", cntrl.GetMonthlyTarget)
	prop.PUT("/targets/:month", cntrl.SetMonthlyTarget)
	prop.GET("/actuals/:day", cntrl.GetDayActuals)
	prop.PUT("/actuals/:day", cntrl.SetDayActuals)

	return svc, nil
}
