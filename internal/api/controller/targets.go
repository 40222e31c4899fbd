package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/dayrate/internal/domain"
	"github.com/ougirez/dayrate/internal/domain/dto"
	"github.com/ougirez/dayrate/internal/pkg/constants"
)

type monthlyTargetResponse struct {
	Month  string `json:"month"`
	Amount int64  `json:"amount"`
}

func (c *Controller) GetMonthlyTarget(ctx echo.Context) error {
	month, err := monthParam(ctx)
	if err != nil {
		return err
	}

	amount, err := c.store.GetMonthlyTarget(ctx.Request().Context(), ctx.Param("property_id"), month)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, monthlyTargetResponse{Month: month, Amount: amount})
}

func (c *Controller) SetMonthlyTarget(ctx echo.Context) error {
	month, err := monthParam(ctx)
	if err != nil {
		return err
	}

	req := &dto.MonthlyTargetRequest{}
	if err = ctx.Bind(req); err != nil {
		return err
	}

	if err = c.store.SetMonthlyTarget(ctx.Request().Context(), ctx.Param("property_id"), month, req.Amount); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, monthlyTargetResponse{Month: month, Amount: req.Amount})
}

func (c *Controller) GetDayActuals(ctx echo.Context) error {
	day, err := dayParam(ctx)
	if err != nil {
		return err
	}

	actuals, err := c.store.GetDayActuals(ctx.Request().Context(), ctx.Param("property_id"), day)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, actuals)
}

func (c *Controller) SetDayActuals(ctx echo.Context) error {
	day, err := dayParam(ctx)
	if err != nil {
		return err
	}

	req := &dto.DayActualsRequest{}
	if err = ctx.Bind(req); err != nil {
		return err
	}

	actuals := &domain.DayActuals{
		BookedStayRooms: req.BookedStayRooms,
		DayuseCount:     req.DayuseCount,
		DayuseAvgPrice:  req.DayuseAvgPrice,
	}

	if err = c.store.SetDayActuals(ctx.Request().Context(), ctx.Param("property_id"), day, actuals); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, actuals)
}

func monthParam(ctx echo.Context) (string, error) {
	month := ctx.Param("month")
	if _, err := time.Parse("2006-01", month); err != nil {
		return "", constants.ErrBadRequest
	}
	return month, nil
}

func dayParam(ctx echo.Context) (string, error) {
	day := ctx.Param("day")
	if _, err := time.Parse("2006-01-02", day); err != nil {
		return "", constants.ErrBadRequest
	}
	return day, nil
}
