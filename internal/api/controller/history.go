package controller

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/dayrate/internal/pkg/csvimport"
	"github.com/ougirez/dayrate/internal/pkg/logger"
	"github.com/ougirez/dayrate/internal/pkg/store"
)

type importResponse struct {
	Report *csvimport.Report `json:"report"`
	Stats  store.UpsertStats `json:"stats"`
}

func (c *Controller) ImportHistory(ctx echo.Context) error {
	propertyID := ctx.Param("property_id")

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return fmt.Errorf("missing csv file: %w", err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	records, report, err := csvimport.Parse(file, csvimport.Options{})
	if err != nil {
		return err
	}

	stats, err := c.store.UpsertRecords(ctx.Request().Context(), propertyID, records)
	if err != nil {
		return err
	}

	logger.Infof(ctx.Request().Context(), "imported history, property_id-%s: %d parsed, %d skipped",
		propertyID, report.Parsed, report.Skipped)

	return ctx.JSON(http.StatusOK, importResponse{Report: report, Stats: stats})
}

func (c *Controller) ListHistory(ctx echo.Context) error {
	records, err := c.store.ListRecords(ctx.Request().Context(), ctx.Param("property_id"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, records)
}

func (c *Controller) DeleteHistory(ctx echo.Context) error {
	if err := c.store.DeleteRecords(ctx.Request().Context(), ctx.Param("property_id")); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
