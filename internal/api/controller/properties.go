package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) ListProperties(ctx echo.Context) error {
	properties, err := c.store.ListProperties(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, properties)
}
