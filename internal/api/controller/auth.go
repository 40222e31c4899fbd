package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/dayrate/internal/domain/dto"
	"github.com/ougirez/dayrate/internal/pkg/constants"
)

func (c *Controller) Login(ctx echo.Context) error {
	req := &dto.LoginRequest{}
	if err := ctx.Bind(req); err != nil {
		return err
	}

	token, err := c.authSvc.Login(ctx.Request().Context(), req.Password)
	if err != nil {
		return err
	}

	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeyAuthToken,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
