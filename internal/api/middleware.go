package api

import (
	"github.com/labstack/echo/v4"
	"github.com/ougirez/dayrate/internal/pkg/constants"
	"github.com/ougirez/dayrate/internal/pkg/utils"
)

func (svc *APIService) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(constants.CookieKeyAuthToken)
		if err != nil {
			return constants.ErrMissingAuthCookie
		}

		if _, err = utils.ParseAuthToken(cookie.Value); err != nil {
			return err
		}

		return next(ctx)
	}
}
