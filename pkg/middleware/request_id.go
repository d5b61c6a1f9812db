package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/storefront-services/storefront-backend/pkg/config"
)

// AddRequestId stores the inbound request id on the echo context, generating
// one when the caller did not send the header.
func AddRequestId(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestId := c.Request().Header.Get(config.HeaderRequestId)
		if requestId == "" {
			requestId = uuid.NewString()
		}
		c.Set(config.HeaderRequestId, requestId)
		c.Response().Header().Set(config.HeaderRequestId, requestId)
		return next(c)
	}
}
