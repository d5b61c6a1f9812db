package middleware

import (
	"mime"
	"net/http"

	"github.com/labstack/echo/v4"
	ce "github.com/storefront-services/storefront-backend/pkg/errors"
)

const JSONMimeType = "application/json"

func enforceJSONContentTypeSkipper(c echo.Context) bool {
	return c.Request().Body == http.NoBody
}

func EnforceJSONContentType(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if enforceJSONContentTypeSkipper(c) {
			return next(c)
		}
		mediatype, _, err := mime.ParseMediaType(c.Request().Header.Get("Content-Type"))
		if err != nil {
			return ce.NewErrorResponse(http.StatusUnsupportedMediaType, "Error parsing content type", err.Error())
		}
		if mediatype != JSONMimeType {
			return ce.NewErrorResponse(http.StatusUnsupportedMediaType, "Incorrect content type", "Content-Type must be application/json")
		}
		return next(c)
	}
}
