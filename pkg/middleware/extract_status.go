package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"
	ce "github.com/storefront-services/storefront-backend/pkg/errors"
)

// ExtractStatus sets the response status based on the error returned.
// This lets the request logger pick the proper logging level before the
// error handler has written the response.
func ExtractStatus(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var err error
		if err = next(c); err != nil {
			httpErr := new(ce.ErrorResponse)
			if errors.As(err, httpErr) {
				largest := 0
				for _, respErr := range httpErr.Errors {
					if respErr.Status > largest {
						largest = respErr.Status
					}
				}
				c.Response().Status = largest
			}
			return err
		}

		return nil
	}
}
