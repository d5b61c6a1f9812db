package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	ce "github.com/storefront-services/storefront-backend/pkg/errors"
	"github.com/storefront-services/storefront-backend/pkg/jwt"
)

const (
	// BusinessContextKey holds the authenticated business UUID on the echo context.
	BusinessContextKey = "BusinessUUID"
	// SubdomainContextKey holds the authenticated business subdomain.
	SubdomainContextKey = "BusinessSubdomain"
)

// BusinessUUID returns the authenticated business UUID for a request, or
// empty when the request is unauthenticated.
func BusinessUUID(c echo.Context) string {
	if uuid, ok := c.Get(BusinessContextKey).(string); ok {
		return uuid
	}
	return ""
}

// Authenticate validates the Authorization bearer token and scopes the
// request to the business named in its claims. Requests matched by the
// skipper pass through untouched.
func Authenticate(manager *jwt.Manager, skipper func(c echo.Context) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper != nil && skipper(c) {
				return next(c)
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return ce.NewErrorResponse(http.StatusUnauthorized, "Authentication required", "Missing Authorization header")
			}
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				return ce.NewErrorResponse(http.StatusUnauthorized, "Authentication required", "Authorization header must use the Bearer scheme")
			}

			claims, err := manager.VerifyToken(token)
			if err != nil {
				return ce.NewErrorResponse(http.StatusUnauthorized, "Authentication required", "Invalid or expired token")
			}

			c.Set(BusinessContextKey, claims.BusinessUUID)
			c.Set(SubdomainContextKey, claims.Subdomain)
			return next(c)
		}
	}
}
