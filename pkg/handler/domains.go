package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/storefront-services/storefront-backend/pkg/api"
	"github.com/storefront-services/storefront-backend/pkg/dao"
	ce "github.com/storefront-services/storefront-backend/pkg/errors"
	"github.com/storefront-services/storefront-backend/pkg/instrumentation"
	"github.com/storefront-services/storefront-backend/pkg/middleware"
	"github.com/storefront-services/storefront-backend/pkg/tenancy"
)

type DomainHandler struct {
	Dao       dao.DaoRegistry
	lifecycle *tenancy.Lifecycle
	metrics   *instrumentation.Metrics
}

func RegisterDomainRoutes(engine *echo.Group, daoReg *dao.DaoRegistry, lifecycle *tenancy.Lifecycle,
	metrics *instrumentation.Metrics, auth echo.MiddlewareFunc) {
	dh := DomainHandler{
		Dao:       *daoReg,
		lifecycle: lifecycle,
		metrics:   metrics,
	}
	engine.POST("/domains/attach", dh.attach, auth)
	engine.POST("/domains/verify", dh.verify, auth)
	engine.DELETE("/domains", dh.disconnect, auth)
	engine.GET("/domains/queue", dh.listQueue, auth)
}

// RegisterRoutingCheck registers the unversioned allow/deny endpoint the edge
// proxy polls before forwarding a request. The body is intentionally empty;
// only the status code matters.
func RegisterRoutingCheck(engine *echo.Echo, lifecycle *tenancy.Lifecycle) {
	engine.GET("/routing_check", func(c echo.Context) error {
		domain := c.QueryParam("domain")
		if domain == "" || !lifecycle.RoutingAllowed(c.Request().Context(), domain) {
			return c.NoContent(http.StatusNotFound)
		}
		return c.NoContent(http.StatusOK)
	})
}

func (dh *DomainHandler) attach(c echo.Context) error {
	uuid := middleware.BusinessUUID(c)

	var request api.AttachDomainRequest
	if err := c.Bind(&request); err != nil {
		return ce.NewErrorResponse(http.StatusBadRequest, "Error binding parameters", err.Error())
	}

	response, err := dh.lifecycle.Attach(c.Request().Context(), uuid, request.Domain)
	if err != nil {
		return ce.NewErrorResponseFromError("Error attaching domain", err)
	}
	return c.JSON(http.StatusOK, response)
}

func (dh *DomainHandler) verify(c echo.Context) error {
	uuid := middleware.BusinessUUID(c)

	var request api.VerifyDomainRequest
	if err := c.Bind(&request); err != nil {
		return ce.NewErrorResponse(http.StatusBadRequest, "Error binding parameters", err.Error())
	}

	response, err := dh.lifecycle.Verify(c.Request().Context(), uuid, request.Domain)
	if err != nil {
		return ce.NewErrorResponseFromError("Error verifying domain", err)
	}
	dh.metrics.RecordDNSVerification(response.Verified)
	return c.JSON(http.StatusOK, response)
}

func (dh *DomainHandler) disconnect(c echo.Context) error {
	uuid := middleware.BusinessUUID(c)

	if err := dh.lifecycle.Disconnect(c.Request().Context(), uuid); err != nil {
		return ce.NewErrorResponseFromError("Error disconnecting domain", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (dh *DomainHandler) listQueue(c echo.Context) error {
	uuid := middleware.BusinessUUID(c)
	page := ParsePagination(c)

	entries, total, err := dh.Dao.DomainQueue.List(c.Request().Context(), uuid, page)
	if err != nil {
		return ce.NewErrorResponseFromError("Error listing domain queue", err)
	}
	return c.JSON(http.StatusOK, setCollectionResponseMetadata(&entries, c, total))
}
