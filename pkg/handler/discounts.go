package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/storefront-services/storefront-backend/pkg/api"
	"github.com/storefront-services/storefront-backend/pkg/dao"
	"github.com/storefront-services/storefront-backend/pkg/discounts"
	ce "github.com/storefront-services/storefront-backend/pkg/errors"
	"github.com/storefront-services/storefront-backend/pkg/instrumentation"
	"github.com/storefront-services/storefront-backend/pkg/middleware"
)

type DiscountHandler struct {
	Dao        dao.DaoRegistry
	calculator *discounts.Calculator
	metrics    *instrumentation.Metrics
}

func RegisterDiscountRoutes(engine *echo.Group, daoReg *dao.DaoRegistry, calculator *discounts.Calculator,
	metrics *instrumentation.Metrics, auth echo.MiddlewareFunc) {
	dh := DiscountHandler{
		Dao:        *daoReg,
		calculator: calculator,
		metrics:    metrics,
	}
	engine.GET("/discount_codes/", dh.list, auth)
	engine.POST("/discount_codes/", dh.create, auth)
	engine.GET("/discount_codes/:uuid", dh.fetch, auth)
	engine.PUT("/discount_codes/:uuid", dh.update, auth)
	engine.DELETE("/discount_codes/:uuid", dh.delete, auth)

	// Checkout calls validate with the business it already resolved; no
	// merchant credential is involved.
	engine.POST("/discounts/validate", dh.validate)
	engine.POST("/discounts/redeem", dh.redeem)
}

func (dh *DiscountHandler) list(c echo.Context) error {
	uuid := middleware.BusinessUUID(c)
	page := ParsePagination(c)

	codes, total, err := dh.Dao.DiscountCode.List(c.Request().Context(), uuid, page)
	if err != nil {
		return ce.NewErrorResponseFromError("Error listing discount codes", err)
	}
	return c.JSON(http.StatusOK, setCollectionResponseMetadata(&codes, c, total))
}

func (dh *DiscountHandler) create(c echo.Context) error {
	uuid := middleware.BusinessUUID(c)

	var request api.DiscountCodeRequest
	if err := c.Bind(&request); err != nil {
		return ce.NewErrorResponse(http.StatusBadRequest, "Error binding parameters", err.Error())
	}
	response, err := dh.Dao.DiscountCode.Create(c.Request().Context(), uuid, request)
	if err != nil {
		return ce.NewErrorResponseFromError("Error creating discount code", err)
	}
	return c.JSON(http.StatusCreated, response)
}

func (dh *DiscountHandler) fetch(c echo.Context) error {
	uuid := middleware.BusinessUUID(c)

	response, err := dh.Dao.DiscountCode.Fetch(c.Request().Context(), uuid, c.Param("uuid"))
	if err != nil {
		return ce.NewErrorResponseFromError("Error fetching discount code", err)
	}
	return c.JSON(http.StatusOK, response)
}

func (dh *DiscountHandler) update(c echo.Context) error {
	uuid := middleware.BusinessUUID(c)

	var request api.DiscountCodeRequest
	if err := c.Bind(&request); err != nil {
		return ce.NewErrorResponse(http.StatusBadRequest, "Error binding parameters", err.Error())
	}
	if err := dh.Dao.DiscountCode.Update(c.Request().Context(), uuid, c.Param("uuid"), request); err != nil {
		return ce.NewErrorResponseFromError("Error updating discount code", err)
	}
	response, err := dh.Dao.DiscountCode.Fetch(c.Request().Context(), uuid, c.Param("uuid"))
	if err != nil {
		return ce.NewErrorResponseFromError("Error updating discount code", err)
	}
	return c.JSON(http.StatusOK, response)
}

func (dh *DiscountHandler) delete(c echo.Context) error {
	uuid := middleware.BusinessUUID(c)

	if err := dh.Dao.DiscountCode.Delete(c.Request().Context(), uuid, c.Param("uuid")); err != nil {
		return ce.NewErrorResponseFromError("Error deleting discount code", err)
	}
	return c.NoContent(http.StatusNoContent)
}

// validate runs the ordered rule chain and reports the outcome in the body.
// A rejected code is a 200 with valid=false, not an error status.
func (dh *DiscountHandler) validate(c echo.Context) error {
	var request api.ValidateDiscountRequest
	if err := c.Bind(&request); err != nil {
		return ce.NewErrorResponse(http.StatusBadRequest, "Error binding parameters", err.Error())
	}
	if request.BusinessUUID == "" || request.Code == "" {
		return ce.NewErrorResponse(http.StatusBadRequest, "Error validating discount code", "business_uuid and code are required")
	}
	if request.CartTotalCents < 0 {
		return ce.NewErrorResponse(http.StatusBadRequest, "Error validating discount code", "cart_total cannot be negative")
	}

	result, err := dh.calculator.Validate(c.Request().Context(), request.BusinessUUID, request.Code, request.CartTotalCents)
	if err != nil {
		return ce.NewErrorResponseFromError("Error validating discount code", err)
	}

	if !result.OK {
		dh.metrics.RecordDiscountValidation(string(result.Reason))
		return c.JSON(http.StatusOK, api.ValidateDiscountResponse{
			Valid: false,
			Error: result.Message,
		})
	}

	dh.metrics.RecordDiscountValidation("valid")
	return c.JSON(http.StatusOK, api.ValidateDiscountResponse{
		Valid: true,
		Discount: &api.AppliedDiscount{
			Code:           result.Code.Code,
			Type:           string(result.Code.Type),
			Value:          result.Code.Value,
			DiscountAmount: result.Amount,
		},
	})
}

// redeem burns one use of a code at order completion time.
func (dh *DiscountHandler) redeem(c echo.Context) error {
	var request api.RedeemDiscountRequest
	if err := c.Bind(&request); err != nil {
		return ce.NewErrorResponse(http.StatusBadRequest, "Error binding parameters", err.Error())
	}
	if request.BusinessUUID == "" || request.Code == "" {
		return ce.NewErrorResponse(http.StatusBadRequest, "Error redeeming discount code", "business_uuid and code are required")
	}

	if err := dh.calculator.Redeem(c.Request().Context(), request.BusinessUUID, request.Code); err != nil {
		return ce.NewErrorResponseFromError("Error redeeming discount code", err)
	}
	return c.NoContent(http.StatusNoContent)
}
