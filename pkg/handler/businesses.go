package handler

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/storefront-services/storefront-backend/pkg/api"
	"github.com/storefront-services/storefront-backend/pkg/config"
	"github.com/storefront-services/storefront-backend/pkg/dao"
	ce "github.com/storefront-services/storefront-backend/pkg/errors"
	"github.com/storefront-services/storefront-backend/pkg/event"
	"github.com/storefront-services/storefront-backend/pkg/jwt"
	"github.com/storefront-services/storefront-backend/pkg/middleware"
	"github.com/storefront-services/storefront-backend/pkg/models"
	"github.com/storefront-services/storefront-backend/pkg/tenancy"
	"golang.org/x/crypto/bcrypt"
)

type BusinessHandler struct {
	Dao      dao.DaoRegistry
	producer event.Producer
	jwt      *jwt.Manager
	resolver *tenancy.Resolver
}

func RegisterBusinessRoutes(engine *echo.Group, daoReg *dao.DaoRegistry, producer event.Producer,
	jwtManager *jwt.Manager, resolver *tenancy.Resolver, auth echo.MiddlewareFunc) {
	bh := BusinessHandler{
		Dao:      *daoReg,
		producer: producer,
		jwt:      jwtManager,
		resolver: resolver,
	}
	engine.POST("/signup", bh.signup)
	engine.POST("/login", bh.login)
	engine.GET("/resolve", bh.resolve)
	engine.GET("/businesses/self", bh.fetchSelf, auth)
	engine.PUT("/businesses/self", bh.updateSelf, auth)
}

func (bh *BusinessHandler) signup(c echo.Context) error {
	var request api.SignupRequest
	if err := c.Bind(&request); err != nil {
		return ce.NewErrorResponse(http.StatusBadRequest, "Error binding parameters", err.Error())
	}

	invitation := config.Get().Platform.InvitationCode
	if invitation != "" && subtle.ConstantTimeCompare([]byte(invitation), []byte(request.InvitationCode)) != 1 {
		return ce.NewErrorResponse(http.StatusForbidden, "Error signing up", "Invalid invitation code")
	}

	apiKey, digest, err := newApiKey()
	if err != nil {
		return ce.NewErrorResponseFromError("Error signing up", err)
	}

	business := models.Business{
		Name:         request.Name,
		Subdomain:    request.Subdomain,
		Template:     request.Template,
		ApiKeyDigest: digest,
	}
	response, err := bh.Dao.Business.Create(c.Request().Context(), &business)
	if err != nil {
		return ce.NewErrorResponseFromError("Error signing up", err)
	}

	bh.producer.SendNotification(event.BusinessCreated, event.BusinessPayload{
		BusinessUUID: response.UUID,
		Subdomain:    response.Subdomain,
	})

	return c.JSON(http.StatusCreated, api.SignupResponse{
		Business: response,
		ApiKey:   apiKey,
	})
}

func (bh *BusinessHandler) login(c echo.Context) error {
	var request api.LoginRequest
	if err := c.Bind(&request); err != nil {
		return ce.NewErrorResponse(http.StatusBadRequest, "Error binding parameters", err.Error())
	}

	// The failure response never distinguishes a missing business from a
	// bad key.
	business, err := bh.Dao.Business.FetchBySubdomain(c.Request().Context(), request.Subdomain)
	if err != nil {
		return ce.NewErrorResponse(http.StatusUnauthorized, "Error logging in", "Invalid subdomain or api key")
	}
	if bcrypt.CompareHashAndPassword([]byte(business.ApiKeyDigest), []byte(request.ApiKey)) != nil {
		return ce.NewErrorResponse(http.StatusUnauthorized, "Error logging in", "Invalid subdomain or api key")
	}
	if business.Status != models.BusinessStatusActive {
		return ce.NewErrorResponse(http.StatusForbidden, "Error logging in", "Business is not active")
	}

	token, err := bh.jwt.GenerateToken(business.UUID, business.Subdomain)
	if err != nil {
		return ce.NewErrorResponseFromError("Error logging in", err)
	}
	return c.JSON(http.StatusOK, api.LoginResponse{Token: token})
}

func (bh *BusinessHandler) fetchSelf(c echo.Context) error {
	uuid := middleware.BusinessUUID(c)
	response, err := bh.Dao.Business.Fetch(c.Request().Context(), uuid)
	if err != nil {
		return ce.NewErrorResponseFromError("Error fetching business", err)
	}
	return c.JSON(http.StatusOK, response)
}

func (bh *BusinessHandler) updateSelf(c echo.Context) error {
	uuid := middleware.BusinessUUID(c)

	var request api.BusinessUpdateRequest
	if err := c.Bind(&request); err != nil {
		return ce.NewErrorResponse(http.StatusBadRequest, "Error binding parameters", err.Error())
	}
	if err := bh.Dao.Business.Update(c.Request().Context(), uuid, request); err != nil {
		return ce.NewErrorResponseFromError("Error updating business", err)
	}
	response, err := bh.Dao.Business.Fetch(c.Request().Context(), uuid)
	if err != nil {
		return ce.NewErrorResponseFromError("Error updating business", err)
	}
	return c.JSON(http.StatusOK, response)
}

// resolve answers the storefront renderer's host lookup. An unknown host is
// a 404; there is no fallback tenant.
func (bh *BusinessHandler) resolve(c echo.Context) error {
	host := c.QueryParam("host")
	if host == "" {
		return ce.NewErrorResponse(http.StatusBadRequest, "Error resolving host", "host parameter is required")
	}

	resolution, err := bh.resolver.Resolve(c.Request().Context(), host)
	if err != nil {
		return ce.NewErrorResponseFromError("Error resolving host", err)
	}
	if resolution.Platform {
		response := api.ResolveResponse{Platform: true}
		if path := c.QueryParam("path"); path != "" && !tenancy.PlatformPathAllowed(path) {
			response.Redirect = "/"
		}
		return c.JSON(http.StatusOK, response)
	}
	business := businessToApi(*resolution.Business)
	return c.JSON(http.StatusOK, api.ResolveResponse{Business: &business})
}

func businessToApi(business models.Business) api.BusinessResponse {
	return api.BusinessResponse{
		UUID:         business.UUID,
		Name:         business.Name,
		Subdomain:    business.Subdomain,
		CustomDomain: business.CustomDomain,
		DomainStatus: string(business.DomainStatus),
		Status:       string(business.Status),
		Template:     business.Template,
	}
}

// newApiKey returns a fresh plaintext api key and its bcrypt digest. The
// plaintext is shown to the caller once and never stored.
func newApiKey() (string, string, error) {
	raw := make([]byte, 24)
	if _, err := rand.Read(raw); err != nil {
		return "", "", err
	}
	apiKey := "sk_" + hex.EncodeToString(raw)
	digest, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.DefaultCost)
	if err != nil {
		return "", "", err
	}
	return apiKey, string(digest), nil
}
