package handler

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/storefront-services/storefront-backend/pkg/api"
	"github.com/storefront-services/storefront-backend/pkg/cache"
	"github.com/storefront-services/storefront-backend/pkg/config"
	"github.com/storefront-services/storefront-backend/pkg/dao"
	"github.com/storefront-services/storefront-backend/pkg/db"
	"github.com/storefront-services/storefront-backend/pkg/discounts"
	"github.com/storefront-services/storefront-backend/pkg/event"
	"github.com/storefront-services/storefront-backend/pkg/instrumentation"
	"github.com/storefront-services/storefront-backend/pkg/jwt"
	"github.com/storefront-services/storefront-backend/pkg/middleware"
	"github.com/storefront-services/storefront-backend/pkg/tenancy"
)

const DefaultOffset = 0
const DefaultLimit = 100
const MaxLimit = 200

func tenancyConfig() tenancy.Config {
	platform := config.Get().Platform
	return tenancy.Config{
		RootDomain: platform.RootDomain,
		ServerIP:   platform.ServerIP,
		DevMode:    platform.DevMode,
	}
}

// RegisterRoutes wires every versioned API route plus the unversioned edge
// endpoints onto the echo engine.
func RegisterRoutes(engine *echo.Echo, metrics *instrumentation.Metrics) {
	platform := config.Get().Platform

	producer, err := event.NewProducer(&config.Get().Kafka)
	if err != nil {
		panic(err)
	}
	appCache := cache.Initialize()
	daoReg := dao.GetDaoRegistry(db.DB)
	jwtManager := jwt.NewManager(platform.JWTSecret, platform.JWTExpiration)
	authMiddleware := middleware.Authenticate(jwtManager, nil)

	resolver := tenancy.NewResolver(tenancyConfig(), daoReg.Business, appCache)
	lifecycle := tenancy.NewLifecycle(tenancyConfig(), daoReg, tenancy.NewIPResolver(platform.DNSTimeout), appCache, producer)
	calculator := discounts.NewCalculator(daoReg)

	paths := []string{api.FullRootPath(), api.MajorRootPath()}
	for i := 0; i < len(paths); i++ {
		group := engine.Group(paths[i])

		RegisterBusinessRoutes(group, daoReg, producer, jwtManager, resolver, authMiddleware)
		RegisterDomainRoutes(group, daoReg, lifecycle, metrics, authMiddleware)
		RegisterDiscountRoutes(group, daoReg, calculator, metrics, authMiddleware)
	}

	RegisterRoutingCheck(engine, lifecycle)
}

func RegisterPing(engine *echo.Echo) {
	engine.GET("/ping", ping)
	engine.GET("/ping/", ping)
}

func ping(c echo.Context) error {
	return c.JSON(200, echo.Map{
		"message": "pong",
	})
}

func createLink(c echo.Context, offset int) string {
	req := c.Request()
	q := req.URL.Query()
	page := ParsePagination(c)

	q.Set("limit", strconv.Itoa(page.Limit))
	q.Set("offset", strconv.Itoa(offset))

	params, _ := url.PathUnescape(q.Encode())
	return fmt.Sprintf("%v?%v", req.URL.Path, params)
}

// setCollectionResponseMetadata determines metadata of collection response based on context and collection size.
// Returns collection response with updated metadata.
func setCollectionResponseMetadata(collection api.CollectionMetadataSettable, c echo.Context, totalCount int64) api.CollectionMetadataSettable {
	page := ParsePagination(c)
	var lastPage int
	if int(totalCount) > 0 && (int(totalCount)%page.Limit) == 0 {
		lastPage = int(totalCount) - page.Limit
	} else {
		lastPage = int(totalCount) - int(totalCount)%page.Limit
	}
	links := api.Links{
		First: createLink(c, 0),
		Last:  createLink(c, lastPage),
	}
	if page.Offset+page.Limit < int(totalCount) {
		links.Next = createLink(c, page.Offset+page.Limit)
	}
	if page.Offset-page.Limit >= 0 {
		links.Prev = createLink(c, page.Offset-page.Limit)
	}

	collection.SetMetadata(api.ResponseMetadata{
		Count:  totalCount,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, links)
	return collection
}

func ParsePagination(c echo.Context) api.PaginationData {
	pageData := api.PaginationData{Limit: DefaultLimit, Offset: DefaultOffset}
	err := echo.QueryParamsBinder(c).
		Int("limit", &pageData.Limit).
		Int("offset", &pageData.Offset).
		BindError()

	if err != nil {
		log.Error().Err(err).Msg("Failed to bind pagination.")
	}

	if pageData.Limit > MaxLimit {
		pageData.Limit = MaxLimit
	}
	if pageData.Limit <= 0 {
		pageData.Limit = DefaultLimit
	}
	if pageData.Offset < 0 {
		pageData.Offset = DefaultOffset
	}
	return pageData
}
