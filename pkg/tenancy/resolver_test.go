package tenancy

import (
	"context"
	"testing"

	"github.com/storefront-services/storefront-backend/pkg/cache"
	"github.com/storefront-services/storefront-backend/pkg/dao"
	ce "github.com/storefront-services/storefront-backend/pkg/errors"
	"github.com/storefront-services/storefront-backend/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testBusinessUUID = "11111111-2222-3333-4444-555555555555"

func testConfig() Config {
	return Config{
		RootDomain: "storefront.test",
		ServerIP:   "203.0.113.10",
	}
}

func notFoundError() *ce.DaoError {
	return &ce.DaoError{NotFound: true, Message: "Could not find business"}
}

func TestStripPort(t *testing.T) {
	assert.Equal(t, "acme.storefront.test", StripPort("acme.storefront.test:8080"))
	assert.Equal(t, "acme.storefront.test", StripPort("acme.storefront.test"))
	assert.Equal(t, "localhost", StripPort("localhost:3000"))
}

func TestSubdomainCandidate(t *testing.T) {
	candidate, ok := SubdomainCandidate("acme.storefront.test")
	assert.True(t, ok)
	assert.Equal(t, "acme", candidate)

	_, ok = SubdomainCandidate("localhost")
	assert.False(t, ok)

	_, ok = SubdomainCandidate(".storefront.test")
	assert.False(t, ok)
}

func TestPlatformPathAllowed(t *testing.T) {
	assert.True(t, PlatformPathAllowed("/"))
	assert.True(t, PlatformPathAllowed("/signup"))
	assert.True(t, PlatformPathAllowed("/signup/"))
	assert.True(t, PlatformPathAllowed("/login"))
	assert.False(t, PlatformPathAllowed("/admin"))
	assert.False(t, PlatformPathAllowed("/businesses/self"))
}

type ResolverSuite struct {
	suite.Suite
	mockDao  *dao.MockDaoRegistry
	resolver *Resolver
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverSuite))
}

func (suite *ResolverSuite) SetupTest() {
	suite.mockDao = dao.GetMockDaoRegistry(suite.T())
	suite.resolver = NewResolver(testConfig(), &suite.mockDao.Business, cache.NewNoOpCache())
}

func (suite *ResolverSuite) activeBusiness() models.Business {
	return models.Business{
		Base:      models.Base{UUID: testBusinessUUID},
		Name:      "Acme Store",
		Subdomain: "acme",
		Status:    models.BusinessStatusActive,
	}
}

func (suite *ResolverSuite) TestResolvePlatformRoot() {
	t := suite.T()

	resolution, err := suite.resolver.Resolve(context.Background(), "storefront.test")
	require.NoError(t, err)
	assert.True(t, resolution.Platform)
	assert.Nil(t, resolution.Business)
}

func (suite *ResolverSuite) TestResolvePlatformRootWithPort() {
	t := suite.T()

	resolution, err := suite.resolver.Resolve(context.Background(), "storefront.test:8443")
	require.NoError(t, err)
	assert.True(t, resolution.Platform)
}

func (suite *ResolverSuite) TestResolveLocalhostRequiresDevMode() {
	t := suite.T()

	suite.mockDao.Business.On("FetchByCustomDomain", mock.Anything, "localhost").
		Return(models.Business{}, notFoundError())

	_, err := suite.resolver.Resolve(context.Background(), "localhost:3000")
	require.Error(t, err)

	devResolver := NewResolver(Config{RootDomain: "storefront.test", DevMode: true},
		&suite.mockDao.Business, cache.NewNoOpCache())
	resolution, err := devResolver.Resolve(context.Background(), "localhost:3000")
	require.NoError(t, err)
	assert.True(t, resolution.Platform)
}

func (suite *ResolverSuite) TestResolveSubdomain() {
	t := suite.T()

	suite.mockDao.Business.On("FetchByCustomDomain", mock.Anything, "acme.storefront.test").
		Return(models.Business{}, notFoundError())
	suite.mockDao.Business.On("FetchBySubdomain", mock.Anything, "acme").
		Return(suite.activeBusiness(), nil)

	resolution, err := suite.resolver.Resolve(context.Background(), "ACME.Storefront.Test:8080")
	require.NoError(t, err)
	assert.False(t, resolution.Platform)
	require.NotNil(t, resolution.Business)
	assert.Equal(t, testBusinessUUID, resolution.Business.UUID)
}

func (suite *ResolverSuite) TestResolveCustomDomainPrecedence() {
	t := suite.T()

	business := suite.activeBusiness()
	business.CustomDomain = func() *string { s := "shop.example.com"; return &s }()
	suite.mockDao.Business.On("FetchByCustomDomain", mock.Anything, "shop.example.com").
		Return(business, nil)

	resolution, err := suite.resolver.Resolve(context.Background(), "shop.example.com")
	require.NoError(t, err)
	require.NotNil(t, resolution.Business)
	assert.Equal(t, testBusinessUUID, resolution.Business.UUID)
	suite.mockDao.Business.AssertNotCalled(t, "FetchBySubdomain", mock.Anything, mock.Anything)
}

func (suite *ResolverSuite) TestResolveSuspendedBusiness() {
	t := suite.T()

	business := suite.activeBusiness()
	business.Status = models.BusinessStatusSuspended
	suite.mockDao.Business.On("FetchByCustomDomain", mock.Anything, "acme.storefront.test").
		Return(models.Business{}, notFoundError())
	suite.mockDao.Business.On("FetchBySubdomain", mock.Anything, "acme").
		Return(business, nil)

	_, err := suite.resolver.Resolve(context.Background(), "acme.storefront.test")
	require.Error(t, err)
	var daoError *ce.DaoError
	require.ErrorAs(t, err, &daoError)
	assert.True(t, daoError.NotFound)
}

func (suite *ResolverSuite) TestResolveUnknownHost() {
	t := suite.T()

	suite.mockDao.Business.On("FetchByCustomDomain", mock.Anything, "ghost.example.com").
		Return(models.Business{}, notFoundError())
	suite.mockDao.Business.On("FetchBySubdomain", mock.Anything, "ghost").
		Return(models.Business{}, notFoundError())

	_, err := suite.resolver.Resolve(context.Background(), "ghost.example.com")
	require.Error(t, err)
	var daoError *ce.DaoError
	require.ErrorAs(t, err, &daoError)
	assert.True(t, daoError.NotFound)
}

func (suite *ResolverSuite) TestResolveEmptyHost() {
	t := suite.T()

	_, err := suite.resolver.Resolve(context.Background(), "")
	require.Error(t, err)
}

func (suite *ResolverSuite) TestResolveBareHostname() {
	t := suite.T()

	// No dot and no custom domain match leaves nothing to resolve.
	suite.mockDao.Business.On("FetchByCustomDomain", mock.Anything, "acme").
		Return(models.Business{}, notFoundError())

	_, err := suite.resolver.Resolve(context.Background(), "acme")
	require.Error(t, err)
	var daoError *ce.DaoError
	require.ErrorAs(t, err, &daoError)
	assert.True(t, daoError.NotFound)
}
