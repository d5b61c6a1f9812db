package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/storefront-services/storefront-backend/pkg/api"
	"github.com/storefront-services/storefront-backend/pkg/cache"
	"github.com/storefront-services/storefront-backend/pkg/config"
	"github.com/storefront-services/storefront-backend/pkg/dao"
	ce "github.com/storefront-services/storefront-backend/pkg/errors"
	"github.com/storefront-services/storefront-backend/pkg/event"
	"github.com/storefront-services/storefront-backend/pkg/jwt"
	"github.com/storefront-services/storefront-backend/pkg/middleware"
	"github.com/storefront-services/storefront-backend/pkg/models"
	"github.com/storefront-services/storefront-backend/pkg/tenancy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

const mockBusinessUUID = "11111111-2222-3333-4444-555555555555"

var testTenancyConfig = tenancy.Config{
	RootDomain: "storefront.test",
	ServerIP:   "203.0.113.10",
}

type BusinessSuite struct {
	suite.Suite
	echo    *echo.Echo
	mockDao *dao.MockDaoRegistry
	jwt     *jwt.Manager
}

func TestBusinessSuite(t *testing.T) {
	suite.Run(t, new(BusinessSuite))
}

func (suite *BusinessSuite) SetupTest() {
	suite.mockDao = dao.GetMockDaoRegistry(suite.T())
	suite.jwt = jwt.NewManager("handler-test-secret", time.Hour)
	suite.echo = echo.New()
	suite.echo.HTTPErrorHandler = config.CustomHTTPErrorHandler

	daoReg := suite.mockDao.ToDaoRegistry()
	resolver := tenancy.NewResolver(testTenancyConfig, daoReg.Business, cache.NewNoOpCache())
	group := suite.echo.Group(api.FullRootPath())
	RegisterBusinessRoutes(group, daoReg, event.NewNoOpProducer(), suite.jwt, resolver,
		middleware.Authenticate(suite.jwt, nil))
}

func (suite *BusinessSuite) serve(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(suite.T(), err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader([]byte{})
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	return rec
}

func (suite *BusinessSuite) token() string {
	token, err := suite.jwt.GenerateToken(mockBusinessUUID, "acme")
	require.NoError(suite.T(), err)
	return token
}

func (suite *BusinessSuite) TestSignup() {
	t := suite.T()

	expected := api.BusinessResponse{
		UUID:         mockBusinessUUID,
		Name:         "Acme Store",
		Subdomain:    "acme",
		DomainStatus: string(models.DomainStatusNone),
		Status:       string(models.BusinessStatusActive),
		Template:     "classic",
	}
	suite.mockDao.Business.On("Create", mock.Anything, mock.AnythingOfType("*models.Business")).
		Run(func(args mock.Arguments) {
			business := args.Get(1).(*models.Business)
			assert.Equal(t, "Acme Store", business.Name)
			assert.Equal(t, "acme", business.Subdomain)
			assert.NotEmpty(t, business.ApiKeyDigest)
		}).
		Return(expected, nil)

	rec := suite.serve(http.MethodPost, api.FullRootPath()+"/signup",
		api.SignupRequest{Name: "Acme Store", Subdomain: "acme", Template: "classic"}, "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	var response api.SignupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, expected, response.Business)
	assert.Contains(t, response.ApiKey, "sk_")
}

func (suite *BusinessSuite) TestSignupSubdomainTaken() {
	t := suite.T()

	suite.mockDao.Business.On("Create", mock.Anything, mock.AnythingOfType("*models.Business")).
		Return(api.BusinessResponse{}, &ce.DaoError{AlreadyExists: true, Message: "Subdomain already taken"})

	rec := suite.serve(http.MethodPost, api.FullRootPath()+"/signup",
		api.SignupRequest{Name: "Acme Store", Subdomain: "acme"}, "")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func (suite *BusinessSuite) TestLogin() {
	t := suite.T()

	digest, err := bcrypt.GenerateFromPassword([]byte("sk_testkey"), bcrypt.MinCost)
	require.NoError(t, err)
	business := models.Business{
		Base:         models.Base{UUID: mockBusinessUUID},
		Subdomain:    "acme",
		Status:       models.BusinessStatusActive,
		ApiKeyDigest: string(digest),
	}
	suite.mockDao.Business.On("FetchBySubdomain", mock.Anything, "acme").Return(business, nil)

	rec := suite.serve(http.MethodPost, api.FullRootPath()+"/login",
		api.LoginRequest{Subdomain: "acme", ApiKey: "sk_testkey"}, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var response api.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	claims, err := suite.jwt.VerifyToken(response.Token)
	require.NoError(t, err)
	assert.Equal(t, mockBusinessUUID, claims.BusinessUUID)
}

func (suite *BusinessSuite) TestLoginBadApiKey() {
	t := suite.T()

	digest, err := bcrypt.GenerateFromPassword([]byte("sk_testkey"), bcrypt.MinCost)
	require.NoError(t, err)
	business := models.Business{
		Base:         models.Base{UUID: mockBusinessUUID},
		Subdomain:    "acme",
		Status:       models.BusinessStatusActive,
		ApiKeyDigest: string(digest),
	}
	suite.mockDao.Business.On("FetchBySubdomain", mock.Anything, "acme").Return(business, nil)

	rec := suite.serve(http.MethodPost, api.FullRootPath()+"/login",
		api.LoginRequest{Subdomain: "acme", ApiKey: "sk_wrong"}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func (suite *BusinessSuite) TestLoginUnknownSubdomain() {
	t := suite.T()

	suite.mockDao.Business.On("FetchBySubdomain", mock.Anything, "ghost").
		Return(models.Business{}, &ce.DaoError{NotFound: true, Message: "Could not find business"})

	rec := suite.serve(http.MethodPost, api.FullRootPath()+"/login",
		api.LoginRequest{Subdomain: "ghost", ApiKey: "sk_testkey"}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func (suite *BusinessSuite) TestFetchSelf() {
	t := suite.T()

	expected := api.BusinessResponse{UUID: mockBusinessUUID, Name: "Acme Store", Subdomain: "acme"}
	suite.mockDao.Business.On("Fetch", mock.Anything, mockBusinessUUID).Return(expected, nil)

	rec := suite.serve(http.MethodGet, api.FullRootPath()+"/businesses/self", nil, suite.token())

	assert.Equal(t, http.StatusOK, rec.Code)
	var response api.BusinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, expected, response)
}

func (suite *BusinessSuite) TestFetchSelfUnauthenticated() {
	t := suite.T()

	rec := suite.serve(http.MethodGet, api.FullRootPath()+"/businesses/self", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func (suite *BusinessSuite) TestUpdateSelf() {
	t := suite.T()

	name := "Acme Rebranded"
	suite.mockDao.Business.On("Update", mock.Anything, mockBusinessUUID,
		api.BusinessUpdateRequest{Name: &name}).Return(nil)
	suite.mockDao.Business.On("Fetch", mock.Anything, mockBusinessUUID).
		Return(api.BusinessResponse{UUID: mockBusinessUUID, Name: name}, nil)

	rec := suite.serve(http.MethodPut, api.FullRootPath()+"/businesses/self",
		api.BusinessUpdateRequest{Name: &name}, suite.token())

	assert.Equal(t, http.StatusOK, rec.Code)
}

func (suite *BusinessSuite) TestResolveSubdomain() {
	t := suite.T()

	business := models.Business{
		Base:      models.Base{UUID: mockBusinessUUID},
		Name:      "Acme Store",
		Subdomain: "acme",
		Status:    models.BusinessStatusActive,
	}
	suite.mockDao.Business.On("FetchByCustomDomain", mock.Anything, "acme.storefront.test").
		Return(models.Business{}, &ce.DaoError{NotFound: true, Message: "Could not find business"})
	suite.mockDao.Business.On("FetchBySubdomain", mock.Anything, "acme").Return(business, nil)

	rec := suite.serve(http.MethodGet,
		fmt.Sprintf("%s/resolve?host=%s", api.FullRootPath(), "acme.storefront.test:8080"), nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var response api.ResolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.False(t, response.Platform)
	require.NotNil(t, response.Business)
	assert.Equal(t, "acme", response.Business.Subdomain)
}

func (suite *BusinessSuite) TestResolvePlatform() {
	t := suite.T()

	rec := suite.serve(http.MethodGet,
		fmt.Sprintf("%s/resolve?host=%s", api.FullRootPath(), "storefront.test"), nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var response api.ResolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Platform)
	assert.Nil(t, response.Business)
	assert.Empty(t, response.Redirect)
}

func (suite *BusinessSuite) TestResolvePlatformPathRedirect() {
	t := suite.T()

	rec := suite.serve(http.MethodGet,
		fmt.Sprintf("%s/resolve?host=storefront.test&path=/admin", api.FullRootPath()), nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var response api.ResolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Platform)
	assert.Equal(t, "/", response.Redirect)

	rec = suite.serve(http.MethodGet,
		fmt.Sprintf("%s/resolve?host=storefront.test&path=/signup", api.FullRootPath()), nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Platform)
	assert.Empty(t, response.Redirect)
}

func (suite *BusinessSuite) TestResolveUnknownHost() {
	t := suite.T()

	suite.mockDao.Business.On("FetchByCustomDomain", mock.Anything, "unknown.example.com").
		Return(models.Business{}, &ce.DaoError{NotFound: true, Message: "Could not find business"})
	suite.mockDao.Business.On("FetchBySubdomain", mock.Anything, "unknown").
		Return(models.Business{}, &ce.DaoError{NotFound: true, Message: "Could not find business"})

	rec := suite.serve(http.MethodGet,
		fmt.Sprintf("%s/resolve?host=%s", api.FullRootPath(), "unknown.example.com"), nil, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func (suite *BusinessSuite) TestResolveMissingHost() {
	t := suite.T()

	rec := suite.serve(http.MethodGet, api.FullRootPath()+"/resolve", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
