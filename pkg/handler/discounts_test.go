package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/storefront-services/storefront-backend/pkg/api"
	"github.com/storefront-services/storefront-backend/pkg/config"
	"github.com/storefront-services/storefront-backend/pkg/dao"
	"github.com/storefront-services/storefront-backend/pkg/discounts"
	ce "github.com/storefront-services/storefront-backend/pkg/errors"
	"github.com/storefront-services/storefront-backend/pkg/instrumentation"
	"github.com/storefront-services/storefront-backend/pkg/jwt"
	"github.com/storefront-services/storefront-backend/pkg/middleware"
	"github.com/storefront-services/storefront-backend/pkg/models"
	"github.com/storefront-services/storefront-backend/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const mockDiscountUUID = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"

type DiscountSuite struct {
	suite.Suite
	echo    *echo.Echo
	mockDao *dao.MockDaoRegistry
	jwt     *jwt.Manager
}

func TestDiscountSuite(t *testing.T) {
	suite.Run(t, new(DiscountSuite))
}

func (suite *DiscountSuite) SetupTest() {
	suite.mockDao = dao.GetMockDaoRegistry(suite.T())
	suite.jwt = jwt.NewManager("handler-test-secret", time.Hour)
	suite.echo = echo.New()
	suite.echo.HTTPErrorHandler = config.CustomHTTPErrorHandler

	daoReg := suite.mockDao.ToDaoRegistry()
	group := suite.echo.Group(api.FullRootPath())
	RegisterDiscountRoutes(group, daoReg, discounts.NewCalculator(daoReg),
		instrumentation.NewMetrics(prometheus.NewRegistry()), middleware.Authenticate(suite.jwt, nil))
}

func (suite *DiscountSuite) serve(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
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

func (suite *DiscountSuite) token() string {
	token, err := suite.jwt.GenerateToken(mockBusinessUUID, "acme")
	require.NoError(suite.T(), err)
	return token
}

func (suite *DiscountSuite) TestCreate() {
	t := suite.T()

	request := api.DiscountCodeRequest{
		Code:  utils.Ptr("SAVE10"),
		Type:  utils.Ptr(string(models.DiscountTypePercentage)),
		Value: utils.Ptr(int64(10)),
	}
	expected := api.DiscountCodeResponse{
		UUID:  mockDiscountUUID,
		Code:  "SAVE10",
		Type:  string(models.DiscountTypePercentage),
		Value: 10,
	}
	suite.mockDao.DiscountCode.On("Create", mock.Anything, mockBusinessUUID, request).Return(expected, nil)

	rec := suite.serve(http.MethodPost, api.FullRootPath()+"/discount_codes/", request, suite.token())

	assert.Equal(t, http.StatusCreated, rec.Code)
	var response api.DiscountCodeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, expected, response)
}

func (suite *DiscountSuite) TestCreateDuplicateCode() {
	t := suite.T()

	request := api.DiscountCodeRequest{
		Code:  utils.Ptr("SAVE10"),
		Type:  utils.Ptr(string(models.DiscountTypePercentage)),
		Value: utils.Ptr(int64(10)),
	}
	suite.mockDao.DiscountCode.On("Create", mock.Anything, mockBusinessUUID, request).
		Return(api.DiscountCodeResponse{}, &ce.DaoError{AlreadyExists: true, Message: "Discount code already exists"})

	rec := suite.serve(http.MethodPost, api.FullRootPath()+"/discount_codes/", request, suite.token())
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func (suite *DiscountSuite) TestList() {
	t := suite.T()

	collection := api.DiscountCodeCollectionResponse{
		Data: []api.DiscountCodeResponse{{UUID: mockDiscountUUID, Code: "SAVE10"}},
	}
	suite.mockDao.DiscountCode.On("List", mock.Anything, mockBusinessUUID,
		api.PaginationData{Limit: DefaultLimit}).Return(collection, int64(1), nil)

	rec := suite.serve(http.MethodGet, api.FullRootPath()+"/discount_codes/", nil, suite.token())

	assert.Equal(t, http.StatusOK, rec.Code)
	var response api.DiscountCodeCollectionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Len(t, response.Data, 1)
	assert.Equal(t, int64(1), response.Meta.Count)
}

func (suite *DiscountSuite) TestFetch() {
	t := suite.T()

	expected := api.DiscountCodeResponse{UUID: mockDiscountUUID, Code: "SAVE10"}
	suite.mockDao.DiscountCode.On("Fetch", mock.Anything, mockBusinessUUID, mockDiscountUUID).Return(expected, nil)

	rec := suite.serve(http.MethodGet, api.FullRootPath()+"/discount_codes/"+mockDiscountUUID, nil, suite.token())

	assert.Equal(t, http.StatusOK, rec.Code)
}

func (suite *DiscountSuite) TestFetchNotFound() {
	t := suite.T()

	suite.mockDao.DiscountCode.On("Fetch", mock.Anything, mockBusinessUUID, mockDiscountUUID).
		Return(api.DiscountCodeResponse{}, &ce.DaoError{NotFound: true, Message: "Could not find discount code"})

	rec := suite.serve(http.MethodGet, api.FullRootPath()+"/discount_codes/"+mockDiscountUUID, nil, suite.token())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func (suite *DiscountSuite) TestUpdate() {
	t := suite.T()

	request := api.DiscountCodeRequest{Active: utils.Ptr(false)}
	suite.mockDao.DiscountCode.On("Update", mock.Anything, mockBusinessUUID, mockDiscountUUID, request).Return(nil)
	suite.mockDao.DiscountCode.On("Fetch", mock.Anything, mockBusinessUUID, mockDiscountUUID).
		Return(api.DiscountCodeResponse{UUID: mockDiscountUUID, Active: false}, nil)

	rec := suite.serve(http.MethodPut, api.FullRootPath()+"/discount_codes/"+mockDiscountUUID, request, suite.token())
	assert.Equal(t, http.StatusOK, rec.Code)
}

func (suite *DiscountSuite) TestDelete() {
	t := suite.T()

	suite.mockDao.DiscountCode.On("Delete", mock.Anything, mockBusinessUUID, mockDiscountUUID).Return(nil)

	rec := suite.serve(http.MethodDelete, api.FullRootPath()+"/discount_codes/"+mockDiscountUUID, nil, suite.token())
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func (suite *DiscountSuite) TestValidate() {
	t := suite.T()

	code := models.DiscountCode{
		Base:         models.Base{UUID: mockDiscountUUID},
		BusinessUUID: mockBusinessUUID,
		Code:         "SAVE10",
		Type:         models.DiscountTypePercentage,
		Value:        10,
		Active:       true,
	}
	suite.mockDao.DiscountCode.On("FetchByCode", mock.Anything, mockBusinessUUID, "SAVE10").Return(code, nil)

	rec := suite.serve(http.MethodPost, api.FullRootPath()+"/discounts/validate",
		api.ValidateDiscountRequest{Code: "save10", BusinessUUID: mockBusinessUUID, CartTotalCents: 10000}, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var response api.ValidateDiscountResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Valid)
	require.NotNil(t, response.Discount)
	assert.Equal(t, int64(1000), response.Discount.DiscountAmount)
	assert.Empty(t, response.Error)
}

func (suite *DiscountSuite) TestValidateRejected() {
	t := suite.T()

	suite.mockDao.DiscountCode.On("FetchByCode", mock.Anything, mockBusinessUUID, "MISSING").
		Return(models.DiscountCode{}, &ce.DaoError{NotFound: true, Message: "Could not find discount code"})

	rec := suite.serve(http.MethodPost, api.FullRootPath()+"/discounts/validate",
		api.ValidateDiscountRequest{Code: "MISSING", BusinessUUID: mockBusinessUUID, CartTotalCents: 10000}, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var response api.ValidateDiscountResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.False(t, response.Valid)
	assert.Nil(t, response.Discount)
	assert.NotEmpty(t, response.Error)
}

func (suite *DiscountSuite) TestValidateMissingFields() {
	t := suite.T()

	rec := suite.serve(http.MethodPost, api.FullRootPath()+"/discounts/validate",
		api.ValidateDiscountRequest{Code: "SAVE10"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func (suite *DiscountSuite) TestRedeem() {
	t := suite.T()

	suite.mockDao.DiscountCode.On("IncrementUsage", mock.Anything, mockBusinessUUID, "SAVE10").Return(nil)

	rec := suite.serve(http.MethodPost, api.FullRootPath()+"/discounts/redeem",
		api.RedeemDiscountRequest{Code: "SAVE10", BusinessUUID: mockBusinessUUID}, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func (suite *DiscountSuite) TestRedeemLimitReached() {
	t := suite.T()

	suite.mockDao.DiscountCode.On("IncrementUsage", mock.Anything, mockBusinessUUID, "SAVE10").
		Return(&ce.DaoError{NotFound: true, Message: "Discount code not found or usage limit reached"})

	rec := suite.serve(http.MethodPost, api.FullRootPath()+"/discounts/redeem",
		api.RedeemDiscountRequest{Code: "SAVE10", BusinessUUID: mockBusinessUUID}, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
