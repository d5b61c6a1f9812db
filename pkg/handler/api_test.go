package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/storefront-services/storefront-backend/pkg/api"
	"github.com/stretchr/testify/assert"
)

func paginationContext(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestParsePagination(t *testing.T) {
	c := paginationContext("/discount_codes/")
	page := ParsePagination(c)
	assert.Equal(t, DefaultLimit, page.Limit)
	assert.Equal(t, DefaultOffset, page.Offset)

	c = paginationContext("/discount_codes/?limit=30&offset=60")
	page = ParsePagination(c)
	assert.Equal(t, 30, page.Limit)
	assert.Equal(t, 60, page.Offset)

	c = paginationContext("/discount_codes/?limit=1000")
	page = ParsePagination(c)
	assert.Equal(t, MaxLimit, page.Limit)

	c = paginationContext("/discount_codes/?limit=-5&offset=-10")
	page = ParsePagination(c)
	assert.Equal(t, DefaultLimit, page.Limit)
	assert.Equal(t, DefaultOffset, page.Offset)
}

func TestSetCollectionResponseMetadata(t *testing.T) {
	c := paginationContext("/domains/queue?limit=2&offset=2")
	collection := &api.DomainQueueCollectionResponse{
		Data: []api.DomainQueueEntryResponse{{Domain: "a.example.com"}, {Domain: "b.example.com"}},
	}

	setCollectionResponseMetadata(collection, c, 6)

	assert.Equal(t, int64(6), collection.Meta.Count)
	assert.Equal(t, 2, collection.Meta.Limit)
	assert.Equal(t, 2, collection.Meta.Offset)
	assert.NotEmpty(t, collection.Links.First)
	assert.NotEmpty(t, collection.Links.Last)
	assert.Contains(t, collection.Links.Next, "offset=4")
	assert.Contains(t, collection.Links.Prev, "offset=0")
}

func TestPing(t *testing.T) {
	e := echo.New()
	RegisterPing(e)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pong")
}
