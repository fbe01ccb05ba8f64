package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/starwars-api/internal/errs"
	"github.com/deppfellow/starwars-api/internal/middleware"
	"github.com/deppfellow/starwars-api/internal/testinfra"
)

func TestNewRequest_AllocatesPerCall(t *testing.T) {
	template := &IDRequest{ID: 42}

	first := newRequest(template)
	second := newRequest(template)

	assert.NotSame(t, template, first)
	assert.NotSame(t, first, second)
	assert.Zero(t, first.ID)

	first.ID = 7
	assert.EqualValues(t, 42, template.ID)
	assert.Zero(t, second.ID)
}

func TestHandle_BindsPathAndWritesStatus(t *testing.T) {
	s := testinfra.NewTestServer(t)
	h := NewHandler(s)

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(s).GlobalErrorHandler
	e.POST("/things/:id", Handle(h, func(c echo.Context, req *IDRequest) (map[string]int64, error) {
		return map[string]int64{"id": req.ID}, nil
	}, http.StatusCreated, &IDRequest{}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/things/12", nil))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":12}`, rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/things/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/things/nope", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("nope")
	err := Handle(h, func(c echo.Context, req *IDRequest) (map[string]int64, error) {
		return map[string]int64{"id": req.ID}, nil
	}, http.StatusCreated, &IDRequest{})(c)
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestSitemap_ListRoutes(t *testing.T) {
	s := testinfra.NewTestServer(t)
	h := NewSitemapHandler(s)

	e := echo.New()
	noop := func(c echo.Context) error { return nil }
	e.GET("/b", noop)
	e.DELETE("/a/:id", noop)
	e.POST("/a/:id", noop)
	e.OPTIONS("/b", noop)
	e.GET("/b", noop)

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	sitemap, err := h.ListRoutes(c, &EmptyRequest{})
	require.NoError(t, err)

	assert.Equal(t, []Route{
		{Method: http.MethodDelete, Path: "/a/:id"},
		{Method: http.MethodPost, Path: "/a/:id"},
		{Method: http.MethodGet, Path: "/b"},
	}, sitemap.Routes)
}
