package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmolina/parroquia-api/internal/repository"
)

func newTestContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestFailMapsRepositoryErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{repository.ErrNotFound, http.StatusNotFound},
		{repository.ErrDuplicate, http.StatusConflict},
		{repository.ErrInvalidReference, http.StatusBadRequest},
		{repository.ErrMissingField, http.StatusBadRequest},
		{repository.ErrSlotFull, http.StatusConflict},
	}
	for _, tc := range cases {
		c, rec := newTestContext(http.MethodGet, "/")
		require.NoError(t, fail(c, tc.err, false))
		assert.Equal(t, tc.code, rec.Code, "error %v", tc.err)
		assert.Contains(t, rec.Body.String(), `"success":false`)
	}
}

func TestFailHidesDetailInProd(t *testing.T) {
	boom := errors.New("dial tcp: connection refused")

	c, rec := newTestContext(http.MethodGet, "/")
	require.NoError(t, fail(c, boom, true))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.Contains(t, rec.Body.String(), "Error interno del servidor")

	c, rec = newTestContext(http.MethodGet, "/")
	require.NoError(t, fail(c, boom, false))
	assert.Contains(t, rec.Body.String(), "connection refused")
}

func TestPathID(t *testing.T) {
	c, _ := newTestContext(http.MethodGet, "/")
	c.SetParamNames("id")
	c.SetParamValues("42")
	id, err := pathID(c)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)

	c.SetParamValues("abc")
	_, err = pathID(c)
	assert.Error(t, err)

	c.SetParamValues("-1")
	_, err = pathID(c)
	assert.Error(t, err)
}

func TestQueryInt(t *testing.T) {
	c, _ := newTestContext(http.MethodGet, "/?limit=25&bad=x")
	assert.Equal(t, 25, queryInt(c, "limit", 0))
	assert.Equal(t, 10, queryInt(c, "bad", 10))
	assert.Equal(t, 5, queryInt(c, "missing", 5))
}
