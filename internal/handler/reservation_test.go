package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmolina/parroquia-api/internal/config"
)

// These tests cover the request validation layer, which rejects malformed
// input before any repository is touched.

func jsonContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAvailabilityRejectsBadDate(t *testing.T) {
	h := NewReservationHandler(config.Config{Env: "dev"}, nil, nil, nil)
	for _, date := range []string{"", "15-03-2026", "2026-3-1", "2026-02-30"} {
		c, rec := jsonContext(t, http.MethodGet, "/api/reservations/availability?date="+date, "")
		require.NoError(t, h.Availability(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "date %q", date)
		assert.Contains(t, rec.Body.String(), "Fecha inválida")
	}
}

func TestVerifyRejectsBadDocumento(t *testing.T) {
	h := NewReservationHandler(config.Config{Env: "dev"}, nil, nil, nil)
	c, rec := jsonContext(t, http.MethodPost, "/api/reservations/verify",
		`{"codigo":"ab12cd34","documento":"123"}`)
	require.NoError(t, h.Verify(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "8 dígitos")
}

func TestVerifyRequiresBothFields(t *testing.T) {
	h := NewReservationHandler(config.Config{Env: "dev"}, nil, nil, nil)
	c, rec := jsonContext(t, http.MethodPost, "/api/reservations/verify",
		`{"codigo":"ab12cd34"}`)
	require.NoError(t, h.Verify(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateReservationRejectsBadInput(t *testing.T) {
	h := NewReservationHandler(config.Config{Env: "dev"}, nil, nil, nil)

	// missing required fields
	c, rec := jsonContext(t, http.MethodPost, "/api/reservations", `{"fecha":"2026-03-16"}`)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// malformed date
	c, rec = jsonContext(t, http.MethodPost, "/api/reservations",
		`{"fecha":"16/03/2026","hora":"08:00","nombre":"Juan","documento":"12345678","mass_type_id":1}`)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Fecha inválida")

	// malformed documento
	c, rec = jsonContext(t, http.MethodPost, "/api/reservations",
		`{"fecha":"2026-03-16","hora":"08:00","nombre":"Juan","documento":"12345","mass_type_id":1}`)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "8 dígitos")
}

func TestAdminListRejectsBadFilters(t *testing.T) {
	h := NewReservationHandler(config.Config{Env: "dev"}, nil, nil, nil)

	c, rec := jsonContext(t, http.MethodGet, "/api/admin/reservations?status=bogus", "")
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Estado inválido")

	c, rec = jsonContext(t, http.MethodGet, "/api/admin/reservations?date=tomorrow", "")
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	h := NewReservationHandler(config.Config{Env: "dev"}, nil, nil, nil)
	c, rec := jsonContext(t, http.MethodPut, "/api/admin/reservations/1/status",
		`{"status":"approved"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.SetStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Estado inválido")
}
