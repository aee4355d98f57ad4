package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmolina/parroquia-api/internal/model"
	"github.com/dmolina/parroquia-api/internal/utils"
)

const testCookie = "parroquia_session"

func runSessionAuth(t *testing.T, cookie *http.Cookie) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/banners", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := SessionAuth("secret", testCookie)
	err := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)
	return rec, c
}

func TestSessionAuthNoCookie(t *testing.T) {
	rec, _ := runSessionAuth(t, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "no_session")
}

func TestSessionAuthInvalidToken(t *testing.T) {
	rec, _ := runSessionAuth(t, &http.Cookie{Name: testCookie, Value: "garbage"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_session")
}

func TestSessionAuthWrongSecret(t *testing.T) {
	token, _, err := utils.NewSessionToken("other-secret", model.User{ID: 1, Email: "a@b.c"}, 1)
	require.NoError(t, err)
	rec, _ := runSessionAuth(t, &http.Cookie{Name: testCookie, Value: token})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_session")
}

func TestSessionAuthValidTokenSetsClaims(t *testing.T) {
	u := model.User{ID: 9, Email: "admin@parroquia.pe", Nombre: "Ana", Role: "admin"}
	token, _, err := utils.NewSessionToken("secret", u, 1)
	require.NoError(t, err)

	rec, c := runSessionAuth(t, &http.Cookie{Name: testCookie, Value: token})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "9", c.Get("user_id"))
	assert.Equal(t, "admin@parroquia.pe", c.Get("email"))
	assert.Equal(t, "Ana", c.Get("nombre"))
	assert.Equal(t, "admin", c.Get("role"))
}
