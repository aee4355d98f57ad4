package utils

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmolina/parroquia-api/internal/model"
)

func testUser() model.User {
	return model.User{
		ID:     7,
		Email:  "admin@parroquia.pe",
		Nombre: "Padre Miguel",
		Role:   "admin",
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	token, exp, err := NewSessionToken("secret", testUser(), 7)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC().Add(7*24*time.Hour), exp, time.Minute)

	claims, err := ParseSessionToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, "admin@parroquia.pe", claims.Email)
	assert.Equal(t, "Padre Miguel", claims.Nombre)
	assert.Equal(t, "admin", claims.Role)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, _, err := NewSessionToken("secret", testUser(), 7)
	require.NoError(t, err)

	_, err = ParseSessionToken("other-secret", token)
	assert.Error(t, err)
}

func TestSessionTokenExpired(t *testing.T) {
	token, _, err := NewSessionToken("secret", testUser(), -1)
	require.NoError(t, err)

	_, err = ParseSessionToken("secret", token)
	assert.Error(t, err)
}

func TestSessionTokenGarbage(t *testing.T) {
	_, err := ParseSessionToken("secret", "not.a.token")
	assert.Error(t, err)
}

func TestSessionCookieFlags(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	c := SessionCookie("parroquia_session", "tok", exp, true)
	assert.Equal(t, "parroquia_session", c.Name)
	assert.Equal(t, "tok", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)

	dev := SessionCookie("parroquia_session", "tok", exp, false)
	assert.False(t, dev.Secure)
}

func TestExpiredSessionCookie(t *testing.T) {
	c := ExpiredSessionCookie("parroquia_session", false)
	assert.Empty(t, c.Value)
	assert.Equal(t, -1, c.MaxAge)
	assert.True(t, c.Expires.Before(time.Now()))
	assert.True(t, c.HttpOnly)
}
