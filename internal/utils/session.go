package utils // utils provides session token, password and upload helpers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmolina/parroquia-api/internal/model"
)

// SessionClaims are the identity claims embedded in the session cookie.
// The token is stateless: everything the admin API needs about the caller
// travels inside the signed payload.
type SessionClaims struct {
	Email  string `json:"email"`
	Nombre string `json:"nombre"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// NewSessionToken builds and signs an HS256 session token for an
// administrator, valid for ttlDays.  It returns the serialized token and
// its expiration time, which doubles as the cookie expiry.
func NewSessionToken(secret string, u model.User, ttlDays int) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlDays) * 24 * time.Hour)
	claims := SessionClaims{
		Email:  u.Email,
		Nombre: u.Nombre,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   jwtSubject(u.ID),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// ParseSessionToken verifies signature and expiry and returns the claims.
// Only HMAC-signed tokens are accepted; anything else is rejected before
// the key callback can be misused for algorithm confusion.
func ParseSessionToken(secret, raw string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		if err == nil {
			err = jwt.ErrTokenUnverifiable
		}
		return nil, err
	}
	return claims, nil
}

// SessionCookie builds the HTTP-only session cookie.  SameSite=Lax keeps
// the cookie on top-level navigations while blocking cross-site POSTs;
// Secure is enabled outside local development.
func SessionCookie(name, token string, exp time.Time, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredSessionCookie clears the session cookie unconditionally.
func ExpiredSessionCookie(name string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// jwtSubject stringifies the numeric account id; subjects are strings per
// RFC 7519.
func jwtSubject(id uint64) string { return strconv.FormatUint(id, 10) }
