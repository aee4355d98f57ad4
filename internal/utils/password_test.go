package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("mi-clave-segura", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "mi-clave-segura", hash)

	assert.True(t, VerifyPassword(hash, "mi-clave-segura"))
	assert.False(t, VerifyPassword(hash, "otra-clave"))
	assert.False(t, VerifyPassword("", "mi-clave-segura"))
}
