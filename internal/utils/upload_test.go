package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedImageType(t *testing.T) {
	assert.True(t, AllowedImageType("image/jpeg"))
	assert.True(t, AllowedImageType("image/png"))
	assert.True(t, AllowedImageType("image/webp"))
	assert.True(t, AllowedImageType("image/svg+xml"))
	assert.True(t, AllowedImageType("IMAGE/PNG"))
	assert.True(t, AllowedImageType("image/png; charset=binary"))

	assert.False(t, AllowedImageType("application/pdf"))
	assert.False(t, AllowedImageType("text/html"))
	assert.False(t, AllowedImageType(""))
}

func TestSanitizeFolder(t *testing.T) {
	assert.Equal(t, "banners", SanitizeFolder("banners"))
	assert.Equal(t, "banners", SanitizeFolder("  BANNERS "))
	assert.Equal(t, "album_2026", SanitizeFolder("album_2026"))
	assert.Equal(t, "equipo-parroquial", SanitizeFolder("equipo-parroquial"))

	// anything that could escape the upload root falls back to general
	assert.Equal(t, "general", SanitizeFolder("../etc"))
	assert.Equal(t, "general", SanitizeFolder("a/b"))
	assert.Equal(t, "general", SanitizeFolder("a.b"))
	assert.Equal(t, "general", SanitizeFolder(""))
	assert.Equal(t, "general", SanitizeFolder(".."))
}

func TestUploadFilename(t *testing.T) {
	name := UploadFilename("Foto de la Misa.JPG")
	assert.True(t, strings.HasSuffix(name, ".jpg"))
	assert.NotContains(t, name, " ")

	other := UploadFilename("Foto de la Misa.JPG")
	assert.NotEqual(t, name, other)

	noExt := UploadFilename("archivo")
	assert.NotContains(t, noExt, ".")
}

func TestConfirmationCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code := ConfirmationCode()
		assert.Len(t, code, 8)
		assert.Equal(t, strings.ToUpper(code), code)
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}
