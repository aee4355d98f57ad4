package utils

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxUploadBytes is the upload size ceiling (10 MiB).
const MaxUploadBytes = 10 << 20

// allowedImageTypes whitelists the content types the upload endpoint
// accepts.  Everything else is rejected as a validation error.
var allowedImageTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// AllowedImageType reports whether ct is an accepted image content type.
// Parameters after a semicolon (charset etc.) are ignored.
func AllowedImageType(ct string) bool {
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	return allowedImageTypes[strings.TrimSpace(strings.ToLower(ct))]
}

var folderRe = regexp.MustCompile(`^[a-z0-9_-]+$`)

// SanitizeFolder validates the caller-supplied folder label.  Labels are a
// single lower-case path segment; anything else (separators, dots, empty)
// falls back to the general bucket so uploads can never escape the upload
// root.
func SanitizeFolder(folder string) string {
	folder = strings.ToLower(strings.TrimSpace(folder))
	if !folderRe.MatchString(folder) {
		return "general"
	}
	return folder
}

// UploadFilename generates a collision-resistant name for an uploaded
// file: unix-nano timestamp plus a short uuid fragment, keeping the
// original extension (lower-cased).
func UploadFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	frag := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), frag, ext)
}

// ConfirmationCode returns an 8-character upper-case code for a new
// reservation, derived from a v4 uuid.
func ConfirmationCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
