package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmolina/parroquia-api/internal/config"
)

func multipartUpload(t *testing.T, field, filename, contentType string, body []byte, folder string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := w.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(body)
	require.NoError(t, err)

	if folder != "" {
		require.NoError(t, w.WriteField("folder", folder))
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func doUpload(t *testing.T, h *UploadHandler, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/uploads", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Upload(e.NewContext(req, rec)))
	return rec
}

func TestUploadStoresFile(t *testing.T) {
	dir := t.TempDir()
	h := NewUploadHandler(config.Config{Env: "dev", UploadDir: dir})

	body, ct := multipartUpload(t, "image", "foto.png", "image/png", []byte("png-bytes"), "banners")
	rec := doUpload(t, h, body, ct)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			URL      string `json:"url"`
			Filename string `json:"filename"`
			Size     int64  `json:"size"`
			Type     string `json:"type"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(9), resp.Data.Size)
	assert.Equal(t, "image/png", resp.Data.Type)
	assert.Equal(t, "/uploads/banners/"+resp.Data.Filename, resp.Data.URL)

	stored, err := os.ReadFile(filepath.Join(dir, "banners", resp.Data.Filename))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), stored)
}

func TestUploadRejectsMissingFile(t *testing.T) {
	h := NewUploadHandler(config.Config{Env: "dev", UploadDir: t.TempDir()})
	body, ct := multipartUpload(t, "wrong_field", "foto.png", "image/png", []byte("x"), "")
	rec := doUpload(t, h, body, ct)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadRejectsDisallowedType(t *testing.T) {
	h := NewUploadHandler(config.Config{Env: "dev", UploadDir: t.TempDir()})
	body, ct := multipartUpload(t, "image", "doc.pdf", "application/pdf", []byte("%PDF"), "")
	rec := doUpload(t, h, body, ct)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no permitido")
}

func TestUploadSanitizesFolder(t *testing.T) {
	dir := t.TempDir()
	h := NewUploadHandler(config.Config{Env: "dev", UploadDir: dir})

	body, ct := multipartUpload(t, "image", "foto.png", "image/png", []byte("x"), "../escape")
	rec := doUpload(t, h, body, ct)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "/uploads/general/")
	entries, err := os.ReadDir(filepath.Join(dir, "general"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
