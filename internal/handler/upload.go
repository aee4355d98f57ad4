package handler

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/dmolina/parroquia-api/internal/config"
	"github.com/dmolina/parroquia-api/internal/utils"
)

// UploadHandler stores admin image uploads on local disk under the
// configured upload root, bucketed by a sanitized folder label.
type UploadHandler struct {
	Cfg config.Config
}

func NewUploadHandler(cfg config.Config) *UploadHandler {
	return &UploadHandler{Cfg: cfg}
}

type uploadResp struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
}

// Upload accepts a multipart form with an "image" file field and an
// optional "folder" field.  Files over 10 MiB or outside the image type
// whitelist are rejected.
func (h *UploadHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return badRequest(c, "No se encontró el archivo a subir")
	}
	if fh.Size > utils.MaxUploadBytes {
		return badRequest(c, "El archivo supera el tamaño máximo de 10MB")
	}
	ct := fh.Header.Get("Content-Type")
	if !utils.AllowedImageType(ct) {
		return badRequest(c, "Tipo de archivo no permitido, solo imágenes")
	}

	folder := utils.SanitizeFolder(c.FormValue("folder"))
	dir := filepath.Join(h.Cfg.UploadDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}

	name := utils.UploadFilename(fh.Filename)
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	defer dst.Close()

	src, err := fh.Open()
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	defer src.Close()

	// Size limit again at copy time; the multipart header size can lie.
	n, err := io.Copy(dst, io.LimitReader(src, utils.MaxUploadBytes+1))
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	if n > utils.MaxUploadBytes {
		_ = os.Remove(filepath.Join(dir, name))
		return badRequest(c, "El archivo supera el tamaño máximo de 10MB")
	}

	return ok(c, http.StatusCreated, uploadResp{
		URL:      "/uploads/" + folder + "/" + name,
		Filename: name,
		Size:     n,
		Type:     ct,
	})
}
