package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dmolina/parroquia-api/internal/config"
	"github.com/dmolina/parroquia-api/internal/model"
	"github.com/dmolina/parroquia-api/internal/repository"
)

// GalleryHandler serves album and album-image endpoints.
type GalleryHandler struct {
	Cfg     config.Config
	Gallery *repository.GalleryRepo
}

func NewGalleryHandler(cfg config.Config, r *repository.GalleryRepo) *GalleryHandler {
	return &GalleryHandler{Cfg: cfg, Gallery: r}
}

// yearFilter reads an optional ?year= query parameter.
func yearFilter(c echo.Context) (*int, error) {
	raw := strings.TrimSpace(c.QueryParam("year"))
	if raw == "" {
		return nil, nil
	}
	y, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &y, nil
}

func (h *GalleryHandler) ListPublic(c echo.Context) error {
	year, err := yearFilter(c)
	if err != nil {
		return badRequest(c, "Año inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Gallery.ListAlbums(ctx, true, year)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, items)
}

func (h *GalleryHandler) ListAdmin(c echo.Context) error {
	year, err := yearFilter(c)
	if err != nil {
		return badRequest(c, "Año inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Gallery.ListAlbums(ctx, false, year)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, items)
}

// albumDetail bundles an album with its images for the public detail view.
type albumDetail struct {
	model.Album
	Images []model.AlbumImage `json:"images"`
}

// GetPublic returns an active album plus its active images.
func (h *GalleryHandler) GetPublic(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	a, err := h.Gallery.GetAlbum(ctx, id)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	if !a.IsActive {
		return fail(c, repository.ErrNotFound, h.Cfg.IsProd())
	}
	imgs, err := h.Gallery.ListImages(ctx, id, true)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, albumDetail{Album: a, Images: imgs})
}

func (h *GalleryHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	a, err := h.Gallery.GetAlbum(ctx, id)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	imgs, err := h.Gallery.ListImages(ctx, id, false)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, albumDetail{Album: a, Images: imgs})
}

type albumCreateReq struct {
	Titulo      string  `json:"titulo" validate:"required"`
	Descripcion *string `json:"descripcion"`
	CoverURL    *string `json:"cover_url"`
	Year        *int    `json:"year"`
}

func (h *GalleryHandler) Create(c echo.Context) error {
	var req albumCreateReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Solicitud inválida")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "El título es obligatorio")
	}
	a := model.Album{
		Titulo:      strings.TrimSpace(req.Titulo),
		Descripcion: req.Descripcion,
		CoverURL:    req.CoverURL,
		Year:        req.Year,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Gallery.CreateAlbum(ctx, &a); err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusCreated, a)
}

type albumUpdateReq struct {
	Titulo       *string `json:"titulo"`
	Descripcion  *string `json:"descripcion"`
	CoverURL     *string `json:"cover_url"`
	Year         *int    `json:"year"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

func (h *GalleryHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	var req albumUpdateReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Solicitud inválida")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	a, err := h.Gallery.UpdateAlbum(ctx, id, repository.AlbumUpdate{
		Titulo:       req.Titulo,
		Descripcion:  req.Descripcion,
		CoverURL:     req.CoverURL,
		Year:         req.Year,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	})
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, a)
}

func (h *GalleryHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Gallery.DeleteAlbum(ctx, id); err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, map[string]string{"message": "Registro eliminado"})
}

type imageCreateReq struct {
	ImagenURL   string  `json:"imagen_url" validate:"required"`
	Descripcion *string `json:"descripcion"`
}

// CreateImage attaches an image to the album in the path.
func (h *GalleryHandler) CreateImage(c echo.Context) error {
	albumID, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	var req imageCreateReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Solicitud inválida")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "La URL de la imagen es obligatoria")
	}
	img := model.AlbumImage{
		AlbumID:     albumID,
		ImagenURL:   strings.TrimSpace(req.ImagenURL),
		Descripcion: req.Descripcion,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Gallery.CreateImage(ctx, &img); err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusCreated, img)
}

type imageUpdateReq struct {
	ImagenURL    *string `json:"imagen_url"`
	Descripcion  *string `json:"descripcion"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

func (h *GalleryHandler) UpdateImage(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	var req imageUpdateReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Solicitud inválida")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	img, err := h.Gallery.UpdateImage(ctx, id, repository.AlbumImageUpdate{
		ImagenURL:    req.ImagenURL,
		Descripcion:  req.Descripcion,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	})
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, img)
}

func (h *GalleryHandler) DeleteImage(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Gallery.DeleteImage(ctx, id); err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, map[string]string{"message": "Registro eliminado"})
}
