package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dmolina/parroquia-api/internal/config"
	"github.com/dmolina/parroquia-api/internal/model"
	"github.com/dmolina/parroquia-api/internal/repository"
)

// BannerHandler serves the home-page banner endpoints.
type BannerHandler struct {
	Cfg     config.Config
	Banners *repository.BannerRepo
}

func NewBannerHandler(cfg config.Config, r *repository.BannerRepo) *BannerHandler {
	return &BannerHandler{Cfg: cfg, Banners: r}
}

// ListPublic returns active banners only.
func (h *BannerHandler) ListPublic(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Banners.List(ctx, true)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, items)
}

// ListAdmin returns every banner, hidden ones included.
func (h *BannerHandler) ListAdmin(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Banners.List(ctx, false)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, items)
}

func (h *BannerHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	b, err := h.Banners.Get(ctx, id)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, b)
}

type bannerCreateReq struct {
	Titulo    string  `json:"titulo" validate:"required"`
	Subtitulo *string `json:"subtitulo"`
	ImagenURL string  `json:"imagen_url" validate:"required"`
	LinkURL   string  `json:"link_url"`
}

func (h *BannerHandler) Create(c echo.Context) error {
	var req bannerCreateReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Solicitud inválida")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Título e imagen son obligatorios")
	}
	if strings.TrimSpace(req.LinkURL) == "" {
		req.LinkURL = "#" // UX default for banners without a target
	}
	b := model.Banner{
		Titulo:    strings.TrimSpace(req.Titulo),
		Subtitulo: req.Subtitulo,
		ImagenURL: req.ImagenURL,
		LinkURL:   req.LinkURL,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Banners.Create(ctx, &b); err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusCreated, b)
}

type bannerUpdateReq struct {
	Titulo       *string `json:"titulo"`
	Subtitulo    *string `json:"subtitulo"`
	ImagenURL    *string `json:"imagen_url"`
	LinkURL      *string `json:"link_url"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

// Update applies only the fields present in the body; omitted fields keep
// their stored values.
func (h *BannerHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	var req bannerUpdateReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Solicitud inválida")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	b, err := h.Banners.Update(ctx, id, repository.BannerUpdate{
		Titulo:       req.Titulo,
		Subtitulo:    req.Subtitulo,
		ImagenURL:    req.ImagenURL,
		LinkURL:      req.LinkURL,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	})
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, b)
}

func (h *BannerHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Banners.Delete(ctx, id); err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, map[string]string{"message": "Registro eliminado"})
}
