package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dmolina/parroquia-api/internal/config"
	"github.com/dmolina/parroquia-api/internal/model"
	"github.com/dmolina/parroquia-api/internal/repository"
)

// PageHandler serves the interest-page endpoints.
type PageHandler struct {
	Cfg   config.Config
	Pages *repository.PageRepo
}

func NewPageHandler(cfg config.Config, r *repository.PageRepo) *PageHandler {
	return &PageHandler{Cfg: cfg, Pages: r}
}

func (h *PageHandler) ListPublic(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Pages.List(ctx, true)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, items)
}

// GetBySlug resolves a public page by slug; hidden pages 404.
func (h *PageHandler) GetBySlug(c echo.Context) error {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		return badRequest(c, "Identificador inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	p, err := h.Pages.GetBySlug(ctx, slug)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, p)
}

func (h *PageHandler) ListAdmin(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Pages.List(ctx, false)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, items)
}

func (h *PageHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	p, err := h.Pages.Get(ctx, id)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, p)
}

type pageCreateReq struct {
	Slug      string  `json:"slug" validate:"required"`
	Titulo    string  `json:"titulo" validate:"required"`
	Contenido *string `json:"contenido"`
	ImagenURL *string `json:"imagen_url"`
	Icon      string  `json:"icon"`
	LinkURL   string  `json:"link_url"`
}

func (h *PageHandler) Create(c echo.Context) error {
	var req pageCreateReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Solicitud inválida")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Slug y título son obligatorios")
	}
	if strings.TrimSpace(req.Icon) == "" {
		req.Icon = "info"
	}
	if strings.TrimSpace(req.LinkURL) == "" {
		req.LinkURL = "#"
	}
	p := model.InterestPage{
		Slug:      strings.ToLower(strings.TrimSpace(req.Slug)),
		Titulo:    strings.TrimSpace(req.Titulo),
		Contenido: req.Contenido,
		ImagenURL: req.ImagenURL,
		Icon:      req.Icon,
		LinkURL:   req.LinkURL,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Pages.Create(ctx, &p); err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusCreated, p)
}

type pageUpdateReq struct {
	Slug         *string `json:"slug"`
	Titulo       *string `json:"titulo"`
	Contenido    *string `json:"contenido"`
	ImagenURL    *string `json:"imagen_url"`
	Icon         *string `json:"icon"`
	LinkURL      *string `json:"link_url"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

func (h *PageHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	var req pageUpdateReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Solicitud inválida")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	p, err := h.Pages.Update(ctx, id, repository.InterestPageUpdate{
		Slug:         req.Slug,
		Titulo:       req.Titulo,
		Contenido:    req.Contenido,
		ImagenURL:    req.ImagenURL,
		Icon:         req.Icon,
		LinkURL:      req.LinkURL,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	})
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, p)
}

func (h *PageHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Pages.Delete(ctx, id); err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, map[string]string{"message": "Registro eliminado"})
}
