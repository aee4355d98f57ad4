package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dmolina/parroquia-api/internal/config"
	"github.com/dmolina/parroquia-api/internal/model"
	"github.com/dmolina/parroquia-api/internal/repository"
)

// GroupHandler serves the parish group endpoints.
type GroupHandler struct {
	Cfg    config.Config
	Groups *repository.GroupRepo
}

func NewGroupHandler(cfg config.Config, r *repository.GroupRepo) *GroupHandler {
	return &GroupHandler{Cfg: cfg, Groups: r}
}

func (h *GroupHandler) ListPublic(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Groups.List(ctx, true)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, items)
}

func (h *GroupHandler) ListAdmin(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Groups.List(ctx, false)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, items)
}

func (h *GroupHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	g, err := h.Groups.Get(ctx, id)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, g)
}

type groupCreateReq struct {
	Nombre      string  `json:"nombre" validate:"required"`
	Descripcion *string `json:"descripcion"`
	Horario     *string `json:"horario"`
	ImagenURL   *string `json:"imagen_url"`
	Icon        string  `json:"icon"`
}

func (h *GroupHandler) Create(c echo.Context) error {
	var req groupCreateReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Solicitud inválida")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "El nombre es obligatorio")
	}
	if strings.TrimSpace(req.Icon) == "" {
		req.Icon = "info" // UX default icon
	}
	g := model.ParishGroup{
		Nombre:      strings.TrimSpace(req.Nombre),
		Descripcion: req.Descripcion,
		Horario:     req.Horario,
		ImagenURL:   req.ImagenURL,
		Icon:        req.Icon,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Groups.Create(ctx, &g); err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusCreated, g)
}

type groupUpdateReq struct {
	Nombre       *string `json:"nombre"`
	Descripcion  *string `json:"descripcion"`
	Horario      *string `json:"horario"`
	ImagenURL    *string `json:"imagen_url"`
	Icon         *string `json:"icon"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

func (h *GroupHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	var req groupUpdateReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Solicitud inválida")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	g, err := h.Groups.Update(ctx, id, repository.ParishGroupUpdate{
		Nombre:       req.Nombre,
		Descripcion:  req.Descripcion,
		Horario:      req.Horario,
		ImagenURL:    req.ImagenURL,
		Icon:         req.Icon,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	})
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, g)
}

func (h *GroupHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Groups.Delete(ctx, id); err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, map[string]string{"message": "Registro eliminado"})
}
