package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dmolina/parroquia-api/internal/config"
	"github.com/dmolina/parroquia-api/internal/model"
	"github.com/dmolina/parroquia-api/internal/repository"
)

// TeamHandler serves the team-member endpoints.
type TeamHandler struct {
	Cfg  config.Config
	Team *repository.TeamRepo
}

func NewTeamHandler(cfg config.Config, r *repository.TeamRepo) *TeamHandler {
	return &TeamHandler{Cfg: cfg, Team: r}
}

func (h *TeamHandler) ListPublic(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Team.List(ctx, true)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, items)
}

func (h *TeamHandler) ListAdmin(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Team.List(ctx, false)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, items)
}

func (h *TeamHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	m, err := h.Team.Get(ctx, id)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, m)
}

type teamCreateReq struct {
	Nombre  string  `json:"nombre" validate:"required"`
	Cargo   string  `json:"cargo" validate:"required"`
	FotoURL *string `json:"foto_url"`
	Bio     *string `json:"bio"`
}

func (h *TeamHandler) Create(c echo.Context) error {
	var req teamCreateReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Solicitud inválida")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Nombre y cargo son obligatorios")
	}
	m := model.TeamMember{
		Nombre:  strings.TrimSpace(req.Nombre),
		Cargo:   strings.TrimSpace(req.Cargo),
		FotoURL: req.FotoURL,
		Bio:     req.Bio,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Team.Create(ctx, &m); err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusCreated, m)
}

type teamUpdateReq struct {
	Nombre       *string `json:"nombre"`
	Cargo        *string `json:"cargo"`
	FotoURL      *string `json:"foto_url"`
	Bio          *string `json:"bio"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

func (h *TeamHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	var req teamUpdateReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Solicitud inválida")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	m, err := h.Team.Update(ctx, id, repository.TeamMemberUpdate{
		Nombre:       req.Nombre,
		Cargo:        req.Cargo,
		FotoURL:      req.FotoURL,
		Bio:          req.Bio,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	})
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, m)
}

func (h *TeamHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Team.Delete(ctx, id); err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, map[string]string{"message": "Registro eliminado"})
}
