package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dmolina/parroquia-api/internal/config"
	"github.com/dmolina/parroquia-api/internal/model"
	"github.com/dmolina/parroquia-api/internal/repository"
)

// MassHandler serves mass types (reservable categories with pricing) and the
// informational mass schedule.
type MassHandler struct {
	Cfg    config.Config
	Masses *repository.MassRepo
}

func NewMassHandler(cfg config.Config, r *repository.MassRepo) *MassHandler {
	return &MassHandler{Cfg: cfg, Masses: r}
}

func validDayType(s string) bool {
	switch s {
	case model.DayTypeWeekdays, model.DayTypeSaturdays, model.DayTypeSundays:
		return true
	}
	return false
}

// ----- mass types -----

func (h *MassHandler) ListTypesPublic(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Masses.ListTypes(ctx, true)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, items)
}

func (h *MassHandler) ListTypesAdmin(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Masses.ListTypes(ctx, false)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, items)
}

func (h *MassHandler) GetType(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	t, err := h.Masses.GetType(ctx, id)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, t)
}

type massTypeCreateReq struct {
	TipoMisa    string  `json:"tipo_misa" validate:"required"`
	Nombre      string  `json:"nombre" validate:"required"`
	Descripcion *string `json:"descripcion"`
	Precio      float64 `json:"precio" validate:"gte=0"`
}

func (h *MassHandler) CreateType(c echo.Context) error {
	var req massTypeCreateReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Solicitud inválida")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Tipo y nombre son obligatorios; el precio no puede ser negativo")
	}
	t := model.MassType{
		TipoMisa:    strings.TrimSpace(req.TipoMisa),
		Nombre:      strings.TrimSpace(req.Nombre),
		Descripcion: req.Descripcion,
		Precio:      req.Precio,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Masses.CreateType(ctx, &t); err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusCreated, t)
}

type massTypeUpdateReq struct {
	TipoMisa     *string  `json:"tipo_misa"`
	Nombre       *string  `json:"nombre"`
	Descripcion  *string  `json:"descripcion"`
	Precio       *float64 `json:"precio"`
	DisplayOrder *int     `json:"display_order"`
	IsActive     *bool    `json:"is_active"`
}

func (h *MassHandler) UpdateType(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	var req massTypeUpdateReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Solicitud inválida")
	}
	if req.Precio != nil && *req.Precio < 0 {
		return badRequest(c, "El precio no puede ser negativo")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	t, err := h.Masses.UpdateType(ctx, id, repository.MassTypeUpdate{
		TipoMisa:     req.TipoMisa,
		Nombre:       req.Nombre,
		Descripcion:  req.Descripcion,
		Precio:       req.Precio,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	})
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, t)
}

func (h *MassHandler) DeleteType(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Masses.DeleteType(ctx, id); err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, map[string]string{"message": "Registro eliminado"})
}

// ----- mass schedules -----

func (h *MassHandler) ListSchedulesPublic(c echo.Context) error {
	dayType := strings.TrimSpace(c.QueryParam("day_type"))
	if dayType != "" && !validDayType(dayType) {
		return badRequest(c, "Tipo de día inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Masses.ListSchedules(ctx, true, dayType)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, items)
}

func (h *MassHandler) ListSchedulesAdmin(c echo.Context) error {
	dayType := strings.TrimSpace(c.QueryParam("day_type"))
	if dayType != "" && !validDayType(dayType) {
		return badRequest(c, "Tipo de día inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Masses.ListSchedules(ctx, false, dayType)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, items)
}

func (h *MassHandler) GetSchedule(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	m, err := h.Masses.GetSchedule(ctx, id)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, m)
}

type massScheduleCreateReq struct {
	DayType     string  `json:"day_type" validate:"required"`
	Time        string  `json:"time" validate:"required"`
	Descripcion *string `json:"descripcion"`
	Location    *string `json:"location"`
}

func (h *MassHandler) CreateSchedule(c echo.Context) error {
	var req massScheduleCreateReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Solicitud inválida")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Tipo de día y hora son obligatorios")
	}
	if !validDayType(req.DayType) {
		return badRequest(c, "Tipo de día inválido")
	}
	m := model.MassSchedule{
		DayType:     req.DayType,
		Time:        strings.TrimSpace(req.Time),
		Descripcion: req.Descripcion,
		Location:    req.Location,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Masses.CreateSchedule(ctx, &m); err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusCreated, m)
}

type massScheduleUpdateReq struct {
	DayType      *string `json:"day_type"`
	Time         *string `json:"time"`
	Descripcion  *string `json:"descripcion"`
	Location     *string `json:"location"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

func (h *MassHandler) UpdateSchedule(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	var req massScheduleUpdateReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Solicitud inválida")
	}
	if req.DayType != nil && !validDayType(*req.DayType) {
		return badRequest(c, "Tipo de día inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	m, err := h.Masses.UpdateSchedule(ctx, id, repository.MassScheduleUpdate{
		DayType:      req.DayType,
		Time:         req.Time,
		Descripcion:  req.Descripcion,
		Location:     req.Location,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	})
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, m)
}

func (h *MassHandler) DeleteSchedule(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Masses.DeleteSchedule(ctx, id); err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, map[string]string{"message": "Registro eliminado"})
}
