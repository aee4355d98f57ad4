package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dmolina/parroquia-api/internal/config"
	"github.com/dmolina/parroquia-api/internal/repository"
)

// SettingHandler serves the site_settings key-value endpoints.
type SettingHandler struct {
	Cfg      config.Config
	Settings *repository.SettingRepo
}

func NewSettingHandler(cfg config.Config, r *repository.SettingRepo) *SettingHandler {
	return &SettingHandler{Cfg: cfg, Settings: r}
}

// ListPublic returns every setting as a flat key->value map, which is what
// the site templates consume.
func (h *SettingHandler) ListPublic(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Settings.List(ctx)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	out := map[string]string{}
	for _, s := range items {
		out[s.ConfigKey] = s.ConfigValue
	}
	return ok(c, http.StatusOK, out)
}

// ListAdmin returns the full setting rows with timestamps.
func (h *SettingHandler) ListAdmin(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Settings.List(ctx)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, items)
}

func (h *SettingHandler) Get(c echo.Context) error {
	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		return badRequest(c, "Clave inválida")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	s, err := h.Settings.Get(ctx, key)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, s)
}

type settingUpsertReq struct {
	ConfigKey   string `json:"config_key" validate:"required"`
	ConfigValue string `json:"config_value"`
}

// Upsert creates or replaces a single setting.
func (h *SettingHandler) Upsert(c echo.Context) error {
	var req settingUpsertReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Solicitud inválida")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "La clave es obligatoria")
	}
	key := strings.TrimSpace(req.ConfigKey)
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Settings.Upsert(ctx, key, req.ConfigValue); err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	s, err := h.Settings.Get(ctx, key)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, s)
}

// BulkUpsert applies a whole key->value map in one request.  Keys are
// written sequentially; the first failure aborts the rest.
func (h *SettingHandler) BulkUpsert(c echo.Context) error {
	var req map[string]string
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Solicitud inválida")
	}
	if len(req) == 0 {
		return badRequest(c, "No hay configuraciones para guardar")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	for key, value := range req {
		key = strings.TrimSpace(key)
		if key == "" {
			return badRequest(c, "Clave inválida")
		}
		if err := h.Settings.Upsert(ctx, key, value); err != nil {
			return fail(c, err, h.Cfg.IsProd())
		}
	}
	return ok(c, http.StatusOK, map[string]string{"message": "Configuración guardada"})
}

func (h *SettingHandler) Delete(c echo.Context) error {
	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		return badRequest(c, "Clave inválida")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Settings.Delete(ctx, key); err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, map[string]string{"message": "Registro eliminado"})
}
