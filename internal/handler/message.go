package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dmolina/parroquia-api/internal/config"
	"github.com/dmolina/parroquia-api/internal/model"
	"github.com/dmolina/parroquia-api/internal/repository"
)

// MessageHandler serves the contact-form endpoints.
type MessageHandler struct {
	Cfg      config.Config
	Messages *repository.MessageRepo
}

func NewMessageHandler(cfg config.Config, r *repository.MessageRepo) *MessageHandler {
	return &MessageHandler{Cfg: cfg, Messages: r}
}

type messageCreateReq struct {
	Nombre   string  `json:"nombre" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Telefono *string `json:"telefono"`
	Asunto   *string `json:"asunto"`
	Mensaje  string  `json:"mensaje" validate:"required"`
}

// Create receives a public contact-form submission.
func (h *MessageHandler) Create(c echo.Context) error {
	var req messageCreateReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Solicitud inválida")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Nombre, email y mensaje son obligatorios")
	}
	m := model.Message{
		Nombre:   strings.TrimSpace(req.Nombre),
		Email:    strings.TrimSpace(req.Email),
		Telefono: req.Telefono,
		Asunto:   req.Asunto,
		Mensaje:  strings.TrimSpace(req.Mensaje),
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Messages.Create(ctx, &m); err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusCreated, map[string]string{
		"message": "Mensaje enviado. Gracias por escribirnos.",
	})
}

// List returns messages for the admin panel, filterable by status and a
// free-text search.
func (h *MessageHandler) List(c echo.Context) error {
	f := repository.MessageFilter{
		Status: strings.TrimSpace(c.QueryParam("status")),
		Search: strings.TrimSpace(c.QueryParam("search")),
		Limit:  queryInt(c, "limit", 0),
		Offset: queryInt(c, "offset", 0),
	}
	if f.Status != "" && f.Status != model.MessageNew &&
		f.Status != model.MessageRead && f.Status != model.MessageReplied {
		return badRequest(c, "Estado inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Messages.List(ctx, f)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, items)
}

func (h *MessageHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	m, err := h.Messages.Get(ctx, id)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, m)
}

type messageStatusReq struct {
	Status string `json:"status" validate:"required"`
}

// SetStatus moves a message between new, read and replied.
func (h *MessageHandler) SetStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	var req messageStatusReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Solicitud inválida")
	}
	switch req.Status {
	case model.MessageNew, model.MessageRead, model.MessageReplied:
	default:
		return badRequest(c, "Estado inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	m, err := h.Messages.SetStatus(ctx, id, req.Status)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, m)
}

func (h *MessageHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Messages.Delete(ctx, id); err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, map[string]string{"message": "Registro eliminado"})
}
