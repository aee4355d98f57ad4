package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dmolina/parroquia-api/internal/config"
	"github.com/dmolina/parroquia-api/internal/model"
	"github.com/dmolina/parroquia-api/internal/repository"
)

// DonationHandler serves the donation-info endpoints.
type DonationHandler struct {
	Cfg       config.Config
	Donations *repository.DonationRepo
}

func NewDonationHandler(cfg config.Config, r *repository.DonationRepo) *DonationHandler {
	return &DonationHandler{Cfg: cfg, Donations: r}
}

func (h *DonationHandler) ListPublic(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Donations.List(ctx, true)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, items)
}

func (h *DonationHandler) ListAdmin(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Donations.List(ctx, false)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, items)
}

func (h *DonationHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	d, err := h.Donations.Get(ctx, id)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, d)
}

type donationCreateReq struct {
	Titulo       string  `json:"titulo" validate:"required"`
	Descripcion  *string `json:"descripcion"`
	Banco        *string `json:"banco"`
	TipoCuenta   *string `json:"tipo_cuenta"`
	NumeroCuenta *string `json:"numero_cuenta"`
	Titular      *string `json:"titular"`
	Documento    *string `json:"documento"`
	Email        *string `json:"email" validate:"omitempty,email"`
}

func (h *DonationHandler) Create(c echo.Context) error {
	var req donationCreateReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Solicitud inválida")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "El título es obligatorio")
	}
	d := model.DonationInfo{
		Titulo:       strings.TrimSpace(req.Titulo),
		Descripcion:  req.Descripcion,
		Banco:        req.Banco,
		TipoCuenta:   req.TipoCuenta,
		NumeroCuenta: req.NumeroCuenta,
		Titular:      req.Titular,
		Documento:    req.Documento,
		Email:        req.Email,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Donations.Create(ctx, &d); err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusCreated, d)
}

type donationUpdateReq struct {
	Titulo       *string `json:"titulo"`
	Descripcion  *string `json:"descripcion"`
	Banco        *string `json:"banco"`
	TipoCuenta   *string `json:"tipo_cuenta"`
	NumeroCuenta *string `json:"numero_cuenta"`
	Titular      *string `json:"titular"`
	Documento    *string `json:"documento"`
	Email        *string `json:"email"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

func (h *DonationHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	var req donationUpdateReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Solicitud inválida")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	d, err := h.Donations.Update(ctx, id, repository.DonationUpdate{
		Titulo:       req.Titulo,
		Descripcion:  req.Descripcion,
		Banco:        req.Banco,
		TipoCuenta:   req.TipoCuenta,
		NumeroCuenta: req.NumeroCuenta,
		Titular:      req.Titular,
		Documento:    req.Documento,
		Email:        req.Email,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	})
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, d)
}

func (h *DonationHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Donations.Delete(ctx, id); err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, map[string]string{"message": "Registro eliminado"})
}
