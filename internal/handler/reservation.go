package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dmolina/parroquia-api/internal/config"
	"github.com/dmolina/parroquia-api/internal/model"
	"github.com/dmolina/parroquia-api/internal/queue"
	"github.com/dmolina/parroquia-api/internal/repository"
	"github.com/dmolina/parroquia-api/internal/service"
	"github.com/dmolina/parroquia-api/internal/utils"
)

// ReservationHandler serves the public availability, verification and
// booking endpoints plus the admin reservation management.
type ReservationHandler struct {
	Cfg          config.Config
	Reservations *repository.ReservationRepo
	Slots        *repository.TimeSlotRepo
	Masses       *repository.MassRepo
}

func NewReservationHandler(cfg config.Config, res *repository.ReservationRepo,
	slots *repository.TimeSlotRepo, masses *repository.MassRepo) *ReservationHandler {
	return &ReservationHandler{Cfg: cfg, Reservations: res, Slots: slots, Masses: masses}
}

// Availability returns the per-slot availability snapshot for one date.
// The date resolves to a day-type bucket; only that bucket's active slots
// are consulted.
func (h *ReservationHandler) Availability(c echo.Context) error {
	raw := strings.TrimSpace(c.QueryParam("date"))
	day, okDate := service.ParseDate(raw)
	if !okDate {
		return badRequest(c, "Fecha inválida, use el formato YYYY-MM-DD")
	}
	dayType := service.DayTypeFor(day)

	ctx, cancel := reqCtx(c)
	defer cancel()
	slots, err := h.Slots.ListActiveByDayType(ctx, dayType)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	counts, err := h.Reservations.CountsByDate(ctx, raw)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, service.ComputeAvailability(raw, dayType, slots, counts))
}

type verifyReq struct {
	Codigo    string `json:"codigo" validate:"required"`
	Documento string `json:"documento" validate:"required"`
}

// verifyResp pairs the reservation with its user-facing status description.
type verifyResp struct {
	Reservation model.Reservation  `json:"reservation"`
	Status      service.StatusInfo `json:"status"`
}

// Verify looks a reservation up by confirmation code plus identity number.
// Both must match; a code alone is never enough.
func (h *ReservationHandler) Verify(c echo.Context) error {
	var req verifyReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Solicitud inválida")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Código y documento son obligatorios")
	}
	documento := strings.TrimSpace(req.Documento)
	if !service.ValidDocumento(documento) {
		return badRequest(c, "El documento debe tener 8 dígitos")
	}
	code := strings.ToUpper(strings.TrimSpace(req.Codigo))

	ctx, cancel := reqCtx(c)
	defer cancel()
	res, err := h.Reservations.FindByCodeAndDocumento(ctx, code, documento)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, verifyResp{
		Reservation: res,
		Status:      service.DescribeStatus(res.Status),
	})
}

type reservationCreateReq struct {
	Fecha      string  `json:"fecha" validate:"required"`
	Hora       string  `json:"hora" validate:"required"`
	Nombre     string  `json:"nombre" validate:"required"`
	Documento  string  `json:"documento" validate:"required"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Telefono   *string `json:"telefono"`
	MassTypeID uint64  `json:"mass_type_id" validate:"required"`
	Intentions *string `json:"intentions"`
}

// Create books a mass reservation.  The slot must exist for the date's
// day-type and still have room; the capacity check repeats inside the
// insert transaction so concurrent requests cannot overbook.
func (h *ReservationHandler) Create(c echo.Context) error {
	var req reservationCreateReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Solicitud inválida")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Fecha, hora, nombre, documento y tipo de misa son obligatorios")
	}
	day, okDate := service.ParseDate(strings.TrimSpace(req.Fecha))
	if !okDate {
		return badRequest(c, "Fecha inválida, use el formato YYYY-MM-DD")
	}
	documento := strings.TrimSpace(req.Documento)
	if !service.ValidDocumento(documento) {
		return badRequest(c, "El documento debe tener 8 dígitos")
	}
	dayType := service.DayTypeFor(day)

	ctx, cancel := reqCtx(c)
	defer cancel()

	slot, err := h.Slots.GetByDayTypeAndTime(ctx, dayType, strings.TrimSpace(req.Hora))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return badRequest(c, "El horario seleccionado no está disponible para esa fecha")
		}
		return fail(c, err, h.Cfg.IsProd())
	}
	mt, err := h.Masses.GetType(ctx, req.MassTypeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return badRequest(c, "Tipo de misa inválido")
		}
		return fail(c, err, h.Cfg.IsProd())
	}
	if !mt.IsActive {
		return badRequest(c, "Tipo de misa inválido")
	}

	res := model.Reservation{
		ConfirmationCode: utils.ConfirmationCode(),
		ReservationDate:  req.Fecha,
		ReservationTime:  slot.Time,
		Location:         slot.Location,
		Nombre:           strings.TrimSpace(req.Nombre),
		Documento:        documento,
		Email:            req.Email,
		Telefono:         req.Telefono,
		MassTypeID:       mt.ID,
		Intentions:       req.Intentions,
	}
	if err := h.Reservations.Create(ctx, &res, slot.MaxReservations); err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusCreated, res)
}

// List returns reservations for the admin panel.
func (h *ReservationHandler) List(c echo.Context) error {
	f := repository.ReservationFilter{
		Status: strings.TrimSpace(c.QueryParam("status")),
		Date:   strings.TrimSpace(c.QueryParam("date")),
		Search: strings.TrimSpace(c.QueryParam("search")),
		Limit:  queryInt(c, "limit", 0),
		Offset: queryInt(c, "offset", 0),
	}
	if f.Status != "" && !model.ValidReservationStatus(f.Status) {
		return badRequest(c, "Estado inválido")
	}
	if f.Date != "" {
		if _, okDate := service.ParseDate(f.Date); !okDate {
			return badRequest(c, "Fecha inválida, use el formato YYYY-MM-DD")
		}
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Reservations.List(ctx, f)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, items)
}

func (h *ReservationHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	res, err := h.Reservations.Get(ctx, id)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, res)
}

type reservationStatusReq struct {
	Status        string  `json:"status" validate:"required"`
	PaymentMethod *string `json:"payment_method"`
	PaymentRef    *string `json:"payment_ref"`
}

// SetStatus transitions a reservation and publishes a status event.  The
// publish is fire-and-forget: a broker outage never fails the request.
func (h *ReservationHandler) SetStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	var req reservationStatusReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Solicitud inválida")
	}
	if !model.ValidReservationStatus(req.Status) {
		return badRequest(c, "Estado inválido")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	before, err := h.Reservations.Get(ctx, id)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	res, err := h.Reservations.SetStatus(ctx, id, req.Status, req.PaymentMethod, req.PaymentRef)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}

	changedBy, _ := c.Get("email").(string)
	event := queue.ReservationStatusEvent{
		ReservationID:    res.ID,
		ConfirmationCode: res.ConfirmationCode,
		ReservationDate:  res.ReservationDate,
		ReservationTime:  res.ReservationTime,
		Nombre:           res.Nombre,
		OldStatus:        before.Status,
		NewStatus:        res.Status,
		ChangedBy:        changedBy,
		ChangedAt:        time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer pubCancel()
		_ = service.PublishReservationStatus(pubCtx, h.Cfg.RabbitURL, event)
	}()

	return ok(c, http.StatusOK, res)
}

func (h *ReservationHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Reservations.Delete(ctx, id); err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, map[string]string{"message": "Registro eliminado"})
}
