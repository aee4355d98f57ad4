// Package handler implements the HTTP endpoints.  Every response uses the
// same envelope: {"success": true, "data": ...} or {"success": false,
// "error": "..."} with a Spanish-language message.  Database errors are
// translated locally in each handler through fail(); nothing propagates to
// the transport layer as an unhandled fault.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/dmolina/parroquia-api/internal/repository"
)

// dbTimeout bounds every database call issued from a handler.
const dbTimeout = 5 * time.Second

func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// Validator adapts go-playground/validator to Echo's Validator interface.
type Validator struct{ v *validator.Validate }

func NewValidator() *Validator { return &Validator{v: validator.New()} }

func (cv *Validator) Validate(i interface{}) error {
	if err := cv.v.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// ok writes a success envelope.
func ok(c echo.Context, status int, data any) error {
	return c.JSON(status, map[string]any{"success": true, "data": data})
}

// badRequest writes a validation failure.
func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": msg})
}

// fail translates a repository error into the HTTP taxonomy.  Unknown
// errors become 500; their detail is only exposed outside production.
func fail(c echo.Context, err error, prod bool) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]any{"success": false, "error": "Registro no encontrado"})
	case errors.Is(err, repository.ErrDuplicate):
		return c.JSON(http.StatusConflict, map[string]any{"success": false, "error": "Ya existe un registro con esos datos"})
	case errors.Is(err, repository.ErrInvalidReference):
		return badRequest(c, "Referencia inválida")
	case errors.Is(err, repository.ErrMissingField):
		return badRequest(c, "Faltan campos obligatorios")
	case errors.Is(err, repository.ErrSlotFull):
		return c.JSON(http.StatusConflict, map[string]any{"success": false, "error": "El horario seleccionado ya no tiene cupos disponibles"})
	}
	msg := "Error interno del servidor"
	if !prod {
		msg = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "error": msg})
}

// pathID parses the numeric :id route parameter.
func pathID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// queryInt parses an optional integer query parameter, returning def when
// absent or malformed.
func queryInt(c echo.Context, name string, def int) int {
	if v := c.QueryParam(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
