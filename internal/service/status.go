package service

import "github.com/dmolina/parroquia-api/internal/model"

// StatusInfo is the user-facing description of a reservation status shown
// by the public verification endpoint.
type StatusInfo struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// DescribeStatus maps a stored status to its message and display category.
// The mapping is total: an unrecognized value (e.g. after a schema change)
// yields a generic info entry instead of failing the lookup.
func DescribeStatus(status string) StatusInfo {
	switch status {
	case model.ReservationPending:
		return StatusInfo{Category: "warning", Message: "Su reserva está pendiente de revisión"}
	case model.ReservationPaymentPending:
		return StatusInfo{Category: "info", Message: "Su reserva está pendiente de pago"}
	case model.ReservationConfirmed:
		return StatusInfo{Category: "success", Message: "Su reserva está confirmada"}
	case model.ReservationCancelled:
		return StatusInfo{Category: "error", Message: "Su reserva fue cancelada"}
	case model.ReservationCompleted:
		return StatusInfo{Category: "info", Message: "La misa ya fue celebrada"}
	default:
		return StatusInfo{Category: "info", Message: "Estado de la reserva registrado"}
	}
}
