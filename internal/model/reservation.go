package model

import "time"

// Reservation statuses.  Slots only count reservations whose status is not
// cancelled when computing availability.
const (
	ReservationPending        = "pending"
	ReservationPaymentPending = "payment_pending"
	ReservationConfirmed      = "confirmed"
	ReservationCancelled      = "cancelled"
	ReservationCompleted      = "completed"
)

// ValidReservationStatus reports whether s is one of the known statuses.
func ValidReservationStatus(s string) bool {
	switch s {
	case ReservationPending, ReservationPaymentPending, ReservationConfirmed,
		ReservationCancelled, ReservationCompleted:
		return true
	}
	return false
}

// Reservation records a public mass reservation request.
//
// ConfirmationCode together with Documento forms the public lookup key:
// the code alone is never enough to read a reservation, which prevents
// code guessing without the requester's identity number.
type Reservation struct {
	ID               uint64    `json:"id"`
	ConfirmationCode string    `json:"confirmation_code"`
	ReservationDate  string    `json:"reservation_date"` // YYYY-MM-DD
	ReservationTime  string    `json:"reservation_time"` // HH:MM
	Location         *string   `json:"location,omitempty"`
	Nombre           string    `json:"nombre"`
	Documento        string    `json:"documento"` // 8-digit identity number
	Email            *string   `json:"email,omitempty"`
	Telefono         *string   `json:"telefono,omitempty"`
	MassTypeID       uint64    `json:"mass_type_id"`
	Intentions       *string   `json:"intentions,omitempty"`
	Status           string    `json:"status"`
	PaymentMethod    *string   `json:"payment_method,omitempty"`
	PaymentRef       *string   `json:"payment_ref,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
