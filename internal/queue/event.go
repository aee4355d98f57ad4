// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationStatusEvent is published when an administrator changes a
// reservation's status.  It carries enough information for downstream
// consumers to log or notify without querying the primary database.
type ReservationStatusEvent struct {
	ReservationID    uint64 `json:"reservation_id"`
	ConfirmationCode string `json:"confirmation_code"`
	ReservationDate  string `json:"reservation_date"`
	ReservationTime  string `json:"reservation_time"`
	Nombre           string `json:"nombre"`
	OldStatus        string `json:"old_status"`
	NewStatus        string `json:"new_status"`
	ChangedBy        string `json:"changed_by"`
	ChangedAt        string `json:"changed_at"`
}
