package model

import "time"

// MassType is a reservable mass category with its price, e.g. a mass for
// the deceased or a thanksgiving mass.  Precio is a decimal amount in the
// parish currency and must be >= 0.
type MassType struct {
	ID           uint64    `json:"id"`
	TipoMisa     string    `json:"tipo_misa"`
	Nombre       string    `json:"nombre"`
	Descripcion  *string   `json:"descripcion,omitempty"`
	Precio       float64   `json:"precio"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MassSchedule is a recurring public mass hour shown on the schedule page.
// It is informational only; reservation capacity is tracked by TimeSlot.
type MassSchedule struct {
	ID           uint64    `json:"id"`
	DayType      string    `json:"day_type"`
	Time         string    `json:"time"`
	Descripcion  *string   `json:"descripcion,omitempty"`
	Location     *string   `json:"location,omitempty"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
