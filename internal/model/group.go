package model

import "time"

// ParishGroup is a pastoral group or ministry (choir, catechesis, youth).
type ParishGroup struct {
	ID           uint64    `json:"id"`
	Nombre       string    `json:"nombre"`
	Descripcion  *string   `json:"descripcion,omitempty"`
	Horario      *string   `json:"horario,omitempty"`
	ImagenURL    *string   `json:"imagen_url,omitempty"`
	Icon         string    `json:"icon"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
