package model

import "time"

// TeamMember is a priest or staff member shown on the team page.
type TeamMember struct {
	ID           uint64    `json:"id"`
	Nombre       string    `json:"nombre"`
	Cargo        string    `json:"cargo"`
	FotoURL      *string   `json:"foto_url,omitempty"`
	Bio          *string   `json:"bio,omitempty"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
