package model

import "time"

// Banner is a rotating hero image on the public home page.  Inactive
// banners stay in the table but are excluded from public listings.
type Banner struct {
	ID           uint64    `json:"id"`
	Titulo       string    `json:"titulo"`
	Subtitulo    *string   `json:"subtitulo,omitempty"`
	ImagenURL    string    `json:"imagen_url"`
	LinkURL      string    `json:"link_url"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
