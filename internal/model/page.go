package model

import "time"

// InterestPage is an editable content page linked from the public site
// (sacraments, history, announcements).
type InterestPage struct {
	ID           uint64    `json:"id"`
	Slug         string    `json:"slug"`
	Titulo       string    `json:"titulo"`
	Contenido    *string   `json:"contenido,omitempty"`
	ImagenURL    *string   `json:"imagen_url,omitempty"`
	Icon         string    `json:"icon"`
	LinkURL      string    `json:"link_url"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
