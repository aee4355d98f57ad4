package model

import "time"

// Album groups gallery images, typically one album per event or year.
// Deleting an album cascades to its images at the schema level.
type Album struct {
	ID           uint64    `json:"id"`
	Titulo       string    `json:"titulo"`
	Descripcion  *string   `json:"descripcion,omitempty"`
	CoverURL     *string   `json:"cover_url,omitempty"`
	Year         *int      `json:"year,omitempty"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AlbumImage is a single photo inside an album.
type AlbumImage struct {
	ID           uint64    `json:"id"`
	AlbumID      uint64    `json:"album_id"`
	ImagenURL    string    `json:"imagen_url"`
	Descripcion  *string   `json:"descripcion,omitempty"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
