package model

import "time"

// Message statuses.
const (
	MessageNew     = "new"
	MessageRead    = "read"
	MessageReplied = "replied"
)

// Message is a contact-form submission from a visitor.
type Message struct {
	ID        uint64    `json:"id"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Telefono  *string   `json:"telefono,omitempty"`
	Asunto    *string   `json:"asunto,omitempty"`
	Mensaje   string    `json:"mensaje"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
