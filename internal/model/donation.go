package model

import "time"

// DonationInfo is a bank account or channel through which the parish
// receives donations.
type DonationInfo struct {
	ID           uint64    `json:"id"`
	Titulo       string    `json:"titulo"`
	Descripcion  *string   `json:"descripcion,omitempty"`
	Banco        *string   `json:"banco,omitempty"`
	TipoCuenta   *string   `json:"tipo_cuenta,omitempty"`
	NumeroCuenta *string   `json:"numero_cuenta,omitempty"`
	Titular      *string   `json:"titular,omitempty"`
	Documento    *string   `json:"documento,omitempty"`
	Email        *string   `json:"email,omitempty"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
