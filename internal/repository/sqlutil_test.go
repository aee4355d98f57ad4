package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetClause(t *testing.T) {
	var s setClause
	assert.True(t, s.empty())

	titulo := "Nuevo título"
	order := 3
	active := false
	precio := 25.5

	s.addString("titulo", &titulo)
	s.addString("descripcion", nil) // omitted field, must not appear
	s.addInt("display_order", &order)
	s.addBool("is_active", &active)
	s.addFloat("precio", &precio)

	assert.False(t, s.empty())
	assert.Equal(t, "titulo = ?, display_order = ?, is_active = ?, precio = ?", s.assignments())
	assert.Equal(t, []any{"Nuevo título", 3, false, 25.5}, s.args)
}

func TestSetClauseAddUnconditional(t *testing.T) {
	var s setClause
	s.add("status", "confirmed")
	assert.Equal(t, "status = ?", s.assignments())
	assert.Equal(t, []any{"confirmed"}, s.args)
}
