package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"no rows", sql.ErrNoRows, ErrNotFound},
		{"wrapped no rows", fmt.Errorf("query: %w", sql.ErrNoRows), ErrNotFound},
		{"duplicate", &mysql.MySQLError{Number: 1062}, ErrDuplicate},
		{"fk child", &mysql.MySQLError{Number: 1452}, ErrInvalidReference},
		{"fk parent", &mysql.MySQLError{Number: 1451}, ErrInvalidReference},
		{"bad null", &mysql.MySQLError{Number: 1048}, ErrMissingField},
		{"no default", &mysql.MySQLError{Number: 1364}, ErrMissingField},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := translate(tc.in)
			if tc.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.want)
		})
	}
}

func TestTranslateUnknownPassesThrough(t *testing.T) {
	orig := errors.New("connection refused")
	assert.Equal(t, orig, translate(orig))

	other := &mysql.MySQLError{Number: 1205} // lock wait timeout, not mapped
	assert.Equal(t, error(other), translate(other))
}
