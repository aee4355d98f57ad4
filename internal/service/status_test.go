package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmolina/parroquia-api/internal/model"
)

func TestDescribeStatus(t *testing.T) {
	cases := []struct {
		status   string
		category string
	}{
		{model.ReservationPending, "warning"},
		{model.ReservationPaymentPending, "info"},
		{model.ReservationConfirmed, "success"},
		{model.ReservationCancelled, "error"},
		{model.ReservationCompleted, "info"},
	}
	for _, tc := range cases {
		info := DescribeStatus(tc.status)
		assert.Equal(t, tc.category, info.Category, "status %s", tc.status)
		assert.NotEmpty(t, info.Message)
	}
}

func TestDescribeStatusUnknown(t *testing.T) {
	info := DescribeStatus("something_else")
	assert.Equal(t, "info", info.Category)
	assert.Equal(t, "Estado de la reserva registrado", info.Message)
}
