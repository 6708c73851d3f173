package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsGatewayMethod(t *testing.T) {
	assert.True(t, IsGatewayMethod(PaymentMethodCredit))
	assert.True(t, IsGatewayMethod(PaymentMethodDebit))
	assert.False(t, IsGatewayMethod(PaymentMethodCash))
	assert.False(t, IsGatewayMethod(PaymentMethodCheck))
	assert.False(t, IsGatewayMethod(PaymentMethodOther))
}

// Pembayaran pending harus ikut mengikat sisa tagihan; kalau tidak, dua sesi
// Snap untuk sisa tagihan penuh bisa sama-sama lolos cek lalu dua-duanya
// settle melebihi total registrasi.
func TestReservesBalance(t *testing.T) {
	assert.True(t, ReservesBalance(PaymentStatusPending))
	assert.True(t, ReservesBalance(PaymentStatusCompleted))
	assert.False(t, ReservesBalance(PaymentStatusFailed))
	assert.False(t, ReservesBalance(PaymentStatusRefunded))

	assert.ElementsMatch(t,
		[]string{PaymentStatusPending, PaymentStatusCompleted},
		BalanceReservingStatuses)
}
