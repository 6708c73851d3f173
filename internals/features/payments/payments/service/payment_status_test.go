package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	regModel "eventku_backend/internals/features/registrations/registrations/model"
)

func TestDeriveRegistrationPaymentStatus(t *testing.T) {
	cases := []struct {
		name         string
		completedSum int
		total        int
		want         string
	}{
		{"no payments", 0, 100000, regModel.PaymentStatusUnpaid},
		{"partial", 40000, 100000, regModel.PaymentStatusPartial},
		{"exact", 100000, 100000, regModel.PaymentStatusPaid},
		{"over", 150000, 100000, regModel.PaymentStatusPaid},
		{"free registration stays unpaid without payments", 0, 0, regModel.PaymentStatusUnpaid},
		{"free registration paid after any completed payment", 1, 0, regModel.PaymentStatusPaid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveRegistrationPaymentStatus(tc.completedSum, tc.total))
		})
	}
}
