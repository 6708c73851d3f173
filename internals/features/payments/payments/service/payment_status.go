package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	paymentModel "eventku_backend/internals/features/payments/payments/model"
	regModel "eventku_backend/internals/features/registrations/registrations/model"
)

// DeriveRegistrationPaymentStatus: 0 completed → unpaid; < total → partial;
// ≥ total → paid. total 0 dengan pembayaran completed dianggap paid.
func DeriveRegistrationPaymentStatus(completedSum, total int) string {
	switch {
	case completedSum <= 0:
		return regModel.PaymentStatusUnpaid
	case completedSum < total:
		return regModel.PaymentStatusPartial
	default:
		return regModel.PaymentStatusPaid
	}
}

// RecomputeRegistrationPaymentStatus menjumlahkan pembayaran completed dan
// menulis ulang registration_payment_status. Panggil di dalam transaksi yang
// sudah memegang lock FOR UPDATE pada baris registrasi.
func RecomputeRegistrationPaymentStatus(tx *gorm.DB, registrationID uuid.UUID, totalAmount int) error {
	var sum int64
	if err := tx.Model(&paymentModel.PaymentModel{}).
		Where("payment_registration_id = ? AND payment_status = ?", registrationID, paymentModel.PaymentStatusCompleted).
		Select("COALESCE(SUM(payment_amount_idr), 0)").
		Scan(&sum).Error; err != nil {
		return err
	}

	return tx.Model(&regModel.RegistrationModel{}).
		Where("registration_id = ?", registrationID).
		Update("registration_payment_status",
			DeriveRegistrationPaymentStatus(int(sum), totalAmount)).Error
}
