// HandlePaymentStatusWebhook dipanggil saat menerima notifikasi dari Midtrans
package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	paymentModel "eventku_backend/internals/features/payments/payments/model"
	regModel "eventku_backend/internals/features/registrations/registrations/model"
)

// HandlePaymentStatusWebhook memetakan transaction_status Midtrans ke status
// payment dan menghitung ulang payment_status registrasi pemiliknya.
// Seluruhnya dalam satu transaksi; notifikasi ulang idempoten.
func HandlePaymentStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)

	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	log.Println("📄 Order ID:", orderID)
	log.Println("📌 Transaction Status:", status)

	return db.Transaction(func(tx *gorm.DB) error {
		var payment paymentModel.PaymentModel
		if err := tx.Where("payment_order_id = ?", orderID).First(&payment).Error; err != nil {
			log.Println("[ERROR] Payment tidak ditemukan:", err)
			return fmt.Errorf("payment with order_id %s not found", orderID)
		}

		// Lock registrasi supaya derivasi payment_status tidak balapan
		var reg regModel.RegistrationModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&reg, "registration_id = ?", payment.PaymentRegistrationID).Error; err != nil {
			log.Println("[ERROR] Registrasi pemilik payment tidak ditemukan:", err)
			return err
		}

		switch status {
		case "capture", "settlement":
			now := time.Now()
			payment.PaymentStatus = paymentModel.PaymentStatusCompleted
			payment.PaymentPaidAt = &now
			if txID, ok := body["transaction_id"].(string); ok && txID != "" {
				payment.PaymentTransactionID = &txID
			}
		case "expire", "cancel", "deny":
			payment.PaymentStatus = paymentModel.PaymentStatusFailed
		default:
			log.Println("[INFO] Status tidak diproses:", status)
			return nil
		}

		if err := tx.Save(&payment).Error; err != nil {
			log.Println("[ERROR] Gagal menyimpan status payment:", err)
			return err
		}

		return RecomputeRegistrationPaymentStatus(tx, reg.RegistrationID, reg.RegistrationTotalAmountIDR)
	})
}
