package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentMethodCredit = "credit"
	PaymentMethodDebit  = "debit"
	PaymentMethodCash   = "cash"
	PaymentMethodCheck  = "check"
	PaymentMethodOther  = "other"

	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// Metode kartu diproses via Midtrans Snap; metode manual langsung completed.
func IsGatewayMethod(method string) bool {
	return method == PaymentMethodCredit || method == PaymentMethodDebit
}

// BalanceReservingStatuses: status yang mengikat sisa tagihan registrasi.
// pending ikut dihitung supaya dua sesi Snap tidak bisa memesan sisa tagihan
// yang sama; sesi kedaluwarsa dilepas lewat webhook (expire → failed).
var BalanceReservingStatuses = []string{PaymentStatusPending, PaymentStatusCompleted}

func ReservesBalance(status string) bool {
	for _, s := range BalanceReservingStatuses {
		if status == s {
			return true
		}
	}
	return false
}

type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	PaymentRegistrationID uuid.UUID `gorm:"column:payment_registration_id;type:uuid;not null;index" json:"payment_registration_id"`

	PaymentMethod    string `gorm:"column:payment_method;type:varchar(20);not null" json:"payment_method"`
	PaymentAmountIDR int    `gorm:"column:payment_amount_idr;not null" json:"payment_amount_idr"`
	PaymentStatus    string `gorm:"column:payment_status;type:varchar(20);not null;default:'pending'" json:"payment_status"`

	// order_id yang dikirim ke Midtrans; juga kunci pencarian webhook
	PaymentOrderID       string  `gorm:"column:payment_order_id;type:varchar(64);not null;uniqueIndex" json:"payment_order_id"`
	PaymentTransactionID *string `gorm:"column:payment_transaction_id;type:varchar(64)" json:"payment_transaction_id,omitempty"`

	PaymentNotes  *string    `gorm:"column:payment_notes;type:text" json:"payment_notes,omitempty"`
	PaymentPaidAt *time.Time `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`

	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time      `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"payment_deleted_at,omitempty"`
}

func (PaymentModel) TableName() string { return "payments" }
