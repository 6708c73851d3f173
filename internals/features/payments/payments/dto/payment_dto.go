// file: internals/features/payments/payments/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "eventku_backend/internals/features/payments/payments/model"
)

/* =============== REQUESTS =============== */

type CreatePaymentRequest struct {
	PaymentRegistrationID uuid.UUID `json:"payment_registration_id" validate:"required"`

	PaymentMethod    string  `json:"payment_method" validate:"required,oneof=credit debit cash check other"`
	PaymentAmountIDR int     `json:"payment_amount_idr" validate:"required,gt=0"`
	PaymentNotes     *string `json:"payment_notes" validate:"omitempty,max=500"`
}

// Update status (admin). Jalur refund menghitung ulang payment_status
// registrasi pemiliknya.
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=pending completed failed refunded"`
}

type ListPaymentQuery struct {
	RegistrationID *uuid.UUID `query:"registration_id" validate:"omitempty"`
	Status         *string    `query:"status" validate:"omitempty,oneof=pending completed failed refunded"`
	Method         *string    `query:"method" validate:"omitempty,oneof=credit debit cash check other"`
}

/* =============== RESPONSES =============== */

type PaymentResponse struct {
	PaymentID uuid.UUID `json:"payment_id"`

	PaymentRegistrationID uuid.UUID `json:"payment_registration_id"`

	PaymentMethod    string `json:"payment_method"`
	PaymentAmountIDR int    `json:"payment_amount_idr"`
	PaymentStatus    string `json:"payment_status"`

	PaymentOrderID       string  `json:"payment_order_id"`
	PaymentTransactionID *string `json:"payment_transaction_id,omitempty"`

	PaymentNotes  *string    `json:"payment_notes,omitempty"`
	PaymentPaidAt *time.Time `json:"payment_paid_at,omitempty"`

	// Terisi hanya untuk pembayaran gateway yang baru dibuat
	SnapToken   *string `json:"snap_token,omitempty"`
	RedirectURL *string `json:"redirect_url,omitempty"`

	PaymentCreatedAt time.Time `json:"payment_created_at"`
	PaymentUpdatedAt time.Time `json:"payment_updated_at"`
}

/* =============== MAPPERS =============== */

func FromModel(x m.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:             x.PaymentID,
		PaymentRegistrationID: x.PaymentRegistrationID,
		PaymentMethod:         x.PaymentMethod,
		PaymentAmountIDR:      x.PaymentAmountIDR,
		PaymentStatus:         x.PaymentStatus,
		PaymentOrderID:        x.PaymentOrderID,
		PaymentTransactionID:  x.PaymentTransactionID,
		PaymentNotes:          x.PaymentNotes,
		PaymentPaidAt:         x.PaymentPaidAt,
		PaymentCreatedAt:      x.PaymentCreatedAt,
		PaymentUpdatedAt:      x.PaymentUpdatedAt,
	}
}

func FromModels(list []m.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
