package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "eventku_backend/internals/features/payments/payments/controller"
)

// Route admin: lihat semua pembayaran dan ubah statusnya (termasuk refund).
func AdminPaymentRoutes(r fiber.Router, db *gorm.DB) {
	h := paymentController.NewPaymentController(db)

	payments := r.Group("/payments")
	{
		payments.Get("/", h.List)
		payments.Patch("/:id/status", h.UpdateStatus)
	}
}
