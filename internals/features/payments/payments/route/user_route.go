package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "eventku_backend/internals/features/payments/payments/controller"
)

// Route user login: bayar registrasi & lihat pembayaran sendiri.
func PaymentRoutes(r fiber.Router, db *gorm.DB) {
	h := paymentController.NewPaymentController(db)

	payments := r.Group("/payments")
	{
		payments.Post("/", h.Create)
		payments.Get("/", h.ListMine)
	}
}
