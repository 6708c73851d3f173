package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	regController "eventku_backend/internals/features/registrations/registrations/controller"
)

// Route user login: daftar event, lihat & batalkan registrasi sendiri.
func RegistrationRoutes(r fiber.Router, db *gorm.DB) {
	h := regController.NewRegistrationController(db)

	regs := r.Group("/registrations")
	{
		regs.Post("/", h.Register)
		regs.Get("/", h.ListMine)
		regs.Get("/:id", h.GetByID)
		regs.Post("/:id/cancel", h.Cancel)
	}
}
