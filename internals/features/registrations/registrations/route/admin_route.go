package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	regController "eventku_backend/internals/features/registrations/registrations/controller"
)

// Route admin: lihat semua registrasi dan ubah statusnya.
func AdminRegistrationRoutes(r fiber.Router, db *gorm.DB) {
	h := regController.NewRegistrationController(db)

	regs := r.Group("/registrations")
	{
		regs.Get("/", h.List)
		regs.Get("/:id", h.GetByID)
		regs.Patch("/:id/status", h.UpdateStatus)
	}
}
