package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	familyController "eventku_backend/internals/features/users/family/controller"
)

func FamilyRoutes(r fiber.Router, db *gorm.DB) {
	h := familyController.NewFamilyController(db)

	families := r.Group("/families")
	{
		families.Post("/", h.Create)
		families.Get("/me", h.Me)
		families.Put("/me", h.Update)
		families.Post("/members", h.AddMember)
		families.Delete("/members/:userId", h.RemoveMember)
	}
}
