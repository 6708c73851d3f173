package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventController "eventku_backend/internals/features/events/events/controller"
	sectionController "eventku_backend/internals/features/events/event_sections/controller"
)

// Route admin: CRUD event & section. Dipasang di group yang sudah
// melewati AuthMiddleware + AdminOnly.
func AdminEventRoutes(r fiber.Router, db *gorm.DB) {
	h := eventController.NewEventController(db)
	hs := sectionController.NewEventSectionController(db)

	events := r.Group("/events")
	{
		events.Post("/", h.Create)
		events.Put("/:id", h.Update)
		events.Delete("/:id", h.Delete)
	}

	sections := r.Group("/event-sections")
	{
		sections.Post("/", hs.Create)
		sections.Put("/:id", hs.Update)
		sections.Delete("/:id", hs.Delete)
	}
}
