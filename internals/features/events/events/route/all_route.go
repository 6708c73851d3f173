package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventController "eventku_backend/internals/features/events/events/controller"
	sectionController "eventku_backend/internals/features/events/event_sections/controller"
)

// Route publik: katalog event + section, tanpa token.
func AllEventRoutes(r fiber.Router, db *gorm.DB) {
	h := eventController.NewEventController(db)
	hs := sectionController.NewEventSectionController(db)

	events := r.Group("/events")
	{
		events.Get("/", h.List)
		events.Get("/:id", h.GetByID)
		events.Get("/:id/sections", hs.ListByEvent)
	}

	r.Get("/event-sections/:id", hs.GetByID)
}
