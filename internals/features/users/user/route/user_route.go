package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "eventku_backend/internals/features/users/user/controller"
)

// Route user login: profil sendiri.
func UserRoutes(r fiber.Router, db *gorm.DB) {
	h := userController.NewUserController(db)

	users := r.Group("/users")
	{
		users.Get("/me", h.Me)
		users.Put("/me", h.UpdateMe)
	}
}

// Route admin: CRUD users.
func AdminUserRoutes(r fiber.Router, db *gorm.DB) {
	h := userController.NewUserController(db)

	users := r.Group("/users")
	{
		users.Get("/", h.List)
		users.Get("/:id", h.GetByID)
		users.Put("/:id", h.Update)
		users.Delete("/:id", h.Delete)
	}
}
