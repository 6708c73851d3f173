package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "eventku_backend/internals/features/users/auth/controller"
	middlewares "eventku_backend/internals/middlewares"
	authMw "eventku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	h := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	{
		auth.Post("/register", middlewares.RegisterRateLimiter(), h.Register)
		auth.Post("/login", middlewares.LoginRateLimiter(), h.Login)
		auth.Post("/login-google", middlewares.LoginRateLimiter(), h.LoginGoogle)
		auth.Post("/change-password", authMw.AuthMiddleware(), h.ChangePassword)
	}
}
