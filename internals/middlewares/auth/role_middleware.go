// internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"
)

// AdminOnly dipasang SETELAH AuthMiddleware. Menolak request
// yang tokennya tidak membawa flag admin.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isAdmin, ok := c.Locals("is_admin").(bool)
		if !ok || !isAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Akses khusus admin")
		}
		return c.Next()
	}
}
