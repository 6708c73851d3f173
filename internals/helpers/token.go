// file: internals/helpers/token.go
package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserIDFromToken mengambil user_id yang sudah dipasang AuthMiddleware
// di Locals. Mengembalikan *fiber.Error 401 jika tidak ada/invalid.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals("user_id")
	s, ok := v.(string)
	if !ok || s == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user tidak dikenali")
	}
	id, err := uuid.Parse(s)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user id tidak valid")
	}
	return id, nil
}

// IsAdminFromToken membaca flag is_admin dari Locals (dipasang AuthMiddleware).
func IsAdminFromToken(c *fiber.Ctx) bool {
	v, ok := c.Locals("is_admin").(bool)
	return ok && v
}
