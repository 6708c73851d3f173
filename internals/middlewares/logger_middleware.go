package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware mencatat semua request; request id ikut dicatat supaya
// baris log bisa dikorelasikan dengan log [REQ] di main.
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Format:     "[${time}] ${ip} ${respHeader:X-Request-ID} - ${method} ${path} ${status} ${latency}\n",
	})
}
