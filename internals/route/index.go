// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventRoute "eventku_backend/internals/features/events/events/route"
	paymentController "eventku_backend/internals/features/payments/payments/controller"
	paymentRoute "eventku_backend/internals/features/payments/payments/route"
	regRoute "eventku_backend/internals/features/registrations/registrations/route"
	authRoute "eventku_backend/internals/features/users/auth/route"
	familyRoute "eventku_backend/internals/features/users/family/route"
	userRoute "eventku_backend/internals/features/users/user/route"
	authMiddleware "eventku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== WEBHOOK (publik) =====================
	log.Println("[INFO] Setting up payment webhook...")
	paymentH := paymentController.NewPaymentController(db)
	app.Post("/api/payments/notification", paymentH.HandleNotification)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	eventRoute.AllEventRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware())
	userRoute.UserRoutes(private, db)
	familyRoute.FamilyRoutes(private, db)
	regRoute.RegistrationRoutes(private, db)
	paymentRoute.PaymentRoutes(private, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware(), authMiddleware.AdminOnly())
	eventRoute.AdminEventRoutes(admin, db)
	userRoute.AdminUserRoutes(admin, db)
	regRoute.AdminRegistrationRoutes(admin, db)
	paymentRoute.AdminPaymentRoutes(admin, db)

	log.Println("✅ Semua route selesai dipasang")
}
