package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "jebshit_backend/internals/features/users/auth/controller"
	"jebshit_backend/internals/middlewares"
	authMiddleware "jebshit_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/refresh-token", ctrl.RefreshToken)
	auth.Post("/logout", ctrl.Logout)
	auth.Get("/me", authMiddleware.AuthMiddleware(db), ctrl.Me)
}
