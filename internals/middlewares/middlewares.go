package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"jebshit_backend/internals/metrics"
	loggerMW "jebshit_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the base middleware chain.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMW.LoggerMiddleware())
	app.Use(LocaleMiddleware())
	app.Use(metrics.Middleware())
	app.Use(GlobalRateLimiter())
}
