package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helperOSS "jebshit_backend/internals/helpers/oss"
	"jebshit_backend/internals/helpers/youtube"
	authMiddleware "jebshit_backend/internals/middlewares/auth"
	routeDetails "jebshit_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app)

	images, err := helperOSS.NewImageServiceFromEnv()
	if err != nil {
		log.Fatalf("❌ OSS setup failed: %v", err)
	}
	videos := youtube.NewFromEnv()

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== ADMIN (JWT) =====================
	log.Println("[INFO] Setting up admin group...")
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware(db))

	routeDetails.ContentRoutes(admin, db, images)
	routeDetails.MediaRoutes(admin, images, videos)
}
