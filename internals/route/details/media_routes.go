package details

import (
	"github.com/gofiber/fiber/v2"

	mediaController "jebshit_backend/internals/features/media/controller"
	helperOSS "jebshit_backend/internals/helpers/oss"
	"jebshit_backend/internals/helpers/youtube"
)

func MediaRoutes(admin fiber.Router, images *helperOSS.ImageService, videos *youtube.Service) {
	ctrl := mediaController.NewMediaController(images, videos)

	media := admin.Group("/media")
	media.Post("/images", ctrl.UploadImage)
	media.Delete("/images", ctrl.DeleteImage)
	media.Post("/videos", ctrl.UploadVideo)
	media.Post("/batch", ctrl.UploadBatch)
}
