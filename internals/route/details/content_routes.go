package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityController "jebshit_backend/internals/features/content/activities/controller"
	jobController "jebshit_backend/internals/features/content/jobs/controller"
	martyrController "jebshit_backend/internals/features/content/martyrs/controller"
	memoryController "jebshit_backend/internals/features/content/memories/controller"
	newsController "jebshit_backend/internals/features/content/news/controller"
	storyController "jebshit_backend/internals/features/content/stories/controller"
	topicController "jebshit_backend/internals/features/content/topics/controller"
	helperOSS "jebshit_backend/internals/helpers/oss"
)

// crud is the route surface every content collection exposes.
type crud interface {
	List(c *fiber.Ctx) error
	Watch(c *fiber.Ctx) error
	Create(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
}

func mount(r fiber.Router, path string, h crud) {
	g := r.Group(path)
	g.Get("/", h.List)
	g.Get("/watch", h.Watch)
	g.Post("/", h.Create)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

func ContentRoutes(admin fiber.Router, db *gorm.DB, images *helperOSS.ImageService) {
	mount(admin, "/news", newsController.NewNewsController(db, images))
	mount(admin, "/martyrs", martyrController.NewMartyrController(db, images))
	mount(admin, "/stories", storyController.NewStoryController(db, images))
	mount(admin, "/activities", activityController.NewActivityController(db, images))
	mount(admin, "/topics", topicController.NewTopicController(db, images))
	mount(admin, "/jobs", jobController.NewJobController(db))
	mount(admin, "/memories", memoryController.NewMemoryController(db, images))
}
