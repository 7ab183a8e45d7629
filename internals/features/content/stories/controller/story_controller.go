package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"jebshit_backend/internals/features/content/core"
	storyDTO "jebshit_backend/internals/features/content/stories/dto"
	storyModel "jebshit_backend/internals/features/content/stories/model"
	helper "jebshit_backend/internals/helpers"
	helperOSS "jebshit_backend/internals/helpers/oss"
	"jebshit_backend/internals/i18n"
	"jebshit_backend/internals/middlewares"
)

type StoryController struct {
	Store  *core.Store[*storyModel.StoryModel]
	Images *helperOSS.ImageService
}

func NewStoryController(db *gorm.DB, images *helperOSS.ImageService) *StoryController {
	return &StoryController{Store: core.NewStore[*storyModel.StoryModel](db), Images: images}
}

var validateStory = validator.New()

// GET /api/a/stories?q=
func (h *StoryController) List(c *fiber.Ctx) error {
	items, err := h.Store.List(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch stories")
	}
	items = core.Filter(items, c.Query("q"), func(m *storyModel.StoryModel) []string {
		return []string{m.StoryTitle, m.StoryContent}
	})
	return helper.JsonOK(c, i18n.T(middlewares.Lang(c), "list.ok"), storyDTO.FromStoryModels(items))
}

// GET /api/a/stories/watch
func (h *StoryController) Watch(c *fiber.Ctx) error {
	return core.ServeWatch(c, h.Store, storyDTO.FromStoryModels)
}

// POST /api/a/stories
func (h *StoryController) Create(c *fiber.Ctx) error {
	var req storyDTO.CreateStoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validateStory.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if _, err := h.Store.Create(c.UserContext(), m); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, i18n.T(middlewares.Lang(c), "save_failed"))
	}
	return helper.JsonCreated(c, i18n.T(middlewares.Lang(c), "created"), storyDTO.FromStoryModel(m))
}

// PUT /api/a/stories/:id
func (h *StoryController) Update(c *fiber.Ctx) error {
	lang := middlewares.Lang(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req storyDTO.UpdateStoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateStory.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	old, err := h.Store.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, i18n.T(lang, "not_found"))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, i18n.T(lang, "save_failed"))
	}

	if err := h.Store.Update(c.UserContext(), id, req.ToUpdates()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, i18n.T(lang, "not_found"))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, i18n.T(lang, "save_failed"))
	}

	if req.ImageURLs != nil {
		h.Images.DeleteManyByPublicURL(c.UserContext(), core.Removed(old.StoryImageURLs, *req.ImageURLs))
	}

	fresh, err := h.Store.Get(c.UserContext(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, i18n.T(lang, "save_failed"))
	}
	return helper.JsonOK(c, i18n.T(lang, "updated"), storyDTO.FromStoryModel(fresh))
}

// DELETE /api/a/stories/:id — image blobs best-effort, youtube ids untouched.
func (h *StoryController) Delete(c *fiber.Ctx) error {
	lang := middlewares.Lang(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	if old, err := h.Store.Get(c.UserContext(), id); err == nil {
		h.Images.DeleteManyByPublicURL(c.UserContext(), old.StoryImageURLs)
	}
	if err := h.Store.Delete(c.UserContext(), id); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, i18n.T(lang, "delete_failed"))
	}
	return helper.JsonOK(c, i18n.T(lang, "deleted"), nil)
}
