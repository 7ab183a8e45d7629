package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"jebshit_backend/internals/features/content/core"
	topicDTO "jebshit_backend/internals/features/content/topics/dto"
	topicModel "jebshit_backend/internals/features/content/topics/model"
	helper "jebshit_backend/internals/helpers"
	helperOSS "jebshit_backend/internals/helpers/oss"
	"jebshit_backend/internals/i18n"
	"jebshit_backend/internals/middlewares"
)

type TopicController struct {
	Store  *core.Store[*topicModel.TopicModel]
	Images *helperOSS.ImageService
}

func NewTopicController(db *gorm.DB, images *helperOSS.ImageService) *TopicController {
	return &TopicController{Store: core.NewStore[*topicModel.TopicModel](db), Images: images}
}

var validateTopic = validator.New()

// GET /api/a/topics?q=
func (h *TopicController) List(c *fiber.Ctx) error {
	items, err := h.Store.List(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch topics")
	}
	items = core.Filter(items, c.Query("q"), func(m *topicModel.TopicModel) []string {
		return []string{m.TopicTitle, m.TopicDescription}
	})
	return helper.JsonOK(c, i18n.T(middlewares.Lang(c), "list.ok"), topicDTO.FromTopicModels(items))
}

// GET /api/a/topics/watch
func (h *TopicController) Watch(c *fiber.Ctx) error {
	return core.ServeWatch(c, h.Store, topicDTO.FromTopicModels)
}

// POST /api/a/topics
func (h *TopicController) Create(c *fiber.Ctx) error {
	var req topicDTO.CreateTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validateTopic.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if _, err := h.Store.Create(c.UserContext(), m); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, i18n.T(middlewares.Lang(c), "save_failed"))
	}
	return helper.JsonCreated(c, i18n.T(middlewares.Lang(c), "created"), topicDTO.FromTopicModel(m))
}

// PUT /api/a/topics/:id
func (h *TopicController) Update(c *fiber.Ctx) error {
	lang := middlewares.Lang(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req topicDTO.UpdateTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateTopic.Struct(req); err != nil {
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
		h.Images.DeleteManyByPublicURL(c.UserContext(), core.Removed(old.TopicImageURLs, *req.ImageURLs))
	}

	fresh, err := h.Store.Get(c.UserContext(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, i18n.T(lang, "save_failed"))
	}
	return helper.JsonOK(c, i18n.T(lang, "updated"), topicDTO.FromTopicModel(fresh))
}

// DELETE /api/a/topics/:id
func (h *TopicController) Delete(c *fiber.Ctx) error {
	lang := middlewares.Lang(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	if old, err := h.Store.Get(c.UserContext(), id); err == nil {
		h.Images.DeleteManyByPublicURL(c.UserContext(), old.TopicImageURLs)
	}
	if err := h.Store.Delete(c.UserContext(), id); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, i18n.T(lang, "delete_failed"))
	}
	return helper.JsonOK(c, i18n.T(lang, "deleted"), nil)
}
