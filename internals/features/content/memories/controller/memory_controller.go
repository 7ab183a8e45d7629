package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"jebshit_backend/internals/features/content/core"
	memoryDTO "jebshit_backend/internals/features/content/memories/dto"
	memoryModel "jebshit_backend/internals/features/content/memories/model"
	helper "jebshit_backend/internals/helpers"
	helperOSS "jebshit_backend/internals/helpers/oss"
	"jebshit_backend/internals/i18n"
	"jebshit_backend/internals/middlewares"
)

type MemoryController struct {
	Store  *core.Store[*memoryModel.MemoryModel]
	Images *helperOSS.ImageService
}

func NewMemoryController(db *gorm.DB, images *helperOSS.ImageService) *MemoryController {
	return &MemoryController{Store: core.NewStore[*memoryModel.MemoryModel](db), Images: images}
}

var validateMemory = validator.New()

// GET /api/a/memories?q=
func (h *MemoryController) List(c *fiber.Ctx) error {
	items, err := h.Store.List(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch memories")
	}
	items = core.Filter(items, c.Query("q"), func(m *memoryModel.MemoryModel) []string {
		return []string{m.MemoryTitle, m.MemoryDescription}
	})
	return helper.JsonOK(c, i18n.T(middlewares.Lang(c), "list.ok"), memoryDTO.FromMemoryModels(items))
}

// GET /api/a/memories/watch
func (h *MemoryController) Watch(c *fiber.Ctx) error {
	return core.ServeWatch(c, h.Store, memoryDTO.FromMemoryModels)
}

// POST /api/a/memories
func (h *MemoryController) Create(c *fiber.Ctx) error {
	var req memoryDTO.CreateMemoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validateMemory.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if _, err := h.Store.Create(c.UserContext(), m); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, i18n.T(middlewares.Lang(c), "save_failed"))
	}
	return helper.JsonCreated(c, i18n.T(middlewares.Lang(c), "created"), memoryDTO.FromMemoryModel(m))
}

// PUT /api/a/memories/:id
func (h *MemoryController) Update(c *fiber.Ctx) error {
	lang := middlewares.Lang(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req memoryDTO.UpdateMemoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateMemory.Struct(req); err != nil {
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
		h.Images.DeleteManyByPublicURL(c.UserContext(), core.Removed(old.MemoryImageURLs, *req.ImageURLs))
	}

	fresh, err := h.Store.Get(c.UserContext(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, i18n.T(lang, "save_failed"))
	}
	return helper.JsonOK(c, i18n.T(lang, "updated"), memoryDTO.FromMemoryModel(fresh))
}

// DELETE /api/a/memories/:id
func (h *MemoryController) Delete(c *fiber.Ctx) error {
	lang := middlewares.Lang(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	if old, err := h.Store.Get(c.UserContext(), id); err == nil {
		h.Images.DeleteManyByPublicURL(c.UserContext(), old.MemoryImageURLs)
	}
	if err := h.Store.Delete(c.UserContext(), id); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, i18n.T(lang, "delete_failed"))
	}
	return helper.JsonOK(c, i18n.T(lang, "deleted"), nil)
}
