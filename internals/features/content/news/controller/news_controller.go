package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"jebshit_backend/internals/features/content/core"
	newsDTO "jebshit_backend/internals/features/content/news/dto"
	newsModel "jebshit_backend/internals/features/content/news/model"
	helper "jebshit_backend/internals/helpers"
	helperOSS "jebshit_backend/internals/helpers/oss"
	"jebshit_backend/internals/i18n"
	"jebshit_backend/internals/middlewares"
)

type NewsController struct {
	Store  *core.Store[*newsModel.NewsModel]
	Images *helperOSS.ImageService
}

func NewNewsController(db *gorm.DB, images *helperOSS.ImageService) *NewsController {
	return &NewsController{Store: core.NewStore[*newsModel.NewsModel](db), Images: images}
}

var validateNews = validator.New()

// ===================== LIST =====================
// GET /api/a/news?q=
func (h *NewsController) List(c *fiber.Ctx) error {
	items, err := h.Store.List(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch news")
	}
	items = core.Filter(items, c.Query("q"), func(m *newsModel.NewsModel) []string {
		return []string{m.NewsTitle, m.NewsDescription}
	})
	return helper.JsonOK(c, i18n.T(middlewares.Lang(c), "list.ok"), newsDTO.FromNewsModels(items))
}

// ===================== WATCH =====================
// GET /api/a/news/watch — SSE live view
func (h *NewsController) Watch(c *fiber.Ctx) error {
	return core.ServeWatch(c, h.Store, newsDTO.FromNewsModels)
}

// ===================== CREATE =====================
// POST /api/a/news
func (h *NewsController) Create(c *fiber.Ctx) error {
	var req newsDTO.CreateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validateNews.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if _, err := h.Store.Create(c.UserContext(), m); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, i18n.T(middlewares.Lang(c), "save_failed"))
	}
	return helper.JsonCreated(c, i18n.T(middlewares.Lang(c), "created"), newsDTO.FromNewsModel(m))
}

// ===================== UPDATE =====================
// PUT /api/a/news/:id
func (h *NewsController) Update(c *fiber.Ctx) error {
	lang := middlewares.Lang(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req newsDTO.UpdateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateNews.Struct(req); err != nil {
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

	// Orphan cleanup only after the write succeeded, so a failed write never
	// loses blobs that are still referenced.
	if req.MediaURLs != nil {
		h.Images.DeleteManyByPublicURL(c.UserContext(), core.Removed(old.NewsMediaURLs, *req.MediaURLs))
	}

	fresh, err := h.Store.Get(c.UserContext(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, i18n.T(lang, "save_failed"))
	}
	return helper.JsonOK(c, i18n.T(lang, "updated"), newsDTO.FromNewsModel(fresh))
}

// ===================== DELETE =====================
// DELETE /api/a/news/:id — owned blobs first (best effort), then the record.
func (h *NewsController) Delete(c *fiber.Ctx) error {
	lang := middlewares.Lang(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	if old, err := h.Store.Get(c.UserContext(), id); err == nil {
		h.Images.DeleteManyByPublicURL(c.UserContext(), old.NewsMediaURLs)
	}
	if err := h.Store.Delete(c.UserContext(), id); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, i18n.T(lang, "delete_failed"))
	}
	return helper.JsonOK(c, i18n.T(lang, "deleted"), nil)
}
