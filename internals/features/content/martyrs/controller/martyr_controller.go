package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"jebshit_backend/internals/features/content/core"
	martyrDTO "jebshit_backend/internals/features/content/martyrs/dto"
	martyrModel "jebshit_backend/internals/features/content/martyrs/model"
	helper "jebshit_backend/internals/helpers"
	helperOSS "jebshit_backend/internals/helpers/oss"
	"jebshit_backend/internals/i18n"
	"jebshit_backend/internals/middlewares"
)

type MartyrController struct {
	Store  *core.Store[*martyrModel.MartyrModel]
	Images *helperOSS.ImageService
}

func NewMartyrController(db *gorm.DB, images *helperOSS.ImageService) *MartyrController {
	return &MartyrController{Store: core.NewStore[*martyrModel.MartyrModel](db), Images: images}
}

var validateMartyr = validator.New()

// GET /api/a/martyrs?q=
func (h *MartyrController) List(c *fiber.Ctx) error {
	items, err := h.Store.List(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch martyrs")
	}
	items = core.Filter(items, c.Query("q"), func(m *martyrModel.MartyrModel) []string {
		return []string{m.MartyrName, m.MartyrBiography}
	})
	return helper.JsonOK(c, i18n.T(middlewares.Lang(c), "list.ok"), martyrDTO.FromMartyrModels(items))
}

// GET /api/a/martyrs/watch
func (h *MartyrController) Watch(c *fiber.Ctx) error {
	return core.ServeWatch(c, h.Store, martyrDTO.FromMartyrModels)
}

// POST /api/a/martyrs
func (h *MartyrController) Create(c *fiber.Ctx) error {
	var req martyrDTO.CreateMartyrRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validateMartyr.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if _, err := h.Store.Create(c.UserContext(), m); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, i18n.T(middlewares.Lang(c), "save_failed"))
	}
	return helper.JsonCreated(c, i18n.T(middlewares.Lang(c), "created"), martyrDTO.FromMartyrModel(m))
}

// PUT /api/a/martyrs/:id
// If the photo reference changed, the old blob is removed only after the
// record write succeeded.
func (h *MartyrController) Update(c *fiber.Ctx) error {
	lang := middlewares.Lang(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req martyrDTO.UpdateMartyrRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateMartyr.Struct(req); err != nil {
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

	if req.PhotoURL != nil && old.MartyrPhotoURL != nil && *old.MartyrPhotoURL != *req.PhotoURL {
		h.Images.DeleteByPublicURL(c.UserContext(), *old.MartyrPhotoURL)
	}

	fresh, err := h.Store.Get(c.UserContext(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, i18n.T(lang, "save_failed"))
	}
	return helper.JsonOK(c, i18n.T(lang, "updated"), martyrDTO.FromMartyrModel(fresh))
}

// DELETE /api/a/martyrs/:id
func (h *MartyrController) Delete(c *fiber.Ctx) error {
	lang := middlewares.Lang(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	if old, err := h.Store.Get(c.UserContext(), id); err == nil && old.MartyrPhotoURL != nil {
		h.Images.DeleteByPublicURL(c.UserContext(), *old.MartyrPhotoURL)
	}
	if err := h.Store.Delete(c.UserContext(), id); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, i18n.T(lang, "delete_failed"))
	}
	return helper.JsonOK(c, i18n.T(lang, "deleted"), nil)
}
