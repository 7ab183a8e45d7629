package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityDTO "jebshit_backend/internals/features/content/activities/dto"
	activityModel "jebshit_backend/internals/features/content/activities/model"
	"jebshit_backend/internals/features/content/core"
	helper "jebshit_backend/internals/helpers"
	helperOSS "jebshit_backend/internals/helpers/oss"
	"jebshit_backend/internals/i18n"
	"jebshit_backend/internals/middlewares"
)

type ActivityController struct {
	Store  *core.Store[*activityModel.ActivityModel]
	Images *helperOSS.ImageService
}

func NewActivityController(db *gorm.DB, images *helperOSS.ImageService) *ActivityController {
	return &ActivityController{Store: core.NewStore[*activityModel.ActivityModel](db), Images: images}
}

var validateActivity = validator.New()

// GET /api/a/activities?q=
func (h *ActivityController) List(c *fiber.Ctx) error {
	items, err := h.Store.List(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch activities")
	}
	items = core.Filter(items, c.Query("q"), func(m *activityModel.ActivityModel) []string {
		return []string{m.ActivityTitle, m.ActivityDescription}
	})
	return helper.JsonOK(c, i18n.T(middlewares.Lang(c), "list.ok"), activityDTO.FromActivityModels(items))
}

// GET /api/a/activities/watch
func (h *ActivityController) Watch(c *fiber.Ctx) error {
	return core.ServeWatch(c, h.Store, activityDTO.FromActivityModels)
}

// POST /api/a/activities
func (h *ActivityController) Create(c *fiber.Ctx) error {
	var req activityDTO.CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validateActivity.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if _, err := h.Store.Create(c.UserContext(), m); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, i18n.T(middlewares.Lang(c), "save_failed"))
	}
	return helper.JsonCreated(c, i18n.T(middlewares.Lang(c), "created"), activityDTO.FromActivityModel(m))
}

// PUT /api/a/activities/:id
func (h *ActivityController) Update(c *fiber.Ctx) error {
	lang := middlewares.Lang(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req activityDTO.UpdateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateActivity.Struct(req); err != nil {
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
		h.Images.DeleteManyByPublicURL(c.UserContext(), core.Removed(old.ActivityImageURLs, *req.ImageURLs))
	}

	fresh, err := h.Store.Get(c.UserContext(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, i18n.T(lang, "save_failed"))
	}
	return helper.JsonOK(c, i18n.T(lang, "updated"), activityDTO.FromActivityModel(fresh))
}

// DELETE /api/a/activities/:id
func (h *ActivityController) Delete(c *fiber.Ctx) error {
	lang := middlewares.Lang(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	if old, err := h.Store.Get(c.UserContext(), id); err == nil {
		h.Images.DeleteManyByPublicURL(c.UserContext(), old.ActivityImageURLs)
	}
	if err := h.Store.Delete(c.UserContext(), id); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, i18n.T(lang, "delete_failed"))
	}
	return helper.JsonOK(c, i18n.T(lang, "deleted"), nil)
}
