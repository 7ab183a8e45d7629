package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"jebshit_backend/internals/features/content/core"
	jobDTO "jebshit_backend/internals/features/content/jobs/dto"
	jobModel "jebshit_backend/internals/features/content/jobs/model"
	helper "jebshit_backend/internals/helpers"
	"jebshit_backend/internals/i18n"
	"jebshit_backend/internals/middlewares"
)

// Jobs carry no media references, so no blob cleanup happens anywhere here.
type JobController struct {
	Store *core.Store[*jobModel.JobModel]
}

func NewJobController(db *gorm.DB) *JobController {
	return &JobController{Store: core.NewStore[*jobModel.JobModel](db)}
}

var validateJob = validator.New()

// GET /api/a/jobs?q=
func (h *JobController) List(c *fiber.Ctx) error {
	items, err := h.Store.List(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch jobs")
	}
	items = core.Filter(items, c.Query("q"), func(m *jobModel.JobModel) []string {
		return []string{m.JobTitle, m.JobLocation}
	})
	return helper.JsonOK(c, i18n.T(middlewares.Lang(c), "list.ok"), jobDTO.FromJobModels(items))
}

// GET /api/a/jobs/watch
func (h *JobController) Watch(c *fiber.Ctx) error {
	return core.ServeWatch(c, h.Store, jobDTO.FromJobModels)
}

// POST /api/a/jobs
func (h *JobController) Create(c *fiber.Ctx) error {
	var req jobDTO.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validateJob.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if _, err := h.Store.Create(c.UserContext(), m); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, i18n.T(middlewares.Lang(c), "save_failed"))
	}
	return helper.JsonCreated(c, i18n.T(middlewares.Lang(c), "created"), jobDTO.FromJobModel(m))
}

// PUT /api/a/jobs/:id
func (h *JobController) Update(c *fiber.Ctx) error {
	lang := middlewares.Lang(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req jobDTO.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateJob.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := h.Store.Update(c.UserContext(), id, req.ToUpdates()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, i18n.T(lang, "not_found"))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, i18n.T(lang, "save_failed"))
	}

	fresh, err := h.Store.Get(c.UserContext(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, i18n.T(lang, "save_failed"))
	}
	return helper.JsonOK(c, i18n.T(lang, "updated"), jobDTO.FromJobModel(fresh))
}

// DELETE /api/a/jobs/:id
func (h *JobController) Delete(c *fiber.Ctx) error {
	lang := middlewares.Lang(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	if err := h.Store.Delete(c.UserContext(), id); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, i18n.T(lang, "delete_failed"))
	}
	return helper.JsonOK(c, i18n.T(lang, "deleted"), nil)
}
