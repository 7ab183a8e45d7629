package dto

import (
	"strings"

	"gorm.io/datatypes"

	activityModel "jebshit_backend/internals/features/content/activities/model"
	"jebshit_backend/internals/features/content/core"
	"jebshit_backend/internals/helpers/dbtime"
)

type CreateActivityRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description"`
	Content     string   `json:"content" validate:"required"`
	Date        string   `json:"date"`
	ImageURLs   []string `json:"image_urls" validate:"omitempty,max=6,dive,url"`
	Status      string   `json:"status" validate:"omitempty,oneof=draft published"`
}

func (r *CreateActivityRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Content = strings.TrimSpace(r.Content)
	r.Date = strings.TrimSpace(r.Date)
}

func (r CreateActivityRequest) ToModel() *activityModel.ActivityModel {
	status := r.Status
	if status == "" {
		status = core.StatusDraft
	}
	return &activityModel.ActivityModel{
		ActivityTitle:       r.Title,
		ActivityDescription: r.Description,
		ActivityContent:     r.Content,
		ActivityDate:        dbtime.ToDBTime(r.Date),
		ActivityImageURLs:   datatypes.NewJSONSlice(core.CapRefs(r.ImageURLs, activityModel.MaxActivityImages)),
		ActivityStatus:      status,
	}
}

type UpdateActivityRequest struct {
	Title       *string   `json:"title" validate:"omitempty,max=200"`
	Description *string   `json:"description"`
	Content     *string   `json:"content"`
	Date        *string   `json:"date"`
	ImageURLs   *[]string `json:"image_urls" validate:"omitempty,max=6,dive,url"`
	Status      *string   `json:"status" validate:"omitempty,oneof=draft published"`
}

func (r UpdateActivityRequest) ToUpdates() map[string]any {
	u := make(map[string]any)
	if r.Title != nil {
		u["activity_title"] = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		u["activity_description"] = strings.TrimSpace(*r.Description)
	}
	if r.Content != nil {
		u["activity_content"] = strings.TrimSpace(*r.Content)
	}
	if r.Date != nil {
		u["activity_date"] = strings.TrimSpace(*r.Date)
	}
	if r.ImageURLs != nil {
		u["activity_image_urls"] = datatypes.NewJSONSlice(core.CapRefs(*r.ImageURLs, activityModel.MaxActivityImages))
	}
	if r.Status != nil {
		u["activity_status"] = *r.Status
	}
	return u
}

type ActivityResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Date        string   `json:"date"`
	ImageURLs   []string `json:"image_urls"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

func FromActivityModel(m *activityModel.ActivityModel) ActivityResponse {
	created := m.ActivityCreatedAt
	updated := m.ActivityUpdatedAt
	return ActivityResponse{
		ID:          m.ActivityID.String(),
		Title:       m.ActivityTitle,
		Description: m.ActivityDescription,
		Content:     m.ActivityContent,
		Date:        dbtime.FromDBTime(m.ActivityDate),
		ImageURLs:   append([]string(nil), m.ActivityImageURLs...),
		Status:      m.ActivityStatus,
		CreatedAt:   dbtime.ToISO(&created),
		UpdatedAt:   dbtime.ToISO(&updated),
	}
}

func FromActivityModels(items []*activityModel.ActivityModel) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(items))
	for _, m := range items {
		out = append(out, FromActivityModel(m))
	}
	return out
}
