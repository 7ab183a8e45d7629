package dto

import (
	"strings"

	"gorm.io/datatypes"

	"jebshit_backend/internals/features/content/core"
	memoryModel "jebshit_backend/internals/features/content/memories/model"
	"jebshit_backend/internals/helpers/dbtime"
)

type CreateMemoryRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description"`
	Content     string   `json:"content" validate:"required"`
	MemoryDate  string   `json:"memory_date"`
	ImageURLs   []string `json:"image_urls" validate:"omitempty,max=6,dive,url"`
	YouTubeIDs  []string `json:"youtube_ids" validate:"omitempty,max=4"`
	Status      string   `json:"status" validate:"omitempty,oneof=draft published"`
}

func (r *CreateMemoryRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Content = strings.TrimSpace(r.Content)
	r.MemoryDate = strings.TrimSpace(r.MemoryDate)
}

func (r CreateMemoryRequest) ToModel() *memoryModel.MemoryModel {
	status := r.Status
	if status == "" {
		status = core.StatusDraft
	}
	return &memoryModel.MemoryModel{
		MemoryTitle:       r.Title,
		MemoryDescription: r.Description,
		MemoryContent:     r.Content,
		MemoryDate:        dbtime.ToDBTime(r.MemoryDate),
		MemoryImageURLs:   datatypes.NewJSONSlice(core.CapRefs(r.ImageURLs, memoryModel.MaxMemoryImages)),
		MemoryYouTubeIDs:  datatypes.NewJSONSlice(core.CapRefs(r.YouTubeIDs, memoryModel.MaxMemoryVideos)),
		MemoryStatus:      status,
	}
}

type UpdateMemoryRequest struct {
	Title       *string   `json:"title" validate:"omitempty,max=200"`
	Description *string   `json:"description"`
	Content     *string   `json:"content"`
	MemoryDate  *string   `json:"memory_date"`
	ImageURLs   *[]string `json:"image_urls" validate:"omitempty,max=6,dive,url"`
	YouTubeIDs  *[]string `json:"youtube_ids" validate:"omitempty,max=4"`
	Status      *string   `json:"status" validate:"omitempty,oneof=draft published"`
}

func (r UpdateMemoryRequest) ToUpdates() map[string]any {
	u := make(map[string]any)
	if r.Title != nil {
		u["memory_title"] = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		u["memory_description"] = strings.TrimSpace(*r.Description)
	}
	if r.Content != nil {
		u["memory_content"] = strings.TrimSpace(*r.Content)
	}
	if r.MemoryDate != nil {
		u["memory_date"] = strings.TrimSpace(*r.MemoryDate)
	}
	if r.ImageURLs != nil {
		u["memory_image_urls"] = datatypes.NewJSONSlice(core.CapRefs(*r.ImageURLs, memoryModel.MaxMemoryImages))
	}
	if r.YouTubeIDs != nil {
		u["memory_youtube_ids"] = datatypes.NewJSONSlice(core.CapRefs(*r.YouTubeIDs, memoryModel.MaxMemoryVideos))
	}
	if r.Status != nil {
		u["memory_status"] = *r.Status
	}
	return u
}

type MemoryResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	MemoryDate  string   `json:"memory_date"`
	ImageURLs   []string `json:"image_urls"`
	YouTubeIDs  []string `json:"youtube_ids"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

func FromMemoryModel(m *memoryModel.MemoryModel) MemoryResponse {
	created := m.MemoryCreatedAt
	updated := m.MemoryUpdatedAt
	return MemoryResponse{
		ID:          m.MemoryID.String(),
		Title:       m.MemoryTitle,
		Description: m.MemoryDescription,
		Content:     m.MemoryContent,
		MemoryDate:  dbtime.FromDBTime(m.MemoryDate),
		ImageURLs:   append([]string(nil), m.MemoryImageURLs...),
		YouTubeIDs:  append([]string(nil), m.MemoryYouTubeIDs...),
		Status:      m.MemoryStatus,
		CreatedAt:   dbtime.ToISO(&created),
		UpdatedAt:   dbtime.ToISO(&updated),
	}
}

func FromMemoryModels(items []*memoryModel.MemoryModel) []MemoryResponse {
	out := make([]MemoryResponse, 0, len(items))
	for _, m := range items {
		out = append(out, FromMemoryModel(m))
	}
	return out
}
