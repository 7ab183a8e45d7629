package dto

import (
	"strings"

	"gorm.io/datatypes"

	"jebshit_backend/internals/features/content/core"
	storyModel "jebshit_backend/internals/features/content/stories/model"
	"jebshit_backend/internals/helpers/dbtime"
)

type CreateStoryRequest struct {
	Title      string   `json:"title" validate:"required,max=200"`
	Content    string   `json:"content" validate:"required"`
	ImageURLs  []string `json:"image_urls" validate:"omitempty,max=4,dive,url"`
	YouTubeIDs []string `json:"youtube_ids" validate:"omitempty,max=3"`
	Status     string   `json:"status" validate:"omitempty,oneof=draft published"`
}

func (r *CreateStoryRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Content = strings.TrimSpace(r.Content)
}

func (r CreateStoryRequest) ToModel() *storyModel.StoryModel {
	status := r.Status
	if status == "" {
		status = core.StatusDraft
	}
	return &storyModel.StoryModel{
		StoryTitle:      r.Title,
		StoryContent:    r.Content,
		StoryImageURLs:  datatypes.NewJSONSlice(core.CapRefs(r.ImageURLs, storyModel.MaxStoryImages)),
		StoryYouTubeIDs: datatypes.NewJSONSlice(core.CapRefs(r.YouTubeIDs, storyModel.MaxStoryVideos)),
		StoryStatus:     status,
	}
}

type UpdateStoryRequest struct {
	Title      *string   `json:"title" validate:"omitempty,max=200"`
	Content    *string   `json:"content"`
	ImageURLs  *[]string `json:"image_urls" validate:"omitempty,max=4,dive,url"`
	YouTubeIDs *[]string `json:"youtube_ids" validate:"omitempty,max=3"`
	Status     *string   `json:"status" validate:"omitempty,oneof=draft published"`
}

func (r UpdateStoryRequest) ToUpdates() map[string]any {
	u := make(map[string]any)
	if r.Title != nil {
		u["story_title"] = strings.TrimSpace(*r.Title)
	}
	if r.Content != nil {
		u["story_content"] = strings.TrimSpace(*r.Content)
	}
	if r.ImageURLs != nil {
		u["story_image_urls"] = datatypes.NewJSONSlice(core.CapRefs(*r.ImageURLs, storyModel.MaxStoryImages))
	}
	if r.YouTubeIDs != nil {
		u["story_youtube_ids"] = datatypes.NewJSONSlice(core.CapRefs(*r.YouTubeIDs, storyModel.MaxStoryVideos))
	}
	if r.Status != nil {
		u["story_status"] = *r.Status
	}
	return u
}

type StoryResponse struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	ImageURLs  []string `json:"image_urls"`
	YouTubeIDs []string `json:"youtube_ids"`
	Status     string   `json:"status"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

func FromStoryModel(m *storyModel.StoryModel) StoryResponse {
	created := m.StoryCreatedAt
	updated := m.StoryUpdatedAt
	return StoryResponse{
		ID:         m.StoryID.String(),
		Title:      m.StoryTitle,
		Content:    m.StoryContent,
		ImageURLs:  append([]string(nil), m.StoryImageURLs...),
		YouTubeIDs: append([]string(nil), m.StoryYouTubeIDs...),
		Status:     m.StoryStatus,
		CreatedAt:  dbtime.ToISO(&created),
		UpdatedAt:  dbtime.ToISO(&updated),
	}
}

func FromStoryModels(items []*storyModel.StoryModel) []StoryResponse {
	out := make([]StoryResponse, 0, len(items))
	for _, m := range items {
		out = append(out, FromStoryModel(m))
	}
	return out
}
