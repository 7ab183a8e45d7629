package dto

import (
	"strings"

	"gorm.io/datatypes"

	"jebshit_backend/internals/features/content/core"
	topicModel "jebshit_backend/internals/features/content/topics/model"
	"jebshit_backend/internals/helpers/dbtime"
)

type CreateTopicRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description"`
	Content     string   `json:"content" validate:"required"`
	PublishDate string   `json:"publish_date"`
	ImageURLs   []string `json:"image_urls" validate:"omitempty,max=6,dive,url"`
	YouTubeIDs  []string `json:"youtube_ids" validate:"omitempty,max=3"`
	Status      string   `json:"status" validate:"omitempty,oneof=draft published"`
}

func (r *CreateTopicRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Content = strings.TrimSpace(r.Content)
	r.PublishDate = strings.TrimSpace(r.PublishDate)
}

func (r CreateTopicRequest) ToModel() *topicModel.TopicModel {
	status := r.Status
	if status == "" {
		status = core.StatusDraft
	}
	return &topicModel.TopicModel{
		TopicTitle:       r.Title,
		TopicDescription: r.Description,
		TopicContent:     r.Content,
		TopicPublishDate: dbtime.ToDBTime(r.PublishDate),
		TopicImageURLs:   datatypes.NewJSONSlice(core.CapRefs(r.ImageURLs, topicModel.MaxTopicImages)),
		TopicYouTubeIDs:  datatypes.NewJSONSlice(core.CapRefs(r.YouTubeIDs, topicModel.MaxTopicVideos)),
		TopicStatus:      status,
	}
}

type UpdateTopicRequest struct {
	Title       *string   `json:"title" validate:"omitempty,max=200"`
	Description *string   `json:"description"`
	Content     *string   `json:"content"`
	PublishDate *string   `json:"publish_date"`
	ImageURLs   *[]string `json:"image_urls" validate:"omitempty,max=6,dive,url"`
	YouTubeIDs  *[]string `json:"youtube_ids" validate:"omitempty,max=3"`
	Status      *string   `json:"status" validate:"omitempty,oneof=draft published"`
}

func (r UpdateTopicRequest) ToUpdates() map[string]any {
	u := make(map[string]any)
	if r.Title != nil {
		u["topic_title"] = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		u["topic_description"] = strings.TrimSpace(*r.Description)
	}
	if r.Content != nil {
		u["topic_content"] = strings.TrimSpace(*r.Content)
	}
	if r.PublishDate != nil {
		u["topic_publish_date"] = strings.TrimSpace(*r.PublishDate)
	}
	if r.ImageURLs != nil {
		u["topic_image_urls"] = datatypes.NewJSONSlice(core.CapRefs(*r.ImageURLs, topicModel.MaxTopicImages))
	}
	if r.YouTubeIDs != nil {
		u["topic_youtube_ids"] = datatypes.NewJSONSlice(core.CapRefs(*r.YouTubeIDs, topicModel.MaxTopicVideos))
	}
	if r.Status != nil {
		u["topic_status"] = *r.Status
	}
	return u
}

type TopicResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	PublishDate string   `json:"publish_date"`
	ImageURLs   []string `json:"image_urls"`
	YouTubeIDs  []string `json:"youtube_ids"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

func FromTopicModel(m *topicModel.TopicModel) TopicResponse {
	created := m.TopicCreatedAt
	updated := m.TopicUpdatedAt
	return TopicResponse{
		ID:          m.TopicID.String(),
		Title:       m.TopicTitle,
		Description: m.TopicDescription,
		Content:     m.TopicContent,
		PublishDate: dbtime.FromDBTime(m.TopicPublishDate),
		ImageURLs:   append([]string(nil), m.TopicImageURLs...),
		YouTubeIDs:  append([]string(nil), m.TopicYouTubeIDs...),
		Status:      m.TopicStatus,
		CreatedAt:   dbtime.ToISO(&created),
		UpdatedAt:   dbtime.ToISO(&updated),
	}
}

func FromTopicModels(items []*topicModel.TopicModel) []TopicResponse {
	out := make([]TopicResponse, 0, len(items))
	for _, m := range items {
		out = append(out, FromTopicModel(m))
	}
	return out
}
