package dto

import (
	"strings"

	"gorm.io/datatypes"

	"jebshit_backend/internals/features/content/core"
	newsModel "jebshit_backend/internals/features/content/news/model"
	"jebshit_backend/internals/helpers/dbtime"
)

// ===================== REQUESTS =====================

type CreateNewsRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description"`
	Content     string   `json:"content" validate:"required"`
	Date        string   `json:"date"`
	IsUrgent    bool     `json:"is_urgent"`
	MediaURLs   []string `json:"media_urls" validate:"omitempty,dive,url"`
	Status      string   `json:"status" validate:"omitempty,oneof=draft published"`
}

func (r *CreateNewsRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Content = strings.TrimSpace(r.Content)
	r.Date = strings.TrimSpace(r.Date)
}

func (r CreateNewsRequest) ToModel() *newsModel.NewsModel {
	status := r.Status
	if status == "" {
		status = core.StatusDraft
	}
	return &newsModel.NewsModel{
		NewsTitle:       r.Title,
		NewsDescription: r.Description,
		NewsContent:     r.Content,
		NewsDate:        dbtime.ToDBTime(r.Date),
		NewsIsUrgent:    r.IsUrgent,
		NewsMediaURLs:   datatypes.NewJSONSlice(core.CapRefs(r.MediaURLs, newsModel.MaxNewsMedia)),
		NewsStatus:      status,
	}
}

type UpdateNewsRequest struct {
	Title       *string   `json:"title" validate:"omitempty,max=200"`
	Description *string   `json:"description"`
	Content     *string   `json:"content"`
	Date        *string   `json:"date"`
	IsUrgent    *bool     `json:"is_urgent"`
	MediaURLs   *[]string `json:"media_urls" validate:"omitempty,dive,url"`
	Status      *string   `json:"status" validate:"omitempty,oneof=draft published"`
}

// ToUpdates builds the partial column map; date stays a string so the store
// applies its own coercion.
func (r UpdateNewsRequest) ToUpdates() map[string]any {
	u := make(map[string]any)
	if r.Title != nil {
		u["news_title"] = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		u["news_description"] = strings.TrimSpace(*r.Description)
	}
	if r.Content != nil {
		u["news_content"] = strings.TrimSpace(*r.Content)
	}
	if r.Date != nil {
		u["news_date"] = strings.TrimSpace(*r.Date)
	}
	if r.IsUrgent != nil {
		u["news_is_urgent"] = *r.IsUrgent
	}
	if r.MediaURLs != nil {
		u["news_media_urls"] = datatypes.NewJSONSlice(core.CapRefs(*r.MediaURLs, newsModel.MaxNewsMedia))
	}
	if r.Status != nil {
		u["news_status"] = *r.Status
	}
	return u
}

// ===================== RESPONSE =====================

type NewsResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Date        string   `json:"date"`
	IsUrgent    bool     `json:"is_urgent"`
	MediaURLs   []string `json:"media_urls"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

func FromNewsModel(m *newsModel.NewsModel) NewsResponse {
	created := m.NewsCreatedAt
	updated := m.NewsUpdatedAt
	return NewsResponse{
		ID:          m.NewsID.String(),
		Title:       m.NewsTitle,
		Description: m.NewsDescription,
		Content:     m.NewsContent,
		Date:        dbtime.FromDBTime(m.NewsDate),
		IsUrgent:    m.NewsIsUrgent,
		MediaURLs:   append([]string(nil), m.NewsMediaURLs...),
		Status:      m.NewsStatus,
		CreatedAt:   dbtime.ToISO(&created),
		UpdatedAt:   dbtime.ToISO(&updated),
	}
}

func FromNewsModels(items []*newsModel.NewsModel) []NewsResponse {
	out := make([]NewsResponse, 0, len(items))
	for _, m := range items {
		out = append(out, FromNewsModel(m))
	}
	return out
}
