package dto

import (
	"strings"

	"jebshit_backend/internals/features/content/core"
	jobModel "jebshit_backend/internals/features/content/jobs/model"
	"jebshit_backend/internals/helpers/dbtime"
)

type CreateJobRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	JobType     string `json:"job_type" validate:"required,oneof=full-time part-time temporary"`
	Location    string `json:"location"`
	ContactInfo string `json:"contact_info"`
	Content     string `json:"content"`
	PublishDate string `json:"publish_date"`
	ExpiryDate  string `json:"expiry_date"`
	Status      string `json:"status" validate:"omitempty,oneof=draft published"`
}

func (r *CreateJobRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Location = strings.TrimSpace(r.Location)
	r.ContactInfo = strings.TrimSpace(r.ContactInfo)
	r.Content = strings.TrimSpace(r.Content)
	r.PublishDate = strings.TrimSpace(r.PublishDate)
	r.ExpiryDate = strings.TrimSpace(r.ExpiryDate)
}

func (r CreateJobRequest) ToModel() *jobModel.JobModel {
	status := r.Status
	if status == "" {
		status = core.StatusDraft
	}
	return &jobModel.JobModel{
		JobTitle:       r.Title,
		JobDescription: r.Description,
		JobType:        jobModel.JobType(r.JobType),
		JobLocation:    r.Location,
		JobContactInfo: r.ContactInfo,
		JobContent:     r.Content,
		JobPublishDate: dbtime.ToDBTime(r.PublishDate),
		JobExpiryDate:  dbtime.ToDBTime(r.ExpiryDate),
		JobStatus:      status,
	}
}

type UpdateJobRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description"`
	JobType     *string `json:"job_type" validate:"omitempty,oneof=full-time part-time temporary"`
	Location    *string `json:"location"`
	ContactInfo *string `json:"contact_info"`
	Content     *string `json:"content"`
	PublishDate *string `json:"publish_date"`
	ExpiryDate  *string `json:"expiry_date"`
	Status      *string `json:"status" validate:"omitempty,oneof=draft published"`
}

func (r UpdateJobRequest) ToUpdates() map[string]any {
	u := make(map[string]any)
	if r.Title != nil {
		u["job_title"] = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		u["job_description"] = strings.TrimSpace(*r.Description)
	}
	if r.JobType != nil {
		u["job_type"] = *r.JobType
	}
	if r.Location != nil {
		u["job_location"] = strings.TrimSpace(*r.Location)
	}
	if r.ContactInfo != nil {
		u["job_contact_info"] = strings.TrimSpace(*r.ContactInfo)
	}
	if r.Content != nil {
		u["job_content"] = strings.TrimSpace(*r.Content)
	}
	if r.PublishDate != nil {
		u["job_publish_date"] = strings.TrimSpace(*r.PublishDate)
	}
	if r.ExpiryDate != nil {
		u["job_expiry_date"] = strings.TrimSpace(*r.ExpiryDate)
	}
	if r.Status != nil {
		u["job_status"] = *r.Status
	}
	return u
}

type JobResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	JobType     string `json:"job_type"`
	Location    string `json:"location"`
	ContactInfo string `json:"contact_info"`
	Content     string `json:"content"`
	PublishDate string `json:"publish_date"`
	ExpiryDate  string `json:"expiry_date"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func FromJobModel(m *jobModel.JobModel) JobResponse {
	created := m.JobCreatedAt
	updated := m.JobUpdatedAt
	return JobResponse{
		ID:          m.JobID.String(),
		Title:       m.JobTitle,
		Description: m.JobDescription,
		JobType:     string(m.JobType),
		Location:    m.JobLocation,
		ContactInfo: m.JobContactInfo,
		Content:     m.JobContent,
		PublishDate: dbtime.FromDBTime(m.JobPublishDate),
		ExpiryDate:  dbtime.FromDBTime(m.JobExpiryDate),
		Status:      m.JobStatus,
		CreatedAt:   dbtime.ToISO(&created),
		UpdatedAt:   dbtime.ToISO(&updated),
	}
}

func FromJobModels(items []*jobModel.JobModel) []JobResponse {
	out := make([]JobResponse, 0, len(items))
	for _, m := range items {
		out = append(out, FromJobModel(m))
	}
	return out
}
