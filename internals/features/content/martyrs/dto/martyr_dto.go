package dto

import (
	"strings"

	"jebshit_backend/internals/features/content/core"
	martyrModel "jebshit_backend/internals/features/content/martyrs/model"
	"jebshit_backend/internals/helpers/dbtime"
)

type CreateMartyrRequest struct {
	Name             string `json:"name" validate:"required,max=150"`
	PhotoURL         string `json:"photo_url" validate:"omitempty,url"`
	DateOfMartyrdom  string `json:"date_of_martyrdom"`
	Biography        string `json:"biography" validate:"required"`
	Status           string `json:"status" validate:"omitempty,oneof=draft published"`
}

func (r *CreateMartyrRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.PhotoURL = strings.TrimSpace(r.PhotoURL)
	r.DateOfMartyrdom = strings.TrimSpace(r.DateOfMartyrdom)
	r.Biography = strings.TrimSpace(r.Biography)
}

func (r CreateMartyrRequest) ToModel() *martyrModel.MartyrModel {
	status := r.Status
	if status == "" {
		status = core.StatusDraft
	}
	m := &martyrModel.MartyrModel{
		MartyrName:            r.Name,
		MartyrDateOfMartyrdom: dbtime.ToDBTime(r.DateOfMartyrdom),
		MartyrBiography:       r.Biography,
		MartyrStatus:          status,
	}
	if r.PhotoURL != "" {
		m.MartyrPhotoURL = &r.PhotoURL
	}
	return m
}

type UpdateMartyrRequest struct {
	Name            *string `json:"name" validate:"omitempty,max=150"`
	PhotoURL        *string `json:"photo_url"`
	DateOfMartyrdom *string `json:"date_of_martyrdom"`
	Biography       *string `json:"biography"`
	Status          *string `json:"status" validate:"omitempty,oneof=draft published"`
}

func (r UpdateMartyrRequest) ToUpdates() map[string]any {
	u := make(map[string]any)
	if r.Name != nil {
		u["martyr_name"] = strings.TrimSpace(*r.Name)
	}
	if r.PhotoURL != nil {
		// empty string clears the reference
		if v := strings.TrimSpace(*r.PhotoURL); v == "" {
			u["martyr_photo_url"] = nil
		} else {
			u["martyr_photo_url"] = v
		}
	}
	if r.DateOfMartyrdom != nil {
		u["martyr_date_of_martyrdom"] = strings.TrimSpace(*r.DateOfMartyrdom)
	}
	if r.Biography != nil {
		u["martyr_biography"] = strings.TrimSpace(*r.Biography)
	}
	if r.Status != nil {
		u["martyr_status"] = *r.Status
	}
	return u
}

type MartyrResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	PhotoURL        string `json:"photo_url"`
	DateOfMartyrdom string `json:"date_of_martyrdom"`
	Biography       string `json:"biography"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

func FromMartyrModel(m *martyrModel.MartyrModel) MartyrResponse {
	created := m.MartyrCreatedAt
	updated := m.MartyrUpdatedAt
	photo := ""
	if m.MartyrPhotoURL != nil {
		photo = *m.MartyrPhotoURL
	}
	return MartyrResponse{
		ID:              m.MartyrID.String(),
		Name:            m.MartyrName,
		PhotoURL:        photo,
		DateOfMartyrdom: dbtime.FromDBTime(m.MartyrDateOfMartyrdom),
		Biography:       m.MartyrBiography,
		Status:          m.MartyrStatus,
		CreatedAt:       dbtime.ToISO(&created),
		UpdatedAt:       dbtime.ToISO(&updated),
	}
}

func FromMartyrModels(items []*martyrModel.MartyrModel) []MartyrResponse {
	out := make([]MartyrResponse, 0, len(items))
	for _, m := range items {
		out = append(out, FromMartyrModel(m))
	}
	return out
}
