package model

import (
	"time"

	"github.com/google/uuid"

	"jebshit_backend/internals/features/content/core"
)

/* =========================================================
   ENUM: JobType
   ========================================================= */

type JobType string

const (
	JobTypeFullTime  JobType = "full-time"
	JobTypePartTime  JobType = "part-time"
	JobTypeTemporary JobType = "temporary"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeTemporary:
		return true
	default:
		return false
	}
}

/* =========================================================
   MODEL: jobs
   ========================================================= */

type JobModel struct {
	JobID          uuid.UUID  `gorm:"column:job_id;type:uuid;primaryKey" json:"job_id"`
	JobTitle       string     `gorm:"column:job_title;type:varchar(200);not null" json:"job_title"`
	JobDescription string     `gorm:"column:job_description;type:text;not null;default:''" json:"job_description"`
	JobType        JobType    `gorm:"column:job_type;type:varchar(20);not null;default:'full-time'" json:"job_type"`
	JobLocation    string     `gorm:"column:job_location;type:varchar(150);not null;default:''" json:"job_location"`
	JobContactInfo string     `gorm:"column:job_contact_info;type:text;not null;default:''" json:"job_contact_info"`
	JobContent     string     `gorm:"column:job_content;type:text;not null;default:''" json:"job_content"`
	JobPublishDate *time.Time `gorm:"column:job_publish_date;type:timestamptz" json:"job_publish_date,omitempty"`
	JobExpiryDate  *time.Time `gorm:"column:job_expiry_date;type:timestamptz" json:"job_expiry_date,omitempty"`
	JobStatus      string     `gorm:"column:job_status;type:varchar(12);not null;default:'draft'" json:"job_status"`

	JobCreatedAt time.Time `gorm:"column:job_created_at;type:timestamptz;not null" json:"job_created_at"`
	JobUpdatedAt time.Time `gorm:"column:job_updated_at;type:timestamptz;not null" json:"job_updated_at"`
}

func (JobModel) TableName() string { return "jobs" }

func (*JobModel) Schema() core.Schema {
	return core.Schema{
		Table:      "jobs",
		IDCol:      "job_id",
		CreatedCol: "job_created_at",
		UpdatedCol: "job_updated_at",
		DateCols:   []string{"job_publish_date", "job_expiry_date"},
	}
}

func (m *JobModel) PrimaryID() uuid.UUID { return m.JobID }

func (m *JobModel) EnsureID() {
	if m.JobID == uuid.Nil {
		m.JobID = uuid.New()
	}
}

func (m *JobModel) Stamp(now time.Time) {
	m.JobCreatedAt = now
	m.JobUpdatedAt = now
}
