package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"jebshit_backend/internals/features/content/core"
)

const MaxActivityImages = 6

type ActivityModel struct {
	ActivityID          uuid.UUID                   `gorm:"column:activity_id;type:uuid;primaryKey" json:"activity_id"`
	ActivityTitle       string                      `gorm:"column:activity_title;type:varchar(200);not null" json:"activity_title"`
	ActivityDescription string                      `gorm:"column:activity_description;type:text;not null;default:''" json:"activity_description"`
	ActivityContent     string                      `gorm:"column:activity_content;type:text;not null" json:"activity_content"`
	ActivityDate        *time.Time                  `gorm:"column:activity_date;type:timestamptz" json:"activity_date,omitempty"`
	ActivityImageURLs   datatypes.JSONSlice[string] `gorm:"column:activity_image_urls" json:"activity_image_urls"`
	ActivityStatus      string                      `gorm:"column:activity_status;type:varchar(12);not null;default:'draft'" json:"activity_status"`

	ActivityCreatedAt time.Time `gorm:"column:activity_created_at;type:timestamptz;not null" json:"activity_created_at"`
	ActivityUpdatedAt time.Time `gorm:"column:activity_updated_at;type:timestamptz;not null" json:"activity_updated_at"`
}

func (ActivityModel) TableName() string { return "activities" }

func (*ActivityModel) Schema() core.Schema {
	return core.Schema{
		Table:      "activities",
		IDCol:      "activity_id",
		CreatedCol: "activity_created_at",
		UpdatedCol: "activity_updated_at",
		DateCols:   []string{"activity_date"},
		MaxImages:  MaxActivityImages,
	}
}

func (m *ActivityModel) PrimaryID() uuid.UUID { return m.ActivityID }

func (m *ActivityModel) EnsureID() {
	if m.ActivityID == uuid.Nil {
		m.ActivityID = uuid.New()
	}
}

func (m *ActivityModel) Stamp(now time.Time) {
	m.ActivityCreatedAt = now
	m.ActivityUpdatedAt = now
}
