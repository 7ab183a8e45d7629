package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"jebshit_backend/internals/features/content/core"
)

const (
	MaxTopicImages = 6
	MaxTopicVideos = 3
)

type TopicModel struct {
	TopicID          uuid.UUID                   `gorm:"column:topic_id;type:uuid;primaryKey" json:"topic_id"`
	TopicTitle       string                      `gorm:"column:topic_title;type:varchar(200);not null" json:"topic_title"`
	TopicDescription string                      `gorm:"column:topic_description;type:text;not null;default:''" json:"topic_description"`
	TopicContent     string                      `gorm:"column:topic_content;type:text;not null" json:"topic_content"`
	TopicPublishDate *time.Time                  `gorm:"column:topic_publish_date;type:timestamptz" json:"topic_publish_date,omitempty"`
	TopicImageURLs   datatypes.JSONSlice[string] `gorm:"column:topic_image_urls" json:"topic_image_urls"`
	TopicYouTubeIDs  datatypes.JSONSlice[string] `gorm:"column:topic_youtube_ids" json:"topic_youtube_ids"`
	TopicStatus      string                      `gorm:"column:topic_status;type:varchar(12);not null;default:'draft'" json:"topic_status"`

	TopicCreatedAt time.Time `gorm:"column:topic_created_at;type:timestamptz;not null" json:"topic_created_at"`
	TopicUpdatedAt time.Time `gorm:"column:topic_updated_at;type:timestamptz;not null" json:"topic_updated_at"`
}

func (TopicModel) TableName() string { return "topics" }

func (*TopicModel) Schema() core.Schema {
	return core.Schema{
		Table:      "topics",
		IDCol:      "topic_id",
		CreatedCol: "topic_created_at",
		UpdatedCol: "topic_updated_at",
		DateCols:   []string{"topic_publish_date"},
		MaxImages:  MaxTopicImages,
		MaxVideos:  MaxTopicVideos,
	}
}

func (m *TopicModel) PrimaryID() uuid.UUID { return m.TopicID }

func (m *TopicModel) EnsureID() {
	if m.TopicID == uuid.Nil {
		m.TopicID = uuid.New()
	}
}

func (m *TopicModel) Stamp(now time.Time) {
	m.TopicCreatedAt = now
	m.TopicUpdatedAt = now
}
