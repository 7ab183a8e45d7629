package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"jebshit_backend/internals/features/content/core"
)

const (
	MaxMemoryImages = 6
	MaxMemoryVideos = 4
)

type MemoryModel struct {
	MemoryID          uuid.UUID                   `gorm:"column:memory_id;type:uuid;primaryKey" json:"memory_id"`
	MemoryTitle       string                      `gorm:"column:memory_title;type:varchar(200);not null" json:"memory_title"`
	MemoryDescription string                      `gorm:"column:memory_description;type:text;not null;default:''" json:"memory_description"`
	MemoryContent     string                      `gorm:"column:memory_content;type:text;not null" json:"memory_content"`
	MemoryDate        *time.Time                  `gorm:"column:memory_date;type:timestamptz" json:"memory_date,omitempty"`
	MemoryImageURLs   datatypes.JSONSlice[string] `gorm:"column:memory_image_urls" json:"memory_image_urls"`
	MemoryYouTubeIDs  datatypes.JSONSlice[string] `gorm:"column:memory_youtube_ids" json:"memory_youtube_ids"`
	MemoryStatus      string                      `gorm:"column:memory_status;type:varchar(12);not null;default:'draft'" json:"memory_status"`

	MemoryCreatedAt time.Time `gorm:"column:memory_created_at;type:timestamptz;not null" json:"memory_created_at"`
	MemoryUpdatedAt time.Time `gorm:"column:memory_updated_at;type:timestamptz;not null" json:"memory_updated_at"`
}

func (MemoryModel) TableName() string { return "memories" }

func (*MemoryModel) Schema() core.Schema {
	return core.Schema{
		Table:      "memories",
		IDCol:      "memory_id",
		CreatedCol: "memory_created_at",
		UpdatedCol: "memory_updated_at",
		DateCols:   []string{"memory_date"},
		MaxImages:  MaxMemoryImages,
		MaxVideos:  MaxMemoryVideos,
	}
}

func (m *MemoryModel) PrimaryID() uuid.UUID { return m.MemoryID }

func (m *MemoryModel) EnsureID() {
	if m.MemoryID == uuid.Nil {
		m.MemoryID = uuid.New()
	}
}

func (m *MemoryModel) Stamp(now time.Time) {
	m.MemoryCreatedAt = now
	m.MemoryUpdatedAt = now
}
