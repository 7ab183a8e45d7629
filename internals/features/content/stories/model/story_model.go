package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"jebshit_backend/internals/features/content/core"
)

const (
	MaxStoryImages = 4
	MaxStoryVideos = 3
)

// Sheikh stories: narrated stories with a small image gallery and a few
// hosted video references.
type StoryModel struct {
	StoryID         uuid.UUID                   `gorm:"column:story_id;type:uuid;primaryKey" json:"story_id"`
	StoryTitle      string                      `gorm:"column:story_title;type:varchar(200);not null" json:"story_title"`
	StoryContent    string                      `gorm:"column:story_content;type:text;not null" json:"story_content"`
	StoryImageURLs  datatypes.JSONSlice[string] `gorm:"column:story_image_urls" json:"story_image_urls"`
	StoryYouTubeIDs datatypes.JSONSlice[string] `gorm:"column:story_youtube_ids" json:"story_youtube_ids"`
	StoryStatus     string                      `gorm:"column:story_status;type:varchar(12);not null;default:'draft'" json:"story_status"`

	StoryCreatedAt time.Time `gorm:"column:story_created_at;type:timestamptz;not null" json:"story_created_at"`
	StoryUpdatedAt time.Time `gorm:"column:story_updated_at;type:timestamptz;not null" json:"story_updated_at"`
}

func (StoryModel) TableName() string { return "stories" }

func (*StoryModel) Schema() core.Schema {
	return core.Schema{
		Table:      "stories",
		IDCol:      "story_id",
		CreatedCol: "story_created_at",
		UpdatedCol: "story_updated_at",
		MaxImages:  MaxStoryImages,
		MaxVideos:  MaxStoryVideos,
	}
}

func (m *StoryModel) PrimaryID() uuid.UUID { return m.StoryID }

func (m *StoryModel) EnsureID() {
	if m.StoryID == uuid.Nil {
		m.StoryID = uuid.New()
	}
}

func (m *StoryModel) Stamp(now time.Time) {
	m.StoryCreatedAt = now
	m.StoryUpdatedAt = now
}
