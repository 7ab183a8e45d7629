package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"jebshit_backend/internals/features/content/core"
)

const MaxNewsMedia = 10

type NewsModel struct {
	NewsID          uuid.UUID                   `gorm:"column:news_id;type:uuid;primaryKey" json:"news_id"`
	NewsTitle       string                      `gorm:"column:news_title;type:varchar(200);not null" json:"news_title"`
	NewsDescription string                      `gorm:"column:news_description;type:text;not null;default:''" json:"news_description"`
	NewsContent     string                      `gorm:"column:news_content;type:text;not null" json:"news_content"`
	NewsDate        *time.Time                  `gorm:"column:news_date;type:timestamptz" json:"news_date,omitempty"`
	NewsIsUrgent    bool                        `gorm:"column:news_is_urgent;not null;default:false" json:"news_is_urgent"`
	NewsMediaURLs   datatypes.JSONSlice[string] `gorm:"column:news_media_urls" json:"news_media_urls"`
	NewsStatus      string                      `gorm:"column:news_status;type:varchar(12);not null;default:'draft'" json:"news_status"`

	NewsCreatedAt time.Time `gorm:"column:news_created_at;type:timestamptz;not null" json:"news_created_at"`
	NewsUpdatedAt time.Time `gorm:"column:news_updated_at;type:timestamptz;not null" json:"news_updated_at"`
}

func (NewsModel) TableName() string { return "news" }

func (*NewsModel) Schema() core.Schema {
	return core.Schema{
		Table:      "news",
		IDCol:      "news_id",
		CreatedCol: "news_created_at",
		UpdatedCol: "news_updated_at",
		DateCols:   []string{"news_date"},
		MaxImages:  MaxNewsMedia,
	}
}

func (m *NewsModel) PrimaryID() uuid.UUID { return m.NewsID }

func (m *NewsModel) EnsureID() {
	if m.NewsID == uuid.Nil {
		m.NewsID = uuid.New()
	}
}

func (m *NewsModel) Stamp(now time.Time) {
	m.NewsCreatedAt = now
	m.NewsUpdatedAt = now
}
