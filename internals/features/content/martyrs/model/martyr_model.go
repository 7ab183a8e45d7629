package model

import (
	"time"

	"github.com/google/uuid"

	"jebshit_backend/internals/features/content/core"
)

type MartyrModel struct {
	MartyrID               uuid.UUID  `gorm:"column:martyr_id;type:uuid;primaryKey" json:"martyr_id"`
	MartyrName             string     `gorm:"column:martyr_name;type:varchar(150);not null" json:"martyr_name"`
	MartyrPhotoURL         *string    `gorm:"column:martyr_photo_url;type:text" json:"martyr_photo_url,omitempty"`
	MartyrDateOfMartyrdom  *time.Time `gorm:"column:martyr_date_of_martyrdom;type:timestamptz" json:"martyr_date_of_martyrdom,omitempty"`
	MartyrBiography        string     `gorm:"column:martyr_biography;type:text;not null" json:"martyr_biography"`
	MartyrStatus           string     `gorm:"column:martyr_status;type:varchar(12);not null;default:'draft'" json:"martyr_status"`

	MartyrCreatedAt time.Time `gorm:"column:martyr_created_at;type:timestamptz;not null" json:"martyr_created_at"`
	MartyrUpdatedAt time.Time `gorm:"column:martyr_updated_at;type:timestamptz;not null" json:"martyr_updated_at"`
}

func (MartyrModel) TableName() string { return "martyrs" }

func (*MartyrModel) Schema() core.Schema {
	return core.Schema{
		Table:      "martyrs",
		IDCol:      "martyr_id",
		CreatedCol: "martyr_created_at",
		UpdatedCol: "martyr_updated_at",
		DateCols:   []string{"martyr_date_of_martyrdom"},
	}
}

func (m *MartyrModel) PrimaryID() uuid.UUID { return m.MartyrID }

func (m *MartyrModel) EnsureID() {
	if m.MartyrID == uuid.Nil {
		m.MartyrID = uuid.New()
	}
}

func (m *MartyrModel) Stamp(now time.Time) {
	m.MartyrCreatedAt = now
	m.MartyrUpdatedAt = now
}
