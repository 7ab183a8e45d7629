package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Every staff account currently carries the same default role; the role is
// stored and put in the token but no differentiated authorization exists yet.
const DefaultRole = "editor"

type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	UserName     string    `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	UserEmail    string    `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex" json:"user_email"`
	UserPassword string    `gorm:"column:user_password;type:text;not null" json:"-"`
	UserRole     string    `gorm:"column:user_role;type:varchar(24);not null;default:'editor'" json:"user_role"`
	UserIsActive bool      `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;type:timestamptz;not null" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;type:timestamptz;not null" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	now := time.Now().UTC()
	if m.UserCreatedAt.IsZero() {
		m.UserCreatedAt = now
	}
	m.UserUpdatedAt = m.UserCreatedAt
	if m.UserRole == "" {
		m.UserRole = DefaultRole
	}
	return nil
}
