package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklist holds access tokens invalidated by logout until they expire.
type TokenBlacklist struct {
	TokenBlacklistID        uuid.UUID      `gorm:"column:token_blacklist_id;type:uuid;primaryKey" json:"token_blacklist_id"`
	TokenBlacklistToken     string         `gorm:"column:token_blacklist_token;type:text;not null;index" json:"-"`
	TokenBlacklistExpiresAt time.Time      `gorm:"column:token_blacklist_expires_at;type:timestamptz;not null" json:"token_blacklist_expires_at"`
	TokenBlacklistCreatedAt time.Time      `gorm:"column:token_blacklist_created_at;type:timestamptz;not null" json:"token_blacklist_created_at"`
	TokenBlacklistDeletedAt gorm.DeletedAt `gorm:"column:token_blacklist_deleted_at" json:"-"`
}

func (TokenBlacklist) TableName() string { return "token_blacklist" }

func (m *TokenBlacklist) BeforeCreate(tx *gorm.DB) error {
	if m.TokenBlacklistID == uuid.Nil {
		m.TokenBlacklistID = uuid.New()
	}
	if m.TokenBlacklistCreatedAt.IsZero() {
		m.TokenBlacklistCreatedAt = time.Now().UTC()
	}
	return nil
}
