// models/apikey.go
package models

import "time"

// APIKey is a long-lived developer credential, independent of login
// sessions. Revocation flips IsActive; revoked keys are kept so the
// key string can never be reissued.
type APIKey struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Key    string `gorm:"not null;uniqueIndex" json:"key"`
	Name   string `json:"name"`

	IsActive bool       `gorm:"default:true" json:"is_active"`
	LastUsed *time.Time `json:"last_used,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
