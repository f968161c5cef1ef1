// models/user.go
package models

import (
	"time"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`

	// Gamification
	TotalPoints int `gorm:"default:0" json:"total_points"`

	// Avatar
	AvatarStyle     string  `gorm:"default:avataaars" json:"avatar_style"`
	AvatarSeed      string  `json:"avatar_seed"`
	CustomAvatarURL *string `json:"custom_avatar_url,omitempty"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Progress     []Progress        `gorm:"foreignKey:UserID" json:"progress,omitempty"`
	APIKeys      []APIKey          `gorm:"foreignKey:UserID" json:"api_keys,omitempty"`
	Achievements []UserAchievement `gorm:"foreignKey:UserID" json:"achievements,omitempty"`
	Purchases    []AvatarPurchase  `gorm:"foreignKey:UserID" json:"purchases,omitempty"`
}

type UserAchievement struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;uniqueIndex:idx_user_achievement" json:"user_id"`
	AchievementID uint      `gorm:"not null;uniqueIndex:idx_user_achievement" json:"achievement_id"`
	EarnedAt      time.Time `json:"earned_at"`

	// Relationships
	User        User        `gorm:"foreignKey:UserID" json:"-"`
	Achievement Achievement `gorm:"foreignKey:AchievementID" json:"achievement,omitempty"`
}
