// models/avatar.go
package models

import "time"

type AvatarStyle struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null;uniqueIndex" json:"name"`
	StyleType   string `gorm:"not null" json:"style_type"`
	Cost        int    `gorm:"default:0" json:"cost"`
	PreviewURL  string `json:"preview_url"`
	Description string `json:"description"`
	IsPremium   bool   `gorm:"default:false" json:"is_premium"`

	CreatedAt time.Time `json:"created_at"`
}

// AvatarPurchase proves ownership of a paid style. Cost-0 styles are
// owned by everyone and never get a purchase row.
type AvatarPurchase struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;uniqueIndex:idx_avatar_purchase" json:"user_id"`
	AvatarStyleID uint      `gorm:"not null;uniqueIndex:idx_avatar_purchase" json:"avatar_style_id"`
	PurchasedAt   time.Time `json:"purchased_at"`

	User  User        `gorm:"foreignKey:UserID" json:"-"`
	Style AvatarStyle `gorm:"foreignKey:AvatarStyleID" json:"style,omitempty"`
}
