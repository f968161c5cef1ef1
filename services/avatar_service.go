// services/avatar_service.go - Point-gated avatar cosmetics
package services

import (
	"errors"
	"time"

	"github.com/thelonewolf39/Language-Learning-web/models"

	"gorm.io/gorm"
)

type AvatarService struct {
	db    *gorm.DB
	locks *UserLocks
}

func NewAvatarService(db *gorm.DB, locks *UserLocks) *AvatarService {
	return &AvatarService{db: db, locks: locks}
}

var defaultAvatarStyles = []models.AvatarStyle{
	{Name: "Classic", StyleType: "avataaars", Cost: 0, PreviewURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=classic", Description: "Classic avatar style - FREE!", IsPremium: false},
	{Name: "Pixel Art", StyleType: "pixel-art", Cost: 50, PreviewURL: "https://api.dicebear.com/7.x/pixel-art/svg?seed=pixel", Description: "Retro pixel art style", IsPremium: false},
	{Name: "Bottts", StyleType: "bottts", Cost: 75, PreviewURL: "https://api.dicebear.com/7.x/bottts/svg?seed=robot", Description: "Fun robot avatars", IsPremium: false},
	{Name: "Adventurer", StyleType: "adventurer", Cost: 100, PreviewURL: "https://api.dicebear.com/7.x/adventurer/svg?seed=adventure", Description: "Adventurous character style", IsPremium: true},
	{Name: "Big Smile", StyleType: "big-smile", Cost: 100, PreviewURL: "https://api.dicebear.com/7.x/big-smile/svg?seed=smile", Description: "Cheerful big smile avatars", IsPremium: true},
	{Name: "Lorelei", StyleType: "lorelei", Cost: 125, PreviewURL: "https://api.dicebear.com/7.x/lorelei/svg?seed=lorelei", Description: "Elegant illustrated style", IsPremium: true},
	{Name: "Miniavs", StyleType: "miniavs", Cost: 150, PreviewURL: "https://api.dicebear.com/7.x/miniavs/svg?seed=mini", Description: "Minimalist avatar style", IsPremium: true},
	{Name: "Shapes", StyleType: "shapes", Cost: 200, PreviewURL: "https://api.dicebear.com/7.x/shapes/svg?seed=shapes", Description: "Abstract geometric shapes", IsPremium: true},
}

// SeedCatalog inserts any missing default styles, keyed by name.
// Idempotent, runs on every startup.
func (s *AvatarService) SeedCatalog() error {
	for _, style := range defaultAvatarStyles {
		var existing models.AvatarStyle
		err := s.db.Where("name = ?", style.Name).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := s.db.Create(&style).Error; err != nil {
				return wrapStorage(err)
			}
		} else if err != nil {
			return wrapStorage(err)
		}
	}
	return nil
}

// OwnedStyle is a catalog entry annotated with ownership for one user.
type OwnedStyle struct {
	models.AvatarStyle
	IsOwned bool `json:"is_owned"`
}

// ListStyles returns the full catalog. With a user supplied, each style
// carries is_owned: free styles belong to everyone, paid styles only
// with a purchase record.
func (s *AvatarService) ListStyles(userID *uint) ([]OwnedStyle, error) {
	var styles []models.AvatarStyle
	if err := s.db.Order("id").Find(&styles).Error; err != nil {
		return nil, wrapStorage(err)
	}

	ownedIDs := make(map[uint]bool)
	if userID != nil {
		var purchases []models.AvatarPurchase
		if err := s.db.Where("user_id = ?", *userID).Find(&purchases).Error; err != nil {
			return nil, wrapStorage(err)
		}
		for _, p := range purchases {
			ownedIDs[p.AvatarStyleID] = true
		}
	}

	annotated := make([]OwnedStyle, 0, len(styles))
	for _, style := range styles {
		owned := false
		if userID != nil {
			owned = style.Cost == 0 || ownedIDs[style.ID]
		}
		annotated = append(annotated, OwnedStyle{AvatarStyle: style, IsOwned: owned})
	}
	return annotated, nil
}

// Purchase debits the style's cost and records ownership in a single
// transaction, so the balance and the purchase row can never diverge.
func (s *AvatarService) Purchase(userID, styleID uint) (*models.AvatarPurchase, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	var purchase models.AvatarPurchase
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var style models.AvatarStyle
		if err := tx.First(&style, styleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.AvatarPurchase{}).
			Where("user_id = ? AND avatar_style_id = ?", userID, styleID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyOwned
		}

		if user.TotalPoints < style.Cost {
			return &InsufficientPointsError{Required: style.Cost, Available: user.TotalPoints}
		}

		if err := tx.Model(&user).Update("total_points", user.TotalPoints-style.Cost).Error; err != nil {
			return err
		}

		purchase = models.AvatarPurchase{
			UserID:        userID,
			AvatarStyleID: styleID,
			PurchasedAt:   time.Now(),
		}
		return tx.Create(&purchase).Error
	})
	if err != nil {
		return nil, wrapStorage(err)
	}

	return &purchase, nil
}

// Equip sets the user's active style and seed. Paid styles need an
// existing purchase; free styles are always equippable. Ownership is
// checked against both the price and the purchase record, never
// inferred from one alone.
func (s *AvatarService) Equip(userID uint, styleType, seed string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, wrapStorage(err)
	}

	var style models.AvatarStyle
	err := s.db.Where("style_type = ?", styleType).First(&style).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, wrapStorage(err)
	}
	if err == nil && style.Cost > 0 {
		var count int64
		if err := s.db.Model(&models.AvatarPurchase{}).
			Where("user_id = ? AND avatar_style_id = ?", userID, style.ID).
			Count(&count).Error; err != nil {
			return nil, wrapStorage(err)
		}
		if count == 0 {
			return nil, ErrNotOwned
		}
	}

	updates := map[string]interface{}{
		"avatar_style": styleType,
		"avatar_seed":  seed,
	}
	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return nil, wrapStorage(err)
	}

	user.AvatarStyle = styleType
	user.AvatarSeed = seed
	return &user, nil
}
