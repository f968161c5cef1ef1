// services/apikey_service.go - Long-lived developer credentials
package services

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/thelonewolf39/Language-Learning-web/models"

	"gorm.io/gorm"
)

const apiKeyPrefix = "llw_"
const apiKeyBytes = 32

type APIKeyService struct {
	db *gorm.DB
}

func NewAPIKeyService(db *gorm.DB) *APIKeyService {
	return &APIKeyService{db: db}
}

// Issue creates and persists a new active key for the user.
func (s *APIKeyService) Issue(userID uint, name string) (*models.APIKey, error) {
	buf := make([]byte, apiKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}

	key := models.APIKey{
		UserID:   userID,
		Key:      apiKeyPrefix + base64.RawURLEncoding.EncodeToString(buf),
		Name:     name,
		IsActive: true,
	}

	if err := s.db.Create(&key).Error; err != nil {
		return nil, wrapStorage(err)
	}
	return &key, nil
}

// Authenticate resolves a key string to its owner. Unknown and revoked
// keys are both rejected. The last-used timestamp is updated as a
// best-effort side effect and never fails the call.
func (s *APIKeyService) Authenticate(key string) (*models.User, error) {
	var apiKey models.APIKey
	err := s.db.Where("key = ? AND is_active = ?", key, true).First(&apiKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidKey
	}
	if err != nil {
		return nil, wrapStorage(err)
	}

	now := time.Now()
	s.db.Model(&apiKey).Update("last_used", now)

	var user models.User
	if err := s.db.First(&user, apiKey.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidKey
		}
		return nil, wrapStorage(err)
	}
	return &user, nil
}

// List returns every key the user has issued, revoked ones included.
func (s *APIKeyService) List(userID uint) ([]models.APIKey, error) {
	var keys []models.APIKey
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&keys).Error; err != nil {
		return nil, wrapStorage(err)
	}
	return keys, nil
}

// Revoke deactivates a key owned by the caller. Returns false when the
// key does not exist or belongs to someone else.
func (s *APIKeyService) Revoke(userID, keyID uint) (bool, error) {
	var key models.APIKey
	err := s.db.Where("id = ? AND user_id = ?", keyID, userID).First(&key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, wrapStorage(err)
	}

	if err := s.db.Model(&key).Update("is_active", false).Error; err != nil {
		return false, wrapStorage(err)
	}
	return true, nil
}
