package services

import (
	"testing"

	"github.com/thelonewolf39/Language-Learning-web/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory DB.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.APIKey{},
		&models.Progress{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.AvatarStyle{},
		&models.AvatarPurchase{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := models.User{
		Username:    username,
		Password:    "not-a-real-hash",
		AvatarStyle: "avataaars",
		AvatarSeed:  "testseed",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seededServices(t *testing.T) (*gorm.DB, *ProgressService, *AchievementService, *AvatarService) {
	t.Helper()

	db := newTestDB(t)
	locks := NewUserLocks()
	achievements := NewAchievementService(db)
	progress := NewProgressService(db, achievements, locks)
	avatars := NewAvatarService(db, locks)

	require.NoError(t, achievements.SeedCatalog())
	require.NoError(t, avatars.SeedCatalog())

	return db, progress, achievements, avatars
}

func intp(v int) *int {
	return &v
}
