// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"github.com/thelonewolf39/Language-Learning-web/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.APIKey{},
		&models.Progress{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.AvatarStyle{},
		&models.AvatarPurchase{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes()

	log.Println("✅ All migrations completed successfully")
}

// createIndexes creates supplementary indexes beyond what AutoMigrate emits
func createIndexes() {
	db := GetDB()

	// User indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)")

	// API key indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_api_keys_user ON api_keys(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_api_keys_active ON api_keys(is_active)")

	// Progress indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_progress_user ON progress(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_progress_practiced ON progress(last_practiced DESC)")

	// Achievement indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_user_achievements_user ON user_achievements(user_id)")

	// Avatar indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_avatar_purchases_user ON avatar_purchases(user_id)")
}
