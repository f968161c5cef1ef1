// services/achievement_service.go - Achievement catalog and award engine
package services

import (
	"time"

	"github.com/thelonewolf39/Language-Learning-web/models"

	"gorm.io/gorm"
)

// PerfectScore is the maximum attainable per-lesson quiz score.
const PerfectScore = 5

type AchievementService struct {
	db *gorm.DB
}

func NewAchievementService(db *gorm.DB) *AchievementService {
	return &AchievementService{db: db}
}

var defaultAchievements = []models.Achievement{
	{Name: "First Steps", Description: "Complete your first lesson", Icon: "🎯", Points: 10, Category: "lessons"},
	{Name: "Dedicated Learner", Description: "Complete 3 lessons", Icon: "📚", Points: 25, Category: "lessons"},
	{Name: "Spanish Master", Description: "Complete all 5 lessons", Icon: "🏆", Points: 50, Category: "lessons"},
	{Name: "Perfect Score", Description: "Get 100% on any quiz", Icon: "⭐", Points: 20, Category: "scores"},
	{Name: "Quiz Champion", Description: "Get 100% on 3 different quizzes", Icon: "🌟", Points: 40, Category: "scores"},
	{Name: "Vocabulary Expert", Description: "Complete all vocabulary lessons", Icon: "📖", Points: 30, Category: "lessons"},
	{Name: "Persistent", Description: "Retry a lesson 5 times", Icon: "💪", Points: 15, Category: "streak"},
	{Name: "Quick Learner", Description: "Complete a lesson on first try with 80%+", Icon: "🚀", Points: 25, Category: "scores"},
	{Name: "Point Collector", Description: "Earn 100 total points", Icon: "💎", Points: 50, Category: "points"},
	{Name: "Practice Makes Perfect", Description: "Complete 10 quiz attempts", Icon: "🎓", Points: 35, Category: "streak"},
}

// SeedCatalog inserts any missing default achievements. Safe to call on
// every startup: existing rows are left untouched.
func (s *AchievementService) SeedCatalog() error {
	for _, ach := range defaultAchievements {
		var existing models.Achievement
		err := s.db.Where("name = ?", ach.Name).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := s.db.Create(&ach).Error; err != nil {
				return wrapStorage(err)
			}
		} else if err != nil {
			return wrapStorage(err)
		}
	}
	return nil
}

// EvaluateAndAward re-runs every achievement predicate against the
// user's accumulated progress and awards whatever is newly earned,
// crediting the point rewards onto the user row. It must run inside the
// caller's transaction so the award and the credit commit together.
// Re-running after an award is a no-op for that achievement.
func (s *AchievementService) EvaluateAndAward(tx *gorm.DB, user *models.User) ([]models.Achievement, error) {
	var progress []models.Progress
	if err := tx.Where("user_id = ?", user.ID).Find(&progress).Error; err != nil {
		return nil, err
	}

	completedCount := 0
	perfectCount := 0
	totalAttempts := 0
	maxAttempts := 0
	quickLearner := false
	for _, p := range progress {
		if p.Completed {
			completedCount++
		}
		if p.BestScore != nil && *p.BestScore == PerfectScore {
			perfectCount++
		}
		totalAttempts += p.Attempts
		if p.Attempts > maxAttempts {
			maxAttempts = p.Attempts
		}
		if p.Attempts == 1 && p.BestScore != nil && *p.BestScore >= 4 {
			quickLearner = true
		}
	}

	checks := map[string]bool{
		"First Steps":            completedCount >= 1,
		"Dedicated Learner":      completedCount >= 3,
		"Spanish Master":         completedCount >= 5,
		"Perfect Score":          perfectCount >= 1,
		"Quiz Champion":          perfectCount >= 3,
		"Persistent":             maxAttempts >= 5,
		"Quick Learner":          quickLearner,
		"Point Collector":        user.TotalPoints >= 100,
		"Practice Makes Perfect": totalAttempts >= 10,
	}

	var catalog []models.Achievement
	if err := tx.Order("id").Find(&catalog).Error; err != nil {
		return nil, err
	}

	var earnedIDs []uint
	if err := tx.Model(&models.UserAchievement{}).Where("user_id = ?", user.ID).
		Pluck("achievement_id", &earnedIDs).Error; err != nil {
		return nil, err
	}
	earnedMap := make(map[uint]bool, len(earnedIDs))
	for _, id := range earnedIDs {
		earnedMap[id] = true
	}

	newAchievements := []models.Achievement{}
	for _, achievement := range catalog {
		if earnedMap[achievement.ID] || !checks[achievement.Name] {
			continue
		}

		award := models.UserAchievement{
			UserID:        user.ID,
			AchievementID: achievement.ID,
			EarnedAt:      time.Now(),
		}
		if err := tx.Create(&award).Error; err != nil {
			return nil, err
		}

		user.TotalPoints += achievement.Points
		newAchievements = append(newAchievements, achievement)
	}

	if len(newAchievements) > 0 {
		if err := tx.Model(&models.User{}).Where("id = ?", user.ID).
			Update("total_points", user.TotalPoints).Error; err != nil {
			return nil, err
		}
	}

	return newAchievements, nil
}

// ListCatalog returns every defined achievement.
func (s *AchievementService) ListCatalog() ([]models.Achievement, error) {
	var catalog []models.Achievement
	if err := s.db.Order("id").Find(&catalog).Error; err != nil {
		return nil, wrapStorage(err)
	}
	return catalog, nil
}

// EarnedAchievement is a catalog entry plus the time the user earned it.
type EarnedAchievement struct {
	models.Achievement
	EarnedAt time.Time `json:"earned_at"`
}

// ListForUser returns the achievements the user has earned, most recent
// first.
func (s *AchievementService) ListForUser(userID uint) ([]EarnedAchievement, error) {
	var awards []models.UserAchievement
	if err := s.db.Preload("Achievement").Where("user_id = ?", userID).
		Order("earned_at DESC").Find(&awards).Error; err != nil {
		return nil, wrapStorage(err)
	}

	earned := make([]EarnedAchievement, 0, len(awards))
	for _, ua := range awards {
		earned = append(earned, EarnedAchievement{Achievement: ua.Achievement, EarnedAt: ua.EarnedAt})
	}
	return earned, nil
}
